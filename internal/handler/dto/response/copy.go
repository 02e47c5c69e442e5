package response

import (
	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/domain/seat"

	"github.com/jinzhu/copier"
)

var copyOptions = copier.Option{
	Converters: []copier.TypeConverter{
		{
			SrcType: money.Amount(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(money.Amount).String(), nil
			},
		},
		{
			SrcType: seat.State(""),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(seat.State).String(), nil
			},
		},
		{
			SrcType: rating.Average(0),
			DstType: copier.String,
			Fn: func(src any) (any, error) {
				return src.(rating.Average).String(), nil
			},
		},
	},
}

// from copies the same-named fields of src into a new T.
func from[T any](src any) (*T, error) {
	var dst T
	if err := copier.CopyWithOption(&dst, src, copyOptions); err != nil {
		return nil, err
	}
	return &dst, nil
}
