package show

import (
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrNoSeats             = errs.New("show must have at least one seat")
	ErrDuplicateSeatNumber = errs.New("duplicate seat number in layout")
	ErrInvalidPoints       = errs.New("points to earn cannot be negative")
	ErrInvalidStartTime    = errs.New("show start time is required")
	ErrMissingMovie        = errs.New("show movie is required")
	ErrMissingTheater      = errs.New("show theater is required")
)

// ErrSelectedSeatsBusy also matches seat.ErrSeatBusy.
var ErrSelectedSeatsBusy error = &selectedSeatsBusyError{}

type selectedSeatsBusyError struct{}

func (*selectedSeatsBusyError) Error() string {
	return "all or some of the seats chosen are busy"
}

func (*selectedSeatsBusyError) Is(target error) bool {
	return target == seat.ErrSeatBusy
}
