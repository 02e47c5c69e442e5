package money

import (
	"fmt"
	"strconv"
	"strings"

	"cinema-ticketing/internal/pkg/errs"
)

var (
	ErrInvalidPrice    = errs.New("price must be greater than zero")
	ErrPriceTooPrecise = errs.New("price supports at most 4 decimal places")
)

// Amount is an exact amount in cents.
type Amount int64

func (a Amount) Cents() int64 { return int64(a) }

func (a Amount) String() string {
	sign := ""
	v := int64(a)
	if v < 0 {
		sign = "-"
		v = -v
	}
	return fmt.Sprintf("%s%d.%02d", sign, v/100, v%100)
}

const unitScale = 10000

// UnitPrice is a per-seat price in ten-thousandths of a currency unit, so that
// the charged total can be rounded half up to cents without floating point.
type UnitPrice int64

func NewUnitPrice(tenThousandths int64) (UnitPrice, error) {
	if tenThousandths <= 0 {
		return 0, ErrInvalidPrice
	}
	return UnitPrice(tenThousandths), nil
}

func UnitPriceFromCents(cents int64) (UnitPrice, error) {
	return NewUnitPrice(cents * 100)
}

// ParseUnitPrice parses a plain decimal such as "12", "12.5" or "12.3456".
func ParseUnitPrice(s string) (UnitPrice, error) {
	s = strings.TrimSpace(s)
	if s == "" || strings.HasPrefix(s, "-") || strings.HasPrefix(s, "+") {
		return 0, ErrInvalidPrice
	}
	whole, frac, hasDot := strings.Cut(s, ".")
	if whole == "" || (hasDot && frac == "") {
		return 0, ErrInvalidPrice
	}
	if len(frac) > 4 {
		return 0, ErrPriceTooPrecise
	}
	w, err := strconv.ParseInt(whole, 10, 64)
	if err != nil {
		return 0, ErrInvalidPrice
	}
	var f int64
	if frac != "" {
		f, err = strconv.ParseInt(frac+strings.Repeat("0", 4-len(frac)), 10, 64)
		if err != nil {
			return 0, ErrInvalidPrice
		}
	}
	if w > (1<<62)/unitScale {
		return 0, ErrInvalidPrice
	}
	return NewUnitPrice(w*unitScale + f)
}

func (p UnitPrice) TenThousandths() int64 { return int64(p) }

// Times returns round_half_up(n * p, 2).
func (p UnitPrice) Times(n int) Amount {
	if n <= 0 {
		return 0
	}
	total := int64(p) * int64(n)
	return Amount((total + 50) / 100)
}

func (p UnitPrice) String() string {
	v := int64(p)
	whole, frac := v/unitScale, v%unitScale
	s := fmt.Sprintf("%d.%04d", whole, frac)
	// Keep at least two decimals.
	for strings.HasSuffix(s, "0") && len(s)-strings.Index(s, ".") > 3 {
		s = strings.TrimSuffix(s, "0")
	}
	return s
}
