package theater

import (
	"slices"
	"strings"

	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrInvalidName         = errs.New("theater name is required")
	ErrNoSeats             = errs.New("theater must have at least one seat")
	ErrInvalidSeatNumber   = errs.New("seat number must be positive")
	ErrDuplicateSeatNumber = errs.New("duplicate seat number in theater")
)

// Theater is a venue with a fixed seat layout shared by all of its shows.
type Theater struct {
	id          uuid.UUID
	name        string
	seatNumbers []int
}

func NewTheater(name string, seatNumbers []int) (*Theater, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrInvalidName
	}
	if len(seatNumbers) == 0 {
		return nil, ErrNoSeats
	}
	numbers := slices.Clone(seatNumbers)
	slices.Sort(numbers)
	for i, n := range numbers {
		if n <= 0 {
			return nil, ErrInvalidSeatNumber
		}
		if i > 0 && numbers[i-1] == n {
			return nil, ErrDuplicateSeatNumber
		}
	}
	return &Theater{id: uuid.New(), name: name, seatNumbers: numbers}, nil
}

// SeatRange returns 1..count, the layout used when a theater is created by capacity.
func SeatRange(count int) []int {
	out := make([]int, 0, max(count, 0))
	for i := 1; i <= count; i++ {
		out = append(out, i)
	}
	return out
}

func Reconstruct(id uuid.UUID, name string, seatNumbers []int) *Theater {
	numbers := slices.Clone(seatNumbers)
	slices.Sort(numbers)
	return &Theater{id: id, name: name, seatNumbers: numbers}
}

func (t *Theater) ID() uuid.UUID      { return t.id }
func (t *Theater) Name() string       { return t.name }
func (t *Theater) SeatNumbers() []int { return slices.Clone(t.seatNumbers) }
