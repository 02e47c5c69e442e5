package show

import (
	"slices"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/seat"

	"github.com/google/uuid"
)

// Inventory is the fixed seat set of one show.
type Inventory struct {
	showID  uuid.UUID
	numbers []int
	seats   map[int]*seat.Seat
}

func NewInventory(showID uuid.UUID, seatNumbers []int) (*Inventory, error) {
	seats := make([]*seat.Seat, 0, len(seatNumbers))
	for _, n := range seatNumbers {
		s, err := seat.New(n)
		if err != nil {
			return nil, err
		}
		seats = append(seats, s)
	}
	return ReconstructInventory(showID, seats)
}

func ReconstructInventory(showID uuid.UUID, seats []*seat.Seat) (*Inventory, error) {
	if len(seats) == 0 {
		return nil, ErrNoSeats
	}
	inv := &Inventory{
		showID:  showID,
		numbers: make([]int, 0, len(seats)),
		seats:   make(map[int]*seat.Seat, len(seats)),
	}
	for _, s := range seats {
		if _, dup := inv.seats[s.Number()]; dup {
			return nil, ErrDuplicateSeatNumber
		}
		inv.seats[s.Number()] = s
		inv.numbers = append(inv.numbers, s.Number())
	}
	slices.Sort(inv.numbers)
	return inv, nil
}

func (i *Inventory) ShowID() uuid.UUID { return i.showID }

func (i *Inventory) Numbers() []int { return slices.Clone(i.numbers) }

func (i *Inventory) Len() int { return len(i.numbers) }

func (i *Inventory) Seat(number int) (*seat.Seat, bool) {
	s, ok := i.seats[number]
	return s, ok
}

// Seats returns every seat ordered by number.
func (i *Inventory) Seats() []*seat.Seat {
	out := make([]*seat.Seat, 0, len(i.numbers))
	for _, n := range i.numbers {
		out = append(out, i.seats[n])
	}
	return out
}

// SeatsMatching drops unknown numbers and duplicates; the result is ordered by number.
func (i *Inventory) SeatsMatching(numbers []int) []*seat.Seat {
	wanted := distinct(numbers)
	out := make([]*seat.Seat, 0, len(wanted))
	for _, n := range wanted {
		if s, ok := i.seats[n]; ok {
			out = append(out, s)
		}
	}
	return out
}

// Unknown lists the requested numbers that are not part of this show.
func (i *Inventory) Unknown(numbers []int) []int {
	var out []int
	for _, n := range distinct(numbers) {
		if _, ok := i.seats[n]; !ok {
			out = append(out, n)
		}
	}
	return out
}

// HoldFor holds every matched seat for userID, or none of them.
func (i *Inventory) HoldFor(userID uuid.UUID, numbers []int, now time.Time, d time.Duration) error {
	selected := i.SeatsMatching(numbers)
	for _, s := range selected {
		if s.IsBusy(now) {
			return ErrSelectedSeatsBusy
		}
	}
	for _, s := range selected {
		if err := s.Hold(userID, now, d); err != nil {
			return err
		}
	}
	return nil
}

// ConfirmFor confirms every matched seat for userID, or none of them.
func (i *Inventory) ConfirmFor(userID uuid.UUID, numbers []int, now time.Time) error {
	selected := i.SeatsMatching(numbers)
	for _, s := range selected {
		if !s.IsHeldBy(userID, now) {
			return seat.ErrReservationRequired
		}
	}
	for _, s := range selected {
		if err := s.Confirm(userID, now); err != nil {
			return err
		}
	}
	return nil
}

// Changed returns the seats mutated since load, ordered by number.
func (i *Inventory) Changed() []*seat.Seat {
	var out []*seat.Seat
	for _, n := range i.numbers {
		if s := i.seats[n]; s.Changed() {
			out = append(out, s)
		}
	}
	return out
}

func (i *Inventory) AvailableCount(now time.Time) int {
	count := 0
	for _, s := range i.seats {
		if s.IsAvailable(now) {
			count++
		}
	}
	return count
}

// PriceFor is round_half_up(count(distinct numbers) * unitPrice, 2).
func PriceFor(numbers []int, unitPrice money.UnitPrice) money.Amount {
	return unitPrice.Times(len(distinct(numbers)))
}

func distinct(numbers []int) []int {
	out := slices.Clone(numbers)
	slices.Sort(out)
	return slices.Compact(out)
}
