package seat

import (
	"time"

	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

var (
	ErrSeatBusy            = errs.New("seat is currently busy")
	ErrReservationRequired = errs.New("reservation is required before confirm")
	ErrInvalidSeatNumber   = errs.New("seat number must be positive")
	ErrInvalidState        = errs.New("invalid seat state")
	ErrInvalidHolder       = errs.New("seat holder is required")
	ErrInvalidHoldDuration = errs.New("hold duration must be positive")
	ErrInconsistentSeat    = errs.New("inconsistent seat record")
)

// Seat is one bookable position of a show.
//
// Holds expire lazily: a Held seat whose expiry is not after now is treated as
// Available by every query, and no background process ever rewrites it.
type Seat struct {
	number     int
	state      State
	holderID   uuid.UUID
	holdExpiry time.Time

	version       int64
	loadedVersion int64
}

func New(number int) (*Seat, error) {
	if number <= 0 {
		return nil, ErrInvalidSeatNumber
	}
	return &Seat{number: number, state: StateAvailable}, nil
}

// Reconstruct rebuilds a persisted seat. The version becomes the baseline that
// the store compares against when the seat is written back.
func Reconstruct(number int, state State, holderID uuid.UUID, holdExpiry time.Time, version int64) (*Seat, error) {
	if number <= 0 {
		return nil, ErrInvalidSeatNumber
	}
	if !state.IsValid() {
		return nil, ErrInvalidState
	}
	switch state {
	case StateAvailable:
		if holderID != uuid.Nil || !holdExpiry.IsZero() {
			return nil, ErrInconsistentSeat
		}
	case StateHeld:
		if holderID == uuid.Nil || holdExpiry.IsZero() {
			return nil, ErrInconsistentSeat
		}
	case StateConfirmed:
		if holderID == uuid.Nil {
			return nil, ErrInconsistentSeat
		}
		holdExpiry = time.Time{}
	}
	return &Seat{
		number:        number,
		state:         state,
		holderID:      holderID,
		holdExpiry:    holdExpiry,
		version:       version,
		loadedVersion: version,
	}, nil
}

func (s *Seat) Number() int           { return s.number }
func (s *Seat) State() State          { return s.state }
func (s *Seat) HolderID() uuid.UUID   { return s.holderID }
func (s *Seat) HoldExpiry() time.Time { return s.holdExpiry }
func (s *Seat) Version() int64        { return s.version }
func (s *Seat) LoadedVersion() int64  { return s.loadedVersion }

// Changed reports whether the seat was mutated since it was created or loaded.
func (s *Seat) Changed() bool { return s.version != s.loadedVersion }

func (s *Seat) IsAvailable(now time.Time) bool {
	switch s.state {
	case StateAvailable:
		return true
	case StateHeld:
		return s.holdExpired(now)
	default:
		return false
	}
}

func (s *Seat) IsBusy(now time.Time) bool {
	return !s.IsAvailable(now)
}

func (s *Seat) IsHeldBy(userID uuid.UUID, now time.Time) bool {
	return s.state == StateHeld && s.holderID == userID && !s.holdExpired(now)
}

func (s *Seat) IsConfirmedBy(userID uuid.UUID) bool {
	return s.state == StateConfirmed && s.holderID == userID
}

// EffectiveState folds an expired hold back into Available.
func (s *Seat) EffectiveState(now time.Time) State {
	if s.state == StateHeld && s.holdExpired(now) {
		return StateAvailable
	}
	return s.state
}

// Hold fails with ErrSeatBusy while any live hold exists, including one owned
// by the same user.
func (s *Seat) Hold(userID uuid.UUID, now time.Time, d time.Duration) error {
	if userID == uuid.Nil {
		return ErrInvalidHolder
	}
	if d <= 0 {
		return ErrInvalidHoldDuration
	}
	if s.IsBusy(now) {
		return ErrSeatBusy
	}
	s.state = StateHeld
	s.holderID = userID
	s.holdExpiry = now.Add(d)
	s.version++
	return nil
}

func (s *Seat) Confirm(userID uuid.UUID, now time.Time) error {
	if !s.IsHeldBy(userID, now) {
		return ErrReservationRequired
	}
	s.state = StateConfirmed
	s.holdExpiry = time.Time{}
	s.version++
	return nil
}

// Expiry is exclusive: a hold is already gone at exactly holdExpiry.
func (s *Seat) holdExpired(now time.Time) bool {
	return !now.Before(s.holdExpiry)
}
