package show

import (
	"time"

	"cinema-ticketing/internal/domain/money"

	"github.com/google/uuid"
)

const DefaultPointsToEarn = 10

type Show struct {
	id           uuid.UUID
	movieID      uuid.UUID
	movieName    string
	theaterID    uuid.UUID
	startTime    time.Time
	unitPrice    money.UnitPrice
	pointsToEarn int
	inventory    *Inventory
}

type Params struct {
	MovieID      uuid.UUID
	MovieName    string
	TheaterID    uuid.UUID
	StartTime    time.Time
	UnitPrice    money.UnitPrice
	PointsToEarn int
	SeatNumbers  []int
}

// NewShow schedules a show whose inventory mirrors the theater layout.
func NewShow(p Params) (*Show, error) {
	if p.MovieID == uuid.Nil {
		return nil, ErrMissingMovie
	}
	if p.TheaterID == uuid.Nil {
		return nil, ErrMissingTheater
	}
	if p.StartTime.IsZero() {
		return nil, ErrInvalidStartTime
	}
	if p.UnitPrice <= 0 {
		return nil, money.ErrInvalidPrice
	}
	if p.PointsToEarn < 0 {
		return nil, ErrInvalidPoints
	}
	id := uuid.New()
	inv, err := NewInventory(id, p.SeatNumbers)
	if err != nil {
		return nil, err
	}
	return &Show{
		id:           id,
		movieID:      p.MovieID,
		movieName:    p.MovieName,
		theaterID:    p.TheaterID,
		startTime:    p.StartTime,
		unitPrice:    p.UnitPrice,
		pointsToEarn: p.PointsToEarn,
		inventory:    inv,
	}, nil
}

func Reconstruct(id uuid.UUID, p Params, inv *Inventory) *Show {
	return &Show{
		id:           id,
		movieID:      p.MovieID,
		movieName:    p.MovieName,
		theaterID:    p.TheaterID,
		startTime:    p.StartTime,
		unitPrice:    p.UnitPrice,
		pointsToEarn: p.PointsToEarn,
		inventory:    inv,
	}
}

func (s *Show) ID() uuid.UUID              { return s.id }
func (s *Show) MovieID() uuid.UUID         { return s.movieID }
func (s *Show) MovieName() string          { return s.movieName }
func (s *Show) TheaterID() uuid.UUID       { return s.theaterID }
func (s *Show) StartTime() time.Time       { return s.startTime }
func (s *Show) UnitPrice() money.UnitPrice { return s.unitPrice }
func (s *Show) PointsToEarn() int          { return s.pointsToEarn }
func (s *Show) Inventory() *Inventory      { return s.inventory }

func (s *Show) PriceFor(numbers []int) money.Amount {
	return PriceFor(numbers, s.unitPrice)
}
