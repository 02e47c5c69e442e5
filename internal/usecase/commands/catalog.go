package commands

import (
	"context"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/movie"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/patch"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=catalog.go -destination=../../../tests/mock/commands/catalog_mock.go -package=commandsmock

type AddMovieRequest struct {
	Name            string
	Plot            string
	DurationMinutes int
	ReleaseDate     time.Time
	Genres          []string
	Directors       []string
}

type AddTheaterRequest struct {
	Name string
	// SeatNumbers wins over SeatCount when both are set.
	SeatNumbers []int
	SeatCount   int
}

type ScheduleShowRequest struct {
	MovieID   uuid.UUID
	TheaterID uuid.UUID
	StartTime time.Time
	UnitPrice string
	// PointsToEarn defaults to show.DefaultPointsToEarn when nil.
	PointsToEarn *int
}

type AddActorRequest struct {
	MovieID       uuid.UUID
	Name          string
	Surname       string
	CharacterName string
}

type CatalogCommands interface {
	AddMovie(ctx context.Context, req AddMovieRequest) (uuid.UUID, error)
	AddActor(ctx context.Context, req AddActorRequest) error
	AddTheater(ctx context.Context, req AddTheaterRequest) (uuid.UUID, error)
	ScheduleShow(ctx context.Context, req ScheduleShowRequest) (uuid.UUID, error)
}

type catalogUseCaseImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCatalogUseCase(uow shared.UnitOfWork, clk clock.Clock) CatalogCommands {
	return &catalogUseCaseImpl{uow: uow, clock: clk}
}

func (uc *catalogUseCaseImpl) AddMovie(ctx context.Context, req AddMovieRequest) (uuid.UUID, error) {
	m, err := movie.NewMovie(movie.Params{
		Name:            req.Name,
		Plot:            req.Plot,
		DurationMinutes: req.DurationMinutes,
		ReleaseDate:     req.ReleaseDate,
		Genres:          req.Genres,
		Directors:       req.Directors,
	})
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Movies().Create(ctx, m)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return m.ID(), nil
}

// AddActor appends a cast entry to the movie; concurrent additions to the same
// movie are serialized through the movie version.
func (uc *catalogUseCaseImpl) AddActor(ctx context.Context, req AddActorRequest) error {
	actor, err := movie.NewActor(req.Name, req.Surname, req.CharacterName)
	if err != nil {
		return err
	}

	return uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Movies().FindByID(ctx, req.MovieID)
		if derr != nil {
			return notFoundAs(derr, ErrMovieNotFound)
		}
		m.AddActor(actor)
		return tx.Movies().SaveCast(ctx, m)
	})
}

func (uc *catalogUseCaseImpl) AddTheater(ctx context.Context, req AddTheaterRequest) (uuid.UUID, error) {
	seats := req.SeatNumbers
	if len(seats) == 0 {
		seats = theater.SeatRange(req.SeatCount)
	}
	t, err := theater.NewTheater(req.Name, seats)
	if err != nil {
		return uuid.Nil, err
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Theaters().Create(ctx, t)
	})
	if err != nil {
		return uuid.Nil, err
	}
	return t.ID(), nil
}

// ScheduleShow creates a show whose inventory mirrors the theater layout.
func (uc *catalogUseCaseImpl) ScheduleShow(ctx context.Context, req ScheduleShowRequest) (uuid.UUID, error) {
	price, err := money.ParseUnitPrice(req.UnitPrice)
	if err != nil {
		return uuid.Nil, err
	}
	if !req.StartTime.After(uc.clock.Now()) {
		return uuid.Nil, ErrShowStartInPast
	}
	points := patch.Coalesce(req.PointsToEarn, show.DefaultPointsToEarn)

	var showID uuid.UUID
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		m, derr := tx.Movies().FindByID(ctx, req.MovieID)
		if derr != nil {
			return notFoundAs(derr, ErrMovieNotFound)
		}
		t, derr := tx.Theaters().FindByID(ctx, req.TheaterID)
		if derr != nil {
			return notFoundAs(derr, ErrTheaterNotFound)
		}

		s, derr := show.NewShow(show.Params{
			MovieID:      m.ID(),
			MovieName:    m.Name(),
			TheaterID:    t.ID(),
			StartTime:    req.StartTime,
			UnitPrice:    price,
			PointsToEarn: points,
			SeatNumbers:  t.SeatNumbers(),
		})
		if derr != nil {
			return derr
		}
		if derr = tx.Shows().Create(ctx, s); derr != nil {
			return derr
		}
		showID = s.ID()
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return showID, nil
}
