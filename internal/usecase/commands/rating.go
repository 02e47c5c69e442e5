package commands

import (
	"context"
	"time"

	"cinema-ticketing/internal/domain/rating"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
)

//go:generate mockgen -source=rating.go -destination=../../../tests/mock/commands/rating_mock.go -package=commandsmock

const OperationRate = "rate"

type RateRequest struct {
	UserID  uuid.UUID
	MovieID uuid.UUID
	Value   int
	Comment string
}

type RatingRecord struct {
	RateID       uuid.UUID
	MovieID      uuid.UUID
	UserID       uuid.UUID
	Username     string
	Value        int
	Comment      string
	CreatedAt    time.Time
	MovieAverage rating.Average
	TotalVotes   int64
}

type RatingCommands interface {
	Rate(ctx context.Context, req RateRequest) (*RatingRecord, error)
}

type ratingUseCaseImpl struct {
	uow      shared.UnitOfWork
	clock    clock.Clock
	observer OperationObserver
}

func NewRatingUseCase(uow shared.UnitOfWork, clk clock.Clock, observer OperationObserver) RatingCommands {
	if observer == nil {
		observer = noopObserver{}
	}
	return &ratingUseCaseImpl{uow: uow, clock: clk, observer: observer}
}

// Rate records one vote per user and movie. A concurrent duplicate loses on the
// unique key, is retried, and then reports ErrAlreadyRated.
func (uc *ratingUseCaseImpl) Rate(ctx context.Context, req RateRequest) (*RatingRecord, error) {
	value, err := rating.NewValue(req.Value)
	if err != nil {
		return nil, err
	}
	comment, err := rating.NewComment(req.Comment)
	if err != nil {
		return nil, err
	}

	var record *RatingRecord
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		u, derr := tx.Users().FindByID(ctx, req.UserID)
		if derr != nil {
			return notFoundAs(derr, ErrUserNotFound)
		}
		m, derr := tx.Movies().FindByID(ctx, req.MovieID)
		if derr != nil {
			return notFoundAs(derr, ErrMovieNotFound)
		}

		rated, derr := tx.Rates().ExistsByUserAndMovie(ctx, u.ID(), m.ID())
		if derr != nil {
			return derr
		}
		if rated {
			return ErrAlreadyRated
		}

		r := m.Rate(u.ID(), value, comment, uc.clock.Now())
		if derr = tx.Rates().Create(ctx, r); derr != nil {
			return derr
		}
		if derr = tx.Movies().UpdateRatings(ctx, m); derr != nil {
			return derr
		}

		record = &RatingRecord{
			RateID:       r.ID(),
			MovieID:      m.ID(),
			UserID:       u.ID(),
			Username:     u.Username().Value(),
			Value:        r.Value().Int(),
			Comment:      r.Comment().Value(),
			CreatedAt:    r.CreatedAt(),
			MovieAverage: m.RatingAverage(),
			TotalVotes:   m.Ratings().TotalVotes(),
		}
		return nil
	})
	uc.observer.ObserveOperation(OperationRate, resultLabel(err))
	if err != nil {
		return nil, err
	}
	return record, nil
}
