//go:build unit

package memstore_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/infra/memstore"
	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 5, 1, 18, 0, 0, 0, time.UTC)

func seedShow(t *testing.T, uow *memstore.UnitOfWork) uuid.UUID {
	t.Helper()
	price, err := money.NewUnitPrice(100000)
	require.NoError(t, err)
	s, err := show.NewShow(show.Params{
		MovieID:      uuid.New(),
		MovieName:    "Small Fish",
		TheaterID:    uuid.New(),
		StartTime:    now.Add(24 * time.Hour),
		UnitPrice:    price,
		PointsToEarn: show.DefaultPointsToEarn,
		SeatNumbers:  []int{1, 2, 3},
	})
	require.NoError(t, err)
	require.NoError(t, uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Shows().Create(ctx, s)
	}))
	return s.ID()
}

func holdSeats(ctx context.Context, tx shared.Tx, showID uuid.UUID, seats ...int) error {
	s, err := tx.Shows().FindByID(ctx, showID)
	if err != nil {
		return err
	}
	if err = s.Inventory().HoldFor(uuid.New(), seats, now, time.Minute); err != nil {
		return err
	}
	return tx.Shows().SaveSeats(ctx, s)
}

func TestWithinRetriesStaleSeatWrites(t *testing.T) {
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 3})
	showID := seedShow(t, uow)
	ctx := context.Background()

	attempts := 0
	err := uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		attempts++
		s, err := tx.Shows().FindByID(ctx, showID)
		if err != nil {
			return err
		}
		if attempts == 1 {
			// A competing transaction takes seat 2 between our read and our commit.
			require.NoError(t, uow.Within(ctx, func(ctx context.Context, other shared.Tx) error {
				return holdSeats(ctx, other, showID, 2)
			}))
		}
		if err = s.Inventory().HoldFor(uuid.New(), []int{1, 2}, now, time.Minute); err != nil {
			return err
		}
		return tx.Shows().SaveSeats(ctx, s)
	})

	assert.Equal(t, 2, attempts)
	assert.ErrorIs(t, err, show.ErrSelectedSeatsBusy)

	snap, err := store.ShowReads().FindSnapshot(ctx, showID)
	require.NoError(t, err)
	assert.Equal(t, "available", snap.Seats[0].State, "seat 1 must not be written by the losing transaction")
	assert.Equal(t, "held", snap.Seats[1].State)
}

func TestWithinExhaustsOnPersistentConflicts(t *testing.T) {
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 2})
	showID := seedShow(t, uow)

	store.InjectCommitConflicts(2)
	err := uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return holdSeats(ctx, tx, showID, 1)
	})

	assert.ErrorIs(t, err, errs.ErrConcurrencyExhausted)
	assert.False(t, shared.IsConflict(err))

	snap, err := store.ShowReads().FindSnapshot(context.Background(), showID)
	require.NoError(t, err)
	assert.Equal(t, "available", snap.Seats[0].State)
}

func TestWithinDiscardsWritesOnError(t *testing.T) {
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 3})
	boom := errors.New("boom")
	th, err := theater.NewTheater("Room A", []int{1, 2})
	require.NoError(t, err)

	err = uow.Within(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Theaters().Create(ctx, th); err != nil {
			return err
		}
		return boom
	})
	assert.Same(t, boom, err)

	err = uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Theaters().FindByID(ctx, th.ID())
		return err
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestWithinReadOnlyDiscardsWrites(t *testing.T) {
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 3})
	th, err := theater.NewTheater("Room A", []int{1})
	require.NoError(t, err)

	require.NoError(t, uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		return tx.Theaters().Create(ctx, th)
	}))

	err = uow.WithinReadOnly(context.Background(), func(ctx context.Context, tx shared.Tx) error {
		_, err := tx.Theaters().FindByID(ctx, th.ID())
		return err
	})
	assert.ErrorIs(t, err, errs.ErrNotFound)
}

func TestNotificationLease(t *testing.T) {
	store := memstore.NewStore()
	uow := memstore.NewUnitOfWork(store, shared.RetryPolicy{MaxAttempts: 1})
	ctx := context.Background()

	due, err := notification.NewEmailJob(notification.TopicSaleCreated, sale.Email{To: "a@example.com", Subject: "s", Body: "b"}, now)
	require.NoError(t, err)
	later, err := notification.NewEmailJob(notification.TopicSaleCreated, sale.Email{To: "b@example.com", Subject: "s", Body: "b"}, now.Add(time.Hour))
	require.NoError(t, err)
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if err := tx.Notifications().Enqueue(ctx, due); err != nil {
			return err
		}
		return tx.Notifications().Enqueue(ctx, later)
	}))

	claim := func(at time.Time) []notification.Job {
		var jobs []notification.Job
		require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
			var err error
			jobs, err = tx.Notifications().ClaimDue(ctx, at, at.Add(time.Minute), 10)
			return err
		}))
		return jobs
	}

	claimed := claim(now)
	require.Len(t, claimed, 1)
	assert.Equal(t, due.ID, claimed[0].ID)
	assert.Empty(t, claim(now.Add(30*time.Second)), "leased job must not be claimed again")

	outcome := claimed[0].NextAfterFailure(errors.New("smtp down"), now, 3, time.Minute)
	require.NoError(t, uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Complete(ctx, due.ID, claimed[0].Attempts+1, outcome)
	}))

	jobs := store.Jobs()
	require.Len(t, jobs, 2)
	assert.Equal(t, 1, jobs[0].Attempts)
	assert.Equal(t, "smtp down", jobs[0].LastError)
	assert.Equal(t, notification.StatusQueued, jobs[0].Status)
	assert.Len(t, claim(now.Add(time.Minute)), 1)
}
