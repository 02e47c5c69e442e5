package queries

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/google/uuid"
)

//go:generate mockgen -source=show.go -destination=../../../tests/mock/queries/show_mock.go -package=queriesmock

const (
	DefaultUpcomingDays = 7
	MaxUpcomingDays     = 31
)

var ErrShowNotFound = errs.New("show not found")

type ShowReadStore interface {
	FindSnapshot(ctx context.Context, showID uuid.UUID) (*ShowSnapshot, error)
	// ListBetween returns shows starting in [from, until), counting seats available at now.
	ListBetween(ctx context.Context, from, until, now time.Time) ([]*ShowSummaryView, error)
}

// SeatMapCache stores raw snapshots; expiry is applied after reading, so a
// cached entry never reports a lapsed hold as held.
type SeatMapCache interface {
	Get(ctx context.Context, showID uuid.UUID) (*ShowSnapshot, error)
	Set(ctx context.Context, snap *ShowSnapshot) error
}

// ErrCacheMiss is returned by SeatMapCache.Get when nothing is cached.
var ErrCacheMiss = errs.New("seat map not cached")

type ShowQueries interface {
	SeatMap(ctx context.Context, showID uuid.UUID) (*ShowSeatMapView, error)
	Upcoming(ctx context.Context, days int) ([]*ShowSummaryView, error)
}

type showQueriesImpl struct {
	store ShowReadStore
	cache SeatMapCache
	clock clock.Clock
}

// NewShowQueries accepts a nil cache.
func NewShowQueries(store ShowReadStore, cache SeatMapCache, clk clock.Clock) ShowQueries {
	return &showQueriesImpl{store: store, cache: cache, clock: clk}
}

func (q *showQueriesImpl) SeatMap(ctx context.Context, showID uuid.UUID) (*ShowSeatMapView, error) {
	snap, err := q.snapshot(ctx, showID)
	if err != nil {
		return nil, err
	}
	return seatMapAt(snap, q.clock.Now()), nil
}

func (q *showQueriesImpl) Upcoming(ctx context.Context, days int) ([]*ShowSummaryView, error) {
	if days <= 0 {
		days = DefaultUpcomingDays
	}
	days = min(days, MaxUpcomingDays)

	now := q.clock.Now()
	return q.store.ListBetween(ctx, now, now.AddDate(0, 0, days), now)
}

func (q *showQueriesImpl) snapshot(ctx context.Context, showID uuid.UUID) (*ShowSnapshot, error) {
	if q.cache != nil {
		snap, err := q.cache.Get(ctx, showID)
		if err == nil {
			return snap, nil
		}
		if !errors.Is(err, ErrCacheMiss) {
			slog.Warn("seat map cache read failed", "show_id", showID, "error", err.Error())
		}
	}

	snap, err := q.store.FindSnapshot(ctx, showID)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			return nil, ErrShowNotFound
		}
		return nil, err
	}

	if q.cache != nil {
		if err := q.cache.Set(ctx, snap); err != nil {
			slog.Warn("seat map cache write failed", "show_id", showID, "error", err.Error())
		}
	}
	return snap, nil
}

func seatMapAt(snap *ShowSnapshot, now time.Time) *ShowSeatMapView {
	view := &ShowSeatMapView{
		ShowID:       snap.ShowID,
		MovieID:      snap.MovieID,
		MovieName:    snap.MovieName,
		TheaterID:    snap.TheaterID,
		TheaterName:  snap.TheaterName,
		StartTime:    snap.StartTime,
		UnitPrice:    snap.UnitPrice,
		PointsToEarn: snap.PointsToEarn,
		Seats:        make([]SeatView, 0, len(snap.Seats)),
	}
	for _, rec := range snap.Seats {
		state := effectiveState(rec, now)
		available := state == seat.StateAvailable
		if available {
			view.AvailableSeats++
		}
		view.Seats = append(view.Seats, SeatView{Number: rec.Number, State: state.String(), Available: available})
	}
	return view
}

func effectiveState(rec SeatRecord, now time.Time) seat.State {
	var expiry time.Time
	if rec.HoldExpiresAt != nil {
		expiry = *rec.HoldExpiresAt
	}
	st, err := seat.Reconstruct(rec.Number, seat.State(rec.State), rec.HolderID, expiry, 0)
	if err != nil {
		slog.Warn("inconsistent seat row", "number", rec.Number, "error", err.Error())
		return seat.State(rec.State)
	}
	return st.EffectiveState(now)
}
