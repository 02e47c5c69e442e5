package readstore

import (
	"context"
	"time"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type ShowReadQueries interface {
	GetShow(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ShowRow, error)
	ListShowSeats(ctx context.Context, db pgquery.DBTX, showID uuid.UUID) ([]pgquery.ShowSeat, error)
	ListShowsBetween(ctx context.Context, db pgquery.DBTX, arg pgquery.ListShowsBetweenParams) ([]pgquery.ShowSummaryRow, error)
}

type ShowReadStore struct {
	queries ShowReadQueries
	db      pgquery.DBTX
}

func NewShowReadStore(queries ShowReadQueries, db pgquery.DBTX) *ShowReadStore {
	return &ShowReadStore{
		queries: queries,
		db:      db,
	}
}

// FindSnapshot returns the stored seat states; lapsed holds are resolved by the caller.
func (r *ShowReadStore) FindSnapshot(ctx context.Context, showID uuid.UUID) (*queries.ShowSnapshot, error) {
	row, err := r.queries.GetShow(ctx, r.db, showID)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("show not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find show", err)
	}
	seatRows, err := r.queries.ListShowSeats(ctx, r.db, showID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list show seats", err)
	}

	snap := &queries.ShowSnapshot{
		ShowID:       row.ID,
		MovieID:      row.MovieID,
		MovieName:    row.MovieName,
		TheaterID:    row.TheaterID,
		TheaterName:  row.TheaterName,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		UnitPrice:    formatPrice(row.UnitPriceE4),
		PointsToEarn: int(row.PointsToEarn),
		Seats:        make([]queries.SeatRecord, 0, len(seatRows)),
	}
	for _, sr := range seatRows {
		rec := queries.SeatRecord{
			Number:   int(sr.SeatNumber),
			State:    sr.State,
			HolderID: pgconv.UUIDFromPgtype(sr.HolderID),
		}
		if sr.State == seat.StateHeld.String() {
			rec.HoldExpiresAt = pgconv.TimePtrFromPgtype(sr.HoldExpiresAt)
		}
		snap.Seats = append(snap.Seats, rec)
	}
	return snap, nil
}

func (r *ShowReadStore) ListBetween(ctx context.Context, from, until, now time.Time) ([]*queries.ShowSummaryView, error) {
	rows, err := r.queries.ListShowsBetween(ctx, r.db, pgquery.ListShowsBetweenParams{
		From:  pgconv.TimeToPgtype(from),
		Until: pgconv.TimeToPgtype(until),
		Now:   pgconv.TimeToPgtype(now),
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list shows", err)
	}

	views := make([]*queries.ShowSummaryView, len(rows))
	for i, row := range rows {
		views[i] = &queries.ShowSummaryView{
			ShowID:         row.ID,
			MovieID:        row.MovieID,
			MovieName:      row.MovieName,
			TheaterName:    row.TheaterName,
			StartTime:      pgconv.TimeFromPgtype(row.StartTime),
			UnitPrice:      formatPrice(row.UnitPriceE4),
			AvailableSeats: int(row.AvailableSeats),
		}
	}
	return views, nil
}

// formatPrice renders a stored price. Corrupt rows render as "invalid".
func formatPrice(tenThousandths int64) string {
	p, err := money.NewUnitPrice(tenThousandths)
	if err != nil {
		return "invalid"
	}
	return p.String()
}
