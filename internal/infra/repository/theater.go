package repository

import (
	"context"

	"cinema-ticketing/internal/domain/theater"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type TheaterQueries interface {
	GetTheaterName(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (string, error)
	ListTheaterSeats(ctx context.Context, db pgquery.DBTX, theaterID uuid.UUID) ([]int32, error)
	InsertTheater(ctx context.Context, db pgquery.DBTX, id uuid.UUID, name string) error
	CopyTheaterSeats(ctx context.Context, db pgquery.DBTX, theaterID uuid.UUID, seats []int32) (int64, error)
}

type TheaterRepository struct {
	queries TheaterQueries
	db      pgquery.DBTX
}

func NewTheaterRepository(queries TheaterQueries, db pgquery.DBTX) *TheaterRepository {
	return &TheaterRepository{queries: queries, db: db}
}

func (r *TheaterRepository) FindByID(ctx context.Context, id uuid.UUID) (*theater.Theater, error) {
	name, err := r.queries.GetTheaterName(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("theater not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find theater", err)
	}
	seats, err := r.queries.ListTheaterSeats(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list theater seats", err)
	}
	numbers := make([]int, len(seats))
	for i, n := range seats {
		numbers[i] = int(n)
	}
	return theater.Reconstruct(id, name, numbers), nil
}

func (r *TheaterRepository) Create(ctx context.Context, t *theater.Theater) error {
	if err := r.queries.InsertTheater(ctx, r.db, t.ID(), t.Name()); err != nil {
		return infra.WrapRepoErr("failed to create theater", err)
	}
	if _, err := r.queries.CopyTheaterSeats(ctx, r.db, t.ID(), toInt32s(t.SeatNumbers())); err != nil {
		return infra.WrapRepoErr("failed to create theater seats", err)
	}
	return nil
}

func toInt32s(values []int) []int32 {
	out := make([]int32, len(values))
	for i, v := range values {
		out[i] = int32(v) // #nosec G115 -- seat numbers are small positive ints
	}
	return out
}
