package repository

import (
	"context"

	"cinema-ticketing/internal/domain/money"
	"cinema-ticketing/internal/domain/seat"
	"cinema-ticketing/internal/domain/show"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=show.go -destination=../../../tests/mock/repository/show_mock.go -package=repositorymock

type ShowQueries interface {
	GetShow(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.ShowRow, error)
	ListShowSeats(ctx context.Context, db pgquery.DBTX, showID uuid.UUID) ([]pgquery.ShowSeat, error)
	InsertShow(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertShowParams) error
	CopyShowSeats(ctx context.Context, db pgquery.DBTX, arg []pgquery.CopyShowSeatsParams) (int64, error)
	UpdateShowSeat(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateShowSeatParams) (int64, error)
}

type ShowRepository struct {
	queries ShowQueries
	db      pgquery.DBTX
}

func NewShowRepository(queries ShowQueries, db pgquery.DBTX) *ShowRepository {
	return &ShowRepository{
		queries: queries,
		db:      db,
	}
}

func (r *ShowRepository) FindByID(ctx context.Context, id uuid.UUID) (*show.Show, error) {
	row, err := r.queries.GetShow(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("show not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find show", err)
	}
	seatRows, err := r.queries.ListShowSeats(ctx, r.db, id)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list show seats", err)
	}

	seats := make([]*seat.Seat, 0, len(seatRows))
	for _, sr := range seatRows {
		st, err := toSeat(sr)
		if err != nil {
			return nil, infra.WrapRepoErr("corrupt show seat row", err)
		}
		seats = append(seats, st)
	}
	inv, err := show.ReconstructInventory(id, seats)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt show inventory", err)
	}
	price, err := money.NewUnitPrice(row.UnitPriceE4)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt show price", err)
	}

	return show.Reconstruct(row.ID, show.Params{
		MovieID:      row.MovieID,
		MovieName:    row.MovieName,
		TheaterID:    row.TheaterID,
		StartTime:    pgconv.TimeFromPgtype(row.StartTime),
		UnitPrice:    price,
		PointsToEarn: int(row.PointsToEarn),
	}, inv), nil
}

func (r *ShowRepository) Create(ctx context.Context, s *show.Show) error {
	err := r.queries.InsertShow(ctx, r.db, pgquery.InsertShowParams{
		ID:           s.ID(),
		MovieID:      s.MovieID(),
		TheaterID:    s.TheaterID(),
		StartTime:    pgconv.TimeToPgtype(s.StartTime()),
		UnitPriceE4:  s.UnitPrice().TenThousandths(),
		PointsToEarn: int32(s.PointsToEarn()), // #nosec G115 -- bounded by domain validation
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create show", err)
	}

	seats := s.Inventory().Seats()
	params := make([]pgquery.CopyShowSeatsParams, 0, len(seats))
	for _, st := range seats {
		params = append(params, pgquery.CopyShowSeatsParams{ShowID: s.ID(), Seat: fromSeat(st)})
	}
	if _, err = r.queries.CopyShowSeats(ctx, r.db, params); err != nil {
		return infra.WrapRepoErr("failed to create show seats", err)
	}
	return nil
}

// SaveSeats flushes only the seats changed since load. A row whose version
// moved reports a write conflict.
func (r *ShowRepository) SaveSeats(ctx context.Context, s *show.Show) error {
	for _, st := range s.Inventory().Changed() {
		n, err := r.queries.UpdateShowSeat(ctx, r.db, pgquery.UpdateShowSeatParams{
			ShowID:          s.ID(),
			Seat:            fromSeat(st),
			ExpectedVersion: st.LoadedVersion(),
		})
		if err != nil {
			return infra.WrapRepoErr("failed to update show seat", err)
		}
		if n == 0 {
			return infra.Conflict("show seat changed concurrently")
		}
	}
	return nil
}

func toSeat(row pgquery.ShowSeat) (*seat.Seat, error) {
	state, err := seat.NewState(row.State)
	if err != nil {
		return nil, err
	}
	return seat.Reconstruct(
		int(row.SeatNumber),
		state,
		pgconv.UUIDFromPgtype(row.HolderID),
		pgconv.TimeFromPgtype(row.HoldExpiresAt),
		row.Version,
	)
}

func fromSeat(st *seat.Seat) pgquery.ShowSeat {
	return pgquery.ShowSeat{
		SeatNumber:    int32(st.Number()), // #nosec G115 -- seat numbers are small positive ints
		State:         st.State().String(),
		HolderID:      pgconv.OptionalUUIDToPgtype(st.HolderID()),
		HoldExpiresAt: pgconv.OptionalTimeToPgtype(st.HoldExpiry()),
		Version:       st.Version(),
	}
}
