package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

type InsertSaleParams struct {
	ID         uuid.UUID
	UserID     uuid.UUID
	ShowID     uuid.UUID
	TotalCents int64
	PointsWon  int32
	PaymentRef string
	SoldAt     pgtype.Timestamptz
}

const insertSale = `INSERT INTO sales (id, user_id, show_id, total_cents, points_won, payment_ref, sold_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`

func (q *Queries) InsertSale(ctx context.Context, db DBTX, arg InsertSaleParams) error {
	_, err := db.Exec(ctx, insertSale, arg.ID, arg.UserID, arg.ShowID, arg.TotalCents, arg.PointsWon, arg.PaymentRef, arg.SoldAt)
	return err
}

func (q *Queries) CopySaleSeats(ctx context.Context, db DBTX, saleID uuid.UUID, seats []int32) (int64, error) {
	return db.CopyFrom(ctx,
		pgx.Identifier{"sale_seats"},
		[]string{"sale_id", "seat_number"},
		pgx.CopyFromSlice(len(seats), func(i int) ([]any, error) {
			return []any{saleID, seats[i]}, nil
		}),
	)
}
