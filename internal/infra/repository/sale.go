package repository

import (
	"context"

	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

type SaleQueries interface {
	InsertSale(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertSaleParams) error
	CopySaleSeats(ctx context.Context, db pgquery.DBTX, saleID uuid.UUID, seats []int32) (int64, error)
}

type SaleRepository struct {
	queries SaleQueries
	db      pgquery.DBTX
}

func NewSaleRepository(queries SaleQueries, db pgquery.DBTX) *SaleRepository {
	return &SaleRepository{queries: queries, db: db}
}

func (r *SaleRepository) Create(ctx context.Context, s *sale.Sale) error {
	err := r.queries.InsertSale(ctx, r.db, pgquery.InsertSaleParams{
		ID:         s.ID(),
		UserID:     s.UserID(),
		ShowID:     s.ShowID(),
		TotalCents: s.Total().Cents(),
		PointsWon:  int32(s.PointsWon()), // #nosec G115 -- bounded by show points
		PaymentRef: s.PaymentRef(),
		SoldAt:     pgconv.TimeToPgtype(s.SoldAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create sale", err)
	}
	if _, err = r.queries.CopySaleSeats(ctx, r.db, s.ID(), toInt32s(s.Seats())); err != nil {
		return infra.WrapRepoErr("failed to create sale seats", err)
	}
	return nil
}
