package readstore

import (
	"context"

	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
)

type UserReadQueries interface {
	GetUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
}

type UserReadStore struct {
	queries UserReadQueries
	db      pgquery.DBTX
}

func NewUserReadStore(queries UserReadQueries, db pgquery.DBTX) *UserReadStore {
	return &UserReadStore{
		queries: queries,
		db:      db,
	}
}

func (r *UserReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.UserView, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}

	return &queries.UserView{
		ID:        row.ID,
		Name:      row.Name,
		Surname:   row.Surname,
		Email:     row.Email,
		Username:  row.Username,
		Role:      row.Role,
		Points:    int(row.Points),
		CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
	}, nil
}
