package repository

import (
	"context"

	"cinema-ticketing/internal/domain/user"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=user.go -destination=../../../tests/mock/repository/user_mock.go -package=repositorymock

type UserQueries interface {
	GetUserByID(ctx context.Context, db pgquery.DBTX, id uuid.UUID) (pgquery.User, error)
	GetUserByUsername(ctx context.Context, db pgquery.DBTX, username string) (pgquery.User, error)
	UserExistsByUsername(ctx context.Context, db pgquery.DBTX, username string) (bool, error)
	InsertUser(ctx context.Context, db pgquery.DBTX, u pgquery.User) error
	UpdateUserPoints(ctx context.Context, db pgquery.DBTX, arg pgquery.UpdateUserPointsParams) (int64, error)
	InsertLoginAudit(ctx context.Context, db pgquery.DBTX, arg pgquery.InsertLoginAuditParams) error
}

type UserRepository struct {
	queries UserQueries
	db      pgquery.DBTX
}

func NewUserRepository(queries UserQueries, db pgquery.DBTX) *UserRepository {
	return &UserRepository{
		queries: queries,
		db:      db,
	}
}

func (r *UserRepository) FindByID(ctx context.Context, id uuid.UUID) (*user.User, error) {
	row, err := r.queries.GetUserByID(ctx, r.db, id)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by ID", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*user.User, error) {
	row, err := r.queries.GetUserByUsername(ctx, r.db, username)
	if err != nil {
		if pgconv.IsNoRows(err) {
			return nil, infra.WrapRepoErr("user not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find user by username", err)
	}
	return toDomainUser(row)
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	exists, err := r.queries.UserExistsByUsername(ctx, r.db, username)
	if err != nil {
		return false, infra.WrapRepoErr("failed to check username", err)
	}
	return exists, nil
}

// Create relies on the username unique key; a duplicate surfaces as a write
// conflict and the retried transaction then sees the existing user.
func (r *UserRepository) Create(ctx context.Context, u *user.User) error {
	err := r.queries.InsertUser(ctx, r.db, pgquery.User{
		ID:           u.ID(),
		Name:         u.Name().Value(),
		Surname:      u.Surname().Value(),
		Email:        u.Email().Value(),
		Username:     u.Username().Value(),
		PasswordHash: u.PasswordHash(),
		Role:         u.Role().String(),
		Points:       int32(u.Points()), // #nosec G115 -- points stay well below int32
		Version:      u.Version(),
		CreatedAt:    pgconv.TimeToPgtype(u.CreatedAt()),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create user", err)
	}
	return nil
}

func (r *UserRepository) UpdatePoints(ctx context.Context, u *user.User) error {
	if !u.Changed() {
		return nil
	}
	n, err := r.queries.UpdateUserPoints(ctx, r.db, pgquery.UpdateUserPointsParams{
		ID:              u.ID(),
		Points:          int32(u.Points()), // #nosec G115 -- points stay well below int32
		Version:         u.Version(),
		ExpectedVersion: u.LoadedVersion(),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update user points", err)
	}
	if n == 0 {
		return infra.Conflict("user points changed concurrently")
	}
	return nil
}

type LoginAuditRepository struct {
	queries UserQueries
	db      pgquery.DBTX
}

func NewLoginAuditRepository(queries UserQueries, db pgquery.DBTX) *LoginAuditRepository {
	return &LoginAuditRepository{queries: queries, db: db}
}

func (r *LoginAuditRepository) Create(ctx context.Context, a user.LoginAudit) error {
	err := r.queries.InsertLoginAudit(ctx, r.db, pgquery.InsertLoginAuditParams{
		ID:          a.ID,
		UserID:      pgconv.OptionalUUIDToPgtype(a.UserID),
		Username:    a.Username,
		Succeeded:   a.Succeeded,
		AttemptedAt: pgconv.TimeToPgtype(a.At),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to record login audit", err)
	}
	return nil
}

func toDomainUser(row pgquery.User) (*user.User, error) {
	profile, err := user.NewProfile(row.Name, row.Surname, row.Email, row.Username)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user row", err)
	}
	role, err := user.NewRole(row.Role)
	if err != nil {
		return nil, infra.WrapRepoErr("corrupt user role", err)
	}
	return user.Reconstruct(row.ID, profile, row.PasswordHash, role, int(row.Points), pgconv.TimeFromPgtype(row.CreatedAt), row.Version), nil
}
