package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, name, surname, email, username, password_hash, role, points, version, created_at`

func scanUser(row interface{ Scan(...any) error }) (User, error) {
	var u User
	err := row.Scan(&u.ID, &u.Name, &u.Surname, &u.Email, &u.Username, &u.PasswordHash, &u.Role, &u.Points, &u.Version, &u.CreatedAt)
	return u, err
}

const getUserByID = `SELECT ` + userColumns + ` FROM users WHERE id = $1`

func (q *Queries) GetUserByID(ctx context.Context, db DBTX, id uuid.UUID) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByID, id))
}

const getUserByUsername = `SELECT ` + userColumns + ` FROM users WHERE username = $1`

func (q *Queries) GetUserByUsername(ctx context.Context, db DBTX, username string) (User, error) {
	return scanUser(db.QueryRow(ctx, getUserByUsername, username))
}

const userExistsByUsername = `SELECT EXISTS (SELECT 1 FROM users WHERE username = $1)`

func (q *Queries) UserExistsByUsername(ctx context.Context, db DBTX, username string) (bool, error) {
	var exists bool
	err := db.QueryRow(ctx, userExistsByUsername, username).Scan(&exists)
	return exists, err
}

const insertUser = `INSERT INTO users (` + userColumns + `)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

func (q *Queries) InsertUser(ctx context.Context, db DBTX, u User) error {
	_, err := db.Exec(ctx, insertUser,
		u.ID, u.Name, u.Surname, u.Email, u.Username, u.PasswordHash, u.Role, u.Points, u.Version, u.CreatedAt)
	return err
}

type UpdateUserPointsParams struct {
	ID              uuid.UUID
	Points          int32
	Version         int64
	ExpectedVersion int64
}

const updateUserPoints = `UPDATE users SET points = $2, version = $3 WHERE id = $1 AND version = $4`

// UpdateUserPoints returns the number of rows updated; zero means the version moved.
func (q *Queries) UpdateUserPoints(ctx context.Context, db DBTX, arg UpdateUserPointsParams) (int64, error) {
	tag, err := db.Exec(ctx, updateUserPoints, arg.ID, arg.Points, arg.Version, arg.ExpectedVersion)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

type InsertLoginAuditParams struct {
	ID          uuid.UUID
	UserID      pgtype.UUID
	Username    string
	Succeeded   bool
	AttemptedAt pgtype.Timestamptz
}

const insertLoginAudit = `INSERT INTO login_audits (id, user_id, username, succeeded, attempted_at)
VALUES ($1, $2, $3, $4, $5)`

func (q *Queries) InsertLoginAudit(ctx context.Context, db DBTX, arg InsertLoginAuditParams) error {
	_, err := db.Exec(ctx, insertLoginAudit, arg.ID, arg.UserID, arg.Username, arg.Succeeded, arg.AttemptedAt)
	return err
}
