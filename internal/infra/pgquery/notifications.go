package pgquery

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

const insertNotificationJob = `INSERT INTO notification_jobs (id, kind, topic, payload, run_at, attempts, status, last_error, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

func (q *Queries) InsertNotificationJob(ctx context.Context, db DBTX, j NotificationJob) error {
	_, err := db.Exec(ctx, insertNotificationJob,
		j.ID, j.Kind, j.Topic, j.Payload, j.RunAt, j.Attempts, j.Status, j.LastError, j.CreatedAt)
	return err
}

type ClaimDueNotificationJobsParams struct {
	Now        pgtype.Timestamptz
	LeaseUntil pgtype.Timestamptz
	Limit      int32
}

// Claimed jobs are pushed to LeaseUntil so that a concurrent dispatcher skips
// them. The returned rows carry their pre-lease run_at.
const claimDueNotificationJobs = `WITH due AS (
    SELECT id, run_at FROM notification_jobs
    WHERE status = 'queued' AND run_at <= $1
    ORDER BY run_at
    LIMIT $3
    FOR UPDATE SKIP LOCKED
)
UPDATE notification_jobs j
SET run_at = $2
FROM due
WHERE j.id = due.id
RETURNING j.id, j.kind, j.topic, j.payload, due.run_at, j.attempts, j.status, j.last_error, j.created_at`

func (q *Queries) ClaimDueNotificationJobs(ctx context.Context, db DBTX, arg ClaimDueNotificationJobsParams) ([]NotificationJob, error) {
	rows, err := db.Query(ctx, claimDueNotificationJobs, arg.Now, arg.LeaseUntil, arg.Limit)
	if err != nil {
		return nil, err
	}
	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (NotificationJob, error) {
		var j NotificationJob
		err := row.Scan(&j.ID, &j.Kind, &j.Topic, &j.Payload, &j.RunAt, &j.Attempts, &j.Status, &j.LastError, &j.CreatedAt)
		return j, err
	})
}

type CompleteNotificationJobParams struct {
	ID        uuid.UUID
	Status    string
	RunAt     pgtype.Timestamptz
	Attempts  int32
	LastError pgtype.Text
}

const completeNotificationJob = `UPDATE notification_jobs
SET status = $2, run_at = $3, attempts = $4, last_error = $5
WHERE id = $1`

func (q *Queries) CompleteNotificationJob(ctx context.Context, db DBTX, arg CompleteNotificationJobParams) (int64, error) {
	tag, err := db.Exec(ctx, completeNotificationJob, arg.ID, arg.Status, arg.RunAt, arg.Attempts, arg.LastError)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}
