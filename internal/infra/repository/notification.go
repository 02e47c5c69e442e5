package repository

import (
	"context"
	"time"

	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/infra"
	"cinema-ticketing/internal/infra/pgquery"
	"cinema-ticketing/internal/pkg/pgconv"

	"github.com/google/uuid"
)

//go:generate mockgen -source=notification.go -destination=../../../tests/mock/repository/notification_mock.go -package=repositorymock

type NotificationQueries interface {
	InsertNotificationJob(ctx context.Context, db pgquery.DBTX, j pgquery.NotificationJob) error
	ClaimDueNotificationJobs(ctx context.Context, db pgquery.DBTX, arg pgquery.ClaimDueNotificationJobsParams) ([]pgquery.NotificationJob, error)
	CompleteNotificationJob(ctx context.Context, db pgquery.DBTX, arg pgquery.CompleteNotificationJobParams) (int64, error)
}

type NotificationRepository struct {
	queries NotificationQueries
	db      pgquery.DBTX
}

func NewNotificationRepository(queries NotificationQueries, db pgquery.DBTX) *NotificationRepository {
	return &NotificationRepository{
		queries: queries,
		db:      db,
	}
}

func (r *NotificationRepository) Enqueue(ctx context.Context, job notification.Job) error {
	err := r.queries.InsertNotificationJob(ctx, r.db, pgquery.NotificationJob{
		ID:        job.ID,
		Kind:      job.Kind,
		Topic:     job.Topic,
		Payload:   job.Payload,
		RunAt:     pgconv.TimeToPgtype(job.RunAt),
		Attempts:  int32(job.Attempts), // #nosec G115 -- bounded by max attempts
		Status:    string(job.Status),
		LastError: pgconv.OptionalStringToPgtype(job.LastError),
		CreatedAt: pgconv.TimeToPgtype(job.CreatedAt),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to create notification job", err)
	}
	return nil
}

func (r *NotificationRepository) ClaimDue(ctx context.Context, now, leaseUntil time.Time, limit int) ([]notification.Job, error) {
	rows, err := r.queries.ClaimDueNotificationJobs(ctx, r.db, pgquery.ClaimDueNotificationJobsParams{
		Now:        pgconv.TimeToPgtype(now),
		LeaseUntil: pgconv.TimeToPgtype(leaseUntil),
		Limit:      int32(limit), // #nosec G115 -- batch size from config
	})
	if err != nil {
		return nil, infra.WrapRepoErr("failed to claim notification jobs", err)
	}
	jobs := make([]notification.Job, len(rows))
	for i, row := range rows {
		jobs[i] = notification.Job{
			ID:        row.ID,
			Kind:      row.Kind,
			Topic:     row.Topic,
			Payload:   row.Payload,
			RunAt:     pgconv.TimeFromPgtype(row.RunAt),
			Attempts:  int(row.Attempts),
			Status:    notification.Status(row.Status),
			LastError: pgconv.StringFromPgtype(row.LastError),
			CreatedAt: pgconv.TimeFromPgtype(row.CreatedAt),
		}
	}
	return jobs, nil
}

func (r *NotificationRepository) Complete(ctx context.Context, id uuid.UUID, attempts int, outcome notification.Outcome) error {
	n, err := r.queries.CompleteNotificationJob(ctx, r.db, pgquery.CompleteNotificationJobParams{
		ID:        id,
		Status:    string(outcome.Status),
		RunAt:     pgconv.TimeToPgtype(outcome.RunAt),
		Attempts:  int32(attempts), // #nosec G115 -- bounded by max attempts
		LastError: pgconv.OptionalStringToPgtype(outcome.LastError),
	})
	if err != nil {
		return infra.WrapRepoErr("failed to update notification job status", err)
	}
	if n == 0 {
		return infra.WrapRepoErr("notification job not found", nil, infra.KindNotFound)
	}
	return nil
}
