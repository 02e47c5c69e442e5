package worker

import (
	"context"
	"errors"
	"log/slog"

	"cinema-ticketing/internal/domain/notification"
	"cinema-ticketing/internal/domain/sale"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/usecase/shared"
)

type Mailer interface {
	Send(ctx context.Context, email sale.Email) error
}

// Observer counts deliveries by status: sent, retry or failed.
type Observer interface {
	ObserveNotification(status string)
}

// NotificationDispatcher drains the notification outbox. Jobs are leased in
// one transaction and completed one by one afterwards.
type NotificationDispatcher struct {
	uow      shared.UnitOfWork
	mailer   Mailer
	clock    clock.Clock
	cfg      config.WorkerConfig
	observer Observer
}

// NewNotificationDispatcher accepts a nil observer.
func NewNotificationDispatcher(uow shared.UnitOfWork, mailer Mailer, clk clock.Clock, cfg config.WorkerConfig, observer Observer) *NotificationDispatcher {
	return &NotificationDispatcher{
		uow:      uow,
		mailer:   mailer,
		clock:    clk,
		cfg:      cfg,
		observer: observer,
	}
}

// RunOnce delivers one batch of due jobs and reports how many were sent.
func (d *NotificationDispatcher) RunOnce(ctx context.Context) (int, error) {
	now := d.clock.Now()

	var jobs []notification.Job
	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var err error
		jobs, err = tx.Notifications().ClaimDue(ctx, now, now.Add(d.cfg.NotifyLease), d.cfg.NotifyBatchSize)
		return err
	})
	if err != nil {
		return 0, err
	}

	sent := 0
	for _, job := range jobs {
		if ctx.Err() != nil {
			// Unfinished jobs become due again when their lease ends.
			return sent, ctx.Err()
		}
		ok, err := d.deliver(ctx, job)
		if err != nil {
			slog.Error("failed to record notification outcome", "job_id", job.ID, "error", err.Error())
			continue
		}
		if ok {
			sent++
		}
	}
	return sent, nil
}

func (d *NotificationDispatcher) deliver(ctx context.Context, job notification.Job) (bool, error) {
	sendErr := d.send(ctx, job)
	now := d.clock.Now()

	var outcome notification.Outcome
	switch {
	case sendErr == nil:
		outcome = notification.Outcome{Status: notification.StatusSent, RunAt: now}
	case errors.Is(sendErr, notification.ErrInvalidPayload):
		outcome = notification.Outcome{Status: notification.StatusFailed, RunAt: now, LastError: sendErr.Error()}
	default:
		outcome = job.NextAfterFailure(sendErr, now, d.cfg.NotifyMaxAttempts, d.cfg.NotifyRetryDelay)
	}

	switch outcome.Status {
	case notification.StatusSent:
		d.observe("sent")
	case notification.StatusFailed:
		slog.Error("notification gave up", "job_id", job.ID, "attempts", job.Attempts+1, "error", outcome.LastError)
		d.observe("failed")
	default:
		slog.Warn("notification will be retried", "job_id", job.ID, "run_at", outcome.RunAt, "error", outcome.LastError)
		d.observe("retry")
	}

	err := d.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		return tx.Notifications().Complete(ctx, job.ID, job.Attempts+1, outcome)
	})
	return sendErr == nil, err
}

func (d *NotificationDispatcher) send(ctx context.Context, job notification.Job) error {
	if job.Kind != notification.KindEmail {
		return notification.ErrInvalidPayload
	}
	email, err := job.Email()
	if err != nil {
		return err
	}
	return d.mailer.Send(ctx, email)
}

func (d *NotificationDispatcher) observe(status string) {
	if d.observer != nil {
		d.observer.ObserveNotification(status)
	}
}
