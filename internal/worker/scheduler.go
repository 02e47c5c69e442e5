package worker

import (
	"context"
	"log/slog"

	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/go-co-op/gocron/v2"
)

// Scheduler runs the dispatcher every NOTIFY_INTERVAL. A run that overlaps the
// previous one is skipped.
type Scheduler struct {
	sched  gocron.Scheduler
	cancel context.CancelFunc
}

func NewScheduler(d *NotificationDispatcher, cfg config.WorkerConfig) (*Scheduler, error) {
	sched, err := gocron.NewScheduler()
	if err != nil {
		return nil, errs.Wrap(err, "failed to create scheduler")
	}

	ctx, cancel := context.WithCancel(context.Background())
	_, err = sched.NewJob(
		gocron.DurationJob(cfg.NotifyInterval),
		gocron.NewTask(func() {
			sent, err := d.RunOnce(ctx)
			if err != nil {
				slog.Error("notification dispatch failed", "error", err.Error())
				return
			}
			if sent > 0 {
				slog.Info("notifications sent", "count", sent)
			}
		}),
		gocron.WithName("notification-dispatch"),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		cancel()
		_ = sched.Shutdown()
		return nil, errs.Wrap(err, "failed to schedule notification dispatch")
	}
	return &Scheduler{sched: sched, cancel: cancel}, nil
}

func (s *Scheduler) Start() {
	s.sched.Start()
}

func (s *Scheduler) Stop() error {
	s.cancel()
	return s.sched.Shutdown()
}
