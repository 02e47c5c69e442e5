package bootstrap

import (
	"context"
	"log/slog"

	"cinema-ticketing/internal/infra/mailer"
	"cinema-ticketing/internal/pkg/clock"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/usecase/shared"
	"cinema-ticketing/internal/worker"

	"go.uber.org/fx"
)

var WorkerModule = fx.Module("worker",
	fx.Provide(
		NewMailer,
		NewNotificationDispatcher,
		NewScheduler,
	),
	fx.Invoke(startScheduler),
)

// NewMailer logs messages instead of sending them when SMTP_HOST is empty.
func NewMailer(cfg config.Config, logger *slog.Logger) (worker.Mailer, error) {
	if cfg.SMTP.Host == "" {
		logger.Info("SMTP not configured, notifications are logged only")
		return mailer.NewLogMailer(), nil
	}
	return mailer.NewSMTPMailer(cfg.SMTP)
}

func NewNotificationDispatcher(uow shared.UnitOfWork, m worker.Mailer, clk clock.Clock, cfg config.Config, observer worker.Observer) *worker.NotificationDispatcher {
	return worker.NewNotificationDispatcher(uow, m, clk, cfg.Worker, observer)
}

func NewScheduler(d *worker.NotificationDispatcher, cfg config.Config) (*worker.Scheduler, error) {
	return worker.NewScheduler(d, cfg.Worker)
}

func startScheduler(lc fx.Lifecycle, s *worker.Scheduler, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			s.Start()
			logger.Info("notification dispatcher started")
			return nil
		},
		OnStop: func(_ context.Context) error {
			return s.Stop()
		},
	})
}
