package bootstrap

import (
	"cinema-ticketing/internal/infra/cache"
	"cinema-ticketing/internal/pkg/metrics"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/shared"
	"cinema-ticketing/internal/worker"

	"go.uber.org/fx"
)

var MetricsModule = fx.Module("metrics",
	fx.Provide(
		metrics.New,
	),
	MetricsObservers,
)

// MetricsObservers exposes *metrics.Metrics through the observer ports.
var MetricsObservers = fx.Provide(
	fx.Annotate(
		func(m *metrics.Metrics) *metrics.Metrics { return m },
		fx.As(new(commands.OperationObserver)),
		fx.As(new(shared.RetryObserver)),
		fx.As(new(cache.Observer)),
		fx.As(new(worker.Observer)),
	),
)
