package bootstrap

import (
	"context"
	"log/slog"
	"time"

	"cinema-ticketing/internal/infra/cache"
	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/usecase/commands"
	"cinema-ticketing/internal/usecase/queries"

	"go.uber.org/fx"
)

const redisConnectTimeout = 5 * time.Second

var CacheModule = fx.Module("cache",
	fx.Provide(
		NewSeatMapCaching,
	),
)

// SeatMapCaching leaves both ports nil when REDIS_URL is empty.
type SeatMapCaching struct {
	fx.Out

	Cache       queries.SeatMapCache
	Invalidator commands.SeatMapInvalidator
}

func NewSeatMapCaching(lc fx.Lifecycle, cfg config.Config, observer cache.Observer, logger *slog.Logger) (SeatMapCaching, error) {
	if cfg.Redis.URL == "" {
		logger.Info("seat map cache disabled")
		return SeatMapCaching{}, nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), redisConnectTimeout)
	defer cancel()

	client, err := cache.NewClient(ctx, cfg.Redis)
	if err != nil {
		return SeatMapCaching{}, err
	}

	lc.Append(fx.Hook{
		OnStop: func(_ context.Context) error {
			return client.Close()
		},
	})

	seatMaps := cache.NewSeatMapCache(client, cfg.Redis.SeatMapTTL, observer)
	return SeatMapCaching{Cache: seatMaps, Invalidator: seatMaps}, nil
}
