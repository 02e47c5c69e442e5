package cache

import (
	"context"

	"cinema-ticketing/internal/pkg/config"
	"cinema-ticketing/internal/pkg/errs"

	"github.com/redis/go-redis/v9"
)

// NewClient parses REDIS_URL and checks the connection.
func NewClient(ctx context.Context, cfg config.RedisConfig) (*redis.Client, error) {
	opt, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, errs.Wrap(err, "invalid redis url")
	}
	opt.DialTimeout = cfg.DialTimeout

	client := redis.NewClient(opt)
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errs.Wrap(err, "failed to connect to redis")
	}
	return client, nil
}
