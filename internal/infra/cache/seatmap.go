package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"cinema-ticketing/internal/pkg/errs"
	"cinema-ticketing/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// SeatMapCache keeps raw show snapshots for a short TTL. Bookings drop the
// entry after commit; the TTL bounds staleness when that fails.
type SeatMapCache struct {
	client   *redis.Client
	ttl      time.Duration
	observer Observer
}

// Observer counts lookups by result: hit, miss or error.
type Observer interface {
	ObserveCache(result string)
}

// NewSeatMapCache accepts a nil observer.
func NewSeatMapCache(client *redis.Client, ttl time.Duration, observer Observer) *SeatMapCache {
	return &SeatMapCache{client: client, ttl: ttl, observer: observer}
}

func (c *SeatMapCache) observe(result string) {
	if c.observer != nil {
		c.observer.ObserveCache(result)
	}
}

func (c *SeatMapCache) Get(ctx context.Context, showID uuid.UUID) (*queries.ShowSnapshot, error) {
	data, err := c.client.Get(ctx, seatMapKey(showID)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			c.observe("miss")
			return nil, queries.ErrCacheMiss
		}
		c.observe("error")
		return nil, errs.Wrap(err, "failed to read seat map cache")
	}
	var snap queries.ShowSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		c.observe("error")
		return nil, errs.Wrap(err, "corrupt seat map cache entry")
	}
	c.observe("hit")
	return &snap, nil
}

func (c *SeatMapCache) Set(ctx context.Context, snap *queries.ShowSnapshot) error {
	data, err := json.Marshal(snap)
	if err != nil {
		return errs.Wrap(err, "failed to encode seat map")
	}
	if err := c.client.Set(ctx, seatMapKey(snap.ShowID), data, c.ttl).Err(); err != nil {
		return errs.Wrap(err, "failed to write seat map cache")
	}
	return nil
}

func (c *SeatMapCache) InvalidateShow(ctx context.Context, showID uuid.UUID) error {
	if err := c.client.Del(ctx, seatMapKey(showID)).Err(); err != nil {
		return errs.Wrap(err, "failed to invalidate seat map cache")
	}
	return nil
}

func seatMapKey(showID uuid.UUID) string {
	return "seatmap:" + showID.String()
}
