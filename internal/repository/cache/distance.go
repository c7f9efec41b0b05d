package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// DistanceTTL дорожное расстояние между адресами меняется редко.
const DistanceTTL = 24 * time.Hour

type Distance struct {
	client goredis.Cmdable
	ttl    time.Duration
}

func NewDistance(client goredis.Cmdable) *Distance {
	return &Distance{
		client: client,
		ttl:    DistanceTTL,
	}
}

func (c *Distance) Get(ctx context.Context, key string) (float64, bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("distance cache get: %w", err)
	}

	km, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false, fmt.Errorf("distance cache get: corrupted value %q: %w", raw, err)
	}
	return km, true, nil
}

func (c *Distance) Set(ctx context.Context, key string, km float64) error {
	err := c.client.Set(ctx, key, strconv.FormatFloat(km, 'f', -1, 64), c.ttl).Err()
	if err != nil {
		return fmt.Errorf("distance cache set: %w", err)
	}
	return nil
}

// Nop кеш на случай, когда Redis не настроен.
type Nop struct{}

func (Nop) Get(context.Context, string) (float64, bool, error) {
	return 0, false, nil
}

func (Nop) Set(context.Context, string, float64) error {
	return nil
}
