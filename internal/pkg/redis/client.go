package redis

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/pkg/config"
	"courier-network/pkg/logger"
	retrierconfig "courier-network/pkg/retrier"
	"courier-network/pkg/retrier/backoff_adapter"

	goredis "github.com/redis/go-redis/v9"
)

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Redis) (*goredis.Client, error) {
	opts, err := goredis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}

	client := goredis.NewClient(opts)
	redisLog := log.With(
		logger.NewField("addr", opts.Addr),
		logger.NewField("db", opts.DB),
	)

	retryConfig := retrierconfig.ConnectConfig()
	retryConfig.Notify = func(err error, wait time.Duration) {
		redisLog.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("redis is not ready")
	}

	err = backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		return client.Ping(ctx).Err()
	})
	if err != nil {
		closeErr := client.Close()
		if closeErr != nil {
			return nil, fmt.Errorf("redis connection: %w (failed to close: %w)", err, closeErr)
		}
		return nil, fmt.Errorf("redis connection: %w", err)
	}

	redisLog.Info("Redis connection established")
	return client, nil
}
