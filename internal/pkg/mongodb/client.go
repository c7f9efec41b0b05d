package mongodb

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/pkg/config"
	"courier-network/pkg/logger"
	retrierconfig "courier-network/pkg/retrier"
	"courier-network/pkg/retrier/backoff_adapter"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/mongo/readpref"
)

const pingTimeout = 5 * time.Second

func NewClient(ctx context.Context, log logger.Logger, cfg *config.Mongo) (*mongo.Client, error) {
	client, err := mongo.Connect(options.Client().ApplyURI(cfg.URL))
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}

	mongoLog := log.With(
		logger.NewField("db", cfg.DBName),
		logger.NewField("transactions", cfg.Transactions),
	)

	err = ping(ctx, mongoLog, client)
	if err != nil {
		disconnectErr := client.Disconnect(context.WithoutCancel(ctx))
		if disconnectErr != nil {
			return nil, fmt.Errorf("mongo connection: %w (failed to disconnect: %w)", err, disconnectErr)
		}
		return nil, fmt.Errorf("mongo connection: %w", err)
	}

	return client, nil
}

func ping(ctx context.Context, log logger.Logger, client *mongo.Client) error {
	retryConfig := retrierconfig.ConnectConfig()
	retryConfig.Notify = func(err error, wait time.Duration) {
		log.With(
			logger.NewField("error", err),
			logger.NewField("retry_in", wait.String()),
		).Warn("mongo is not ready")
	}

	var attempt uint64
	err := backoff_adapter.New(retryConfig).ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
		defer cancel()
		return client.Ping(pingCtx, readpref.Primary())
	})
	if err != nil {
		log.With(
			logger.NewField("error", err),
			logger.NewField("attempts", attempt),
		).Error("Mongo connection failed after retries")
		return fmt.Errorf("failed to ping mongo: %w", err)
	}

	log.With(
		logger.NewField("attempts", attempt),
	).Info("Mongo connection established")
	return nil
}
