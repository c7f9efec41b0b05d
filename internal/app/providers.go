package app

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/gateway/http/eta"
	"courier-network/internal/gateway/http/routing"
	"courier-network/internal/gateway/kafka/order_events"
	"courier-network/internal/gateway/objectstore/disabled"
	"courier-network/internal/gateway/objectstore/minio"
	"courier-network/internal/gateway/objectstore/s3"
	"courier-network/internal/gateway/smtp"
	"courier-network/internal/handlers/tasks/stats_gauges"
	"courier-network/internal/pkg/config"
	"courier-network/internal/pkg/password"
	"courier-network/internal/pkg/token"
	"courier-network/internal/repository/cache"
	applicationService "courier-network/internal/service/application"
	authService "courier-network/internal/service/auth"
	"courier-network/internal/service/estimate"
	notificationService "courier-network/internal/service/notification"
	orderService "courier-network/internal/service/order"
	"courier-network/internal/service/upload"
	userService "courier-network/internal/service/user"
	"courier-network/pkg/background"
	"courier-network/pkg/logger"

	"github.com/IBM/sarama"
	goredis "github.com/redis/go-redis/v9"
)

func provideTokenManager(cfg *config.Config) *token.Manager {
	return token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpire)
}

func providePasswordHasher() *password.Hasher {
	return password.NewHasher(password.DefaultCost)
}

func provideServiceAuth(storage *Storage, hasher *password.Hasher, tokens *token.Manager) *authService.Auth {
	return authService.New(storage.Users, hasher, tokens)
}

func provideServiceUser(storage *Storage) *userService.User {
	return userService.New(storage.Users, storage.Orders, storage.Tx)
}

func provideServiceApplication(storage *Storage) *applicationService.Service {
	return applicationService.New(storage.Applications, storage.Users, storage.Tx)
}

// provideDistanceCache без REDIS_URL клиент nil и кеш отключен.
func provideDistanceCache(client *goredis.Client) estimate.DistanceCache {
	if client == nil {
		return cache.Nop{}
	}
	return cache.NewDistance(client)
}

func provideEstimator(log logger.Logger, cfg *config.Config, distanceCache estimate.DistanceCache) *estimate.Estimator {
	return estimate.New(
		log,
		routing.New(nil, cfg.Estimator.ORSBaseURL, cfg.Estimator.ORSAPIKey),
		eta.New(nil, cfg.Estimator.MLServiceURL),
		distanceCache,
	)
}

// provideEventPublisher без KAFKA_BROKERS producer nil и события только логируются.
func provideEventPublisher(log logger.Logger, cfg *config.Config, producer sarama.AsyncProducer) orderService.EventPublisher {
	if producer == nil {
		return order_events.Nop{}
	}
	return order_events.New(log, producer, cfg.Kafka.Topic)
}

func provideServiceOrder(
	storage *Storage,
	estimator *estimate.Estimator,
	publisher orderService.EventPublisher,
) *orderService.Service {
	return orderService.New(storage.Orders, storage.Users, estimator, publisher)
}

func provideObjectStore(ctx context.Context, cfg *config.Config) (upload.ObjectStore, error) {
	switch cfg.Upload.Driver {
	case config.UploadDriverMinio:
		store, err := minio.New(&cfg.Upload.Minio)
		if err != nil {
			return nil, fmt.Errorf("minio: %w", err)
		}
		return store, nil
	case config.UploadDriverS3:
		store, err := s3.New(ctx, &cfg.Upload.S3)
		if err != nil {
			return nil, fmt.Errorf("s3: %w", err)
		}
		return store, nil
	default:
		return disabled.Store{}, nil
	}
}

func provideServiceUpload(store upload.ObjectStore) *upload.Service {
	return upload.New(store)
}

func provideStatsRefreshInterval(cfg *config.Config) StatsRefreshInterval {
	return StatsRefreshInterval(cfg.Tasks.StatsRefreshInterval)
}

func provideStatsGaugesTask(
	log logger.Logger,
	service stats_gauges.Service,
	interval StatsRefreshInterval,
) *stats_gauges.StatsGauges {
	return stats_gauges.NewStatsGauges(log, service, time.Duration(interval))
}

func provideTaskList(
	statsGaugesTask *stats_gauges.StatsGauges,
) []background.Task {
	return []background.Task{
		statsGaugesTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}

// provideMailer без SMTP_HOST письма только пишутся в лог.
func provideMailer(log logger.Logger, cfg *config.Config) (notificationService.Mailer, error) {
	if cfg.SMTP.Host == "" {
		return smtp.NewLogMailer(log), nil
	}

	client, err := smtp.NewClient(&cfg.SMTP)
	if err != nil {
		return nil, err
	}
	return smtp.New(client, cfg.SMTP.From), nil
}

func provideNotificationService(storage *Storage, mailer notificationService.Mailer) *notificationService.Service {
	return notificationService.New(storage.Users, mailer)
}
