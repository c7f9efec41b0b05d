//go:build wireinject
// +build wireinject

package app

import (
	"context"

	"courier-network/internal/handlers/tasks/stats_gauges"
	"courier-network/internal/pkg/config"
	applicationService "courier-network/internal/service/application"
	authService "courier-network/internal/service/auth"
	orderService "courier-network/internal/service/order"
	"courier-network/internal/service/upload"
	userService "courier-network/internal/service/user"
	"courier-network/pkg/logger"

	"github.com/IBM/sarama"
	"github.com/google/wire"
	goredis "github.com/redis/go-redis/v9"
)

// InitializeApplication для HTTP сервиса (cmd/service)
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	storage *Storage,
	redisClient *goredis.Client,
	producer sarama.AsyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTokenManager,
		providePasswordHasher,
		provideServiceAuth,
		provideServiceUser,
		provideServiceApplication,

		provideDistanceCache,
		provideEstimator,
		provideEventPublisher,
		provideServiceOrder,

		provideObjectStore,
		provideServiceUpload,

		provideStatsRefreshInterval,
		provideStatsGaugesTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceAuth), new(*authService.Auth)),
		wire.Bind(new(ServiceOrder), new(*orderService.Service)),
		wire.Bind(new(ServiceUser), new(*userService.User)),
		wire.Bind(new(ServiceApplication), new(*applicationService.Service)),
		wire.Bind(new(ServiceUpload), new(*upload.Service)),

		wire.Bind(new(stats_gauges.Service), new(*userService.User)),
	)
	return &Application{}, nil
}

// InitializeKafkaWorkerApp для Kafka воркера (cmd/worker-order-status-changed)
func InitializeKafkaWorkerApp(
	log logger.Logger,
	storage *Storage,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideMailer,
		provideNotificationService,

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}
