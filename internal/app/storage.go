package app

import (
	"context"
	"fmt"

	"courier-network/internal/pkg/config"
	"courier-network/internal/pkg/mongodb"
	"courier-network/internal/pkg/postgres"
	applicationRepo "courier-network/internal/repository/application"
	mongoRepo "courier-network/internal/repository/mongodb"
	orderRepo "courier-network/internal/repository/order"
	userRepo "courier-network/internal/repository/user"
	applicationService "courier-network/internal/service/application"
	authService "courier-network/internal/service/auth"
	notificationService "courier-network/internal/service/notification"
	orderService "courier-network/internal/service/order"
	userService "courier-network/internal/service/user"
	"courier-network/pkg/logger"
	"courier-network/pkg/querier"
	"courier-network/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
)

type (
	UserStore interface {
		authService.UserRepository
		userService.Repository
		orderService.UserRepository
		applicationService.UserRepository
		notificationService.UserRepository
	}

	OrderStore interface {
		orderService.Repository
		userService.OrderRepository
	}

	ApplicationStore interface {
		applicationService.Repository
	}

	TxManager interface {
		Do(ctx context.Context, fn func(ctx context.Context) error) error
	}

	Pinger interface {
		Ping(ctx context.Context) error
	}
)

// Storage репозитории одного из бэкендов (DATABASE_DRIVER) и их менеджер транзакций.
type Storage struct {
	Users        UserStore
	Orders       OrderStore
	Applications ApplicationStore
	Tx           TxManager
	Pinger       Pinger
	Close        func()
}

// OpenStorage подключается к выбранному бэкенду.
// Для Postgres при POSTGRES_AUTO_MIGRATE накатываются встроенные миграции.
func OpenStorage(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	switch cfg.StorageDriver {
	case config.DriverMongo:
		return openMongo(ctx, log, cfg)
	case config.DriverPostgres:
		return openPostgres(ctx, log, cfg)
	default:
		return nil, fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}
}

func openPostgres(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("database: %w", err)
	}

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, log, pool, postgres.MigrateUp); err != nil {
			pool.Close()
			return nil, fmt.Errorf("auto migrate: %w", err)
		}
	}

	q := querier.New(pool, pgxv5.DefaultCtxGetter)
	return &Storage{
		Users:        userRepo.New(q),
		Orders:       orderRepo.New(q),
		Applications: applicationRepo.New(q),
		Tx:           tx.New(pool),
		Pinger:       pool,
		Close:        pool.Close,
	}, nil
}

func openMongo(ctx context.Context, log logger.Logger, cfg *config.Config) (*Storage, error) {
	client, err := mongodb.NewClient(ctx, log, &cfg.Mongo)
	if err != nil {
		return nil, fmt.Errorf("mongo: %w", err)
	}

	store, err := mongoRepo.NewStore(ctx, client, cfg.Mongo.DBName)
	if err != nil {
		if disconnectErr := client.Disconnect(context.WithoutCancel(ctx)); disconnectErr != nil {
			log.Warn("mongo disconnect failed", logger.NewField("error", disconnectErr))
		}
		return nil, fmt.Errorf("mongo store: %w", err)
	}

	return &Storage{
		Users:        mongoRepo.NewUserRepository(store),
		Orders:       mongoRepo.NewOrderRepository(store),
		Applications: mongoRepo.NewApplicationRepository(store),
		Tx:           tx.NewMongo(client, cfg.Mongo.Transactions),
		Pinger:       store,
		Close: func() {
			if err := store.Close(); err != nil {
				log.Warn("mongo disconnect failed", logger.NewField("error", err))
			}
		},
	}, nil
}
