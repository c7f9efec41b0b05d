//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=users_stats_get_test
package users_stats_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Stats(ctx context.Context) (*entities.Summary, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
