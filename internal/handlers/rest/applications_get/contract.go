//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=applications_get_test
package applications_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	List(ctx context.Context, filter entities.ApplicationFilter) ([]entities.CourierApplication, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
