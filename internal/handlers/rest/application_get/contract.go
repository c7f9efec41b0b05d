//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_get_test
package application_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Get(ctx context.Context, actor entities.Actor, id string) (*entities.CourierApplication, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
