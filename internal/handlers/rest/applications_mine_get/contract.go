//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=applications_mine_get_test
package applications_mine_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Mine(ctx context.Context, actor entities.Actor) ([]entities.CourierApplication, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
