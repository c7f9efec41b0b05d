//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_assign_put_test
package order_assign_put

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	AssignCourier(ctx context.Context, actor entities.Actor, id, courierID string) (*entities.Order, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
