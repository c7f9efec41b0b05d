//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_reject_put_test
package application_reject_put

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Reject(ctx context.Context, actor entities.Actor, id, notes string) (*entities.CourierApplication, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
