//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_track_get_test
package orders_track_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Track(ctx context.Context, trackingNumber string) (*entities.Tracking, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
