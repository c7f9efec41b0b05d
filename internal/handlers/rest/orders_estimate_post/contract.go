//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_estimate_post_test
package orders_estimate_post

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Estimate(ctx context.Context, req entities.QuoteRequest) (*entities.Quote, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
