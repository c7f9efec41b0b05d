//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_me_get_test
package auth_me_get

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Me(ctx context.Context, actor entities.Actor) (*entities.User, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
