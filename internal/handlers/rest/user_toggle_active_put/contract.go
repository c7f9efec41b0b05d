//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_toggle_active_put_test
package user_toggle_active_put

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	ToggleActive(ctx context.Context, actor entities.Actor, id string) (*entities.User, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
