//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=auth_change_password_put_test
package auth_change_password_put

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	ChangePassword(ctx context.Context, actor entities.Actor, current, next string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
