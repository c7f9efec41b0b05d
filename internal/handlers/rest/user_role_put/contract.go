//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_role_put_test
package user_role_put

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	ChangeRole(ctx context.Context, actor entities.Actor, id string, role entities.Role) (*entities.User, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
