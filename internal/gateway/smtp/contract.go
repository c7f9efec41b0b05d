//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=smtp_test
package smtp

import (
	"context"

	"courier-network/pkg/logger"

	mail "github.com/wneessen/go-mail"
)

type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*mail.Msg) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
