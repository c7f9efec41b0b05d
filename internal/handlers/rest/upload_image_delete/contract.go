//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upload_image_delete_test
package upload_image_delete

import (
	"context"

	"courier-network/pkg/logger"
)

type Service interface {
	Delete(ctx context.Context, publicID string) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
