//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upload_image_post_test
package upload_image_post

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

type Service interface {
	Upload(ctx context.Context, upload entities.ImageUpload) (*entities.Image, error)
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
