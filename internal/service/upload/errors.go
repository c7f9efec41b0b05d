package upload

import "courier-network/internal/pkg/apperr"

var (
	ErrNoFile          = apperr.Validation("please upload an image file")
	ErrTooLarge        = apperr.Validation("image must be at most 5 MB")
	ErrUnsupportedType = apperr.Validation("only jpeg, png, webp and gif images are allowed")
	ErrInvalidPublicID = apperr.Validation("invalid image public id")

	ErrNotConfigured = apperr.Conflict("image upload is not configured")
	ErrStorageFailed = apperr.Conflict("image storage is unavailable, please try again later")
)
