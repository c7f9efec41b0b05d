package disabled

import (
	"context"
	"io"

	"courier-network/internal/service/upload"
)

// Store используется, когда UPLOAD_DRIVER не задан.
type Store struct{}

func (Store) Put(context.Context, string, string, io.Reader, int64) (string, error) {
	return "", upload.ErrNotConfigured
}

func (Store) Delete(context.Context, string) error {
	return upload.ErrNotConfigured
}
