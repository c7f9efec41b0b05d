//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=upload_test
package upload

import (
	"context"
	"io"
)

// ObjectStore хранилище файлов (MinIO или S3).
type ObjectStore interface {
	Put(ctx context.Context, key, contentType string, body io.Reader, size int64) (string, error)
	Delete(ctx context.Context, key string) error
}
