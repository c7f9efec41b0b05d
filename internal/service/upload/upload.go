package upload

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/apperr"

	"github.com/google/uuid"
)

const (
	MaxImageSize = 5 << 20
	keyPrefix    = "images/"
	sniffLen     = 512
)

var extensions = map[string]string{
	"image/jpeg": "jpg",
	"image/png":  "png",
	"image/webp": "webp",
	"image/gif":  "gif",
}

type Service struct {
	store ObjectStore
}

func New(store ObjectStore) *Service {
	return &Service{store: store}
}

// Upload тип файла определяется по содержимому, заявленный клиентом Content-Type не учитывается.
func (s *Service) Upload(ctx context.Context, upload entities.ImageUpload) (*entities.Image, error) {
	if upload.Body == nil || upload.Size == 0 {
		return nil, ErrNoFile
	}
	if upload.Size > MaxImageSize {
		return nil, ErrTooLarge
	}

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(upload.Body, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) {
		return nil, fmt.Errorf("read image: %w", err)
	}
	head = head[:n]

	contentType := http.DetectContentType(head)
	ext, ok := extensions[contentType]
	if !ok {
		return nil, ErrUnsupportedType
	}

	key := keyPrefix + uuid.NewString() + "." + ext
	body := io.MultiReader(bytes.NewReader(head), upload.Body)

	url, err := s.store.Put(ctx, key, contentType, body, upload.Size)
	if err != nil {
		return nil, storageError("put object", err)
	}

	return &entities.Image{URL: url, PublicID: key}, nil
}

func (s *Service) Delete(ctx context.Context, publicID string) error {
	if !IsValidPublicID(publicID) {
		return ErrInvalidPublicID
	}

	if err := s.store.Delete(ctx, publicID); err != nil {
		return storageError("delete object", err)
	}
	return nil
}

// storageError сбой хранилища клиент видит как ErrStorageFailed, причина остается в цепочке.
func storageError(op string, err error) error {
	if apperr.KindOf(err) != apperr.KindUnknown {
		return fmt.Errorf("%s: %w", op, err)
	}
	return fmt.Errorf("%s: %w: %w", op, ErrStorageFailed, err)
}

func IsValidPublicID(publicID string) bool {
	name, ok := strings.CutPrefix(publicID, keyPrefix)
	if !ok || name == "" || strings.ContainsAny(name, "/\\") || strings.Contains(name, "..") {
		return false
	}
	return true
}
