package upload_image_post

import (
	"errors"
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/httpresponse"
	"courier-network/internal/service/upload"
	"courier-network/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		log:     handlerLog,
		service: service,
	}
}

const (
	formField = "image"
	// formMemory остаток формы сверх этого уходит во временные файлы
	formMemory   = 1 << 20
	bodyOverhead = 1 << 20
)

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, upload.MaxImageSize+bodyOverhead)

	if err := r.ParseMultipartForm(formMemory); err != nil {
		httpresponse.Error(w, h.log, formError(err))
		return
	}
	defer func() {
		if err := r.MultipartForm.RemoveAll(); err != nil {
			h.log.Warn("remove multipart temp files", logger.NewField("error", err))
		}
	}()

	file, header, err := r.FormFile(formField)
	if err != nil {
		httpresponse.Error(w, h.log, formError(err))
		return
	}
	defer file.Close()

	image, err := h.service.Upload(r.Context(), entities.ImageUpload{
		Filename:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		Size:        header.Size,
		Body:        file,
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.ImageResponse{
		Success: true,
		Data:    presenter.Image(image),
	})
}

func formError(err error) error {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return upload.ErrTooLarge
	case errors.Is(err, http.ErrMissingFile), errors.Is(err, http.ErrNotMultipart):
		return upload.ErrNoFile
	default:
		return httpresponse.ErrInvalidBody.Withf("invalid multipart form: %s", err.Error())
	}
}
