package upload_image_delete

import (
	"net/http"

	"courier-network/internal/pkg/httpresponse"
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

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	err := h.service.Delete(r.Context(), r.URL.Query().Get("publicId"))
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.Message(w, h.log, http.StatusOK, "image deleted successfully")
}
