package applications_get

import (
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/httpresponse"

	"github.com/AlekSi/pointer"
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
	var filter entities.ApplicationFilter
	if status := r.URL.Query().Get("status"); status != "" {
		filter.Status = pointer.To(entities.ApplicationStatus(status))
	}

	applications, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.ApplicationListResponse{
		Success: true,
		Count:   len(applications),
		Data:    presenter.Applications(applications),
	})
}
