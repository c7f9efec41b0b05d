package application_get

import (
	"net/http"

	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/authctx"
	"courier-network/internal/pkg/httpresponse"

	"github.com/gorilla/mux"
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
	actor, err := authctx.Actor(r.Context())
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	found, err := h.service.Get(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.ApplicationResponse{
		Success: true,
		Data:    presenter.Application(found),
	})
}
