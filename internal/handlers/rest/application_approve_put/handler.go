package application_approve_put

import (
	"net/http"

	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/authctx"
	"courier-network/internal/pkg/httpresponse"

	"github.com/AlekSi/pointer"
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

// ServeHTTP тело запроса необязательно.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	actor, err := authctx.Actor(r.Context())
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	var req dto.ApplicationReview
	if r.ContentLength != 0 {
		if err := httpresponse.Decode(r, &req); err != nil {
			httpresponse.Error(w, h.log, err)
			return
		}
	}

	reviewed, err := h.service.Approve(r.Context(), actor, mux.Vars(r)["id"], pointer.Get(req.AdminNotes))
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.ApplicationResponse{
		Success: true,
		Data:    presenter.Application(reviewed),
	})
}
