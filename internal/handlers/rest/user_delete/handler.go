package user_delete

import (
	"net/http"

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

	err = h.service.Delete(r.Context(), actor, mux.Vars(r)["id"])
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.Message(w, h.log, http.StatusOK, "user deleted successfully")
}
