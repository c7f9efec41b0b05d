package auth_change_password_put

import (
	"net/http"

	"courier-network/internal/generated/dto"
	"courier-network/internal/pkg/authctx"
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
	actor, err := authctx.Actor(r.Context())
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	var req dto.PasswordChange
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	err = h.service.ChangePassword(r.Context(), actor, req.CurrentPassword, req.NewPassword)
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.Message(w, h.log, http.StatusOK, "password updated successfully")
}
