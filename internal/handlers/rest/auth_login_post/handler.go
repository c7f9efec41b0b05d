package auth_login_post

import (
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
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
	var req dto.Login
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	session, err := h.service.Login(r.Context(), entities.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    presenter.User(session.User),
	})
}
