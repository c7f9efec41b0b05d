package auth_register_post

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
	var req dto.Register
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	registration := entities.Registration{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Phone:    pointer.Get(req.Phone),
	}
	if req.Address != nil {
		registration.Address = presenter.AddressToDomain(*req.Address)
	}

	session, err := h.service.Register(r.Context(), registration)
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.AuthResponse{
		Success: true,
		Token:   session.Token,
		User:    presenter.User(session.User),
	})
}
