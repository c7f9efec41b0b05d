package auth_profile_put

import (
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
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

	var req dto.ProfileUpdate
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	u, err := h.service.UpdateProfile(r.Context(), actor, entities.UserModify{
		ID:        &actor.ID,
		Name:      req.Name,
		Email:     req.Email,
		Phone:     req.Phone,
		Address:   presenter.AddressPtrToDomain(req.Address),
		AvatarURL: req.AvatarUrl,
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.UserResponse{
		Success: true,
		Data:    presenter.User(u),
	})
}
