package user_put

import (
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
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
	var req dto.UserUpdate
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	id := mux.Vars(r)["id"]
	u, err := h.service.Update(r.Context(), entities.UserModify{
		ID:          &id,
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Address:     presenter.AddressPtrToDomain(req.Address),
		AvatarURL:   req.AvatarUrl,
		IsAvailable: req.IsAvailable,
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
