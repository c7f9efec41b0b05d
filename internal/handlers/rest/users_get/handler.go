package users_get

import (
	"net/http"
	"strconv"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/apperr"
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

var ErrInvalidIncludeDeleted = apperr.Validation("includeDeleted must be true or false")

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	filter := entities.UserFilter{
		Search: query.Get("search"),
	}
	if role := query.Get("role"); role != "" {
		filter.Role = pointer.To(entities.Role(role))
	}
	if raw := query.Get("includeDeleted"); raw != "" {
		includeDeleted, err := strconv.ParseBool(raw)
		if err != nil {
			httpresponse.Error(w, h.log, ErrInvalidIncludeDeleted)
			return
		}
		filter.IncludeDeleted = includeDeleted
	}

	users, err := h.service.List(r.Context(), filter)
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.UserListResponse{
		Success: true,
		Count:   len(users),
		Data:    presenter.Users(users),
	})
}
