package orders_post

import (
	"net/http"

	"courier-network/internal/entities"
	"courier-network/internal/generated/dto"
	"courier-network/internal/handlers/rest/presenter"
	"courier-network/internal/pkg/authctx"
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
	actor, err := authctx.Actor(r.Context())
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	var req dto.OrderCreate
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	order, err := h.service.Create(r.Context(), actor, entities.Order{
		SenderName:      req.SenderName,
		SenderPhone:     pointer.Get(req.SenderPhone),
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   pointer.Get(req.ReceiverPhone),
		PickupAddress:   presenter.AddressToDomain(req.PickupAddress),
		DeliveryAddress: presenter.AddressToDomain(req.DeliveryAddress),
		PackageType:     pointer.Get(req.PackageType),
		Weight:          req.Weight,
		Description:     pointer.Get(req.Description),
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.OrderResponse{
		Success: true,
		Data:    presenter.Order(order),
	})
}
