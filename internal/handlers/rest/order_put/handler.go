package order_put

import (
	"net/http"

	"courier-network/internal/entities"
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

	var req dto.OrderUpdate
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	id := mux.Vars(r)["id"]
	order, err := h.service.Update(r.Context(), actor, entities.OrderModify{
		ID:              &id,
		SenderName:      req.SenderName,
		SenderPhone:     req.SenderPhone,
		ReceiverName:    req.ReceiverName,
		ReceiverPhone:   req.ReceiverPhone,
		PickupAddress:   presenter.AddressPtrToDomain(req.PickupAddress),
		DeliveryAddress: presenter.AddressPtrToDomain(req.DeliveryAddress),
		PackageType:     req.PackageType,
		Weight:          req.Weight,
		Description:     req.Description,
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.OrderResponse{
		Success: true,
		Data:    presenter.Order(order),
	})
}
