package orders_estimate_post

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
	var req dto.EstimateRequest
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	quote, err := h.service.Estimate(r.Context(), entities.QuoteRequest{
		Pickup:   presenter.AddressToDomain(req.PickupAddress),
		Delivery: presenter.AddressToDomain(req.DeliveryAddress),
		Weight:   req.Weight,
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusOK, dto.QuoteResponse{
		Success: true,
		Data:    presenter.Quote(quote),
	})
}
