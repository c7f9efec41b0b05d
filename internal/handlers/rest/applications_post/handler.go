package applications_post

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

	var req dto.ApplicationCreate
	if err := httpresponse.Decode(r, &req); err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	created, err := h.service.Submit(r.Context(), actor, entities.CourierApplication{
		VehicleType:     entities.VehicleType(req.VehicleType),
		VehicleNumber:   req.VehicleNumber,
		LicenseNumber:   req.LicenseNumber,
		ExperienceYears: req.ExperienceYears,
		Availability:    entities.Availability(req.Availability),
		Phone:           req.Phone,
		Address:         presenter.AddressToDomain(req.Address),
	})
	if err != nil {
		httpresponse.Error(w, h.log, err)
		return
	}

	httpresponse.JSON(w, h.log, http.StatusCreated, dto.ApplicationResponse{
		Success: true,
		Data:    presenter.Application(created),
	})
}
