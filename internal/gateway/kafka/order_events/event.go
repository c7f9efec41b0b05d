package order_events

import (
	"time"

	"courier-network/internal/entities"
)

// Event формат сообщения order status changed в топике.
type Event struct {
	OrderID        string    `json:"orderId"`
	TrackingNumber string    `json:"trackingNumber"`
	UserID         string    `json:"userId"`
	CourierID      string    `json:"courierId,omitempty"`
	Status         string    `json:"status"`
	Note           string    `json:"note,omitempty"`
	ChangedBy      string    `json:"changedBy,omitempty"`
	ChangedAt      time.Time `json:"changedAt"`
}

func FromDomain(e entities.OrderStatusEvent) Event {
	return Event{
		OrderID:        e.OrderID,
		TrackingNumber: e.TrackingNumber,
		UserID:         e.UserID,
		CourierID:      e.CourierID,
		Status:         e.Status.String(),
		Note:           e.Note,
		ChangedBy:      e.ChangedBy,
		ChangedAt:      e.ChangedAt,
	}
}

func (e Event) ToDomain() entities.OrderStatusEvent {
	return entities.OrderStatusEvent{
		OrderID:        e.OrderID,
		TrackingNumber: e.TrackingNumber,
		UserID:         e.UserID,
		CourierID:      e.CourierID,
		Status:         entities.OrderStatus(e.Status),
		Note:           e.Note,
		ChangedBy:      e.ChangedBy,
		ChangedAt:      e.ChangedAt,
	}
}
