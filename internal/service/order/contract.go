//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"courier-network/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	AppendStatus(ctx context.Context, update entities.StatusUpdate) (*entities.Order, error)
	Delete(ctx context.Context, id string) error
	List(ctx context.Context, filter entities.OrderFilter) ([]entities.Order, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type Estimator interface {
	Quote(ctx context.Context, req entities.QuoteRequest) (*entities.Quote, error)
	CalculatePrice(weight, distance float64) float64
}

// EventPublisher доставка событий best effort, ошибки остаются внутри.
type EventPublisher interface {
	PublishStatusChanged(ctx context.Context, event entities.OrderStatusEvent)
}
