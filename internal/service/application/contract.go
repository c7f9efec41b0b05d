//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=application_test
package application

import (
	"context"

	"courier-network/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, application entities.CourierApplication) (*entities.CourierApplication, error)
	GetByID(ctx context.Context, id string) (*entities.CourierApplication, error)
	List(ctx context.Context, filter entities.ApplicationFilter) ([]entities.CourierApplication, error)
	Review(ctx context.Context, review entities.ApplicationReview) (*entities.CourierApplication, error)
}

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
