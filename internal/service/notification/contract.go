//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=notification_test
package notification

import (
	"context"

	"courier-network/internal/entities"
)

type UserRepository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
}

type Mailer interface {
	Send(ctx context.Context, email entities.Email) error
}
