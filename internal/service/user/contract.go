//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=user_test
package user

import (
	"context"
	"time"

	"courier-network/internal/entities"
)

type Repository interface {
	GetByID(ctx context.Context, id string) (*entities.User, error)
	List(ctx context.Context, filter entities.UserFilter) ([]entities.User, error)
	Update(ctx context.Context, userModify entities.UserModify) (*entities.User, error)
	SoftDelete(ctx context.Context, id string, deletedAt time.Time) error
	Restore(ctx context.Context, id string) (*entities.User, error)
	CountActiveAdmins(ctx context.Context) (int64, error)
	CountByRole(ctx context.Context) (map[entities.Role]int64, error)
}

type OrderRepository interface {
	CountActiveByUser(ctx context.Context, userID string) (int64, error)
	UnassignCourier(ctx context.Context, courierID string, entry entities.StatusHistoryEntry) (int64, error)
	Stats(ctx context.Context) (*entities.OrderStats, error)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
