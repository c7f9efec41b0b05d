//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=estimate_test
package estimate

import (
	"context"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

// RoutingProvider внешний сервис маршрутов (OpenRouteService).
type RoutingProvider interface {
	Geocode(ctx context.Context, address string) (*entities.Coordinates, error)
	RoadDistance(ctx context.Context, from, to entities.Coordinates) (float64, error)
}

// ETAModel внешний сервис предсказания времени доставки.
type ETAModel interface {
	Predict(ctx context.Context, input entities.ETAInput) (int, error)
}

type DistanceCache interface {
	Get(ctx context.Context, key string) (float64, bool, error)
	Set(ctx context.Context, key string, km float64) error
}

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
