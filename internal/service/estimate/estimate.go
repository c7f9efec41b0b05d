package estimate

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"courier-network/internal/entities"
	"courier-network/pkg/logger"
)

const cacheKeyPrefix = "distance:"

type Estimator struct {
	log     handlerLogger
	routing RoutingProvider
	model   ETAModel
	cache   DistanceCache
	now     func() time.Time
}

type Option func(*Estimator)

func WithClock(now func() time.Time) Option {
	return func(e *Estimator) {
		e.now = now
	}
}

func New(log handlerLogger, routing RoutingProvider, model ETAModel, cache DistanceCache, opts ...Option) *Estimator {
	e := &Estimator{
		log:     log.With(logger.NewField("component", "estimator")),
		routing: routing,
		model:   model,
		cache:   cache,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CalculateDistance дорожное расстояние в километрах.
//
//  1. Оба адреса резолвятся в координаты: таблица городов, затем геокодер.
//  2. Расстояние берется у сервиса маршрутов, при ошибке прямая × 1.3.
//  3. Расстояние от сервиса маршрутов кешируется по паре адресов.
func (e *Estimator) CalculateDistance(ctx context.Context, pickup, delivery entities.Address) (float64, error) {
	if pickup.IsEmpty() || delivery.IsEmpty() {
		return 0, ErrMissingAddress
	}

	key := distanceCacheKey(pickup, delivery)
	if km, ok, err := e.cache.Get(ctx, key); err != nil {
		e.log.Warn("distance cache read failed", logger.NewField("error", err))
	} else if ok {
		return km, nil
	}

	from, ok := e.resolve(ctx, pickup)
	if !ok {
		return 0, ErrAddressNotResolved.Withf("unable to calculate distance: pickup address %q could not be resolved", pickup.String())
	}
	to, ok := e.resolve(ctx, delivery)
	if !ok {
		return 0, ErrAddressNotResolved.Withf("unable to calculate distance: delivery address %q could not be resolved", delivery.String())
	}

	km, err := e.routing.RoadDistance(ctx, from, to)
	if err != nil || km <= 0 {
		e.log.Warn("routing distance unavailable, using haversine",
			logger.NewField("error", err),
		)
		// приближение не кешируется, следующий запрос снова пойдет в сервис маршрутов
		return ApproxRoadDistance(from, to), nil
	}
	km = round2(km)

	if err := e.cache.Set(ctx, key, km); err != nil {
		e.log.Warn("distance cache write failed", logger.NewField("error", err))
	}

	return km, nil
}

func (e *Estimator) CalculatePrice(weight, distance float64) float64 {
	return CalculatePrice(weight, distance)
}

// PredictETA никогда не возвращает ошибку: при сбое модели считается по формуле.
func (e *Estimator) PredictETA(ctx context.Context, input entities.ETAInput) entities.ETAPrediction {
	minutes, err := e.model.Predict(ctx, input)
	if err == nil && minutes > 0 {
		return entities.ETAPrediction{
			Minutes: minutes,
			Source:  entities.ETASourceModel,
		}
	}

	if err != nil {
		e.log.Warn("eta model unavailable, using formula", logger.NewField("error", err))
	}

	return entities.ETAPrediction{
		Minutes: FallbackETA(input),
		Source:  entities.ETASourceFormula,
	}
}

// Quote расстояние, цена и ETA для пары адресов на текущий момент.
func (e *Estimator) Quote(ctx context.Context, req entities.QuoteRequest) (*entities.Quote, error) {
	if req.Weight <= 0 {
		return nil, ErrInvalidWeight
	}

	distance, err := e.CalculateDistance(ctx, req.Pickup, req.Delivery)
	if err != nil {
		return nil, fmt.Errorf("calculate distance: %w", err)
	}

	now := e.now()
	hour := now.Hour()
	eta := e.PredictETA(ctx, entities.ETAInput{
		DistanceKm:   distance,
		WeightKg:     req.Weight,
		Hour:         hour,
		TrafficLevel: TrafficLevelAt(hour),
	})

	return &entities.Quote{
		Distance:              distance,
		Price:                 CalculatePrice(req.Weight, distance),
		ETAMinutes:            eta.Minutes,
		ETASource:             eta.Source,
		EstimatedDeliveryTime: now.Add(time.Duration(eta.Minutes) * time.Minute),
	}, nil
}

func (e *Estimator) resolve(ctx context.Context, address entities.Address) (entities.Coordinates, bool) {
	if coords, ok := lookupCity(address); ok {
		return coords, true
	}

	coords, err := e.routing.Geocode(ctx, address.String())
	if err != nil || coords == nil {
		e.log.Warn("geocoding failed",
			logger.NewField("address", address.String()),
			logger.NewField("error", err),
		)
		return entities.Coordinates{}, false
	}
	return *coords, true
}

func distanceCacheKey(pickup, delivery entities.Address) string {
	sum := sha256.Sum256([]byte(normalize(pickup.String()) + "|" + normalize(delivery.String())))
	return cacheKeyPrefix + hex.EncodeToString(sum[:])
}
