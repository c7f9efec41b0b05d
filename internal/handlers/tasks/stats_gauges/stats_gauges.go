package stats_gauges

import (
	"context"
	"fmt"
	"time"

	"courier-network/internal/entities"
	"courier-network/internal/pkg/metrics"
	"courier-network/pkg/logger"
)

// StatsGauges периодически переносит сводку по пользователям и заказам в gauges Prometheus.
type StatsGauges struct {
	log      handlerLogger
	service  Service
	interval time.Duration
}

func NewStatsGauges(log handlerLogger, service Service, interval time.Duration) *StatsGauges {
	return &StatsGauges{
		log:      log.With(logger.NewField("task", "stats gauges")),
		service:  service,
		interval: interval,
	}
}

func (s *StatsGauges) TTL() time.Duration {
	return s.interval
}

func (s *StatsGauges) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, s.timeout())
	defer cancel()

	summary, err := s.service.Stats(ctxWithTimeout)
	if err != nil {
		return fmt.Errorf("load stats: %w", err)
	}

	for _, role := range entities.Roles {
		metrics.UsersByRole.WithLabelValues(role.String()).Set(float64(summary.UsersByRole[role]))
	}
	for _, status := range entities.OrderStatuses {
		metrics.OrdersByStatus.WithLabelValues(status.String()).Set(float64(summary.Orders.ByStatus[status]))
	}
	metrics.DeliveredRevenue.Set(summary.Orders.DeliveredRevenue)

	if summary.Orders.Total > 0 {
		s.log.With(
			logger.NewField("orders_total", summary.Orders.Total),
		).Info("stats gauges refreshed")
	}
	return nil
}

func (s *StatsGauges) Info() string {
	return "stats gauges"
}

// timeout прогрев вызывается без интервала, поэтому нужен нижний предел.
func (s *StatsGauges) timeout() time.Duration {
	const minTimeout = 5 * time.Second
	if s.interval < minTimeout {
		return minTimeout
	}
	return s.interval
}
