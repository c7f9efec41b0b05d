package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	OrdersByStatus = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courier_orders",
			Help: "Number of orders per status",
		},
		[]string{"status"},
	)

	UsersByRole = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "courier_users",
			Help: "Number of non-deleted users per role",
		},
		[]string{"role"},
	)

	DeliveredRevenue = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "courier_delivered_revenue",
			Help: "Sum of prices of delivered orders",
		},
	)

	OrderStatusChangesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "courier_order_status_changes_total",
			Help: "Total number of order status changes",
		},
		[]string{"status"},
	)

	OrderEventsPublishFailedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "courier_order_events_publish_failed_total",
			Help: "Order status events that could not be published",
		},
	)
)
