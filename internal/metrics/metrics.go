package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"warehouse-service/internal/config"
)

var (
	// HTTP request metrics
	HttpRequestsTotal   *prometheus.CounterVec
	HttpRequestDuration *prometheus.HistogramVec

	// Stock movement metrics
	StockMovementsCounter *prometheus.CounterVec
	StockMovedUnits       *prometheus.CounterVec

	// Movement rejection metrics
	MovementRejectionsCounter *prometheus.CounterVec

	// Compartment utilization metrics
	CompartmentUtilizationGauge *prometheus.GaugeVec

	// Database operation metrics
	DbOperationDuration *prometheus.HistogramVec
)

// Init initializes Prometheus metrics with configuration
func Init(config *config.Config) {
	prefix := config.Metrics.Prefix

	HttpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HttpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)

	StockMovementsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stock_movements_total",
			Help: "Total number of completed stock movements",
		},
		[]string{"type"},
	)

	StockMovedUnits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_stock_moved_units_total",
			Help: "Total number of units moved in or out of the warehouse",
		},
		[]string{"type"},
	)

	MovementRejectionsCounter = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: prefix + "_movement_rejections_total",
			Help: "Total number of rejected stock movements",
		},
		[]string{"reason"},
	)

	CompartmentUtilizationGauge = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: prefix + "_compartment_utilization_percent",
			Help: "Current utilization percentage per compartment",
		},
		[]string{"compartment"},
	)

	DbOperationDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    prefix + "_db_operation_duration_seconds",
			Help:    "Duration of database operations in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"operation_type"},
	)
}

// TrackDBOperation returns a function that records the duration of a database operation
func TrackDBOperation(operationType string) func(startTime time.Time) {
	return func(startTime time.Time) {
		duration := time.Since(startTime).Seconds()
		DbOperationDuration.WithLabelValues(operationType).Observe(duration)
	}
}

// RecordStockMovement increments the movement counters for a completed movement
func RecordStockMovement(movementType string, quantity int) {
	StockMovementsCounter.WithLabelValues(movementType).Inc()
	StockMovedUnits.WithLabelValues(movementType).Add(float64(quantity))
}

// RecordMovementRejection increments the rejection counter for a failed movement
func RecordMovementRejection(reason string) {
	MovementRejectionsCounter.WithLabelValues(reason).Inc()
}

// UpdateCompartmentUtilization updates the utilization gauge for a compartment
func UpdateCompartmentUtilization(compartment string, percent int) {
	CompartmentUtilizationGauge.WithLabelValues(compartment).Set(float64(percent))
}
