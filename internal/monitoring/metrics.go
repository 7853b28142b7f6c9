package monitoring

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// Engine metrics
	computationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_computations_total",
			Help: "Total number of signal series computations",
		},
		[]string{"symbol", "interval"},
	)

	computationDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "signal_engine_computation_seconds",
			Help:    "Duration of full-series signal computations",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"symbol"},
	)

	// Signal metrics
	lastSignal = prometheus.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "signal_engine_last_signal",
			Help: "Latest emitted signal (-1 sell, 0 neutral, 1 buy)",
		},
		[]string{"symbol"},
	)

	signalEventsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_events_total",
			Help: "Total number of position-change events detected",
		},
		[]string{"symbol", "signal"},
	)

	// Error metrics
	errorsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "signal_engine_errors_total",
			Help: "Total number of errors",
		},
		[]string{"type"},
	)
)

func init() {
	prometheus.MustRegister(computationsTotal)
	prometheus.MustRegister(computationDuration)
	prometheus.MustRegister(lastSignal)
	prometheus.MustRegister(signalEventsTotal)
	prometheus.MustRegister(errorsTotal)
}

// MetricsHandler handles the Prometheus metrics endpoint
type MetricsHandler struct{}

// NewMetricsHandler creates a new metrics handler
func NewMetricsHandler() *MetricsHandler {
	return &MetricsHandler{}
}

// ServeHTTP serves the Prometheus metrics endpoint
func (m *MetricsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	promhttp.Handler().ServeHTTP(w, r)
}

// RecordComputation records one full-series run
func RecordComputation(symbol, interval string, seconds float64) {
	computationsTotal.WithLabelValues(symbol, interval).Inc()
	computationDuration.WithLabelValues(symbol).Observe(seconds)
}

// UpdateLastSignal updates the latest-signal gauge
func UpdateLastSignal(symbol string, signal int) {
	lastSignal.WithLabelValues(symbol).Set(float64(signal))
}

// RecordSignalEvent records a position-change event
func RecordSignalEvent(symbol, signal string) {
	signalEventsTotal.WithLabelValues(symbol, signal).Inc()
}

// RecordError records an error metric
func RecordError(errorType string) {
	errorsTotal.WithLabelValues(errorType).Inc()
}
