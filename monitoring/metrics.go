package monitoring

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	pipelineOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "booking_pipeline_operations_total",
			Help: "Total booking pipeline operations",
		},
		[]string{"operation", "status"},
	)

	seatSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "seat_sessions_active_total",
			Help: "Current number of open seat-map sessions",
		},
	)

	paymentSessionsActive = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "payment_sessions_active_total",
			Help: "Current number of open payment sessions",
		},
	)

	bookingsConfirmed = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "bookings_confirmed_total",
			Help: "Total confirmed bookings",
		},
	)

	paymentProcessingDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "payment_processing_duration_seconds",
			Help:    "Duration of simulated payment processing",
			Buckets: prometheus.ExponentialBuckets(0.25, 2, 8),
		},
	)
)

type Monitor struct{}

func NewMonitor() *Monitor {
	return &Monitor{}
}

// TrackOperation counts a pipeline operation outcome.
func (m *Monitor) TrackOperation(operation, status string) {
	pipelineOperations.WithLabelValues(operation, status).Inc()
}

func (m *Monitor) SeatSessionOpened() {
	seatSessionsActive.Inc()
}

func (m *Monitor) SeatSessionClosed() {
	seatSessionsActive.Dec()
}

func (m *Monitor) PaymentSessionOpened() {
	paymentSessionsActive.Inc()
}

func (m *Monitor) PaymentSessionClosed() {
	paymentSessionsActive.Dec()
}

func (m *Monitor) BookingConfirmed() {
	bookingsConfirmed.Inc()
}

// TrackPaymentProcessing records how long a payment spent in the
// submitting state.
func (m *Monitor) TrackPaymentProcessing(duration time.Duration) {
	paymentProcessingDuration.Observe(duration.Seconds())
}
