package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	httpRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	activeRequests = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_active_requests",
			Help: "Number of in-flight HTTP requests",
		},
	)

	leadsCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "leads_created_total",
			Help: "Total number of leads created",
		},
		[]string{"source"},
	)

	leadMutations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_mutations_total",
			Help: "Lead mutations by activity type and outcome",
		},
		[]string{"activity_type", "outcome"},
	)

	eventPublishErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "lead_event_publish_errors_total",
			Help: "Lead events that could not be published",
		},
		[]string{"event_type"},
	)
)

func ObserveRequest(method, route, status string, seconds float64) {
	httpRequestsTotal.WithLabelValues(method, route, status).Inc()
	httpRequestDuration.WithLabelValues(method, route).Observe(seconds)
}

func RequestStarted() { activeRequests.Inc() }

func RequestFinished() { activeRequests.Dec() }

func RecordLeadCreated(source string) {
	leadsCreated.WithLabelValues(source).Inc()
}

// RecordLeadMutation counts one Lead Service mutation; outcome is "ok" or an error kind.
func RecordLeadMutation(activityType, outcome string) {
	leadMutations.WithLabelValues(activityType, outcome).Inc()
}

func RecordEventPublishError(eventType string) {
	eventPublishErrors.WithLabelValues(eventType).Inc()
}
