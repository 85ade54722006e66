package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const (
	ResultSent    = "sent"
	ResultFailed  = "failed"
	ResultDropped = "dropped"
)

// Metrics owns a private registry so tests can build as many as they like.
type Metrics struct {
	Registry          *prometheus.Registry
	FeedbackSubmitted prometheus.Counter
	Notifications     *prometheus.CounterVec
	HTTPRequests      *prometheus.CounterVec
	HTTPDuration      *prometheus.HistogramVec
}

func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		FeedbackSubmitted: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "feedback_submitted_total",
			Help: "Feedback records stored.",
		}),
		Notifications: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "feedback_notifications_total",
			Help: "Confirmation notifications by outcome.",
		}, []string{"result"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "HTTP requests by route, method and status.",
		}, []string{"route", "method", "status"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"route", "method"}),
	}
	m.Registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.FeedbackSubmitted,
		m.Notifications,
		m.HTTPRequests,
		m.HTTPDuration,
	)
	return m
}

func (m *Metrics) Notification(result string) {
	m.Notifications.WithLabelValues(result).Inc()
}
