package observability

import (
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus counters for requests, errors and ticket hand-offs.
type Metrics struct {
	requests *prometheus.CounterVec
	duration *prometheus.HistogramVec
	errors   *prometheus.CounterVec
	tickets  *prometheus.CounterVec
}

// NewMetrics builds and registers the collectors on the given registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_http_requests_total",
			Help: "HTTP requests handled, by path, method and status.",
		}, []string{"path", "method", "status"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "admin_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"path", "method"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_http_errors_total",
			Help: "Requests ending in a domain error, by error code.",
		}, []string{"path", "method", "code"}),
		tickets: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "admin_support_tickets_submitted_total",
			Help: "Support tickets handed off to the helpdesk, by ticket type and urgency.",
		}, []string{"ticket_type", "urgency"}),
	}
	reg.MustRegister(m.requests, m.duration, m.errors, m.tickets)
	return m
}

// RecordRequest increments counters for requests.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.requests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.duration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError increments error counters.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.errors.WithLabelValues(path, method, code).Inc()
}

// RecordTicketSubmitted counts a successful helpdesk hand-off.
func (m *Metrics) RecordTicketSubmitted(ticketType string, urgency int) {
	if m == nil {
		return
	}
	m.tickets.WithLabelValues(ticketType, strconv.Itoa(urgency)).Inc()
}
