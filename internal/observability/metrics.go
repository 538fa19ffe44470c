package observability

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics owns the prometheus registry and the service instruments. A nil
// *Metrics is valid and records nothing, so callers never need to guard.
type Metrics struct {
	registry *prometheus.Registry

	httpRequests *prometheus.CounterVec
	httpErrors   *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec

	ticketsCreated prometheus.Counter
	statusChanges  *prometheus.CounterVec
	commentsAdded  *prometheus.CounterVec
}

// NewMetrics initializes a dedicated registry with the service instruments
// and standard process collectors registered.
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{registry: prometheus.NewRegistry()}

	m.httpRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "requests_total",
		Help:      "HTTP requests processed, labeled by path, method and status.",
	}, []string{"path", "method", "status"})

	m.httpErrors = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "errors_total",
		Help:      "Failed HTTP requests, labeled by path, method and error code.",
	}, []string{"path", "method", "code"})

	m.httpDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: namespace,
		Subsystem: "http",
		Name:      "request_duration_seconds",
		Help:      "HTTP request latency.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"path", "method"})

	m.ticketsCreated = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "tickets_created_total",
		Help:      "Tickets created since process start.",
	})

	m.statusChanges = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_status_changes_total",
		Help:      "Ticket status transitions, labeled by old and new status.",
	}, []string{"from", "to"})

	m.commentsAdded = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "ticket_comments_total",
		Help:      "Comments added to tickets, labeled by visibility.",
	}, []string{"visibility"})

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequests,
		m.httpErrors,
		m.httpDuration,
		m.ticketsCreated,
		m.statusChanges,
		m.commentsAdded,
	)
	return m
}

// RecordRequest counts a finished request and observes its latency.
func (m *Metrics) RecordRequest(path, method string, status int, duration time.Duration) {
	if m == nil {
		return
	}
	m.httpRequests.WithLabelValues(path, method, strconv.Itoa(status)).Inc()
	m.httpDuration.WithLabelValues(path, method).Observe(duration.Seconds())
}

// RecordError counts a request that ended in a mapped error code.
func (m *Metrics) RecordError(path, method, code string) {
	if m == nil {
		return
	}
	m.httpErrors.WithLabelValues(path, method, code).Inc()
}

// TicketCreated counts a new ticket.
func (m *Metrics) TicketCreated() {
	if m == nil {
		return
	}
	m.ticketsCreated.Inc()
}

// StatusChanged counts a status transition.
func (m *Metrics) StatusChanged(from, to string) {
	if m == nil {
		return
	}
	m.statusChanges.WithLabelValues(from, to).Inc()
}

// CommentAdded counts a new comment.
func (m *Metrics) CommentAdded(visibility string) {
	if m == nil {
		return
	}
	m.commentsAdded.WithLabelValues(visibility).Inc()
}

// Handler exposes the registry for scraping.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
