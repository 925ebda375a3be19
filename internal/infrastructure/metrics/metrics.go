package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"agenda_rastreadores/internal/domain/entities"
	"agenda_rastreadores/internal/usecase/interfaces"
)

const namespace = "agenda"

// Metrics owns the service collectors and the registry they are exposed from.
type Metrics struct {
	registry *prometheus.Registry

	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	mutationsTotal      *prometheus.CounterVec
	transitionsTotal    *prometheus.CounterVec
	auditWritesTotal    *prometheus.CounterVec
}

var _ interfaces.IMutationMetrics = (*Metrics)(nil)

func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "http_requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"handler", "method", "status"},
		),
		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "http_request_duration_seconds",
				Help:      "HTTP request duration in seconds",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"handler", "method"},
		),
		// intent: known intents plus none/unknown, outcome: ok/invalid/forbidden/not_found/conflict/error
		mutationsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "installation_mutations_total",
				Help:      "Mutation requests by resolved intent and outcome",
			},
			[]string{"intent", "outcome"},
		),
		transitionsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "installation_transitions_total",
				Help:      "Committed lifecycle transitions",
			},
			[]string{"event", "from", "to"},
		),
		auditWritesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "audit_writes_total",
				Help:      "Audit trail records written, by kind (history, observation)",
			},
			[]string{"kind"},
		),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.httpRequestsTotal,
		m.httpRequestDuration,
		m.mutationsTotal,
		m.transitionsTotal,
		m.auditWritesTotal,
	)
	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

func (m *Metrics) ObserveHTTP(handler, method string, status int, elapsed time.Duration) {
	m.httpRequestDuration.WithLabelValues(handler, method).Observe(elapsed.Seconds())
	m.httpRequestsTotal.WithLabelValues(handler, method, strconv.Itoa(status)).Inc()
}

func (m *Metrics) ObserveMutation(intent, outcome string) {
	m.mutationsTotal.WithLabelValues(intent, outcome).Inc()
}

func (m *Metrics) ObserveTransition(event, from, to string) {
	m.transitionsTotal.WithLabelValues(event, statusLabel(from), statusLabel(to)).Inc()
}

// statusLabel folds free-form statuses into "other".
func statusLabel(status string) string {
	switch entities.InstallationStatus(status) {
	case entities.StatusPendente, entities.StatusAgendado, entities.StatusConcluido, entities.StatusReagendar:
		return status
	}
	return "other"
}

func (m *Metrics) ObserveAuditWrite(kind string) {
	m.auditWritesTotal.WithLabelValues(kind).Inc()
}
