package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// completionBuckets split the 0-100 completion score into deciles.
var completionBuckets = prometheus.LinearBuckets(10, 10, 10)

// Manager owns the service's Prometheus metrics. A nil or disabled Manager
// records nothing.
type Manager struct {
	namespace      string
	subsystem      string
	latencyBuckets []float64
	enabled        bool
	registry       *prometheus.Registry

	// Resume content
	completionScore  prometheus.Histogram
	resumesSaved     prometheus.Counter
	resumesDeleted   prometheus.Counter
	validationFailed *prometheus.CounterVec

	// Wizard navigation
	wizardTransitions *prometheus.CounterVec

	// Export and uploads
	exportDuration prometheus.Histogram
	exportErrors   prometheus.Counter
	uploads        *prometheus.CounterVec

	// HTTP
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
	rateLimited         *prometheus.CounterVec
}

// NewManager creates a metrics manager. Without WithPrometheusRegistry it
// registers on a fresh registry of its own.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:      "resume",
		subsystem:      "builder",
		latencyBuckets: prometheus.DefBuckets,
		enabled:        true,
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.registry == nil {
		m.registry = prometheus.NewRegistry()
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.completionScore = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "completion_score",
		Help:      "Completion score of resumes when they are saved or scored",
		Buckets:   completionBuckets,
	})

	m.resumesSaved = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resumes_saved_total",
		Help:      "Total number of resume create and update operations",
	})

	m.resumesDeleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "resumes_deleted_total",
		Help:      "Total number of deleted resumes",
	})

	m.validationFailed = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "step_validation_failures_total",
			Help:      "Step validations that reported at least one violation, by step",
		},
		[]string{"step"},
	)

	m.wizardTransitions = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "wizard_transitions_total",
			Help:      "Wizard navigation attempts by direction, starting step and outcome",
		},
		[]string{"direction", "step", "outcome"},
	)

	m.exportDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pdf_export_duration_seconds",
		Help:      "Time spent printing resumes to PDF",
		Buckets:   m.latencyBuckets,
	})

	m.exportErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "pdf_export_errors_total",
		Help:      "Total number of failed PDF exports",
	})

	m.uploads = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "image_uploads_total",
			Help:      "Image uploads by form field and outcome",
		},
		[]string{"field", "outcome"},
	)

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "Total number of HTTP requests by route, method and status code",
		},
		[]string{"route", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.latencyBuckets,
		},
		[]string{"route", "method"},
	)

	m.rateLimited = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "rate_limited_requests_total",
			Help:      "Requests rejected by the rate limiter, by method",
		},
		[]string{"method"},
	)
}

func (m *Manager) on() bool {
	return m != nil && m.enabled
}

// Enabled reports whether the manager records metrics.
func (m *Manager) Enabled() bool {
	return m.on()
}

// ObserveCompletion records a completion score.
func (m *Manager) ObserveCompletion(score int) {
	if m.on() {
		m.completionScore.Observe(float64(score))
	}
}

// RecordResumeSaved counts a create or update and records its score.
func (m *Manager) RecordResumeSaved(score int) {
	if m.on() {
		m.resumesSaved.Inc()
		m.completionScore.Observe(float64(score))
	}
}

// RecordResumeDeleted counts a deletion.
func (m *Manager) RecordResumeDeleted() {
	if m.on() {
		m.resumesDeleted.Inc()
	}
}

// RecordValidationFailure counts a failed step validation.
func (m *Manager) RecordValidationFailure(step string) {
	if m.on() {
		m.validationFailed.WithLabelValues(step).Inc()
	}
}

// RecordTransition counts a wizard navigation attempt. direction is
// "advance" or "retreat"; outcome is "moved", "refused" or the emitted signal.
func (m *Manager) RecordTransition(direction, step, outcome string) {
	if m.on() {
		m.wizardTransitions.WithLabelValues(direction, step, outcome).Inc()
	}
}

// RecordExport records one PDF export attempt.
func (m *Manager) RecordExport(d time.Duration, err error) {
	if !m.on() {
		return
	}
	if err != nil {
		m.exportErrors.Inc()
		return
	}
	m.exportDuration.Observe(d.Seconds())
}

// RecordUpload counts an image upload. outcome is "stored" or "rejected".
func (m *Manager) RecordUpload(field, outcome string) {
	if m.on() {
		m.uploads.WithLabelValues(field, outcome).Inc()
	}
}

// RecordHTTPRequest records one served request.
func (m *Manager) RecordHTTPRequest(route, method string, status int, d time.Duration) {
	if !m.on() {
		return
	}
	m.httpRequests.WithLabelValues(route, method, strconv.Itoa(status)).Inc()
	m.httpRequestDuration.WithLabelValues(route, method).Observe(d.Seconds())
}

// RecordRateLimited counts a request rejected by the rate limiter.
func (m *Manager) RecordRateLimited(method string) {
	if m.on() {
		m.rateLimited.WithLabelValues(method).Inc()
	}
}

// Registry returns the registry the metrics are registered on.
func (m *Manager) Registry() *prometheus.Registry {
	return m.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Manager) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
