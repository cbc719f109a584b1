package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds all Prometheus metrics
type Metrics struct {
	// Chatbot metrics
	ChatRequestsTotal      *prometheus.CounterVec
	ChatDurationSeconds    prometheus.Histogram
	IntentMatchesTotal     *prometheus.CounterVec
	FunnelCompletionsTotal prometheus.Counter

	// Recommendation metrics
	RecommendDurationSeconds prometheus.Histogram
	IndexDocuments           prometheus.Gauge

	// HTTP metrics
	HTTPErrorsTotal *prometheus.CounterVec

	// Storage metrics
	StorageWriteFailuresTotal *prometheus.CounterVec

	// Upload metrics
	UploadBytesTotal prometheus.Counter
	UploadsTotal     *prometheus.CounterVec

	// Rate limiter metrics
	RateLimiterDropped *prometheus.CounterVec
}

// New creates a new Metrics instance with all metrics registered
func New(registry *prometheus.Registry) *Metrics {
	m := &Metrics{
		// Chatbot metrics
		ChatRequestsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_chat_requests_total",
				Help: "Total number of chat requests by outcome",
			},
			[]string{"outcome"}, // outcome: intent, funnel, fallback, rate_limited
		),

		ChatDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "institute_chat_duration_seconds",
				Help:    "Chat request handling duration in seconds",
				Buckets: []float64{0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
			},
		),

		IntentMatchesTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_intent_matches_total",
				Help: "Total number of matched intents by tag",
			},
			[]string{"tag"},
		),

		FunnelCompletionsTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "institute_funnel_completions_total",
				Help: "Total number of completed recommendation funnels",
			},
		),

		// Recommendation metrics
		RecommendDurationSeconds: promauto.With(registry).NewHistogram(
			prometheus.HistogramOpts{
				Name:    "institute_recommend_duration_seconds",
				Help:    "Recommendation scoring duration in seconds",
				Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
			},
		),

		IndexDocuments: promauto.With(registry).NewGauge(
			prometheus.GaugeOpts{
				Name: "institute_index_documents",
				Help: "Number of course documents in the vector index",
			},
		),

		// HTTP metrics
		HTTPErrorsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_http_errors_total",
				Help: "Total HTTP errors by type and module",
			},
			[]string{"error_type", "module"}, // error_type: bad_request, not_found, internal, etc.
		),

		// Storage metrics
		StorageWriteFailuresTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_storage_write_failures_total",
				Help: "Total number of failed storage writes by table",
			},
			[]string{"table"},
		),

		// Upload metrics
		UploadBytesTotal: promauto.With(registry).NewCounter(
			prometheus.CounterOpts{
				Name: "institute_upload_bytes_total",
				Help: "Total bytes accepted through project uploads",
			},
		),

		UploadsTotal: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_uploads_total",
				Help: "Total number of project uploads by kind and status",
			},
			[]string{"kind", "status"}, // kind: zip, files, url; status: success, error
		),

		// Rate limiter metrics
		RateLimiterDropped: promauto.With(registry).NewCounterVec(
			prometheus.CounterOpts{
				Name: "institute_rate_limiter_dropped_total",
				Help: "Total number of requests dropped by rate limiter",
			},
			[]string{"limiter_type"},
		),
	}

	return m
}

// RecordChatRequest records a chat request with its outcome
func (m *Metrics) RecordChatRequest(outcome string, duration float64) {
	m.ChatRequestsTotal.WithLabelValues(outcome).Inc()
	m.ChatDurationSeconds.Observe(duration)
}

// RecordIntentMatch records a matched intent
func (m *Metrics) RecordIntentMatch(tag string) {
	m.IntentMatchesTotal.WithLabelValues(tag).Inc()
}

// RecordFunnelCompletion records a completed recommendation funnel
func (m *Metrics) RecordFunnelCompletion() {
	m.FunnelCompletionsTotal.Inc()
}

// RecordRecommendDuration records recommendation scoring duration
func (m *Metrics) RecordRecommendDuration(duration float64) {
	m.RecommendDurationSeconds.Observe(duration)
}

// SetIndexDocuments sets the current vector index document count
func (m *Metrics) SetIndexDocuments(count int) {
	m.IndexDocuments.Set(float64(count))
}

// RecordHTTPError records HTTP error metrics
func (m *Metrics) RecordHTTPError(errorType, module string) {
	m.HTTPErrorsTotal.WithLabelValues(errorType, module).Inc()
}

// RecordStorageWriteFailure records a failed storage write
func (m *Metrics) RecordStorageWriteFailure(table string) {
	m.StorageWriteFailuresTotal.WithLabelValues(table).Inc()
}

// RecordUpload records a project upload
func (m *Metrics) RecordUpload(kind, status string, bytes int64) {
	m.UploadsTotal.WithLabelValues(kind, status).Inc()
	if bytes > 0 {
		m.UploadBytesTotal.Add(float64(bytes))
	}
}

// RecordRateLimiterDrop records a request dropped by rate limiter
func (m *Metrics) RecordRateLimiterDrop(limiterType string) {
	m.RateLimiterDropped.WithLabelValues(limiterType).Inc()
}
