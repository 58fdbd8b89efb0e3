// Package metrics provides Prometheus metrics for the objection handler
package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Status label values
const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRejected  = "rejected"
)

// Metrics holds all Prometheus metrics for the service
type Metrics struct {
	registry *prometheus.Registry

	// HTTP request metrics
	HTTPRequestsTotal   *prometheus.CounterVec
	HTTPRequestDuration *prometheus.HistogramVec
	RateLimitedTotal    prometheus.Counter

	// Pipeline metrics
	PipelineRunsTotal     *prometheus.CounterVec
	PipelineDuration      prometheus.Histogram
	StageDuration         *prometheus.HistogramVec
	StageFallbacksTotal   *prometheus.CounterVec
	HistorySize           prometheus.Gauge
	CompletionTokensTotal *prometheus.CounterVec
}

// New creates all metrics on a dedicated registry
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	factory := promauto.With(reg)

	m := &Metrics{registry: reg}

	// HTTP request metrics
	m.HTTPRequestsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "objection_http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	m.HTTPRequestDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "objection_http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)

	m.RateLimitedTotal = factory.NewCounter(
		prometheus.CounterOpts{
			Name: "objection_rate_limited_total",
			Help: "Total number of requests rejected by the rate limiter",
		},
	)

	// Pipeline metrics
	m.PipelineRunsTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "objection_pipeline_runs_total",
			Help: "Total number of pipeline runs by terminal status",
		},
		[]string{"status"},
	)

	m.PipelineDuration = factory.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "objection_pipeline_duration_seconds",
			Help:    "End-to-end pipeline duration in seconds",
			Buckets: []float64{.25, .5, 1, 2, 4, 8, 16, 32, 64},
		},
	)

	m.StageDuration = factory.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "objection_stage_duration_seconds",
			Help:    "Duration of each subagent stage in seconds",
			Buckets: []float64{.1, .25, .5, 1, 2, 4, 8, 16, 32},
		},
		[]string{"stage"},
	)

	m.StageFallbacksTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "objection_stage_fallbacks_total",
			Help: "Total number of stage outputs replaced by the documented default",
		},
		[]string{"stage"},
	)

	m.HistorySize = factory.NewGauge(
		prometheus.GaugeOpts{
			Name: "objection_history_size",
			Help: "Number of items currently held in the rolling conversation history",
		},
	)

	m.CompletionTokensTotal = factory.NewCounterVec(
		prometheus.CounterOpts{
			Name: "objection_completion_tokens_total",
			Help: "Tokens consumed by model calls",
		},
		[]string{"stage", "direction"},
	)

	return m
}

// Handler exposes the registry in the Prometheus text format
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// RecordHTTPRequest records an HTTP request with its status
func (m *Metrics) RecordHTTPRequest(method, route, status string, duration time.Duration) {
	m.HTTPRequestsTotal.WithLabelValues(method, route, status).Inc()
	m.HTTPRequestDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

// RecordRateLimited counts a rejected request
func (m *Metrics) RecordRateLimited() {
	m.RateLimitedTotal.Inc()
}

// RecordPipeline records one pipeline run
func (m *Metrics) RecordPipeline(status string, duration time.Duration) {
	m.PipelineRunsTotal.WithLabelValues(status).Inc()
	if status != StatusRejected {
		m.PipelineDuration.Observe(duration.Seconds())
	}
}

// RecordStage records the duration of one stage
func (m *Metrics) RecordStage(stage string, duration time.Duration) {
	m.StageDuration.WithLabelValues(stage).Observe(duration.Seconds())
}

// RecordFallback counts a stage whose output was replaced by its default
func (m *Metrics) RecordFallback(stage string) {
	m.StageFallbacksTotal.WithLabelValues(stage).Inc()
}

// RecordTokens adds token usage for a stage
func (m *Metrics) RecordTokens(stage string, input, output int) {
	if input > 0 {
		m.CompletionTokensTotal.WithLabelValues(stage, "input").Add(float64(input))
	}
	if output > 0 {
		m.CompletionTokensTotal.WithLabelValues(stage, "output").Add(float64(output))
	}
}

// SetHistorySize updates the history gauge
func (m *Metrics) SetHistorySize(n int) {
	m.HistorySize.Set(float64(n))
}
