// internal/common/metrics/metrics.go
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests handled",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "http_request_duration_seconds",
			Help: "Duration of HTTP request handling in seconds",
		},
		[]string{"method", "path"},
	)

	RecommendationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "recommendations_total",
			Help: "Total number of recommendation sets served, by source",
		},
		[]string{"source"},
	)

	GeminiRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "gemini_request_duration_seconds",
			Help: "Duration of Gemini generate calls in seconds",
		},
		[]string{"model"},
	)

	GeminiRequestsFailed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "gemini_requests_failed_total",
			Help: "Total number of failed Gemini generate calls",
		},
		[]string{"model", "error_code"},
	)

	ParsedGiftsPerResponse = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "parsed_gifts_per_response",
			Help:    "Number of gifts extracted from a single model response",
			Buckets: prometheus.LinearBuckets(0, 1, 10),
		},
	)
)
