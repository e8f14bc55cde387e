package utils

import (
	"github.com/prometheus/client_golang/prometheus"
)

// HTTPMetrics are the service-level prometheus collectors.
type HTTPMetrics struct {
	Requests         *prometheus.CounterVec
	Latency          *prometheus.HistogramVec
	AnalysesTotal    prometheus.Counter
	KeywordsAnalyzed prometheus.Counter
}

func NewHTTPMetrics(reg prometheus.Registerer) *HTTPMetrics {
	m := &HTTPMetrics{
		Requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "clarity_http_requests_total",
			Help: "HTTP requests by method, path and status.",
		}, []string{"method", "path", "status"}),
		Latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "clarity_http_request_duration_seconds",
			Help:    "HTTP request latency.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method", "path"}),
		AnalysesTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clarity_analyses_total",
			Help: "Completed analysis runs.",
		}),
		KeywordsAnalyzed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "clarity_keywords_analyzed_total",
			Help: "Keywords processed across all analyses.",
		}),
	}
	reg.MustRegister(m.Requests, m.Latency, m.AnalysesTotal, m.KeywordsAnalyzed)
	return m
}
