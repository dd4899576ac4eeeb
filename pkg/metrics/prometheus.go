package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sitelens/website-profiler/pkg/interfaces"
)

// PrometheusCollector implements metrics collection using Prometheus
type PrometheusCollector struct {
	serviceName string

	// HTTP metrics
	httpRequestsTotal    *prometheus.CounterVec
	httpRequestDuration  *prometheus.HistogramVec
	httpRequestsInFlight prometheus.Gauge

	// Business metrics
	analysisTotal    *prometheus.CounterVec
	analysisDuration *prometheus.HistogramVec
	cacheLookups     *prometheus.CounterVec
}

// NewPrometheusCollector creates a new Prometheus metrics collector
func NewPrometheusCollector(serviceName string) *PrometheusCollector {
	return &PrometheusCollector{
		serviceName: serviceName,

		httpRequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "http_requests_total",
				Help: "Total number of HTTP requests",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"method", "path", "status"},
		),

		httpRequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "http_request_duration_seconds",
				Help: "HTTP request duration in seconds",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method", "path", "status"},
		),

		httpRequestsInFlight: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "http_requests_in_flight",
				Help: "Number of HTTP requests currently being processed",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
		),

		analysisTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "website_profile_total",
				Help: "Total number of website profile analyses",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"status"},
		),

		analysisDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name: "website_profile_duration_seconds",
				Help: "Website profile analysis duration in seconds",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
				Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30},
			},
			[]string{"status"},
		),

		cacheLookups: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "profile_cache_lookups_total",
				Help: "Total number of profile cache lookups",
				ConstLabels: prometheus.Labels{
					"service": serviceName,
				},
			},
			[]string{"result"},
		),
	}
}

// GetCollectors returns all Prometheus collectors for registration
func (p *PrometheusCollector) GetCollectors() []prometheus.Collector {
	return []prometheus.Collector{
		p.httpRequestsTotal,
		p.httpRequestDuration,
		p.httpRequestsInFlight,
		p.analysisTotal,
		p.analysisDuration,
		p.cacheLookups,
	}
}

// RecordRequest records HTTP request metrics
func (p *PrometheusCollector) RecordRequest(method, path string, statusCode int, duration float64) {
	status := statusCodeToString(statusCode)

	p.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	p.httpRequestDuration.WithLabelValues(method, path, status).Observe(duration)
}

// RecordAnalysis records website profile analysis metrics
func (p *PrometheusCollector) RecordAnalysis(success bool, duration float64) {
	status := "success"
	if !success {
		status = "failure"
	}

	p.analysisTotal.WithLabelValues(status).Inc()
	p.analysisDuration.WithLabelValues(status).Observe(duration)
}

// RecordCacheLookup records a profile cache hit or miss
func (p *PrometheusCollector) RecordCacheLookup(hit bool) {
	result := "hit"
	if !hit {
		result = "miss"
	}

	p.cacheLookups.WithLabelValues(result).Inc()
}

// IncRequestsInFlight increments the in-flight requests gauge
func (p *PrometheusCollector) IncRequestsInFlight() {
	p.httpRequestsInFlight.Inc()
}

// DecRequestsInFlight decrements the in-flight requests gauge
func (p *PrometheusCollector) DecRequestsInFlight() {
	p.httpRequestsInFlight.Dec()
}

// statusCodeToString converts HTTP status code to string category
func statusCodeToString(code int) string {
	switch {
	case code >= 200 && code < 300:
		return "2xx"
	case code >= 300 && code < 400:
		return "3xx"
	case code >= 400 && code < 500:
		return "4xx"
	case code >= 500:
		return "5xx"
	default:
		return "unknown"
	}
}

// Ensure PrometheusCollector implements interfaces.MetricsCollector
var _ interfaces.MetricsCollector = (*PrometheusCollector)(nil)
