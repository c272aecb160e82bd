package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the application.
type Metrics struct {
	registry *prometheus.Registry

	FragmentsTotal   *prometheus.CounterVec
	FallbacksTotal   *prometheus.CounterVec
	UpstreamErrors   *prometheus.CounterVec
	UpstreamDuration *prometheus.HistogramVec
	WeatherCacheHits prometheus.Counter
}

// NewMetrics registers collectors on a private registry so tests can create
// as many instances as they need.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		FragmentsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crop_advisory_fragments_extracted_total",
			Help: "The total number of chart and table fragments extracted from generated text",
		}, []string{"kind", "category"}),
		FallbacksTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crop_advisory_placeholder_fallbacks_total",
			Help: "The total number of market reports served with placeholder content",
		}, []string{"reason"}), // 'empty', 'upstream_error'
		UpstreamErrors: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "crop_advisory_upstream_errors_total",
			Help: "The total number of failed upstream calls",
		}, []string{"service"}),
		UpstreamDuration: factory.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "crop_advisory_upstream_duration_seconds",
			Help:    "Latency of upstream calls",
			Buckets: []float64{0.1, 0.5, 1, 2.5, 5, 10, 30, 60},
		}, []string{"service"}),
		WeatherCacheHits: factory.NewCounter(prometheus.CounterOpts{
			Name: "crop_advisory_weather_cache_hits_total",
			Help: "The total number of weather lookups answered from cache",
		}),
	}
}

func (m *Metrics) IncFragment(kind, category string) {
	m.FragmentsTotal.WithLabelValues(kind, category).Inc()
}

func (m *Metrics) IncFallback(reason string) {
	m.FallbacksTotal.WithLabelValues(reason).Inc()
}

func (m *Metrics) IncUpstreamError(service string) {
	m.UpstreamErrors.WithLabelValues(service).Inc()
}

func (m *Metrics) ObserveUpstream(service string, seconds float64) {
	m.UpstreamDuration.WithLabelValues(service).Observe(seconds)
}

func (m *Metrics) IncWeatherCacheHit() {
	m.WeatherCacheHits.Inc()
}

// Handler exposes the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
