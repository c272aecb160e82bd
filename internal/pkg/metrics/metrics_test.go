package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := NewMetrics()

	m.IncFragment("chart", "Plotly.js Chart")
	m.IncFragment("chart", "Plotly.js Chart")
	m.IncFallback("empty")
	m.IncUpstreamError("llm")
	m.IncWeatherCacheHit()

	assert.Equal(t, 2.0, testutil.ToFloat64(m.FragmentsTotal.WithLabelValues("chart", "Plotly.js Chart")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.FallbacksTotal.WithLabelValues("empty")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamErrors.WithLabelValues("llm")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.WeatherCacheHits))
}

func TestHandler(t *testing.T) {
	m := NewMetrics()
	m.IncFallback("upstream_error")

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `crop_advisory_placeholder_fallbacks_total{reason="upstream_error"} 1`)
}
