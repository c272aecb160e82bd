package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echo struct {
	Crop string `json:"crop"`
}

func TestDoRequest_SendsJSONAndQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/generate", r.URL.Path)
		assert.Equal(t, "no", r.URL.Query().Get("aqi"))
		assert.Equal(t, "secret", r.URL.Query().Get("key"))
		assert.Equal(t, "hdr-secret", r.Header.Get("X-Goog-Api-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"crop":"wheat"}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL},
		WithRequestLogging(),
		WithAPIKeyParam("key", "secret"),
		WithAPIKeyHeader("x-goog-api-key", "hdr-secret"),
	)

	var out echo
	err := c.DoRequest(context.Background(), http.MethodPost, "/v1/generate", echo{Crop: "rice"}, &out,
		WithQuery("aqi", "no"))

	require.NoError(t, err)
	assert.Equal(t, "wheat", out.Crop)
}

func TestDoRequest_StatusError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"error":{"code":403}}`))
	}))
	defer srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: srv.URL})
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusForbidden, httpErr.HTTPStatus())
	assert.Contains(t, httpErr.Message, `"code":403`)
}

func TestDoRequest_NetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	addr := srv.URL
	srv.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: addr})
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.True(t, netErr.Transient())
}

func TestRedaction(t *testing.T) {
	u, err := url.Parse("https://api.example.com/v1/current.json?key=abc&q=Pune")
	require.NoError(t, err)

	got := redactURL(u)
	assert.NotContains(t, got, "abc")
	assert.Contains(t, got, "q=Pune")

	h := http.Header{}
	h.Set("X-Goog-Api-Key", "abc")
	h.Set("Accept", "application/json")
	out := redactHeaders(h)
	assert.Equal(t, redacted, out.Get("X-Goog-Api-Key"))
	assert.Equal(t, "application/json", out.Get("Accept"))
	assert.Equal(t, "abc", h.Get("X-Goog-Api-Key"))
}

func TestNewClient_UserAgent(t *testing.T) {
	var got []string
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		got = append(got, r.Header.Get("User-Agent"))
	}))
	defer srv.Close()

	client := NewClient(WithUserAgent("crop-advisory/test"))

	resp, err := client.Get(srv.URL)
	require.NoError(t, err)
	resp.Body.Close()

	req, err := http.NewRequest(http.MethodGet, srv.URL, nil)
	require.NoError(t, err)
	req.Header.Set("User-Agent", "custom")
	resp, err = client.Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, []string{"crop-advisory/test", "custom"}, got)
}
