package llm

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/entity"
	pkgRetry "github.com/futig/crop-advisory/internal/pkg/retry"
	pkghttp "github.com/futig/crop-advisory/pkg/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

func genaiConfig(url string) config.LLMConnectorConfig {
	return config.LLMConnectorConfig{
		HTTPClientConfig: config.HTTPClientConfig{
			RequestTimeout: 5 * time.Second,
			Url:            url,
		},
		Provider:        config.ProviderGenAI,
		APIKey:          "test-key",
		Model:           "gemini-test",
		Temperature:     0.7,
		TopK:            40,
		TopP:            0.95,
		MaxOutputTokens: 256,
		Retry:           pkgRetry.RetryConfig{Attempts: 1},
	}
}

func newGenAIServer(t *testing.T, status int, body string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.True(t, strings.HasSuffix(r.URL.Path, "gemini-test:generateContent"), r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("x-goog-api-key"))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestGenAIGenerate_Success(t *testing.T) {
	srv := newGenAIServer(t, http.StatusOK,
		`{"candidates":[{"content":{"role":"model","parts":[{"text":"Wheat outlook"}]},"finishReason":"STOP"}]}`)

	conn, err := NewGenAIConnector(context.Background(), genaiConfig(srv.URL), zap.NewNop())
	require.NoError(t, err)

	text, err := conn.Generate(context.Background(), "prompt")

	require.NoError(t, err)
	assert.Equal(t, "Wheat outlook", text)
}

func TestGenAIGenerate_StatusClassification(t *testing.T) {
	t.Run("forbidden", func(t *testing.T) {
		srv := newGenAIServer(t, http.StatusForbidden,
			`{"error":{"code":403,"message":"API key not valid","status":"PERMISSION_DENIED"}}`)
		conn, err := NewGenAIConnector(context.Background(), genaiConfig(srv.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = conn.Generate(context.Background(), "prompt")

		require.Error(t, err)
		assert.ErrorIs(t, err, entity.ErrGenerationUnauthorized)
	})

	t.Run("server error", func(t *testing.T) {
		srv := newGenAIServer(t, http.StatusInternalServerError,
			`{"error":{"code":500,"message":"internal","status":"INTERNAL"}}`)
		conn, err := NewGenAIConnector(context.Background(), genaiConfig(srv.URL), zap.NewNop())
		require.NoError(t, err)

		_, err = conn.Generate(context.Background(), "prompt")

		var apiErr *APIError
		require.True(t, errors.As(err, &apiErr))
		assert.Equal(t, http.StatusInternalServerError, apiErr.Status)
		assert.ErrorIs(t, err, entity.ErrGenerationAPI)
	})
}

func TestFromSDKError(t *testing.T) {
	testCases := []struct {
		name       string
		in         error
		wantStatus int
	}{
		{"value", genai.APIError{Code: http.StatusForbidden, Message: "denied"}, http.StatusForbidden},
		{"pointer", &genai.APIError{Code: http.StatusTooManyRequests, Message: "slow down"}, http.StatusTooManyRequests},
		{"wrapped value", errors.Join(errors.New("call"), genai.APIError{Code: http.StatusBadGateway}), http.StatusBadGateway},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var httpErr *pkghttp.HTTPError
			require.True(t, errors.As(fromSDKError(tc.in), &httpErr))
			assert.Equal(t, tc.wantStatus, httpErr.StatusCode)
		})
	}

	t.Run("transport failure is transient", func(t *testing.T) {
		err := fromSDKError(&url.Error{Op: "Post", URL: "http://x", Err: errors.New("connection refused")})

		var netErr *pkghttp.NetworkError
		require.True(t, errors.As(err, &netErr))
		assert.True(t, pkgRetry.IsRetryable(err))
	})

	t.Run("other errors pass through", func(t *testing.T) {
		plain := errors.New("boom")
		assert.Same(t, plain, fromSDKError(plain))
	})
}
