package http

import (
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const redacted = "REDACTED"

// context keys for attaching request metadata
type payloadContextKey struct{}

var sensitiveHeaders = []string{"Authorization", "X-Goog-Api-Key", "X-Api-Key"}

var sensitiveParams = []string{"key", "api_key", "token"}

type logTransport struct {
	transport http.RoundTripper
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", redactURL(req.URL)),
		zap.Any("headers", redactHeaders(req.Header)),
	}

	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.Int("payload_bytes", len(payload)))
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	start := time.Now()
	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed", zap.Error(err), zap.Duration("duration", time.Since(start)))
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)),
	)

	return resp, nil
}

func redactHeaders(h http.Header) http.Header {
	out := h.Clone()
	for _, name := range sensitiveHeaders {
		if out.Get(name) != "" {
			out.Set(name, redacted)
		}
	}
	return out
}

func redactURL(u *url.URL) string {
	if u == nil {
		return ""
	}
	clone := *u
	q := clone.Query()
	changed := false
	for key := range q {
		for _, p := range sensitiveParams {
			if strings.EqualFold(key, p) {
				q.Set(key, redacted)
				changed = true
			}
		}
	}
	if changed {
		clone.RawQuery = q.Encode()
	}
	return clone.String()
}

// WithRequestLogging wraps the HTTP transport with debug logging of method, URL,
// headers and response status. Credentials are redacted.
func WithRequestLogging() HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
		}
	})
}
