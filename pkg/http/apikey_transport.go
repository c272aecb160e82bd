package http

import "net/http"

// apiKeyTransport attaches a static API key to every outbound request,
// either as a header or as a query parameter.
type apiKeyTransport struct {
	header    string
	param     string
	key       string
	transport http.RoundTripper
}

func (t *apiKeyTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if t.key == "" {
		return t.transport.RoundTrip(req)
	}

	reqCopy := req.Clone(req.Context())
	if t.header != "" {
		reqCopy.Header.Set(t.header, t.key)
	}
	if t.param != "" {
		q := reqCopy.URL.Query()
		q.Set(t.param, t.key)
		reqCopy.URL.RawQuery = q.Encode()
	}

	return t.transport.RoundTrip(reqCopy)
}

// WithAPIKeyHeader sends key in the given request header.
func WithAPIKeyHeader(header, key string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &apiKeyTransport{header: header, key: key, transport: rt}
	})
}

// WithAPIKeyParam sends key as the given query parameter.
func WithAPIKeyParam(param, key string) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &apiKeyTransport{param: param, key: key, transport: rt}
	})
}
