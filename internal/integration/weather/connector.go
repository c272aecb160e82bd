package weather

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/integration/common"
	pkghttp "github.com/futig/crop-advisory/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Connector queries the WeatherAPI current conditions endpoint.
type Connector struct {
	config    config.WeatherConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(cfg config.WeatherConnectorConfig, logger *zap.Logger) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKeyParam("key", cfg.APIKey)),
		config:    cfg,
		logger:    logger,
	}
}

// Current fetches current conditions for city. Every failure is reported as
// entity.ErrWeatherUnavailable; the cause is kept for logs only.
func (c *Connector) Current(ctx context.Context, city string) (*entity.WeatherAPIResponse, error) {
	ctxzap.Info(ctx, "fetching current weather", zap.String("city", city))

	var resp entity.WeatherAPIResponse
	err := c.config.Retry.Do(ctx, func(ctx context.Context) error {
		resp = entity.WeatherAPIResponse{}
		return c.connector.DoRequest(ctx, http.MethodGet, c.config.CurrentEndpoint, nil, &resp, c.requestOpts(city)...)
	})
	if err != nil {
		ctxzap.Warn(ctx, "weather lookup failed", zap.String("city", city), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", entity.ErrWeatherUnavailable, err)
	}

	if resp.Location.Name == "" {
		return nil, fmt.Errorf("%w: empty location in response", entity.ErrWeatherUnavailable)
	}

	return &resp, nil
}

// requestOpts targets CurrentEndpoint directly when it is an absolute URL,
// bypassing the service base URL.
func (c *Connector) requestOpts(city string) []pkghttp.RequestOpt {
	opts := []pkghttp.RequestOpt{
		pkghttp.WithQuery("q", city),
		pkghttp.WithQuery("aqi", "no"),
	}
	if u, err := url.Parse(c.config.CurrentEndpoint); err == nil && u.IsAbs() {
		opts = append(opts, pkghttp.WithURL(c.config.CurrentEndpoint))
	}
	return opts
}
