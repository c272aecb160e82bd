package common

import (
	"github.com/futig/crop-advisory/internal/config"
	pkgHTTP "github.com/futig/crop-advisory/pkg/http"
	"go.uber.org/zap"
)

const userAgent = "crop-advisory/1.0"

// NewBaseConnector builds a JSON connector for an upstream service. Credential
// transports are passed in extra so each integration picks its own scheme.
func NewBaseConnector(cfg config.HTTPClientConfig, logger *zap.Logger, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		Logger:  logger,
		BaseURL: cfg.Url,
	}

	opts := []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnTimeout(cfg.ConnTimeout),
		pkgHTTP.WithKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithUserAgent(userAgent),
		pkgHTTP.WithRequestLogging(),
	}

	return pkgHTTP.NewConnector(connCfg, append(opts, extra...)...)
}
