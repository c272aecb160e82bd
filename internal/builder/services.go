package builder

import (
	"context"
	"fmt"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/integration/llm"
	"github.com/futig/crop-advisory/internal/integration/weather"
	"github.com/futig/crop-advisory/internal/pkg/extractor"
	"github.com/futig/crop-advisory/internal/pkg/formatter"
	"github.com/futig/crop-advisory/internal/pkg/metrics"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	"github.com/futig/crop-advisory/internal/usecase/advisory"
	"github.com/futig/crop-advisory/internal/usecase/market"
	weatheruc "github.com/futig/crop-advisory/internal/usecase/weather"
	"go.uber.org/zap"
)

// Services holds the wired use cases shared by the server and the CLI
type Services struct {
	Market   *market.MarketUsecase
	Weather  *weatheruc.WeatherUsecase
	Advisory *advisory.AdvisoryUsecase
	Metrics  *metrics.Metrics
}

// BuildServices initializes connectors and use cases from configuration
func BuildServices(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Services, error) {
	m := metrics.NewMetrics()

	// Initialize external service connectors (with mock support)
	var textGenerator market.TextGenerator
	var weatherConnector weatheruc.WeatherConnector

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for external services")
		textGenerator = llm.NewMockConnector(logger)
		weatherConnector = weather.NewMockConnector(logger)
	} else {
		logger.Info("Using real connectors for external services",
			zap.String("llm_provider", cfg.LLMConnectorCfg.Provider),
			zap.String("llm_model", cfg.LLMConnectorCfg.Model),
		)
		switch cfg.LLMConnectorCfg.Provider {
		case config.ProviderGenAI:
			genaiConnector, err := llm.NewGenAIConnector(ctx, cfg.LLMConnectorCfg, logger)
			if err != nil {
				return nil, fmt.Errorf("create genai connector: %w", err)
			}
			textGenerator = genaiConnector
		default:
			textGenerator = llm.NewConnector(cfg.LLMConnectorCfg, logger)
		}
		weatherConnector = weather.NewConnector(cfg.WeatherConnectorCfg, logger)
	}

	v := validator.New()

	marketUC := market.NewUsecase(
		textGenerator,
		extractor.New(),
		market.NewPlaceholderGenerator(nil, nil),
		formatter.NewFactory(),
		v,
		m,
		logger,
	)

	weatherUC := weatheruc.NewUsecase(
		weatherConnector,
		v,
		m,
		cfg.WeatherConnectorCfg.CacheTTL,
		logger,
	)

	advisoryUC := advisory.NewUsecase(v, logger)
	logger.Info("Use cases initialized")

	return &Services{
		Market:   marketUC,
		Weather:  weatherUC,
		Advisory: advisoryUC,
		Metrics:  m,
	}, nil
}
