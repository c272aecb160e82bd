package llm

import (
	"context"
	"net/http"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/integration/common"
	pkghttp "github.com/futig/crop-advisory/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const apiKeyHeader = "x-goog-api-key"

// Connector talks to the generateContent REST endpoint directly.
type Connector struct {
	config    config.LLMConnectorConfig
	connector *pkghttp.Connector
	logger    *zap.Logger
}

func NewConnector(
	cfg config.LLMConnectorConfig,
	logger *zap.Logger,
) *Connector {
	return &Connector{
		connector: common.NewBaseConnector(cfg.HTTPClientConfig, logger, pkghttp.WithAPIKeyHeader(apiKeyHeader, cfg.APIKey)),
		config:    cfg,
		logger:    logger,
	}
}

// Generate sends a single-turn prompt and returns the first candidate's text.
func (c *Connector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating content via LLM service", zap.String("model", c.config.Model))

	req := entity.GeminiGenerateRequest{
		Contents: []entity.GeminiContent{
			{Parts: []entity.GeminiPart{{Text: prompt}}},
		},
		GenerationConfig: entity.GeminiGenerationConfig{
			Temperature:     c.config.Temperature,
			TopK:            c.config.TopK,
			TopP:            c.config.TopP,
			MaxOutputTokens: c.config.MaxOutputTokens,
		},
	}

	var resp entity.GeminiGenerateResponse
	err := c.config.Retry.Do(ctx, func(ctx context.Context) error {
		resp = entity.GeminiGenerateResponse{}
		return c.connector.DoRequest(ctx, http.MethodPost, c.config.Endpoint(), req, &resp)
	})
	if err != nil {
		return "", classifyError(err)
	}

	text, err := responseText(&resp)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "content generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}
