package llm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/entity"
	pkghttp "github.com/futig/crop-advisory/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"google.golang.org/genai"
)

// GenAIConnector generates content through the official Go SDK.
type GenAIConnector struct {
	config config.LLMConnectorConfig
	client *genai.Client
	logger *zap.Logger
}

func NewGenAIConnector(ctx context.Context, cfg config.LLMConnectorConfig, logger *zap.Logger) (*GenAIConnector, error) {
	httpClient := pkghttp.NewClient(
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnTimeout(cfg.ConnTimeout),
		pkghttp.WithKeepAlive(cfg.KeepAlive),
		pkghttp.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkghttp.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkghttp.WithRequestLogging(),
	)

	clientCfg := &genai.ClientConfig{
		APIKey:     cfg.APIKey,
		Backend:    genai.BackendGeminiAPI,
		HTTPClient: httpClient,
	}
	if cfg.Url != "" {
		clientCfg.HTTPOptions = genai.HTTPOptions{BaseURL: strings.TrimSuffix(cfg.Url, "/") + "/"}
	}

	client, err := genai.NewClient(ctx, clientCfg)
	if err != nil {
		return nil, fmt.Errorf("create genai client: %w", err)
	}

	return &GenAIConnector{
		config: cfg,
		client: client,
		logger: logger,
	}, nil
}

func (c *GenAIConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "generating content via genai SDK", zap.String("model", c.config.Model))

	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(c.config.Temperature),
		TopP:            genai.Ptr(c.config.TopP),
		TopK:            genai.Ptr(float32(c.config.TopK)),
		MaxOutputTokens: int32(c.config.MaxOutputTokens),
	}

	var resp *genai.GenerateContentResponse
	err := c.config.Retry.Do(ctx, func(ctx context.Context) error {
		r, err := c.client.Models.GenerateContent(ctx, c.config.Model, genai.Text(prompt), genCfg)
		if err != nil {
			return fromSDKError(err)
		}
		resp = r
		return nil
	})
	if err != nil {
		return "", classifyError(err)
	}

	text, err := responseText(toEnvelope(resp))
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "content generated successfully", zap.Int("result_length", len(text)))

	return text, nil
}

// fromSDKError rewrites SDK failures into the transport errors classifyError
// and the retry policy understand.
func fromSDKError(err error) error {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return &pkghttp.HTTPError{StatusCode: apiErr.Code, Message: apiErr.Message}
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return &pkghttp.HTTPError{StatusCode: apiErrPtr.Code, Message: apiErrPtr.Message}
	}
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return &pkghttp.NetworkError{Err: err}
	}
	return err
}

func toEnvelope(resp *genai.GenerateContentResponse) *entity.GeminiGenerateResponse {
	out := &entity.GeminiGenerateResponse{}
	if resp == nil {
		return out
	}
	for _, cand := range resp.Candidates {
		if cand == nil {
			continue
		}
		var gc entity.GeminiCandidate
		gc.FinishReason = string(cand.FinishReason)
		if cand.Content != nil {
			gc.Content.Role = cand.Content.Role
			for _, p := range cand.Content.Parts {
				if p == nil {
					continue
				}
				gc.Content.Parts = append(gc.Content.Parts, entity.GeminiPart{Text: p.Text})
			}
		}
		out.Candidates = append(out.Candidates, gc)
	}
	return out
}
