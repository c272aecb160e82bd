package llm

import (
	"context"
	"fmt"
	"strings"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// MockConnector returns a canned market analysis shaped like a real model answer.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Generate(ctx context.Context, prompt string) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating content via LLM", zap.Int("prompt_length", len(prompt)))

	crop := "Crop"
	if i := strings.Index(prompt, "for "); i >= 0 {
		rest := prompt[i+4:]
		if j := strings.IndexAny(rest, " \n"); j > 0 {
			crop = rest[:j]
		}
	}

	return fmt.Sprintf(mockAnalysis, crop, crop), nil
}

const mockAnalysis = "## 1. State-wise Price Comparison\n\n" +
	"<table>\n<tr><th>State</th><th>Current Price (INR/quintal)</th><th>Previous Month</th><th>Change %%</th></tr>\n" +
	"<tr><td>Punjab</td><td>2250</td><td>2180</td><td>+3.2</td></tr>\n" +
	"<tr><td>Haryana</td><td>2230</td><td>2200</td><td>+1.4</td></tr>\n" +
	"<tr><td>Uttar Pradesh</td><td>2140</td><td>2190</td><td>-2.3</td></tr>\n" +
	"</table>\n\n" +
	"## 2. Price Trend\n\n" +
	"```html\n<div id=\"plotly-trend\"></div>\n" +
	"<script>Plotly.newPlot('plotly-trend', [{x: ['Jan','Feb','Mar'], y: [2180, 2210, 2250], type: 'scatter'}], {title: '%s price trend'});</script>\n```\n\n" +
	"## 3. Market Analysis\n\n" +
	"Prices for %s remain firm on steady procurement and moderate arrivals.\n\n\n\n" +
	"## 4. Supply Chain\n\n" +
	"<div class=\"data-table\"><table>\n<tr><th>Stage</th><th>Cost Share</th></tr>\n" +
	"<tr><td>Farm gate</td><td>62%%</td></tr>\n<tr><td>Transport</td><td>11%%</td></tr>\n</table></div>\n"
