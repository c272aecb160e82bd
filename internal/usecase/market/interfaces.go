package market

import (
	"context"

	"github.com/futig/crop-advisory/internal/pkg/extractor"
)

type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

type ContentExtractor interface {
	Extract(raw string) extractor.Result
}
