package market

import (
	"context"

	"github.com/futig/crop-advisory/internal/entity"
)

type MarketUsecase interface {
	Analyze(ctx context.Context, crop string) (*entity.MarketReport, error)
	Report(ctx context.Context, crop, format string) (*entity.ReportFile, error)
}
