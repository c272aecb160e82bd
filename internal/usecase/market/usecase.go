package market

import (
	"context"
	"fmt"
	"time"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/extractor"
	"github.com/futig/crop-advisory/internal/pkg/formatter"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/metrics"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	upstreamService = "llm"

	fallbackEmpty    = "empty"
	fallbackUpstream = "upstream_error"
)

// MarketUsecase produces crop market intelligence reports
type MarketUsecase struct {
	generator    TextGenerator
	extractor    ContentExtractor
	placeholders *PlaceholderGenerator
	formatters   *formatter.Factory
	validator    *validator.Validator
	metrics      *metrics.Metrics
	logger       *zap.Logger
	now          func() time.Time

	inflight singleflight.Group
}

// NewUsecase creates a new market use case
func NewUsecase(
	generator TextGenerator,
	extractor ContentExtractor,
	placeholders *PlaceholderGenerator,
	formatters *formatter.Factory,
	validator *validator.Validator,
	metrics *metrics.Metrics,
	logger *zap.Logger,
) *MarketUsecase {
	return &MarketUsecase{
		generator:    generator,
		extractor:    extractor,
		placeholders: placeholders,
		formatters:   formatters,
		validator:    validator,
		metrics:      metrics,
		logger:       logger,
		now:          time.Now,
	}
}

// Analyze returns the market report for crop. Generation failures never fail
// the call: the report then carries placeholders and a notice.
func (uc *MarketUsecase) Analyze(ctx context.Context, crop string) (*entity.MarketReport, error) {
	crop, err := uc.validator.ValidateCrop(crop)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithAction(ctx, "market_analysis")
	ctx = logger.WithCrop(ctx, crop)

	// The shared call outlives any single caller's cancellation.
	shareCtx := context.WithoutCancel(ctx)
	v, _, shared := uc.inflight.Do(crop, func() (any, error) {
		return uc.analyze(shareCtx, crop), nil
	})
	if shared {
		ctxzap.Debug(ctx, "joined in-flight market analysis")
	}

	report := *v.(*entity.MarketReport)
	return &report, nil
}

func (uc *MarketUsecase) analyze(ctx context.Context, crop string) *entity.MarketReport {
	start := time.Now()
	text, err := uc.generator.Generate(ctx, BuildPrompt(crop))
	uc.metrics.ObserveUpstream(upstreamService, time.Since(start).Seconds())

	if err != nil {
		uc.metrics.IncUpstreamError(upstreamService)
		uc.metrics.IncFallback(fallbackUpstream)
		ctxzap.Warn(ctx, "market analysis generation failed, serving placeholders", zap.Error(err))

		return &entity.MarketReport{
			Crop:        crop,
			Charts:      []entity.Visualization{uc.placeholders.Chart(crop)},
			Tables:      []entity.Visualization{uc.placeholders.Table(crop)},
			Analysis:    uc.placeholders.Analysis(crop),
			Placeholder: true,
			Notice:      Notice(err),
			GeneratedAt: uc.now(),
		}
	}

	res := uc.extractor.Extract(text)
	report := &entity.MarketReport{
		Crop:        crop,
		Charts:      toVisualizations(res.Charts),
		Tables:      toVisualizations(res.Tables),
		Analysis:    res.Residual,
		GeneratedAt: uc.now(),
	}

	for _, f := range res.Fragments() {
		uc.metrics.IncFragment(string(f.Kind), string(f.Category))
	}

	if res.Empty() {
		uc.metrics.IncFallback(fallbackEmpty)
		report.Charts = []entity.Visualization{uc.placeholders.Chart(crop)}
		report.Tables = []entity.Visualization{uc.placeholders.Table(crop)}
		report.Placeholder = true
	}

	ctxzap.Info(ctx, "market analysis ready",
		zap.Int("charts", len(res.Charts)),
		zap.Int("tables", len(res.Tables)),
		zap.Int("analysis_length", len(report.Analysis)),
		zap.Bool("placeholder", report.Placeholder),
	)

	return report
}

// Report runs Analyze and exports the result in the requested format.
func (uc *MarketUsecase) Report(ctx context.Context, crop, format string) (*entity.ReportFile, error) {
	resultFormat, err := uc.validator.ValidateFormat(format)
	if err != nil {
		return nil, err
	}

	report, err := uc.Analyze(ctx, crop)
	if err != nil {
		return nil, err
	}

	f, err := uc.formatters.Create(resultFormat)
	if err != nil {
		return nil, err
	}

	content, err := f.Format(report)
	if err != nil {
		return nil, fmt.Errorf("format %s report: %w", resultFormat, err)
	}

	ctxzap.Info(ctx, "market report exported",
		zap.String("crop", report.Crop),
		zap.String("format", string(resultFormat)),
		zap.Int("bytes", len(content)),
	)

	return &entity.ReportFile{
		Name:        fmt.Sprintf("%s-market-%s%s", report.Crop, report.GeneratedAt.Format("20060102"), f.FileExtension()),
		ContentType: f.ContentType(),
		Content:     content,
	}, nil
}

func toVisualizations(fragments []extractor.Fragment) []entity.Visualization {
	out := make([]entity.Visualization, 0, len(fragments))
	for _, f := range fragments {
		out = append(out, entity.Visualization{
			ID:       f.ID,
			Kind:     string(f.Kind),
			HTML:     f.Markup,
			Type:     f.Label,
			Category: string(f.Category),
			Size:     f.Size,
			RowCount: f.RowCount,
			Title:    f.Title,
			Columns:  f.Columns,
		})
	}
	return out
}
