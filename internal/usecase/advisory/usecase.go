package advisory

import (
	"context"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// AdvisoryUsecase handles the farm intake form. There is no recommendation
// engine yet: every valid form gets the same sample result.
type AdvisoryUsecase struct {
	validator *validator.Validator
	logger    *zap.Logger
}

func NewUsecase(validator *validator.Validator, logger *zap.Logger) *AdvisoryUsecase {
	return &AdvisoryUsecase{
		validator: validator,
		logger:    logger,
	}
}

func (uc *AdvisoryUsecase) Recommend(ctx context.Context, req *entity.AdvisoryRequest) (*entity.AdvisoryResult, error) {
	if err := uc.validator.ValidateAdvisory(req); err != nil {
		return nil, err
	}

	ctx = logger.WithAction(ctx, "crop_advisory")
	ctxzap.Info(ctx, "advisory form accepted",
		zap.String("location", req.Location),
		zap.String("farm_size", string(req.FarmSize)),
		zap.String("soil_type", string(req.SoilType)),
	)

	return &entity.AdvisoryResult{
		Form:            *req,
		Recommendations: sampleRecommendations(),
		Weather:         sampleWeather,
		Market:          sampleMarket,
		Soil:            sampleSoil(),
	}, nil
}
