package advisory

import (
	"context"
	"testing"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestRecommend(t *testing.T) {
	uc := NewUsecase(validator.New(), zap.NewNop())
	req := &entity.AdvisoryRequest{
		Location:          "Karnal, Haryana",
		FarmSize:          entity.FarmSizeSmall,
		SoilType:          entity.SoilClay,
		Budget:            entity.BudgetLow,
		FarmingExperience: entity.ExperienceBeginner,
		PreviousCrop:      "rice",
	}

	res, err := uc.Recommend(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, res.Recommendations, 3)
	assert.Equal(t, "Wheat", res.Recommendations[0].Crop)
	assert.Equal(t, 85, res.Recommendations[0].Profitability)
	assert.Equal(t, entity.RiskLow, res.Recommendations[0].RiskLevel)
	assert.Equal(t, "Mustard", res.Recommendations[1].Crop)
	assert.Equal(t, "Chickpea", res.Recommendations[2].Crop)
	assert.Equal(t, "18-28°C", res.Weather.Temperature)
	assert.Equal(t, "up", res.Market.Trend)
	assert.Len(t, res.Soil.Recommendations, 3)
	assert.Equal(t, "rice", res.Form.PreviousCrop)
}

func TestRecommend_ResultsAreIndependent(t *testing.T) {
	uc := NewUsecase(validator.New(), zap.NewNop())
	req := &entity.AdvisoryRequest{
		Location: "Indore", FarmSize: entity.FarmSizeLarge, SoilType: entity.SoilMixed,
		Budget: entity.BudgetHigh, FarmingExperience: entity.ExperienceExperienced,
	}

	first, err := uc.Recommend(context.Background(), req)
	require.NoError(t, err)
	first.Recommendations[0].Reasons[0] = "changed"

	second, err := uc.Recommend(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "Excellent soil compatibility with your clay-loam soil", second.Recommendations[0].Reasons[0])
}

func TestRecommend_InvalidForm(t *testing.T) {
	uc := NewUsecase(validator.New(), zap.NewNop())

	_, err := uc.Recommend(context.Background(), &entity.AdvisoryRequest{Location: "Indore"})

	assert.ErrorIs(t, err, entity.ErrMissingField)
}
