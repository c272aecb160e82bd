package validator

import (
	"testing"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAdvisory() *entity.AdvisoryRequest {
	return &entity.AdvisoryRequest{
		Location:          " Ludhiana, Punjab ",
		FarmSize:          entity.FarmSizeMedium,
		SoilType:          entity.SoilLoamy,
		Budget:            entity.BudgetMedium,
		FarmingExperience: entity.ExperienceIntermediate,
	}
}

func TestValidateCrop(t *testing.T) {
	v := New()

	crop, err := v.ValidateCrop("  Wheat ")
	require.NoError(t, err)
	assert.Equal(t, "wheat", crop)

	_, err = v.ValidateCrop("durian")
	assert.ErrorIs(t, err, entity.ErrUnsupportedCrop)

	_, err = v.ValidateCrop(" ")
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestValidateCity(t *testing.T) {
	v := New()

	city, err := v.ValidateCity("  Pune ")
	require.NoError(t, err)
	assert.Equal(t, "Pune", city)

	_, err = v.ValidateCity("   ")
	assert.ErrorIs(t, err, entity.ErrMissingField)
}

func TestValidateFormat(t *testing.T) {
	v := New()

	f, err := v.ValidateFormat("")
	require.NoError(t, err)
	assert.Equal(t, entity.FormatMarkdown, f)

	f, err = v.ValidateFormat("PDF")
	require.NoError(t, err)
	assert.Equal(t, entity.FormatPDF, f)

	_, err = v.ValidateFormat("docx")
	assert.ErrorIs(t, err, entity.ErrInvalidFormat)
}

func TestValidateAdvisory(t *testing.T) {
	ph := func(v float64) *float64 { return &v }

	testCases := []struct {
		name   string
		mutate func(r *entity.AdvisoryRequest)
		want   error
	}{
		{"valid", func(*entity.AdvisoryRequest) {}, nil},
		{"valid with ph", func(r *entity.AdvisoryRequest) { r.SoilPH = ph(6.5) }, nil},
		{"blank location", func(r *entity.AdvisoryRequest) { r.Location = "  " }, entity.ErrMissingField},
		{"missing farm size", func(r *entity.AdvisoryRequest) { r.FarmSize = "" }, entity.ErrMissingField},
		{"bad soil", func(r *entity.AdvisoryRequest) { r.SoilType = "peat" }, entity.ErrInvalidParameter},
		{"bad budget", func(r *entity.AdvisoryRequest) { r.Budget = "huge" }, entity.ErrInvalidParameter},
		{"bad experience", func(r *entity.AdvisoryRequest) { r.FarmingExperience = "expert" }, entity.ErrInvalidParameter},
		{"ph too high", func(r *entity.AdvisoryRequest) { r.SoilPH = ph(14.1) }, entity.ErrInvalidParameter},
		{"ph negative", func(r *entity.AdvisoryRequest) { r.SoilPH = ph(-1) }, entity.ErrInvalidParameter},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := validAdvisory()
			tc.mutate(req)

			err := New().ValidateAdvisory(req)

			if tc.want == nil {
				require.NoError(t, err)
				assert.Equal(t, "Ludhiana, Punjab", req.Location)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}
