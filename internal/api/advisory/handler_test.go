package advisory

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	advisoryuc "github.com/futig/crop-advisory/internal/usecase/advisory"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func post(body string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(advisoryuc.NewUsecase(validator.New(), zap.NewNop())))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/advisory", strings.NewReader(body)))
	return rec
}

func TestRecommend(t *testing.T) {
	rec := post(`{"location":"Ludhiana, Punjab","farm_size":"medium","soil_type":"loamy","soil_ph":6.8,
		"budget":"medium","previous_crop":"rice","farming_experience":"intermediate"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var result entity.AdvisoryResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &result))
	assert.Equal(t, "Ludhiana, Punjab", result.Form.Location)
	require.Len(t, result.Recommendations, 3)
	assert.Equal(t, "Wheat", result.Recommendations[0].Crop)
}

func TestRecommend_Invalid(t *testing.T) {
	testCases := []struct {
		name    string
		body    string
		message string
	}{
		{"malformed", `{"location":`, "invalid request body"},
		{"unknown field", `{"acres":4}`, "invalid request body"},
		{"missing location", `{"farm_size":"small"}`, "location"},
		{"bad soil type", `{"location":"Pune","farm_size":"small","soil_type":"rocky","budget":"low","farming_experience":"beginner"}`, "soil_type must be one of"},
		{"ph out of range", `{"location":"Pune","farm_size":"small","soil_type":"clay","soil_ph":15,"budget":"low","farming_experience":"beginner"}`, "soil_ph"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := post(tc.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), tc.message)
		})
	}
}
