package weather

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubUsecase struct {
	weather *entity.Weather
	err     error
	gotCity string
}

func (s *stubUsecase) Current(_ context.Context, city string) (*entity.Weather, error) {
	s.gotCity = city
	return s.weather, s.err
}

func serve(uc WeatherUsecase, target string) *httptest.ResponseRecorder {
	r := chi.NewRouter()
	RegisterRoutes(r, NewHandler(uc))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestCurrent(t *testing.T) {
	uc := &stubUsecase{weather: &entity.Weather{
		City:       "Ludhiana",
		Country:    "India",
		TempC:      27.4,
		FeelsLikeC: 29.6,
		Condition:  "Partly cloudy",
		Category:   entity.ConditionCloudy,
	}}

	rec := serve(uc, "/weather?city=Ludhiana")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Ludhiana", uc.gotCity)

	var dto entity.WeatherDTO
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dto))
	assert.Equal(t, "27°C", dto.Temperature)
	assert.Equal(t, "30°C", dto.FeelsLike)
	assert.Equal(t, entity.ConditionCloudy, dto.Category)
}

func TestCurrent_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{"blank city", fmt.Errorf("%w: please enter a city name", entity.ErrMissingField), http.StatusBadRequest, "please enter a city name"},
		{"upstream", fmt.Errorf("%w: status 400", entity.ErrWeatherUnavailable), http.StatusBadGateway, entity.ErrWeatherUnavailable.Error()},
		{"unexpected", errors.New("boom"), http.StatusInternalServerError, "internal server error"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rec := serve(&stubUsecase{err: tc.err}, "/weather?city=")

			assert.Equal(t, tc.status, rec.Code)
			var body entity.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body.Message, tc.message)
		})
	}
}

func TestFormatCelsius(t *testing.T) {
	assert.Equal(t, "0°C", formatCelsius(-0.3))
	assert.Equal(t, "-3°C", formatCelsius(-2.6))
	assert.Equal(t, "35°C", formatCelsius(34.5))
}
