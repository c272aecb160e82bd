package weather

import (
	"fmt"
	"math"

	"github.com/futig/crop-advisory/internal/entity"
)

// toWeatherDTO converts Weather entity to WeatherDTO with rounded display values
func toWeatherDTO(w *entity.Weather) *entity.WeatherDTO {
	return &entity.WeatherDTO{
		Weather:     *w,
		Temperature: formatCelsius(w.TempC),
		FeelsLike:   formatCelsius(w.FeelsLikeC),
	}
}

func formatCelsius(v float64) string {
	r := math.Round(v)
	if r == 0 {
		// avoid "-0°C"
		r = 0
	}
	return fmt.Sprintf("%.0f°C", r)
}
