package entity

import "strings"

// WeatherAPIResponse mirrors the WeatherAPI current.json payload.
type WeatherAPIResponse struct {
	Location struct {
		Name      string  `json:"name"`
		Region    string  `json:"region"`
		Country   string  `json:"country"`
		Lat       float64 `json:"lat"`
		Lon       float64 `json:"lon"`
		Localtime string  `json:"localtime"`
	} `json:"location"`
	Current struct {
		TempC      float64 `json:"temp_c"`
		FeelslikeC float64 `json:"feelslike_c"`
		IsDay      int     `json:"is_day"`
		Condition  struct {
			Text string `json:"text"`
			Icon string `json:"icon"`
			Code int    `json:"code"`
		} `json:"condition"`
		WindKph    float64 `json:"wind_kph"`
		WindDir    string  `json:"wind_dir"`
		PressureMb float64 `json:"pressure_mb"`
		Humidity   int     `json:"humidity"`
		Cloud      int     `json:"cloud"`
		VisKm      float64 `json:"vis_km"`
		UV         float64 `json:"uv"`
	} `json:"current"`
}

type ConditionCategory string

const (
	ConditionRain    ConditionCategory = "rain"
	ConditionSnow    ConditionCategory = "snow"
	ConditionCloudy  ConditionCategory = "cloudy"
	ConditionClear   ConditionCategory = "clear"
	ConditionDefault ConditionCategory = "default"
)

// ClassifyCondition buckets a free-text condition into an icon category.
func ClassifyCondition(text string) ConditionCategory {
	t := strings.ToLower(text)
	switch {
	case strings.Contains(t, "rain") || strings.Contains(t, "drizzle"):
		return ConditionRain
	case strings.Contains(t, "snow"):
		return ConditionSnow
	case strings.Contains(t, "cloud"):
		return ConditionCloudy
	case strings.Contains(t, "clear") || strings.Contains(t, "sunny"):
		return ConditionClear
	default:
		return ConditionDefault
	}
}

// Weather is the current conditions for a location.
type Weather struct {
	City         string            `json:"city"`
	Region       string            `json:"region,omitempty"`
	Country      string            `json:"country"`
	LocalTime    string            `json:"local_time,omitempty"`
	TempC        float64           `json:"temp_c"`
	FeelsLikeC   float64           `json:"feels_like_c"`
	Condition    string            `json:"condition"`
	Category     ConditionCategory `json:"category"`
	IconURL      string            `json:"icon_url,omitempty"`
	IsDay        bool              `json:"is_day"`
	HumidityPct  int               `json:"humidity_pct"`
	WindKph      float64           `json:"wind_kph"`
	WindDir      string            `json:"wind_dir,omitempty"`
	VisibilityKm float64           `json:"visibility_km"`
	PressureMb   float64           `json:"pressure_mb"`
	UV           float64           `json:"uv"`
}

type WeatherDTO struct {
	Weather
	Temperature string `json:"temperature"`
	FeelsLike   string `json:"feels_like"`
}
