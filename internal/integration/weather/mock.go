package weather

import (
	"context"
	"strings"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{
		logger: logger,
	}
}

func (m *MockConnector) Current(ctx context.Context, city string) (*entity.WeatherAPIResponse, error) {
	ctxzap.Info(ctx, "[MOCK] fetching current weather", zap.String("city", city))

	var resp entity.WeatherAPIResponse
	resp.Location.Name = strings.TrimSpace(city)
	resp.Location.Region = "Punjab"
	resp.Location.Country = "India"
	resp.Location.Localtime = "2024-11-05 14:30"
	resp.Current.TempC = 27.4
	resp.Current.FeelslikeC = 28.9
	resp.Current.IsDay = 1
	resp.Current.Condition.Text = "Partly cloudy"
	resp.Current.Condition.Icon = "//cdn.weatherapi.com/weather/64x64/day/116.png"
	resp.Current.Condition.Code = 1003
	resp.Current.WindKph = 11.2
	resp.Current.WindDir = "NW"
	resp.Current.PressureMb = 1012
	resp.Current.Humidity = 58
	resp.Current.Cloud = 25
	resp.Current.VisKm = 8
	resp.Current.UV = 5

	return &resp, nil
}
