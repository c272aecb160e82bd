package weather

import (
	"context"

	"github.com/futig/crop-advisory/internal/entity"
)

type WeatherUsecase interface {
	Current(ctx context.Context, city string) (*entity.Weather, error)
}
