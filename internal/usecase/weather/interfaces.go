package weather

import (
	"context"

	"github.com/futig/crop-advisory/internal/entity"
)

type WeatherConnector interface {
	Current(ctx context.Context, city string) (*entity.WeatherAPIResponse, error)
}
