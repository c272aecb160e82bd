package weather

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/metrics"
	"github.com/futig/crop-advisory/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const upstreamService = "weather"

// WeatherUsecase looks up current conditions by city name
type WeatherUsecase struct {
	connector WeatherConnector
	validator *validator.Validator
	metrics   *metrics.Metrics
	cache     *cache.Cache
	cacheTTL  time.Duration
	logger    *zap.Logger

	inflight singleflight.Group
}

// NewUsecase creates a new weather use case. A zero cacheTTL disables caching.
func NewUsecase(
	connector WeatherConnector,
	validator *validator.Validator,
	metrics *metrics.Metrics,
	cacheTTL time.Duration,
	logger *zap.Logger,
) *WeatherUsecase {
	uc := &WeatherUsecase{
		connector: connector,
		validator: validator,
		metrics:   metrics,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
	if cacheTTL > 0 {
		uc.cache = cache.New(cacheTTL, 2*cacheTTL)
	}
	return uc
}

func (uc *WeatherUsecase) Current(ctx context.Context, city string) (*entity.Weather, error) {
	city, err := uc.validator.ValidateCity(city)
	if err != nil {
		return nil, err
	}

	ctx = logger.WithAction(ctx, "weather_lookup")
	ctx = logger.WithCity(ctx, city)

	key := strings.ToLower(city)
	if uc.cache != nil {
		if cached, ok := uc.cache.Get(key); ok {
			uc.metrics.IncWeatherCacheHit()
			ctxzap.Debug(ctx, "weather served from cache")
			w := *cached.(*entity.Weather)
			return &w, nil
		}
	}

	shareCtx := context.WithoutCancel(ctx)
	v, err, _ := uc.inflight.Do(key, func() (any, error) {
		return uc.fetch(shareCtx, key, city)
	})
	if err != nil {
		return nil, err
	}

	w := *v.(*entity.Weather)
	return &w, nil
}

func (uc *WeatherUsecase) fetch(ctx context.Context, key, city string) (*entity.Weather, error) {
	start := time.Now()
	resp, err := uc.connector.Current(ctx, city)
	uc.metrics.ObserveUpstream(upstreamService, time.Since(start).Seconds())
	if err != nil {
		uc.metrics.IncUpstreamError(upstreamService)
		return nil, fmt.Errorf("lookup %q: %w", city, err)
	}

	w := FromAPI(resp)
	if uc.cache != nil {
		uc.cache.Set(key, w, uc.cacheTTL)
	}

	ctxzap.Info(ctx, "weather fetched",
		zap.String("location", w.City),
		zap.String("condition", w.Condition),
	)

	return w, nil
}

// FromAPI maps the WeatherAPI payload onto the domain model.
func FromAPI(resp *entity.WeatherAPIResponse) *entity.Weather {
	icon := resp.Current.Condition.Icon
	if strings.HasPrefix(icon, "//") {
		icon = "https:" + icon
	}

	return &entity.Weather{
		City:         resp.Location.Name,
		Region:       resp.Location.Region,
		Country:      resp.Location.Country,
		LocalTime:    resp.Location.Localtime,
		TempC:        resp.Current.TempC,
		FeelsLikeC:   resp.Current.FeelslikeC,
		Condition:    resp.Current.Condition.Text,
		Category:     entity.ClassifyCondition(resp.Current.Condition.Text),
		IconURL:      icon,
		IsDay:        resp.Current.IsDay == 1,
		HumidityPct:  resp.Current.Humidity,
		WindKph:      resp.Current.WindKph,
		WindDir:      resp.Current.WindDir,
		VisibilityKm: resp.Current.VisKm,
		PressureMb:   resp.Current.PressureMb,
		UV:           resp.Current.UV,
	}
}
