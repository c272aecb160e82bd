package weather

import (
	"context"
	"errors"
	"net/http"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

type Handler struct {
	usecase WeatherUsecase
}

func NewHandler(usecase WeatherUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Current handles GET /weather?city=
func (h *Handler) Current(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "CurrentWeather")

	city := r.URL.Query().Get("city")
	ctxzap.Info(ctx, "weather requested", zap.String("city", city))

	weather, err := h.usecase.Current(ctx, city)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toWeatherDTO(weather))
}

func (h *Handler) respondJSON(w http.ResponseWriter, status int, data any) {
	response.JSON(w, status, data)
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		ctxzap.Error(ctx, message, zap.Error(err))
	} else {
		ctxzap.Error(ctx, message)
	}
	response.Error(w, status, message)
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	if errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else if errors.Is(err, entity.ErrWeatherUnavailable) {
		h.respondError(ctx, w, http.StatusBadGateway, entity.ErrWeatherUnavailable.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
