package market

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxBodySize = 1 << 20

type Handler struct {
	usecase MarketUsecase
}

func NewHandler(usecase MarketUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Analyze handles POST /market-intelligence
func (h *Handler) Analyze(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MarketAnalyze")

	var req entity.MarketRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize)).Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	ctxzap.Info(ctx, "market analysis requested", zap.String("crop", req.Crop))

	report, err := h.usecase.Analyze(ctx, req.Crop)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, toMarketReportDTO(report))
}

// ListCrops handles GET /market-intelligence/crops
func (h *Handler) ListCrops(w http.ResponseWriter, r *http.Request) {
	h.respondJSON(w, http.StatusOK, map[string][]string{
		"crops": entity.SupportedCrops,
	})
}

// Report handles GET /market-intelligence/{crop}/report
func (h *Handler) Report(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "MarketReport")

	crop := chi.URLParam(r, "crop")
	format := r.URL.Query().Get("format")

	file, err := h.usecase.Report(ctx, crop, format)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	ctxzap.Info(ctx, "sending market report",
		zap.String("file", file.Name),
		zap.Int("size", len(file.Content)),
	)

	response.Attachment(w, file.Name, file.ContentType, file.Content)
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
	if errors.Is(err, entity.ErrUnsupportedCrop) || errors.Is(err, entity.ErrInvalidFormat) ||
		errors.Is(err, entity.ErrMissingField) || errors.Is(err, entity.ErrInvalidParameter) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
