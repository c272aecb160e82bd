package advisory

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/logger"
	"github.com/futig/crop-advisory/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const maxBodySize = 64 << 10

type Handler struct {
	usecase AdvisoryUsecase
}

func NewHandler(usecase AdvisoryUsecase) *Handler {
	return &Handler{
		usecase: usecase,
	}
}

// Recommend handles POST /advisory
func (h *Handler) Recommend(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Recommend")

	var req entity.AdvisoryRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodySize))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "invalid request body", err)
		return
	}

	result, err := h.usecase.Recommend(ctx, &req)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	h.respondJSON(w, http.StatusOK, result)
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
	if errors.Is(err, entity.ErrInvalidParameter) || errors.Is(err, entity.ErrMissingField) {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	} else {
		h.respondError(ctx, w, http.StatusInternalServerError, "internal server error", err)
	}
}
