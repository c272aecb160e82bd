package logger

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Field keys shared by every log line that concerns a crop or a location.
const (
	CropKey   = "crop"
	CityKey   = "city"
	ActionKey = "action"
)

// ToContext stores l as the request logger. Entry points without the HTTP
// middleware (the CLI, tests) call it so ctxzap lookups do not fall back to a
// no-op logger.
func ToContext(ctx context.Context, l *zap.Logger) context.Context {
	return ctxzap.ToContext(ctx, l)
}

// AddFields adds fields to the logger in context and returns new context
func AddFields(ctx context.Context, fields ...zap.Field) context.Context {
	return ctxzap.ToContext(ctx, ctxzap.Extract(ctx).With(fields...))
}

// WithAction adds "action" field to context logger to describe the flow
func WithAction(ctx context.Context, action string) context.Context {
	return AddFields(ctx, zap.String(ActionKey, action))
}

// WithCrop tags the context logger with the normalized crop name.
func WithCrop(ctx context.Context, crop string) context.Context {
	return AddFields(ctx, zap.String(CropKey, crop))
}

// WithCity tags the context logger with the requested location.
func WithCity(ctx context.Context, city string) context.Context {
	return AddFields(ctx, zap.String(CityKey, city))
}
