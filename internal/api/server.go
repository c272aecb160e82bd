package api

import (
	"net/http"

	advisoryapi "github.com/futig/crop-advisory/internal/api/advisory"
	"github.com/futig/crop-advisory/internal/api/docs"
	marketapi "github.com/futig/crop-advisory/internal/api/market"
	"github.com/futig/crop-advisory/internal/api/middleware"
	weatherapi "github.com/futig/crop-advisory/internal/api/weather"
	"github.com/futig/crop-advisory/internal/config"
	"github.com/futig/crop-advisory/internal/entity"
	"github.com/futig/crop-advisory/internal/pkg/metrics"
	"github.com/futig/crop-advisory/internal/pkg/response"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// Handlers groups the per-resource HTTP handlers
type Handlers struct {
	Market   *marketapi.Handler
	Weather  *weatherapi.Handler
	Advisory *advisoryapi.Handler
}

// SetupRouter creates and configures the HTTP router
func SetupRouter(cfg *config.Config, handlers Handlers, m *metrics.Metrics, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.Recoverer)                   // Recover from panics
	r.Use(chimiddleware.RequestID)                   // Add request ID
	r.Use(middleware.Logger(logger))                 // Log requests
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))   // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.RequestTimeout)) // Default timeout

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		response.Success(w, entity.HealthResponse{Status: "healthy"})
	})

	r.Method(http.MethodGet, "/metrics", m.Handler())

	// Swagger documentation endpoints
	docs.RegisterRoutes(r)

	// Register routes
	marketapi.RegisterRoutes(r, handlers.Market)
	weatherapi.RegisterRoutes(r, handlers.Weather)
	advisoryapi.RegisterRoutes(r, handlers.Advisory)

	return r
}
