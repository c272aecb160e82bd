package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/futig/crop-advisory/internal/api"
	advisoryapi "github.com/futig/crop-advisory/internal/api/advisory"
	marketapi "github.com/futig/crop-advisory/internal/api/market"
	weatherapi "github.com/futig/crop-advisory/internal/api/weather"
	"github.com/futig/crop-advisory/internal/config"
	"go.uber.org/zap"
)

func Build(environment string) (*App, error) {
	ctx := context.Background()

	cfg, err := config.LoadConfig(environment)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	services, err := BuildServices(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	// Setup API handlers
	handlers := api.Handlers{
		Market:   marketapi.NewHandler(services.Market),
		Weather:  weatherapi.NewHandler(services.Weather),
		Advisory: advisoryapi.NewHandler(services.Advisory),
	}
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(cfg, handlers, services.Metrics, logger)
	logger.Info("HTTP router configured")

	// Create HTTP server. Market analysis can take most of the request
	// timeout, so the write deadline follows it.
	server := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      cfg.RequestTimeout + 5*time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	return &App{
		server:          server,
		shutdownTimeout: cfg.ShutdownTimeout,
		logger:          logger,
	}, nil
}

// BuildCLI loads configuration and services for one-shot command line use
func BuildCLI(ctx context.Context, environment string) (*Services, *zap.Logger, error) {
	cfg, err := config.LoadConfig(environment)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("setup logger: %w", err)
	}

	services, err := BuildServices(ctx, cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	return services, logger, nil
}
