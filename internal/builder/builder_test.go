package builder

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/futig/crop-advisory/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestSetupLogger(t *testing.T) {
	logger, err := setupLogger("debug")
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zap.DebugLevel))

	_, err = setupLogger("loud")
	assert.Error(t, err)
}

func TestBuildServices_Mocks(t *testing.T) {
	t.Setenv("ENABLE_MOCKS", "true")
	cfg, err := config.Parse("test")
	require.NoError(t, err)

	services, err := BuildServices(context.Background(), cfg, zap.NewNop())
	require.NoError(t, err)

	report, err := services.Market.Analyze(context.Background(), "wheat")
	require.NoError(t, err)
	assert.False(t, report.Placeholder)
	assert.NotEmpty(t, report.Charts)
	assert.NotEmpty(t, report.Tables)

	weather, err := services.Weather.Current(context.Background(), "Ludhiana")
	require.NoError(t, err)
	assert.NotEmpty(t, weather.Condition)
}

func TestApp_RunStopsOnContextCancel(t *testing.T) {
	app := &App{
		server:          &http.Server{Addr: "127.0.0.1:0", Handler: http.NotFoundHandler()},
		shutdownTimeout: time.Second,
		logger:          zap.NewNop(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Run(ctx) }()

	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
