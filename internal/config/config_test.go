package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Defaults(t *testing.T) {
	t.Setenv("LLM_API_KEY", "llm-key")
	t.Setenv("WEATHER_API_KEY", "weather-key")

	cfg, err := Parse("test")

	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.ServerAddr)
	assert.Equal(t, "test", cfg.Environment)
	assert.Equal(t, ProviderREST, cfg.LLMConnectorCfg.Provider)
	assert.Equal(t, "gemini-2.0-flash-exp", cfg.LLMConnectorCfg.Model)
	assert.Equal(t, float32(0.7), cfg.LLMConnectorCfg.Temperature)
	assert.Equal(t, 40, cfg.LLMConnectorCfg.TopK)
	assert.Equal(t, float32(0.95), cfg.LLMConnectorCfg.TopP)
	assert.Equal(t, 8192, cfg.LLMConnectorCfg.MaxOutputTokens)
	assert.Equal(t, uint(1), cfg.LLMConnectorCfg.Retry.Attempts)
	assert.Equal(t, defaultLLMURL, cfg.LLMConnectorCfg.Url)
	assert.Equal(t, defaultWeatherURL, cfg.WeatherConnectorCfg.Url)
	assert.Equal(t, 10*time.Minute, cfg.WeatherConnectorCfg.CacheTTL)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.Equal(t, "/v1beta/models/gemini-2.0-flash-exp:generateContent", cfg.LLMConnectorCfg.Endpoint())
}

func TestParse_MissingKeysWithoutMocks(t *testing.T) {
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("ENABLE_MOCKS", "false")

	_, err := Parse("test")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_API_KEY")
	assert.Contains(t, err.Error(), "WEATHER_API_KEY")
}

func TestParse_MocksNeedNoKeys(t *testing.T) {
	t.Setenv("ENABLE_MOCKS", "true")
	t.Setenv("LLM_API_KEY", "")
	t.Setenv("WEATHER_API_KEY", "")

	_, err := Parse("test")

	assert.NoError(t, err)
}

func TestParse_RangeErrors(t *testing.T) {
	t.Setenv("ENABLE_MOCKS", "true")
	t.Setenv("LLM_PROVIDER", "openai")
	t.Setenv("LLM_TEMPERATURE", "3")
	t.Setenv("LLM_TOP_P", "0")

	_, err := Parse("test")

	require.Error(t, err)
	msg := err.Error()
	assert.Contains(t, msg, "LLM_PROVIDER")
	assert.Contains(t, msg, "LLM_TEMPERATURE")
	assert.Contains(t, msg, "LLM_TOP_P")
}

func TestGetEnvFile(t *testing.T) {
	assert.Equal(t, ".env.prod", getEnvFile("production"))
	assert.Equal(t, ".env.local", getEnvFile("dev"))
	assert.Equal(t, ".env.staging", getEnvFile("staging"))
}
