package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/futig/crop-advisory/internal/pkg/retry"
	"github.com/joho/godotenv"
)

const (
	ProviderREST  = "rest"
	ProviderGenAI = "genai"

	defaultLLMURL     = "https://generativelanguage.googleapis.com"
	defaultWeatherURL = "https://api.weatherapi.com"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr      string        `env:"SERVER_ADDR" envDefault:":8080"`
	RequestTimeout  time.Duration `env:"REQUEST_TIMEOUT" envDefault:"90s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`

	// External service configurations
	LLMConnectorCfg     LLMConnectorConfig     `envPrefix:"LLM_"`
	WeatherConnectorCfg WeatherConnectorConfig `envPrefix:"WEATHER_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	CORSAllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	// Environment (set from flag, not from env var)
	Environment string
}

type LLMConnectorConfig struct {
	HTTPClientConfig
	Provider         string               `env:"PROVIDER" envDefault:"rest"`
	APIKey           string               `env:"API_KEY"`
	Model            string               `env:"MODEL" envDefault:"gemini-2.0-flash-exp"`
	GenerateEndpoint string               `env:"GENERATE_ENDPOINT" envDefault:"/v1beta/models/%s:generateContent"`
	Temperature      float32              `env:"TEMPERATURE" envDefault:"0.7"`
	TopK             int                  `env:"TOP_K" envDefault:"40"`
	TopP             float32              `env:"TOP_P" envDefault:"0.95"`
	MaxOutputTokens  int                  `env:"MAX_OUTPUT_TOKENS" envDefault:"8192"`
	Retry            pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

// Endpoint returns the generateContent path for the configured model.
func (c LLMConnectorConfig) Endpoint() string {
	if strings.Contains(c.GenerateEndpoint, "%s") {
		return fmt.Sprintf(c.GenerateEndpoint, c.Model)
	}
	return c.GenerateEndpoint
}

type WeatherConnectorConfig struct {
	HTTPClientConfig
	// CurrentEndpoint is a path under SERVICE_URL or an absolute URL override.
	APIKey          string               `env:"API_KEY"`
	CurrentEndpoint string               `env:"CURRENT_ENDPOINT" envDefault:"/v1/current.json"`
	CacheTTL        time.Duration        `env:"CACHE_TTL" envDefault:"10m"`
	Retry           pkgRetry.RetryConfig `envPrefix:"RETRY_"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"30s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT" envDefault:"60s"`
	Url                   string        `env:"SERVICE_URL"`
}

// LoadConfig reads .env.<environment> when present, then parses the process environment.
func LoadConfig(environment string) (*Config, error) {
	envFile := getEnvFile(environment)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	return Parse(environment)
}

// Parse builds the configuration from the process environment only.
func Parse(environment string) (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	cfg.Environment = environment

	if cfg.LLMConnectorCfg.Url == "" {
		cfg.LLMConnectorCfg.Url = defaultLLMURL
	}
	if cfg.WeatherConnectorCfg.Url == "" {
		cfg.WeatherConnectorCfg.Url = defaultWeatherURL
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errs []string

	llm := cfg.LLMConnectorCfg
	if llm.Provider != ProviderREST && llm.Provider != ProviderGenAI {
		errs = append(errs, fmt.Sprintf("LLM_PROVIDER must be %q or %q, got %q", ProviderREST, ProviderGenAI, llm.Provider))
	}
	if llm.Temperature < 0 || llm.Temperature > 2 {
		errs = append(errs, fmt.Sprintf("LLM_TEMPERATURE must be between 0 and 2, got %v", llm.Temperature))
	}
	if llm.TopP <= 0 || llm.TopP > 1 {
		errs = append(errs, fmt.Sprintf("LLM_TOP_P must be in (0, 1], got %v", llm.TopP))
	}
	if llm.TopK < 1 {
		errs = append(errs, fmt.Sprintf("LLM_TOP_K must be positive, got %d", llm.TopK))
	}
	if llm.MaxOutputTokens < 1 || llm.MaxOutputTokens > 65536 {
		errs = append(errs, fmt.Sprintf("LLM_MAX_OUTPUT_TOKENS must be between 1 and 65536, got %d", llm.MaxOutputTokens))
	}
	if llm.Model == "" {
		errs = append(errs, "LLM_MODEL must not be empty")
	}

	if !cfg.EnableMocks {
		if llm.APIKey == "" {
			errs = append(errs, "LLM_API_KEY is required unless ENABLE_MOCKS is set")
		}
		if cfg.WeatherConnectorCfg.APIKey == "" {
			errs = append(errs, "WEATHER_API_KEY is required unless ENABLE_MOCKS is set")
		}
	}

	if cfg.WeatherConnectorCfg.CacheTTL < 0 {
		errs = append(errs, fmt.Sprintf("WEATHER_CACHE_TTL must not be negative, got %s", cfg.WeatherConnectorCfg.CacheTTL))
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
