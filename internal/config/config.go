package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Global singleton so init-order-sensitive callers can reach the loaded config
var globalConfig *Config

// Config holds all environment backed configuration for model-arena.
type Config struct {
	// HTTP Server
	HTTPPort    int `env:"HTTP_PORT" envDefault:"8080"`
	MetricsPort int `env:"METRICS_PORT" envDefault:"9091"`

	// Provider credentials
	OpenAIAPIKey      string `env:"OPENAI_API_KEY"`
	AnthropicAPIKey   string `env:"ANTHROPIC_API_KEY"`
	HuggingFaceAPIKey string `env:"HUGGINGFACE_API_KEY"`

	// Provider endpoints (overridable for proxies and test servers)
	OpenAIBaseURL      string `env:"OPENAI_BASE_URL"`
	AnthropicBaseURL   string `env:"ANTHROPIC_BASE_URL" envDefault:"https://api.anthropic.com"`
	HuggingFaceBaseURL string `env:"HUGGINGFACE_BASE_URL" envDefault:"https://api-inference.huggingface.co"`

	// Model catalog
	ModelCatalogFile string `env:"MODEL_CATALOG_FILE" envDefault:"config/models.yml"`

	// Comparison orchestration
	MaxConcurrent int           `env:"MAX_CONCURRENT" envDefault:"3"`
	CallTimeout   time.Duration `env:"CALL_TIMEOUT" envDefault:"60s"`
	HTTPTimeout   time.Duration `env:"HTTP_TIMEOUT" envDefault:"30s"`

	// Image handling
	MaxImageSizeMB int `env:"MAX_IMAGE_SIZE_MB" envDefault:"10"`

	// Observability / Logging
	ServiceName  string `env:"SERVICE_NAME" envDefault:"model-arena"`
	Environment  string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel     string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat    string `env:"LOG_FORMAT" envDefault:"console"`
	OTLPEndpoint string `env:"OTEL_EXPORTER_OTLP_ENDPOINT"`
	OTLPHeaders  string `env:"OTEL_EXPORTER_OTLP_HEADERS"`
}

// allowedImageTypes is the content-type allowlist for uploaded or fetched images.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/gif":  true,
	"image/bmp":  true,
	"image/webp": true,
}

// Load parses environment variables into Config and performs minimal validation.
// A .env file in the working directory is honored when present.
func Load() (*Config, error) {
	// Missing .env is the normal case in deployed environments.
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}

	if cfg.MaxConcurrent < 1 {
		return nil, fmt.Errorf("MAX_CONCURRENT must be at least 1, got %d", cfg.MaxConcurrent)
	}
	if cfg.CallTimeout <= 0 {
		return nil, fmt.Errorf("CALL_TIMEOUT must be positive, got %s", cfg.CallTimeout)
	}
	if cfg.MaxImageSizeMB < 1 {
		return nil, fmt.Errorf("MAX_IMAGE_SIZE_MB must be at least 1, got %d", cfg.MaxImageSizeMB)
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	cfg.LogFormat = strings.ToLower(cfg.LogFormat)

	globalConfig = cfg
	return cfg, nil
}

// GetGlobal returns the last config produced by Load, or nil before the first Load.
func GetGlobal() *Config {
	return globalConfig
}

// APIKeyFor returns the configured API key for a provider name, empty when unset.
func (c *Config) APIKeyFor(provider string) string {
	switch strings.ToLower(provider) {
	case "openai":
		return c.OpenAIAPIKey
	case "anthropic":
		return c.AnthropicAPIKey
	case "huggingface":
		return c.HuggingFaceAPIKey
	}
	return ""
}

// IsImageTypeAllowed reports whether the content type is an accepted image format.
func (c *Config) IsImageTypeAllowed(contentType string) bool {
	mediaType := strings.ToLower(strings.TrimSpace(contentType))
	if idx := strings.Index(mediaType, ";"); idx >= 0 {
		mediaType = strings.TrimSpace(mediaType[:idx])
	}
	return allowedImageTypes[mediaType]
}

// MaxImageSizeBytes returns the image size cap in bytes.
func (c *Config) MaxImageSizeBytes() int64 {
	return int64(c.MaxImageSizeMB) * 1024 * 1024
}
