// Package config loads service configuration from DOCPRESS_* environment
// variables into a typed struct.
package config

import (
	"os"
	"strconv"
	"strings"

	"go.uber.org/fx"
)

// Config is the full service configuration.
type Config struct {
	Environment    string
	ServiceName    string
	ServiceVersion string

	HTTPAddr     string
	DatabaseDSN  string
	DefaultOrgID int64

	// CurrencySymbol prefixes every formatted monetary value.
	CurrencySymbol string

	Tracing TracingConfig
	LogLevel string
}

type TracingConfig struct {
	Enabled          bool
	ExporterEndpoint string
	ExporterProtocol string
	SamplingRatio    float64
}

// Module provides Config to the fx graph.
var Module = fx.Module("config",
	fx.Provide(Load),
)

// Load reads configuration from the environment, applying defaults suitable
// for local development.
func Load() Config {
	return Config{
		Environment:    envString("DOCPRESS_ENVIRONMENT", "development"),
		ServiceName:    envString("DOCPRESS_SERVICE_NAME", "docpress"),
		ServiceVersion: envString("DOCPRESS_SERVICE_VERSION", "dev"),
		HTTPAddr:       envString("DOCPRESS_HTTP_ADDR", ":8080"),
		DatabaseDSN:    envString("DOCPRESS_DATABASE_DSN", "file:docpress.db?_pragma=busy_timeout(5000)"),
		DefaultOrgID:   envInt64("DOCPRESS_DEFAULT_ORG_ID", 1),
		CurrencySymbol: envString("DOCPRESS_CURRENCY_SYMBOL", "£"),
		LogLevel:       envString("DOCPRESS_LOG_LEVEL", "info"),
		Tracing: TracingConfig{
			Enabled:          envBool("DOCPRESS_TRACING_ENABLED", false),
			ExporterEndpoint: envString("DOCPRESS_TRACING_ENDPOINT", ""),
			ExporterProtocol: envString("DOCPRESS_TRACING_PROTOCOL", "grpc"),
			SamplingRatio:    envFloat("DOCPRESS_TRACING_SAMPLING_RATIO", 0.1),
		},
	}
}

// IsProduction reports whether the service runs in the production
// environment.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}

func envString(key, fallback string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseBool(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envInt64(key string, fallback int64) int64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return value
}

func envFloat(key string, fallback float64) float64 {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return fallback
	}
	return value
}
