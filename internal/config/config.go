package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Port           string
	ServiceName    string
	ServiceVersion string

	TemplatesDir string
	TemplateName string
	MaxBodyBytes int64

	LogLevel               slog.Level
	LogConfirmationContent bool

	TracingEnabled bool
	OTLPEndpoint   string
	MetricsEnabled bool
}

// Load reads the service configuration from the environment.
func Load() (Config, error) {
	cfg := Config{
		Port:           getenv("PORT", "8080"),
		ServiceName:    getenv("SERVICE_NAME", "emailservice"),
		ServiceVersion: getenv("SERVICE_VERSION", "0.1.0"),
		TemplatesDir:   os.Getenv("TEMPLATES_DIR"),
		TemplateName:   getenv("TEMPLATE_NAME", "confirmation.html"),
		OTLPEndpoint:   getenv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
	}

	var err error
	if cfg.MaxBodyBytes, err = getInt("MAX_BODY_BYTES", 1<<20); err != nil {
		return Config{}, err
	}
	if cfg.MaxBodyBytes <= 0 {
		return Config{}, fmt.Errorf("MAX_BODY_BYTES must be positive, got %d", cfg.MaxBodyBytes)
	}

	if err := cfg.LogLevel.UnmarshalText([]byte(getenv("LOG_LEVEL", "info"))); err != nil {
		return Config{}, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	if cfg.LogConfirmationContent, err = getBool("LOG_CONFIRMATION_CONTENT", true); err != nil {
		return Config{}, err
	}
	if cfg.TracingEnabled, err = getBool("TRACING_ENABLED", false); err != nil {
		return Config{}, err
	}
	if cfg.MetricsEnabled, err = getBool("METRICS_ENABLED", true); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int64) (int64, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return n, nil
}

func getBool(key string, fallback bool) (bool, error) {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("invalid %s: %w", key, err)
	}
	return b, nil
}
