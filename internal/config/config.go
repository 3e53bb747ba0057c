// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings.
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Dataset generation settings.
	Seed          int64
	Conversations int
	AuditLogs     int
	MetricsDays   int

	// Rate limiting.
	RateLimitRPS   int // Sustained requests per second per client.
	RateLimitBurst int

	// OTEL settings.
	OTELEndpoint string
	ServiceName  string

	// Operational settings.
	LogLevel string
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	cfg := Config{
		Port:           envInt("PORTAL_PORT", 3001),
		ReadTimeout:    envDuration("PORTAL_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:   envDuration("PORTAL_WRITE_TIMEOUT", 30*time.Second),
		Seed:           int64(envInt("PORTAL_SEED", 12345)),
		Conversations:  envInt("PORTAL_CONVERSATIONS", 500),
		AuditLogs:      envInt("PORTAL_AUDIT_LOGS", 200),
		MetricsDays:    envInt("PORTAL_METRICS_DAYS", 30),
		RateLimitRPS:   envInt("PORTAL_RATE_LIMIT_RPS", 50),
		RateLimitBurst: envInt("PORTAL_RATE_LIMIT_BURST", 100),
		OTELEndpoint:   envStr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		ServiceName:    envStr("OTEL_SERVICE_NAME", "retail-agents-portal"),
		LogLevel:       envStr("PORTAL_LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: PORTAL_PORT must be in 1..65535")
	}
	if c.Seed == 0 {
		return fmt.Errorf("config: PORTAL_SEED must be non-zero")
	}
	if c.Conversations <= 0 {
		return fmt.Errorf("config: PORTAL_CONVERSATIONS must be positive")
	}
	if c.AuditLogs <= 0 {
		return fmt.Errorf("config: PORTAL_AUDIT_LOGS must be positive")
	}
	if c.MetricsDays <= 0 {
		return fmt.Errorf("config: PORTAL_METRICS_DAYS must be positive")
	}
	if c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0 {
		return fmt.Errorf("config: rate limit settings must be positive")
	}
	return nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
