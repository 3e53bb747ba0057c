package config

import (
	"testing"
	"time"
)

func TestEnvIntValid(t *testing.T) {
	t.Setenv("TEST_INT", "42")
	if v := envInt("TEST_INT", 0); v != 42 {
		t.Fatalf("expected 42, got %d", v)
	}
}

func TestEnvIntFallback(t *testing.T) {
	// TEST_INT_MISSING is not set.
	if v := envInt("TEST_INT_MISSING", 99); v != 99 {
		t.Fatalf("expected fallback 99, got %d", v)
	}
}

func TestEnvIntInvalidFallsBack(t *testing.T) {
	t.Setenv("TEST_INT_BAD", "abc")
	if v := envInt("TEST_INT_BAD", 7); v != 7 {
		t.Fatalf("expected fallback 7, got %d", v)
	}
}

func TestEnvDurationValid(t *testing.T) {
	t.Setenv("TEST_DUR", "5s")
	if v := envDuration("TEST_DUR", 0); v != 5*time.Second {
		t.Fatalf("expected 5s, got %s", v)
	}
}

func TestLoadSucceedsWithDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("expected Load() to succeed with defaults, got: %v", err)
	}
	if cfg.Port != 3001 {
		t.Fatalf("expected default port 3001, got %d", cfg.Port)
	}
	if cfg.Seed != 12345 {
		t.Fatalf("expected default seed 12345, got %d", cfg.Seed)
	}
	if cfg.MetricsDays != 30 {
		t.Fatalf("expected default metrics window 30, got %d", cfg.MetricsDays)
	}
}

func TestLoadFailsOnInvalidPort(t *testing.T) {
	t.Setenv("PORTAL_PORT", "-1")
	if _, err := Load(); err == nil {
		t.Fatal("expected Load() to fail with PORTAL_PORT=-1")
	}
}

func TestValidateRejectsZeroConversations(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	cfg.Conversations = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected Validate() to reject zero conversations")
	}
}
