package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("LOG_LEVEL", "")
	t.Setenv("GEMINI_MODEL", "")
	t.Setenv("ANALYTICS_TIMEOUT", "")
	cfg := Load()
	if cfg.ServerPort != "8080" {
		t.Fatalf("expected default port, got %s", cfg.ServerPort)
	}
	if cfg.LogLevel != "info" {
		t.Fatalf("expected default log level, got %s", cfg.LogLevel)
	}
	if cfg.GeminiModel != "gemini-1.5-flash" {
		t.Fatalf("expected default gemini model, got %s", cfg.GeminiModel)
	}
	if cfg.AnalyticsTimeout != 60*time.Second {
		t.Fatalf("expected default analytics timeout, got %s", cfg.AnalyticsTimeout)
	}
	if cfg.GeminiAPIKey != "" {
		t.Fatalf("expected empty gemini key by default, got %s", cfg.GeminiAPIKey)
	}
	if cfg.TracingEnabled {
		t.Fatalf("expected tracing disabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("GEMINI_API_KEY", "test-key")
	t.Setenv("GEMINI_MODEL", "gemini-2.0-flash")
	t.Setenv("ANALYTICS_TIMEOUT", "45s")
	t.Setenv("OPENAI_BASE_URL", "https://llm.example.com/v1/")
	t.Setenv("RATE_LIMIT_REQUESTS", "120")
	t.Setenv("TRACING_ENABLED", "true")
	cfg := Load()
	if cfg.ServerPort != "9090" {
		t.Fatalf("expected override port, got %s", cfg.ServerPort)
	}
	if cfg.GeminiAPIKey != "test-key" {
		t.Fatalf("expected gemini key override, got %s", cfg.GeminiAPIKey)
	}
	if cfg.GeminiModel != "gemini-2.0-flash" {
		t.Fatalf("expected gemini model override, got %s", cfg.GeminiModel)
	}
	if cfg.AnalyticsTimeout != 45*time.Second {
		t.Fatalf("expected analytics timeout override, got %s", cfg.AnalyticsTimeout)
	}
	if cfg.OpenAIBaseURL != "https://llm.example.com/v1/" {
		t.Fatalf("expected base url override, got %s", cfg.OpenAIBaseURL)
	}
	if cfg.RateLimitRequests != 120 {
		t.Fatalf("expected rate limit override, got %d", cfg.RateLimitRequests)
	}
	if !cfg.TracingEnabled {
		t.Fatalf("expected tracing enabled")
	}
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	t.Setenv("RATE_LIMIT_REQUESTS", "not-a-number")
	t.Setenv("ANALYTICS_TIMEOUT", "soon")
	t.Setenv("TRACING_ENABLED", "maybe")
	cfg := Load()
	if cfg.RateLimitRequests != 60 {
		t.Fatalf("expected default on bad int, got %d", cfg.RateLimitRequests)
	}
	if cfg.AnalyticsTimeout != 60*time.Second {
		t.Fatalf("expected default on bad duration, got %s", cfg.AnalyticsTimeout)
	}
	if cfg.TracingEnabled {
		t.Fatalf("expected default on bad bool")
	}
}
