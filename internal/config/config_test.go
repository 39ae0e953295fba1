package config

import "testing"

func TestLoadDefaults(t *testing.T) {
	cfg := Load()
	if cfg.Environment != "development" {
		t.Fatalf("environment: %q", cfg.Environment)
	}
	if cfg.HTTPAddr != ":8080" {
		t.Fatalf("http addr: %q", cfg.HTTPAddr)
	}
	if cfg.DefaultOrgID != 1 {
		t.Fatalf("org id: %d", cfg.DefaultOrgID)
	}
	if cfg.CurrencySymbol != "£" {
		t.Fatalf("currency: %q", cfg.CurrencySymbol)
	}
	if cfg.IsProduction() {
		t.Fatalf("development must not report production")
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("DOCPRESS_ENVIRONMENT", "production")
	t.Setenv("DOCPRESS_DEFAULT_ORG_ID", "7")
	t.Setenv("DOCPRESS_CURRENCY_SYMBOL", "$")
	t.Setenv("DOCPRESS_TRACING_ENABLED", "true")
	t.Setenv("DOCPRESS_TRACING_SAMPLING_RATIO", "0.5")

	cfg := Load()
	if !cfg.IsProduction() {
		t.Fatalf("expected production")
	}
	if cfg.DefaultOrgID != 7 {
		t.Fatalf("org id: %d", cfg.DefaultOrgID)
	}
	if cfg.CurrencySymbol != "$" {
		t.Fatalf("currency: %q", cfg.CurrencySymbol)
	}
	if !cfg.Tracing.Enabled || cfg.Tracing.SamplingRatio != 0.5 {
		t.Fatalf("tracing: %+v", cfg.Tracing)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("DOCPRESS_DEFAULT_ORG_ID", "abc")
	t.Setenv("DOCPRESS_TRACING_ENABLED", "maybe")

	cfg := Load()
	if cfg.DefaultOrgID != 1 {
		t.Fatalf("expected fallback org id, got %d", cfg.DefaultOrgID)
	}
	if cfg.Tracing.Enabled {
		t.Fatalf("expected fallback tracing flag")
	}
}
