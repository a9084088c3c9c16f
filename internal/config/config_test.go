package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	for _, key := range []string{envPort, envProvider, envClashBaseURL, envClashAPIKey, envClashTimeout, envMetricsOn, envMetricsPort} {
		t.Setenv(key, "")
	}

	cfg := Load()

	if cfg.Port != defaultPort {
		t.Fatalf("expected default port, got %s", cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider, got %s", cfg.Provider)
	}
	if cfg.Clash.BaseURL != defaultClashBaseURL {
		t.Fatalf("expected default base url, got %s", cfg.Clash.BaseURL)
	}
	if cfg.Clash.APIKey != "" {
		t.Fatalf("expected empty api key, got %q", cfg.Clash.APIKey)
	}
	if cfg.Clash.Timeout != defaultClashTimeout {
		t.Fatalf("expected default timeout, got %s", cfg.Clash.Timeout)
	}
	if !cfg.Metrics.Enabled {
		t.Fatalf("expected metrics enabled by default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv(envPort, "3000")
	t.Setenv(envProvider, "fixture")
	t.Setenv(envClashBaseURL, "http://localhost:9999")
	t.Setenv(envClashAPIKey, "test-key")
	t.Setenv(envClashTimeout, "5s")
	t.Setenv(envMetricsOn, "false")

	cfg := Load()

	if cfg.Port != "3000" {
		t.Fatalf("expected port override, got %s", cfg.Port)
	}
	if cfg.Provider != "fixture" {
		t.Fatalf("expected provider override, got %s", cfg.Provider)
	}
	if cfg.Clash.BaseURL != "http://localhost:9999" {
		t.Fatalf("expected base url override, got %s", cfg.Clash.BaseURL)
	}
	if cfg.Clash.APIKey != "test-key" {
		t.Fatalf("expected api key override, got %q", cfg.Clash.APIKey)
	}
	if cfg.Clash.Timeout != 5*time.Second {
		t.Fatalf("expected timeout override, got %s", cfg.Clash.Timeout)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
}
