package config

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("Expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("Expected 5m cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.CacheMaxSize != 100 {
		t.Errorf("Expected cache size 100, got %d", cfg.CacheMaxSize)
	}
	if cfg.RequestTimeout != 10*time.Second {
		t.Errorf("Expected 10s request timeout, got %s", cfg.RequestTimeout)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9000")
	t.Setenv("CACHE_TTL", "1m")
	t.Setenv("CACHE_MAX_SIZE", "10")
	t.Setenv("DEEPSEEK_MODEL", "deepseek-reasoner")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Port != "9000" {
		t.Errorf("Expected port 9000, got %s", cfg.Port)
	}
	if cfg.CacheTTL != time.Minute {
		t.Errorf("Expected 1m cache TTL, got %s", cfg.CacheTTL)
	}
	if cfg.CacheMaxSize != 10 {
		t.Errorf("Expected cache size 10, got %d", cfg.CacheMaxSize)
	}
	if cfg.DeepSeekModel != "deepseek-reasoner" {
		t.Errorf("Expected deepseek-reasoner, got %s", cfg.DeepSeekModel)
	}
}

func TestLoadIgnoresMalformedValues(t *testing.T) {
	t.Setenv("CACHE_MAX_SIZE", "not-a-number")
	t.Setenv("CACHE_TTL", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.CacheMaxSize != 100 {
		t.Errorf("Expected fallback cache size 100, got %d", cfg.CacheMaxSize)
	}
	if cfg.CacheTTL != 5*time.Minute {
		t.Errorf("Expected fallback TTL 5m, got %s", cfg.CacheTTL)
	}
}

func TestValidate(t *testing.T) {
	cfg := &Config{
		Port:           "8080",
		DBPath:         "./data/products.db",
		DeepSeekAPIURL: "https://api.deepseek.com/v1",
		DeepSeekModel:  "deepseek-chat",
		RequestTimeout: 10 * time.Second,
		CacheMaxSize:   100,
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Expected valid config, got %v", err)
	}

	cfg.CacheMaxSize = 0
	if err := cfg.Validate(); err == nil {
		t.Error("Expected error for zero cache size")
	}
}

func TestIsDevelopment(t *testing.T) {
	tests := []struct {
		frontendURL string
		want        bool
	}{
		{"", true},
		{"http://localhost:3000", true},
		{"http://127.0.0.1:3000", true},
		{"https://swiftherb.example.com", false},
	}
	for _, tt := range tests {
		cfg := &Config{FrontendURL: tt.frontendURL}
		if got := cfg.IsDevelopment(); got != tt.want {
			t.Errorf("IsDevelopment(%q) = %v, want %v", tt.frontendURL, got, tt.want)
		}
	}
}

func TestSetupLoggerWithWriters(t *testing.T) {
	var stdout, file bytes.Buffer
	logger := SetupLoggerWithWriters(&stdout, &file, slog.LevelInfo)

	logger.Info("server starting", "port", "8080")

	for name, buf := range map[string]*bytes.Buffer{"stdout": &stdout, "file": &file} {
		if !strings.Contains(buf.String(), "server starting") {
			t.Errorf("Expected log line in %s output, got %q", name, buf.String())
		}
	}
}
