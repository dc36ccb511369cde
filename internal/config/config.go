// Package config provides application configuration.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Port        string
	FrontendURL string
	DBPath      string
	LogFile     string

	// Completion API (DeepSeek, OpenAI-compatible).
	DeepSeekAPIKey string
	DeepSeekAPIURL string
	DeepSeekModel  string
	RequestTimeout time.Duration

	// Response cache.
	CacheTTL     time.Duration
	CacheMaxSize int

	// Affiliate links.
	PartnerizeCamref string
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		FrontendURL:      getEnv("FRONTEND_URL", ""),
		DBPath:           getEnv("DB_PATH", "./data/products.db"),
		LogFile:          getEnv("LOG_FILE", ""),
		DeepSeekAPIKey:   getEnv("DEEPSEEK_API_KEY", ""),
		DeepSeekAPIURL:   getEnv("DEEPSEEK_API_URL", "https://api.deepseek.com/v1"),
		DeepSeekModel:    getEnv("DEEPSEEK_MODEL", "deepseek-chat"),
		RequestTimeout:   getEnvDuration("REQUEST_TIMEOUT", 10*time.Second),
		CacheTTL:         getEnvDuration("CACHE_TTL", 5*time.Minute),
		CacheMaxSize:     getEnvInt("CACHE_MAX_SIZE", 100),
		PartnerizeCamref: getEnv("PARTNERIZE_CAMREF", ""),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks that all required configuration fields are set.
func (c *Config) Validate() error {
	if c.Port == "" {
		return fmt.Errorf("PORT cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	if c.DeepSeekAPIURL == "" {
		return fmt.Errorf("DEEPSEEK_API_URL cannot be empty")
	}
	if c.DeepSeekModel == "" {
		return fmt.Errorf("DEEPSEEK_MODEL cannot be empty")
	}
	if c.CacheMaxSize <= 0 {
		return fmt.Errorf("CACHE_MAX_SIZE must be > 0")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("REQUEST_TIMEOUT must be > 0")
	}
	return nil
}

// IsDevelopment returns true if running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.FrontendURL == "" ||
		strings.Contains(c.FrontendURL, "localhost") ||
		strings.Contains(c.FrontendURL, "127.0.0.1")
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, ok := os.LookupEnv(key)
	if !ok {
		return fallback
	}
	d, err := time.ParseDuration(strings.TrimSpace(value))
	if err != nil {
		return fallback
	}
	return d
}
