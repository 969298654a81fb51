// Package config loads PageSum settings from the environment and an
// optional .env file. Values are read once at start-up and passed down.
package config

import (
	"fmt"
	"os"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application.
type Config struct {
	HuggingFace HuggingFaceConfig
	Fetch       FetchConfig
	Summary     SummaryConfig
	Logging     LoggingConfig

	// Warnings collects non-fatal problems found while loading, for the
	// caller to log once its logger exists.
	Warnings []string
}

// HuggingFaceConfig holds inference API configuration.
type HuggingFaceConfig struct {
	APIToken string
	BaseURL  string
	Timeout  time.Duration
}

// FetchConfig holds page retrieval limits.
type FetchConfig struct {
	RenderTimeout time.Duration
	RenderSettle  time.Duration
	StaticTimeout time.Duration
	UserAgent     string
	MaxTextChars  int
}

// SummaryConfig holds chunking and generation limits.
type SummaryConfig struct {
	ChunkSize    int
	MinTextChars int
	MaxNewTokens int
	MinLength    int
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string
	Format string
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	// Load .env file (ignore error if file doesn't exist)
	_ = godotenv.Load()

	env := &envReader{}
	cfg := &Config{
		HuggingFace: HuggingFaceConfig{
			APIToken: env.getEnv("HF_API_TOKEN", ""),
			BaseURL:  env.getEnv("HF_API_BASE_URL", "https://router.huggingface.co/hf-inference/models"),
			Timeout:  env.getDurationEnv("HF_TIMEOUT_SEC", 60) * time.Second,
		},
		Fetch: FetchConfig{
			RenderTimeout: env.getDurationEnv("RENDER_TIMEOUT_SEC", 25) * time.Second,
			RenderSettle:  env.getDurationEnv("RENDER_SETTLE_SEC", 3) * time.Second,
			StaticTimeout: env.getDurationEnv("STATIC_TIMEOUT_SEC", 20) * time.Second,
			UserAgent:     env.getEnv("FETCH_USER_AGENT", "Mozilla/5.0"),
			MaxTextChars:  env.getIntEnv("MAX_TEXT_CHARS", 12000),
		},
		Summary: SummaryConfig{
			ChunkSize:    env.getIntEnv("CHUNK_SIZE", 3500),
			MinTextChars: env.getIntEnv("MIN_TEXT_CHARS", 200),
			MaxNewTokens: env.getIntEnv("SUMMARY_MAX_NEW_TOKENS", 180),
			MinLength:    env.getIntEnv("SUMMARY_MIN_LENGTH", 40),
		},
		Logging: LoggingConfig{
			Level:  env.getEnv("LOG_LEVEL", "info"),
			Format: env.getEnv("LOG_FORMAT", "text"),
		},
		Warnings: env.warnings,
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that sizes and timeouts are usable.
// A missing API token is not an error; it is added to Warnings and
// summarizing reports it instead.
func (c *Config) Validate() error {
	positives := []struct {
		name  string
		value int64
	}{
		{"HF_TIMEOUT_SEC", int64(c.HuggingFace.Timeout)},
		{"RENDER_TIMEOUT_SEC", int64(c.Fetch.RenderTimeout)},
		{"STATIC_TIMEOUT_SEC", int64(c.Fetch.StaticTimeout)},
		{"MAX_TEXT_CHARS", int64(c.Fetch.MaxTextChars)},
		{"CHUNK_SIZE", int64(c.Summary.ChunkSize)},
		{"SUMMARY_MAX_NEW_TOKENS", int64(c.Summary.MaxNewTokens)},
	}
	for _, p := range positives {
		if p.value <= 0 {
			return fmt.Errorf("%s must be positive", p.name)
		}
	}
	if c.Fetch.RenderSettle < 0 {
		return fmt.Errorf("RENDER_SETTLE_SEC must not be negative")
	}
	if c.Summary.MinTextChars < 0 || c.Summary.MinLength < 0 {
		return fmt.Errorf("MIN_TEXT_CHARS and SUMMARY_MIN_LENGTH must not be negative")
	}
	if c.HuggingFace.BaseURL == "" {
		return fmt.Errorf("HF_API_BASE_URL must not be empty")
	}
	switch strings.ToLower(c.Logging.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("LOG_FORMAT must be text or json, got %q", c.Logging.Format)
	}
	if !c.HasToken() && !slices.Contains(c.Warnings, MissingTokenWarning) {
		c.Warnings = append(c.Warnings, MissingTokenWarning)
	}
	return nil
}

// MissingTokenWarning is recorded when HF_API_TOKEN is unset.
const MissingTokenWarning = "HF_API_TOKEN not set; summaries will be skipped"

// HasToken reports whether an inference API token is configured.
func (c *Config) HasToken() bool {
	return strings.TrimSpace(c.HuggingFace.APIToken) != ""
}

// envReader reads environment variables with defaults, remembering
// values it had to ignore.
type envReader struct {
	warnings []string
}

func (r *envReader) getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func (r *envReader) getIntEnv(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		r.warnings = append(r.warnings,
			fmt.Sprintf("invalid integer value for %s: %q, using default %d", key, valueStr, defaultValue))
		return defaultValue
	}

	return value
}

func (r *envReader) getDurationEnv(key string, defaultValue int) time.Duration {
	return time.Duration(r.getIntEnv(key, defaultValue))
}
