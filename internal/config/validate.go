package config

import (
	"fmt"
	"strings"
)

// Validate checks the loaded configuration. Load calls it automatically;
// callers that override fields afterwards should call it again.
func (c *Config) Validate() error {
	if err := c.Hyphenator.validate(); err != nil {
		return fmt.Errorf("hyphenator: %w", err)
	}

	if c.Hyphenator.Kind == HyphenatorOpenAI && c.OpenAI.APIKey == "" {
		return fmt.Errorf("openai.api_key is required for the openai hyphenator")
	}

	if c.Cache.TTL < 0 {
		return fmt.Errorf("cache.ttl must be >= 0 (got %d)", c.Cache.TTL)
	}

	if err := c.Log.validate(); err != nil {
		return fmt.Errorf("log: %w", err)
	}

	return nil
}

func (h *HyphenatorConfig) validate() error {
	switch h.Kind {
	case HyphenatorPatterns, HyphenatorOpenAI:
	default:
		return fmt.Errorf("unknown kind %q (want %s or %s)", h.Kind, HyphenatorPatterns, HyphenatorOpenAI)
	}
	if h.RequestsPerMinute <= 0 {
		return fmt.Errorf("requests_per_minute must be > 0 (got %d)", h.RequestsPerMinute)
	}
	if h.MaxRetries < 0 {
		return fmt.Errorf("max_retries must be >= 0 (got %d)", h.MaxRetries)
	}
	return nil
}

func (l *LogConfig) validate() error {
	switch strings.ToLower(l.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("unknown format %q", l.Format)
	}
	switch strings.ToLower(l.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown level %q", l.Level)
	}
	return nil
}
