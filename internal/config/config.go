// Package config provides environment-driven configuration for the CareerPath AI server.
package config

import (
	"fmt"
	"os"
	"strconv"
)

// Config holds the top-level server configuration loaded from the environment.
type Config struct {
	Port          int    // HTTP listen port (PORT, default 5000)
	DatabaseURL   string // PostgreSQL connection URL (DATABASE_URL, required)
	GeminiAPIKey  string // Gemini API key (GEMINI_API_KEY, required)
	YouTubeAPIKey string // YouTube Data API key (YOUTUBE_API_KEY, optional; enrichment degrades to empty results without it)
}

// Load reads the server configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{
		Port:          5000,
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		YouTubeAPIKey: os.Getenv("YOUTUBE_API_KEY"),
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT: %v", err)
		}
		cfg.Port = port
	}

	if err := cfg.normalize(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// normalize validates the configuration.
func (c *Config) normalize() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("PORT out of range: %d", c.Port)
	}
	if c.DatabaseURL == "" {
		return fmt.Errorf("DATABASE_URL is required but not set")
	}
	if c.GeminiAPIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY is required but not set")
	}
	return nil
}
