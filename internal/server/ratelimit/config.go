package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for a specific endpoint.
// Paths ending in "/" are prefix-matched.
type EndpointConfig struct {
	Path   string
	Method string
	Limit  int           // Maximum requests per window
	Window time.Duration // Time window
	Burst  int           // Burst capacity (defaults to Limit if 0)
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	EndpointConfigs []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables.
func LoadConfig() *Config {
	enabled := getEnvBool("RATE_LIMIT_ENABLED", true)
	if !enabled {
		return &Config{Enabled: false}
	}

	return &Config{
		Enabled:         enabled,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 1000),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		EndpointConfigs: DefaultEndpointConfigs(),
	}
}

// DefaultEndpointConfigs returns the default endpoint-specific configurations.
func DefaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		// Tier 1: model-backed operations (strictest, they burn LLM quota)
		{Path: "/api/recommendations", Method: "GET", Limit: 20, Window: time.Hour, Burst: 5},
		{Path: "/api/chat", Method: "POST", Limit: 60, Window: time.Hour, Burst: 10},

		// Tier 2: auth endpoints (brute-force protection)
		{Path: "/api/auth/", Method: "POST", Limit: 30, Window: time.Minute, Burst: 10},

		// Tier 3: CRUD writes (moderate limits)
		{Path: "/api/skills", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/skills/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/skills/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/goals", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/goals/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/goals/", Method: "DELETE", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/progress", Method: "POST", Limit: 100, Window: time.Minute, Burst: 10},
		{Path: "/api/progress/", Method: "PUT", Limit: 100, Window: time.Minute, Burst: 10},

		// Reads are covered by the default limit; /health is unlimited.
	}
}

// MatchEndpoint matches a request path and method to an endpoint configuration.
// Returns nil if no specific configuration applies.
func MatchEndpoint(path, method string, configs []EndpointConfig) *EndpointConfig {
	// Health checks are never limited
	if path == "/health" && method == "GET" {
		return &EndpointConfig{}
	}

	// Exact match first
	for i := range configs {
		cfg := &configs[i]
		if cfg.Path == path && cfg.Method == method {
			return cfg
		}
	}

	// Then prefix match for paths ending with "/"
	for i := range configs {
		cfg := &configs[i]
		if cfg.Method == method && strings.HasSuffix(cfg.Path, "/") && strings.HasPrefix(path, cfg.Path) {
			return cfg
		}
	}

	return nil
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolValue, err := strconv.ParseBool(value); err == nil {
			return boolValue
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}
