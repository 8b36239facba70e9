package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(configs ...EndpointConfig) *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    1000,
		DefaultWindow:   time.Minute,
		CleanupInterval: 0, // no background cleanup in tests
		EndpointConfigs: configs,
	}
}

func TestAllow_BurstThenDeny(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{
		Path:   "/api/chat",
		Method: "POST",
		Limit:  60,
		Window: time.Hour,
		Burst:  3,
	}))
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		allowed, _ := limiter.Allow("client-1", "/api/chat", "POST")
		require.True(t, allowed, "request %d within burst", i+1)
	}

	allowed, info := limiter.Allow("client-1", "/api/chat", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 60, info.Limit)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestAllow_ClientsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{
		Path:   "/api/chat",
		Method: "POST",
		Limit:  60,
		Window: time.Hour,
		Burst:  1,
	}))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-1", "/api/chat", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-1", "/api/chat", "POST")
	require.False(t, allowed)

	// A different client still has a full bucket.
	allowed, _ = limiter.Allow("client-2", "/api/chat", "POST")
	assert.True(t, allowed)
}

func TestAllow_MethodsAreIndependent(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{
		Path:   "/api/skills",
		Method: "POST",
		Limit:  60,
		Window: time.Hour,
		Burst:  1,
	}))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-1", "/api/skills", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-1", "/api/skills", "POST")
	require.False(t, allowed)

	// Reads are limited separately under the default bucket.
	allowed, _ = limiter.Allow("client-1", "/api/skills", "GET")
	assert.True(t, allowed)
}

func TestAllow_DisabledAllowsEverything(t *testing.T) {
	limiter := NewLimiter(&Config{Enabled: false})
	defer limiter.Stop()

	for i := 0; i < 100; i++ {
		allowed, _ := limiter.Allow("client-1", "/api/chat", "POST")
		require.True(t, allowed)
	}
}

func TestAllow_HealthIsUnlimited(t *testing.T) {
	limiter := NewLimiter(testConfig(DefaultEndpointConfigs()...))
	defer limiter.Stop()

	for i := 0; i < 50; i++ {
		allowed, _ := limiter.Allow("client-1", "/health", "GET")
		require.True(t, allowed)
	}
}

func TestAllow_TokensRefill(t *testing.T) {
	// 100 tokens/second refill, burst 1: a drained bucket recovers quickly.
	limiter := NewLimiter(testConfig(EndpointConfig{
		Path:   "/api/chat",
		Method: "POST",
		Limit:  100,
		Window: time.Second,
		Burst:  1,
	}))
	defer limiter.Stop()

	allowed, _ := limiter.Allow("client-1", "/api/chat", "POST")
	require.True(t, allowed)
	allowed, _ = limiter.Allow("client-1", "/api/chat", "POST")
	require.False(t, allowed)

	time.Sleep(50 * time.Millisecond)

	allowed, _ = limiter.Allow("client-1", "/api/chat", "POST")
	assert.True(t, allowed)
}

func TestMatchEndpoint(t *testing.T) {
	configs := DefaultEndpointConfigs()

	tests := []struct {
		path      string
		method    string
		wantPath  string
		wantMatch bool
	}{
		{"/api/recommendations", "GET", "/api/recommendations", true},
		{"/api/chat", "POST", "/api/chat", true},
		{"/api/auth/signup", "POST", "/api/auth/", true},
		{"/api/auth/login", "POST", "/api/auth/", true},
		{"/api/skills", "POST", "/api/skills", true},
		{"/api/skills/123", "PUT", "/api/skills/", true},
		{"/api/goals/123", "DELETE", "/api/goals/", true},
		{"/api/progress/JavaScript", "PUT", "/api/progress/", true},
		{"/api/skills", "GET", "", false},
		{"/api/unknown", "POST", "", false},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s %s", tt.method, tt.path), func(t *testing.T) {
			cfg := MatchEndpoint(tt.path, tt.method, configs)
			if !tt.wantMatch {
				assert.Nil(t, cfg)
				return
			}
			require.NotNil(t, cfg)
			assert.Equal(t, tt.wantPath, cfg.Path)
		})
	}
}

func TestMatchEndpoint_HealthNeverLimited(t *testing.T) {
	cfg := MatchEndpoint("/health", "GET", DefaultEndpointConfigs())
	require.NotNil(t, cfg)
	assert.LessOrEqual(t, cfg.Limit, 0)
}

func TestRemoveStaleBuckets(t *testing.T) {
	limiter := NewLimiter(testConfig(EndpointConfig{
		Path:   "/api/chat",
		Method: "POST",
		Limit:  60,
		Window: time.Hour,
		Burst:  5,
	}))
	defer limiter.Stop()

	limiter.Allow("client-1", "/api/chat", "POST")
	require.Len(t, limiter.buckets, 1)

	// Backdate the access record past the one-hour cutoff.
	limiter.accessMu.Lock()
	for key := range limiter.lastAccess {
		limiter.lastAccess[key] = time.Now().Add(-2 * time.Hour)
	}
	limiter.accessMu.Unlock()

	limiter.removeStaleBuckets()
	assert.Empty(t, limiter.buckets)
}
