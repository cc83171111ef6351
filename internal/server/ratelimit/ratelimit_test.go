package ratelimit

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *Config {
	return &Config{
		Enabled:       true,
		DefaultLimit:  100,
		DefaultWindow: time.Minute,
		Endpoints: []EndpointConfig{
			{Path: "/api/cv/generate-cv", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		},
	}
}

func TestLimiter_AllowsWithinBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, info := l.Allow("client-a", "/api/cv/generate-cv", "POST")
		assert.True(t, allowed, "request %d should be allowed", i)
		assert.Equal(t, 20, info.Limit)
	}
}

func TestLimiter_BlocksBeyondBurst(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a", "/api/cv/generate-cv", "POST")
		require.True(t, allowed)
	}

	allowed, info := l.Allow("client-a", "/api/cv/generate-cv", "POST")
	assert.False(t, allowed)
	assert.Equal(t, 0, info.Remaining)
	assert.Greater(t, info.RetryAfter, time.Duration(0))
}

func TestLimiter_ClientsIsolated(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 5; i++ {
		allowed, _ := l.Allow("client-a", "/api/cv/generate-cv", "POST")
		require.True(t, allowed)
	}

	allowed, _ := l.Allow("client-b", "/api/cv/generate-cv", "POST")
	assert.True(t, allowed, "a saturated client must not affect others")
}

func TestLimiter_Disabled(t *testing.T) {
	l := NewLimiter(&Config{Enabled: false})
	defer l.Stop()

	for i := 0; i < 1000; i++ {
		allowed, _ := l.Allow("client-a", "/api/cv/generate-cv", "POST")
		require.True(t, allowed)
	}
}

func TestLimiter_HealthUnlimited(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	for i := 0; i < 200; i++ {
		allowed, info := l.Allow("client-a", "/api/cv/health", "GET")
		require.True(t, allowed)
		assert.Equal(t, 0, info.Limit)
	}
}

func TestLimiter_UnmatchedPathUsesDefault(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	allowed, info := l.Allow("client-a", "/api/cv/templates", "GET")
	assert.True(t, allowed)
	assert.Equal(t, 100, info.Limit)
}

func TestLimiter_NilConfigUsesDefaults(t *testing.T) {
	l := NewLimiter(nil)
	defer l.Stop()

	allowed, info := l.Allow("client-a", "/api/cv/analyze-job", "POST")
	assert.True(t, allowed)
	assert.Equal(t, 60, info.Limit)
}

func TestBucket_Refills(t *testing.T) {
	// 100 tokens/second so a short sleep restores a token.
	b := newBucket(1, 100)

	require.True(t, b.take())
	require.False(t, b.take())

	time.Sleep(50 * time.Millisecond)
	assert.True(t, b.take())
}

func TestBucket_CapsAtCapacity(t *testing.T) {
	b := newBucket(3, 1000)

	time.Sleep(20 * time.Millisecond)
	remaining, _ := b.status()
	assert.Equal(t, 3, remaining)
}

func TestMatchEndpoint_MethodMismatchFallsThrough(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/cv/generate-cv", Method: "POST", Limit: 20, Window: time.Minute},
	}

	endpoint := matchEndpoint("/api/cv/generate-cv", "GET", configs, 300, time.Minute)
	assert.Equal(t, 300, endpoint.Limit)
}

func TestMatchEndpoint_PrefixMatch(t *testing.T) {
	configs := []EndpointConfig{
		{Path: "/api/cv/download-cv/", Method: "GET", Limit: 50, Window: time.Minute},
	}

	endpoint := matchEndpoint("/api/cv/download-cv/abc123", "GET", configs, 300, time.Minute)
	assert.Equal(t, 50, endpoint.Limit)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("RATE_LIMIT_DEFAULT_LIMIT", "42")
	t.Setenv("RATE_LIMIT_DEFAULT_WINDOW", "30s")

	config := LoadConfig()

	assert.True(t, config.Enabled)
	assert.Equal(t, 42, config.DefaultLimit)
	assert.Equal(t, 30*time.Second, config.DefaultWindow)
}

func TestLoadConfig_Disabled(t *testing.T) {
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	config := LoadConfig()

	assert.False(t, config.Enabled)
}

func TestLimiter_ConcurrentAccess(t *testing.T) {
	l := NewLimiter(testConfig())
	defer l.Stop()

	done := make(chan struct{})
	for i := 0; i < 10; i++ {
		go func(n int) {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 20; j++ {
				l.Allow(fmt.Sprintf("client-%d", n), "/api/cv/generate-cv", "POST")
			}
		}(i)
	}
	for i := 0; i < 10; i++ {
		<-done
	}
}
