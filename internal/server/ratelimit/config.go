package ratelimit

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// EndpointConfig is the rate limit for one endpoint. A Limit of zero or less
// means unlimited.
type EndpointConfig struct {
	Path   string // exact path, or prefix when ending with "/"
	Method string
	Limit  int
	Window time.Duration
	Burst  int
}

// Config holds rate limiting configuration.
type Config struct {
	Enabled         bool
	DefaultLimit    int
	DefaultWindow   time.Duration
	CleanupInterval time.Duration
	Endpoints       []EndpointConfig
}

// LoadConfig loads rate limiting configuration from environment variables,
// falling back to the built-in endpoint table.
func LoadConfig() *Config {
	if !getEnvBool("RATE_LIMIT_ENABLED", true) {
		return &Config{Enabled: false}
	}
	return &Config{
		Enabled:         true,
		DefaultLimit:    getEnvInt("RATE_LIMIT_DEFAULT_LIMIT", 300),
		DefaultWindow:   getEnvDuration("RATE_LIMIT_DEFAULT_WINDOW", time.Minute),
		CleanupInterval: getEnvDuration("RATE_LIMIT_CLEANUP_INTERVAL", 5*time.Minute),
		Endpoints:       defaultEndpointConfigs(),
	}
}

func defaultConfig() *Config {
	return &Config{
		Enabled:         true,
		DefaultLimit:    300,
		DefaultWindow:   time.Minute,
		CleanupInterval: 5 * time.Minute,
		Endpoints:       defaultEndpointConfigs(),
	}
}

// defaultEndpointConfigs returns the per-endpoint limits. PDF generation is
// the expensive tier (it starts a headless browser per request); analysis is
// moderate; reads fall through to the default limit.
func defaultEndpointConfigs() []EndpointConfig {
	return []EndpointConfig{
		{Path: "/api/cv/generate-cv", Method: "POST", Limit: 20, Window: time.Minute, Burst: 5},
		{Path: "/api/cv/analyze-job", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
		{Path: "/api/cv/ats-check", Method: "POST", Limit: 60, Window: time.Minute, Burst: 10},
	}
}

// matchEndpoint resolves the limit for a path and method. The health endpoint
// is always unlimited; unmatched paths use the default limit.
func matchEndpoint(path, method string, configs []EndpointConfig, defaultLimit int, defaultWindow time.Duration) EndpointConfig {
	if path == "/api/cv/health" && method == "GET" {
		return EndpointConfig{Limit: 0}
	}

	for _, config := range configs {
		if config.Method != method {
			continue
		}
		if config.Path == path {
			return config
		}
		if strings.HasSuffix(config.Path, "/") && strings.HasPrefix(path, config.Path) {
			return config
		}
	}
	return EndpointConfig{Limit: defaultLimit, Window: defaultWindow, Burst: defaultLimit}
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.Atoi(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}
