package config

import (
	"fmt"
	"net"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	RateLimitBackendMemory = "memory"
	RateLimitBackendRedis  = "redis"
)

// Config holds the whole application configuration.
// It is populated from environment variables.
type Config struct {
	App       AppConfig
	Upstream  UpstreamConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
	LogLevel    string

	// TrustedProxies lists the IPs/CIDRs allowed to set X-Forwarded-For and X-Real-IP.
	// Empty means no proxy is trusted and the socket peer is the client.
	TrustedProxies []string
}

// UpstreamConfig locates the employee-record service the façade wraps.
type UpstreamConfig struct {
	BaseURL          string        // http://localhost:8112
	EmployeeResource string        // /api/v1/employee
	Timeout          time.Duration // per-request client timeout
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

// =====================================================
// INBOUND THROTTLE
// =====================================================

type RateLimitConfig struct {
	Enabled           bool
	Backend           string // memory, redis
	RequestsPerMinute int
	Burst             int
}

// UsesRedis reports whether any enabled component needs a Redis connection.
func (c *Config) UsesRedis() bool {
	return c.RateLimit.Enabled && c.RateLimit.Backend == RateLimitBackendRedis
}

// Load reads the configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Employee API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),

			TrustedProxies: getEnvList("TRUSTED_PROXIES"),
		},
		Upstream: UpstreamConfig{
			BaseURL:          getEnv("UPSTREAM_BASE_URL", "http://localhost:8112"),
			EmployeeResource: getEnv("UPSTREAM_EMPLOYEE_RESOURCE", "/api/v1/employee"),
			Timeout:          getEnvDuration("UPSTREAM_TIMEOUT", 10*time.Second),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		RateLimit: RateLimitConfig{
			Enabled:           getEnvBool("RATE_LIMIT_ENABLED", true),
			Backend:           strings.ToLower(getEnv("RATE_LIMIT_BACKEND", RateLimitBackendMemory)),
			RequestsPerMinute: getEnvInt("RATE_LIMIT_REQUESTS_PER_MINUTE", 120),
			Burst:             getEnvInt("RATE_LIMIT_BURST", 20),
		},
	}

	// Validate critical config
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that the configuration is usable
func (c *Config) Validate() error {
	u, err := url.Parse(c.Upstream.BaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("UPSTREAM_BASE_URL must be an absolute http(s) URL, got %q", c.Upstream.BaseURL)
	}
	if !strings.HasPrefix(c.Upstream.EmployeeResource, "/") {
		return fmt.Errorf("UPSTREAM_EMPLOYEE_RESOURCE must start with '/', got %q", c.Upstream.EmployeeResource)
	}
	if c.Upstream.Timeout <= 0 {
		return fmt.Errorf("UPSTREAM_TIMEOUT must be positive")
	}

	for _, proxy := range c.App.TrustedProxies {
		if !validProxy(proxy) {
			return fmt.Errorf("TRUSTED_PROXIES entries must be IPs or CIDRs, got %q", proxy)
		}
	}

	if c.RateLimit.Enabled {
		switch c.RateLimit.Backend {
		case RateLimitBackendMemory, RateLimitBackendRedis:
		default:
			return fmt.Errorf("RATE_LIMIT_BACKEND must be %q or %q, got %q",
				RateLimitBackendMemory, RateLimitBackendRedis, c.RateLimit.Backend)
		}
		if c.RateLimit.RequestsPerMinute <= 0 {
			return fmt.Errorf("RATE_LIMIT_REQUESTS_PER_MINUTE must be positive when rate limiting is enabled")
		}
	}

	return nil
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvList splits a comma-separated variable, dropping blank entries.
func getEnvList(key string) []string {
	var values []string
	for _, v := range strings.Split(os.Getenv(key), ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

func validProxy(value string) bool {
	if strings.Contains(value, "/") {
		_, _, err := net.ParseCIDR(value)
		return err == nil
	}
	return net.ParseIP(value) != nil
}

// getEnvDuration accepts Go durations ("5s") or a bare number of seconds.
func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := strings.TrimSpace(os.Getenv(key))
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if secs, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(secs) * time.Second
	}
	return defaultValue
}
