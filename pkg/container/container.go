package container

import (
	"context"
	"fmt"
	"time"

	"employee-facade/internal/config"
	"employee-facade/internal/domains/employee/gateway"
	employeeHandler "employee-facade/internal/domains/employee/handler"
	employeeService "employee-facade/internal/domains/employee/service"
	infraCache "employee-facade/internal/infrastructure/cache"
	"employee-facade/internal/infrastructure/ratelimit"
	"employee-facade/pkg/cache"
	"employee-facade/pkg/logger"
)

// ========================================
// CONTAINER STRUCT
// ========================================

// Container holds every long-lived dependency of the application.
type Container struct {
	// ========================================
	// INFRASTRUCTURE LAYER
	// ========================================

	Config  *config.Config
	Cache   cache.Cache       // nil unless the redis throttle backend is enabled
	Limiter ratelimit.Limiter // nil when rate limiting is disabled

	// ========================================
	// INTEGRATION LAYER
	// ========================================

	EmployeeGateway gateway.EmployeeGateway

	// ========================================
	// SERVICE LAYER
	// ========================================

	EmployeeService employeeService.ServiceInterface

	// ========================================
	// HANDLER LAYER
	// ========================================

	EmployeeHandler *employeeHandler.EmployeeHandler
}

// ========================================
// CONSTRUCTOR: BUILD CONTAINER
// ========================================

// NewContainerWithConfig builds the graph in dependency order:
// cache, limiter, gateway, service, handler.
func NewContainerWithConfig(cfg *config.Config) (*Container, error) {
	c := &Container{Config: cfg}

	logger.Info("Initializing container", map[string]interface{}{"environment": cfg.App.Environment})

	// ========================================
	// STEP 1: CACHE
	// ========================================
	if cfg.UsesRedis() {
		redisCache := infraCache.NewRedisCache(cfg.Redis.Host, cfg.Redis.Password, cfg.Redis.DB)

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		// Not fatal: the redis limiter fails open until the server is reachable.
		if err := redisCache.Connect(ctx); err != nil {
			logger.Warn("Redis connection failed, rate limiting will fail open", map[string]interface{}{
				"addr":  cfg.Redis.Host,
				"error": err.Error(),
			})
		}
		c.Cache = redisCache
	}

	// ========================================
	// STEP 2: INBOUND THROTTLE
	// ========================================
	if cfg.RateLimit.Enabled {
		switch cfg.RateLimit.Backend {
		case config.RateLimitBackendRedis:
			c.Limiter = ratelimit.NewRedisLimiter(c.Cache, cfg.RateLimit.RequestsPerMinute)
		default:
			c.Limiter = ratelimit.NewLocalLimiter(cfg.RateLimit.RequestsPerMinute, cfg.RateLimit.Burst)
		}
	}

	// ========================================
	// STEP 3: UPSTREAM GATEWAY
	// ========================================
	gw, err := gateway.New(gateway.Options{
		BaseURL:          cfg.Upstream.BaseURL,
		EmployeeResource: cfg.Upstream.EmployeeResource,
		Timeout:          cfg.Upstream.Timeout,
	})
	if err != nil {
		c.Cleanup()
		return nil, fmt.Errorf("failed to init employee gateway: %w", err)
	}
	c.EmployeeGateway = gw

	// ========================================
	// STEP 4: SERVICES AND HANDLERS
	// ========================================
	c.EmployeeService = employeeService.NewEmployeeService(c.EmployeeGateway)
	c.EmployeeHandler = employeeHandler.NewEmployeeHandler(c.EmployeeService)

	logger.Info("Container initialized", map[string]interface{}{
		"upstream":   cfg.Upstream.BaseURL + cfg.Upstream.EmployeeResource,
		"rate_limit": c.Limiter != nil,
	})
	return c, nil
}

// Cleanup releases resources on shutdown.
func (c *Container) Cleanup() {
	if c.Cache != nil {
		if err := c.Cache.Close(); err != nil {
			logger.Error("Failed to close Redis", err)
		} else {
			logger.Info("Redis connections closed", nil)
		}
	}
}
