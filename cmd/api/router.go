package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"employee-facade/internal/shared/middleware"
	"employee-facade/pkg/container"
	"employee-facade/pkg/logger"

	"github.com/gin-gonic/gin"
)

func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	// Forwarding headers only count from these peers; none by default.
	if err := router.SetTrustedProxies(c.Config.App.TrustedProxies); err != nil {
		logger.Error("Invalid trusted proxies, trusting none", err)
		_ = router.SetTrustedProxies(nil)
	}

	// Global middlewares
	router.Use(
		middleware.RequestID(),
		middleware.ClientIPMiddleware(),
		middleware.Logger(),
		middleware.Recovery(),
	)

	router.GET("/health", healthCheckHandler(c))

	setupEmployeeRoutes(router, c)

	return router
}

// ========================================
// EMPLOYEE ROUTES
// ========================================
// Mounted at the root to keep the public /employee contract.
func setupEmployeeRoutes(router *gin.Engine, c *container.Container) {
	employees := router.Group("")
	if c.Limiter != nil {
		employees.Use(middleware.RateLimit(c.Limiter))
	}
	c.EmployeeHandler.RegisterRoutes(employees)
}

// ========================================
// HEALTH CHECK HANDLER
// ========================================
// The upstream is not probed: every call spends its shared rate-limit budget.
func healthCheckHandler(appCtx *container.Container) gin.HandlerFunc {
	return func(c *gin.Context) {
		health := gin.H{
			"service":   appCtx.Config.App.Name,
			"status":    "ok",
			"timestamp": time.Now().Format(time.RFC3339),
			"version":   appCtx.Config.App.Version,
		}

		redisStatus := "disabled"
		if appCtx.Cache != nil {
			redisStatus = "ok"

			ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
			defer cancel()

			if err := appCtx.Cache.Ping(ctx); err != nil {
				redisStatus = fmt.Sprintf("error: %v", err)
				health["status"] = "degraded"
			}
		}

		health["services"] = gin.H{
			"redis": redisStatus,
		}

		c.JSON(http.StatusOK, health)
	}
}
