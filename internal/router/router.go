package router

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/minhle/healthtrack/backend/internal/api"
	"github.com/minhle/healthtrack/backend/internal/middleware"
	"github.com/minhle/healthtrack/backend/internal/service"
)

// Handlers bundles the route handlers wired into the engine.
type Handlers struct {
	Auth      *api.AuthHandler
	Records   *api.RecordsHandler
	Alerts    *api.AlertsHandler
	Dashboard *api.DashboardHandler
	Profile   *api.ProfileHandler
	Goals     *api.GoalsHandler
}

// SetupRouter configures the application routes. rateLimiter may be nil
// when Redis is not configured.
func SetupRouter(h Handlers, auth *service.AuthService, rateLimiter *middleware.RateLimiter) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")

	h.Auth.RegisterRoutes(v1)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(auth))
	{
		records := protected.Group("")
		if rateLimiter != nil {
			records.Use(rateLimiter.RateLimitMiddleware())
		}
		h.Records.RegisterRoutes(records)

		h.Alerts.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
		h.Profile.RegisterRoutes(protected)
		h.Goals.RegisterRoutes(protected)
	}

	return router
}
