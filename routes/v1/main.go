package v1

import (
	"api/config"
	"api/handlers/events"
	"api/handlers/registrations"
	"api/handlers/settings"
	"api/middleware"
	"api/services"
	"api/storage"

	"github.com/gin-gonic/gin"
)

// Register the endpoints for the v1 API
func Register(r *gin.Engine, store storage.Store) {
	v1 := r.Group("/api/v1")

	// Add metrics middleware to all routes
	v1.Use(middleware.MetricsMiddleware())

	rateLimiter := middleware.NewRateLimiter(config.DefaultRateLimitConfig)
	v1.Use(middleware.RateLimiterMiddleware(rateLimiter))

	RegisterPingRoutes(v1)

	eventService := services.NewEventService(store)
	registrationService := services.NewRegistrationService(store, services.NewEmailService())

	events.RegisterRoutes(v1, eventService)
	registrations.RegisterRoutes(v1, registrationService)
	settings.RegisterRoutes(v1, store)

	// Register metrics endpoint
	RegisterMetricsRoutes(v1)
}
