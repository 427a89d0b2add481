package events

import (
	"api/services"

	"github.com/gin-gonic/gin"
)

var svc *services.EventService

// RegisterRoutes registers all routes related to events and tests
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, service *services.EventService) {
	svc = service

	events := r.Group("/events")
	{
		events.GET("", GetAllEvents)
		events.GET("/:id", GetEvent)

		// Admin surface; unauthenticated by design, documented limitation
		events.POST("", CreateEvent)
		events.DELETE("/:id", DeleteEvent)
	}

	r.GET("/tests/:eventId", GetTest)
}
