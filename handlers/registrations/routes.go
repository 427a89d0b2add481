package registrations

import (
	"api/services"

	"github.com/gin-gonic/gin"
)

var svc *services.RegistrationService

// RegisterRoutes registers all routes related to registrations and test results
// r: the RouterGroup to which the routes are added
func RegisterRoutes(r *gin.RouterGroup, service *services.RegistrationService) {
	svc = service

	r.POST("/registrations", CreateRegistration)
	r.POST("/test-results", SubmitTestResult)

	// Admin surface; unauthenticated by design, documented limitation
	r.GET("/registrations", GetAllRegistrations)
	r.GET("/registrations/export", ExportRegistrationsExcel)
	r.GET("/registrations/feed", RegistrationFeed)
}
