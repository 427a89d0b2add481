package events

import (
	"errors"
	"log"
	"net/http"

	"api/storage"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// GetTest Get the test bound to an event
// @Summary Get an event's test definition
// @Description Get the ordered questions of an event's test with correct answer keys stripped
// @Tags Tests
// @Accept json
// @Produce json
// @Param eventId path string true "Event ID"
// @Success 200 {object} TestView
// @Failure 404 {object} map[string]string
// @Router /tests/{eventId} [get]
func GetTest(c *gin.Context) {
	event, err := svc.GetEvent(c.Param("eventId"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrEventNotFound)
			return
		}
		log.Printf("Error fetching event for test: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchEvents)
		return
	}
	if !event.HasTest() {
		response.Error(c, http.StatusNotFound, ErrTestNotFound)
		return
	}
	c.JSON(http.StatusOK, toTestView(event))
}
