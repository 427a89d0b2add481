package events

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"api/database"
	"api/metrics"
	"api/services"
	"api/storage"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// Constants for caching
const (
	EventsCacheKey      = "events:"
	EventsCacheDuration = 5 * time.Minute
)

// GetAllEvents Get all events
// @Summary Get all events
// @Description Get event summaries in insertion order, optionally filtered by category
// @Tags Events
// @Accept json
// @Produce json
// @Param category query string false "Event category (olympiad, contest, conference)"
// @Success 200 {array} EventSummary
// @Failure 422 {object} map[string]string
// @Router /events [get]
func GetAllEvents(c *gin.Context) {
	category := c.Query("category")

	// Try to get from cache first
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	cacheKey := EventsCacheKey + category
	if database.REDIS != nil {
		if cachedData, err := database.REDIS.Get(ctx, cacheKey).Result(); err == nil && cachedData != "" {
			var summaries []EventSummary
			if err := json.Unmarshal([]byte(cachedData), &summaries); err == nil {
				metrics.CacheHits.Inc()
				c.JSON(http.StatusOK, summaries)
				return
			}
		}
		metrics.CacheMisses.Inc()
	}

	events, err := svc.ListEvents(category)
	if err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(c, map[string]string{vErr.Field: vErr.Message})
			return
		}
		log.Printf("Error fetching events: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchEvents)
		return
	}

	summaries := make([]EventSummary, 0, len(events))
	for _, event := range events {
		summaries = append(summaries, toSummary(event))
	}

	if database.REDIS != nil {
		if data, err := json.Marshal(summaries); err == nil {
			if err := database.REDIS.Set(ctx, cacheKey, string(data), EventsCacheDuration).Err(); err != nil {
				// Just log the error, don't fail the request
				log.Printf("Failed to cache events: %v", err)
			}
		}
	}

	c.JSON(http.StatusOK, summaries)
}

// GetEvent Get one event
// @Summary Get an event by id
// @Description Get the full event detail. Correct answer keys are never included.
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} models.Event
// @Failure 404 {object} map[string]string
// @Router /events/{id} [get]
func GetEvent(c *gin.Context) {
	event, err := svc.GetEvent(c.Param("id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrEventNotFound)
			return
		}
		log.Printf("Error fetching event: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedFetchEvents)
		return
	}
	c.JSON(http.StatusOK, event)
}

// CreateEvent Create an event
// @Summary Create an event
// @Description Create an event with an optional embedded test definition. Admin surface, unauthenticated (documented limitation).
// @Tags Events
// @Accept json
// @Produce json
// @Param event body CreateEventRequest true "Event to create"
// @Success 201 {object} models.Event
// @Failure 400 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /events [post]
func CreateEvent(c *gin.Context) {
	var req CreateEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	event := toModel(req)
	if err := svc.CreateEvent(event); err != nil {
		var vErr *services.ValidationError
		if errors.As(err, &vErr) {
			response.ValidationError(c, map[string]string{vErr.Field: vErr.Message})
			return
		}
		log.Printf("Error creating event: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedCreateEvent)
		return
	}

	invalidateEventsCache(c)
	c.JSON(http.StatusCreated, event)
}

// DeleteEvent Delete an event
// @Summary Delete an event
// @Description Delete an event and its test definition. Persisted registrations keep their event reference. Admin surface, unauthenticated (documented limitation).
// @Tags Events
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Success 204 {object} nil
// @Failure 404 {object} map[string]string
// @Router /events/{id} [delete]
func DeleteEvent(c *gin.Context) {
	if err := svc.DeleteEvent(c.Param("id")); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			response.Error(c, http.StatusNotFound, ErrEventNotFound)
			return
		}
		log.Printf("Error deleting event: %v", err)
		response.Error(c, http.StatusInternalServerError, ErrFailedDeleteEvent)
		return
	}

	invalidateEventsCache(c)
	c.Status(http.StatusNoContent)
}

func invalidateEventsCache(c *gin.Context) {
	if database.REDIS == nil {
		return
	}
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()
	keys := []string{EventsCacheKey}
	for _, category := range []string{"olympiad", "contest", "conference"} {
		keys = append(keys, EventsCacheKey+category)
	}
	if err := database.REDIS.Del(ctx, keys...).Err(); err != nil {
		log.Printf("Failed to invalidate events cache: %v", err)
	}
}
