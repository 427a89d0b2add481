package registrations

import (
	"errors"
	"log"
	"net/http"

	"api/metrics"
	"api/realtime"
	"api/services"
	"api/storage"
	"api/utils"
	"api/utils/response"

	"github.com/gin-gonic/gin"
)

// CreateRegistration Register for an event
// @Summary Register for an event
// @Description Validate and persist a registrant submission. Registrations for assessable events await the test; all others get payment instructions directly.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param registration body CreateRegistrationRequest true "Registrant fields"
// @Success 201 {object} RegistrationResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /registrations [post]
func CreateRegistration(c *gin.Context) {
	var req CreateRegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	outcome, err := svc.Register(toRegistration(req))
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(c, map[string]string{vErr.Field: vErr.Message})
		case errors.Is(err, storage.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		default:
			log.Printf("Error persisting registration: %v", err)
			respondWithError(c, http.StatusServiceUnavailable, ErrFailedPersistRegistration)
		}
		return
	}

	metrics.RegistrationsTotal.WithLabelValues(outcome.Event.Category).Inc()
	realtime.BroadcastRegistration(realtime.RegistrationUpdate{
		Registration: outcome.Registration,
		EventTitle:   outcome.Event.Title,
		EventID:      outcome.Event.ID,
	})

	c.JSON(http.StatusCreated, RegistrationResponse{
		RegistrationID: outcome.Registration.ID,
		State:          string(outcome.State),
		PaymentText:    outcome.PaymentText,
		ContactEmail:   outcome.ContactEmail,
	})
}

// SubmitTestResult Submit answers for an event's test
// @Summary Submit test answers
// @Description Score a submission against the event's test definition and persist the result. Re-submission appends a new result.
// @Tags Registrations
// @Accept json
// @Produce json
// @Param result body SubmitTestResultRequest true "Submitted answers"
// @Success 200 {object} TestResultResponse
// @Failure 400 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 422 {object} map[string]string
// @Router /test-results [post]
func SubmitTestResult(c *gin.Context) {
	var req SubmitTestResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithError(c, http.StatusBadRequest, ErrInvalidRequest)
		return
	}

	outcome, err := svc.SubmitAnswers(req.EventID, req.RegistrantRef, rawAnswers(req))
	if err != nil {
		var vErr *services.ValidationError
		switch {
		case errors.As(err, &vErr):
			response.ValidationError(c, map[string]string{vErr.Field: vErr.Message})
		case errors.Is(err, storage.ErrNotFound):
			respondWithError(c, http.StatusNotFound, ErrEventNotFound)
		case errors.Is(err, services.ErrTestNotBound):
			respondWithError(c, http.StatusNotFound, ErrTestNotBound)
		default:
			log.Printf("Error persisting test result: %v", err)
			respondWithError(c, http.StatusServiceUnavailable, ErrFailedPersistResult)
		}
		return
	}

	result := outcome.Result
	metrics.TestResultsTotal.WithLabelValues(result.AwardTier).Inc()

	c.JSON(http.StatusOK, TestResultResponse{
		Score:          result.Score,
		TotalQuestions: result.TotalQuestions,
		Percent:        utils.Percent(result.Score, result.TotalQuestions),
		AwardTier:      result.AwardTier,
		State:          string(outcome.State),
		PaymentText:    outcome.PaymentText,
		ContactEmail:   outcome.ContactEmail,
	})
}

// GetAllRegistrations List registrations
// @Summary Get all registrations
// @Description Get all registrations joined with their test results, ordered by creation time ascending. Admin surface, unauthenticated (documented limitation).
// @Tags Registrations
// @Accept json
// @Produce json
// @Success 200 {array} models.Registration
// @Failure 500 {object} map[string]string
// @Router /registrations [get]
func GetAllRegistrations(c *gin.Context) {
	registrations, err := svc.ListRegistrations()
	if err != nil {
		log.Printf("Error fetching registrations: %v", err)
		respondWithError(c, http.StatusInternalServerError, ErrFailedFetchRegistrations)
		return
	}
	c.JSON(http.StatusOK, registrations)
}
