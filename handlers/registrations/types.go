package registrations

import (
	"api/models"

	"github.com/gin-gonic/gin"
)

// Error message constants
const (
	ErrEventNotFound             = "Event not found"
	ErrTestNotBound              = "No test is bound to this event"
	ErrInvalidRequest            = "Invalid request data"
	ErrFailedPersistRegistration = "Failed to persist registration, please try again later"
	ErrFailedPersistResult       = "Failed to persist test result, please try again later"
	ErrFailedFetchRegistrations  = "Failed to fetch registrations"
	ErrNoDataToExport            = "No registrations to export"
)

// CreateRegistrationRequest model for registering for an event
type CreateRegistrationRequest struct {
	EventID      string `json:"event_id" binding:"required"`
	Surname      string `json:"surname"`
	Name         string `json:"name"`
	Patronymic   string `json:"patronymic"`
	Organization string `json:"organization"`
	Country      string `json:"country"`
	City         string `json:"city"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
}

// SubmitTestResultRequest model for submitting test answers. Answers maps the
// question ordinal (as a JSON object key) to the selected option key; null
// means the question was left unanswered.
type SubmitTestResultRequest struct {
	EventID       string             `json:"event_id" binding:"required"`
	RegistrantRef string             `json:"registrant_ref"`
	Answers       map[string]*string `json:"answers"`
}

// RegistrationResponse is returned after a successful registration
type RegistrationResponse struct {
	RegistrationID string `json:"registration_id"`
	State          string `json:"state"`
	PaymentText    string `json:"payment_text,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty"`
}

// TestResultResponse is returned after a scored submission
type TestResultResponse struct {
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
	Percent        int    `json:"percent"`
	AwardTier      string `json:"award_tier"`
	State          string `json:"state"`
	PaymentText    string `json:"payment_text,omitempty"`
	ContactEmail   string `json:"contact_email,omitempty"`
}

func toRegistration(req CreateRegistrationRequest) *models.Registration {
	return &models.Registration{
		EventID:      req.EventID,
		Surname:      req.Surname,
		Name:         req.Name,
		Patronymic:   req.Patronymic,
		Organization: req.Organization,
		Country:      req.Country,
		City:         req.City,
		Email:        req.Email,
		Phone:        req.Phone,
	}
}

func rawAnswers(req SubmitTestResultRequest) map[string]string {
	raw := make(map[string]string, len(req.Answers))
	for ordinal, key := range req.Answers {
		if key == nil {
			raw[ordinal] = ""
			continue
		}
		raw[ordinal] = *key
	}
	return raw
}

// respondWithError sends a standardized error response
func respondWithError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}
