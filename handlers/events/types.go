package events

import "api/models"

// Error message constants
const (
	ErrEventNotFound     = "Event not found"
	ErrTestNotFound      = "No test is bound to this event"
	ErrInvalidRequest    = "Invalid request data"
	ErrFailedFetchEvents = "Failed to fetch events"
	ErrFailedCreateEvent = "Failed to create event"
	ErrFailedDeleteEvent = "Failed to delete event"
)

// QuestionRequest is one question of an event creation request. Options maps
// option keys (a-d) to option text; empty or omitted entries are not offered.
type QuestionRequest struct {
	Prompt     string            `json:"prompt" binding:"required"`
	Options    map[string]string `json:"options" binding:"required"`
	CorrectKey string            `json:"correct_key" binding:"required"`
}

// CreateEventRequest model for creating an event with an optional embedded
// test definition
type CreateEventRequest struct {
	Category         string            `json:"category" binding:"required"`
	Title            string            `json:"title" binding:"required"`
	ShortDescription string            `json:"short_description"`
	Description      string            `json:"description"`
	Questions        []QuestionRequest `json:"questions"`
}

// EventSummary is the public listing shape of an event
type EventSummary struct {
	ID               string `json:"id"`
	Category         string `json:"category"`
	Title            string `json:"title"`
	ShortDescription string `json:"short_description"`
	HasTest          bool   `json:"has_test"`
}

// QuestionView is a question as shown to a test taker: the correct key is
// stripped and unoffered options are excluded
type QuestionView struct {
	Position int               `json:"position"`
	Prompt   string            `json:"prompt"`
	Options  map[string]string `json:"options"`
}

// TestView is an event's test definition as exposed to the client
type TestView struct {
	EventID   string         `json:"event_id"`
	Title     string         `json:"title"`
	Questions []QuestionView `json:"questions"`
}

func toModel(req CreateEventRequest) *models.Event {
	event := &models.Event{
		Category:         req.Category,
		Title:            req.Title,
		ShortDescription: req.ShortDescription,
		Description:      req.Description,
	}
	for _, q := range req.Questions {
		event.Questions = append(event.Questions, &models.Question{
			Prompt:     q.Prompt,
			OptionA:    q.Options["a"],
			OptionB:    q.Options["b"],
			OptionC:    q.Options["c"],
			OptionD:    q.Options["d"],
			CorrectKey: q.CorrectKey,
		})
	}
	return event
}

func toSummary(event *models.Event) EventSummary {
	return EventSummary{
		ID:               event.ID,
		Category:         event.Category,
		Title:            event.Title,
		ShortDescription: event.ShortDescription,
		HasTest:          event.HasTest(),
	}
}

func toTestView(event *models.Event) TestView {
	view := TestView{EventID: event.ID, Title: event.Title}
	for _, question := range event.Questions {
		view.Questions = append(view.Questions, QuestionView{
			Position: question.Position,
			Prompt:   question.Prompt,
			Options:  question.Options(),
		})
	}
	return view
}
