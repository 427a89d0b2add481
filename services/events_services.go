package services

import (
	"fmt"
	"strings"

	"api/models"
	"api/storage"
)

// EventService curates the event catalog and its attached test definitions
type EventService struct {
	store storage.EventStore
}

func NewEventService(store storage.EventStore) *EventService {
	return &EventService{store: store}
}

// ListEvents returns events in insertion order, optionally filtered by category
func (s *EventService) ListEvents(category string) ([]*models.Event, error) {
	if category != "" && !models.ValidCategory(category) {
		return nil, &ValidationError{Field: "category", Message: "is not a known event category"}
	}
	events, err := s.store.ListEvents(category)
	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}
	return events, nil
}

// GetEvent returns the full event or storage.ErrNotFound
func (s *EventService) GetEvent(id string) (*models.Event, error) {
	return s.store.GetEvent(id)
}

// CreateEvent validates and persists a new event. The attached test
// definition, if any, is validated per question; nothing persists on failure.
// Events are immutable once created, except for deletion.
func (s *EventService) CreateEvent(event *models.Event) error {
	event.Title = strings.TrimSpace(event.Title)
	if event.Title == "" {
		return &ValidationError{Field: "title", Message: "is required"}
	}
	if !models.ValidCategory(event.Category) {
		return &ValidationError{Field: "category", Message: "is not a known event category"}
	}
	if err := ValidateTestDefinition(event.Questions); err != nil {
		return err
	}
	if err := s.store.CreateEvent(event); err != nil {
		return fmt.Errorf("failed to create event: %w", err)
	}
	return nil
}

// DeleteEvent removes the event and its test definition. Already-persisted
// registrations and test results keep their event reference for audit.
func (s *EventService) DeleteEvent(id string) error {
	return s.store.DeleteEvent(id)
}
