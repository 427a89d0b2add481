// Package storage defines the persistence contracts for the event catalog,
// the append-only registration log and the editable site texts. Production
// runs use the Postgres-backed implementation in the database package; tests
// and DB-less local runs use the in-memory implementation in this package.
package storage

import (
	"errors"
	"fmt"

	"api/models"
)

var (
	// ErrNotFound is returned when a referenced event or record does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned on a generated id collision. Not expected in
	// normal operation given the append-only design.
	ErrConflict = errors.New("record already exists")
)

// StorageError wraps an underlying persistence failure. The caller must be
// told the write did not occur; it is never silently dropped.
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage: %s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// EventStore owns events and their attached test definitions
type EventStore interface {
	// ListEvents returns events in insertion order, optionally restricted
	// to a category. An empty category means no filter.
	ListEvents(category string) ([]*models.Event, error)

	// GetEvent returns the event with its questions in position order, or
	// ErrNotFound.
	GetEvent(id string) (*models.Event, error)

	// CreateEvent persists the event and its questions atomically and fills
	// in the generated event id.
	CreateEvent(event *models.Event) error

	// DeleteEvent removes the event and its questions, or returns
	// ErrNotFound. Registrations referencing the event are untouched.
	DeleteEvent(id string) error
}

// RegistrationStore owns the append-only registration and result logs. It
// references events by id only: records survive event deletion.
type RegistrationStore interface {
	// AppendRegistration durably appends a registration record. The write is
	// atomic with respect to concurrent appends.
	AppendRegistration(reg *models.Registration) error

	// AppendTestResult durably appends a scored test result.
	AppendTestResult(result *models.TestResult) error

	// ListRegistrations returns all registrations ordered by creation time
	// ascending, each joined with its test results (matched by registrant
	// ref). Field values are raw stored text.
	ListRegistrations() ([]*models.Registration, error)
}

// SiteTextStore owns the editable site text records
type SiteTextStore interface {
	// GetSiteText returns the text behind key, or ErrNotFound.
	GetSiteText(key string) (*models.SiteText, error)

	// ListSiteTexts returns all site text records.
	ListSiteTexts() ([]*models.SiteText, error)

	// PutSiteText inserts or replaces the text behind its key.
	PutSiteText(text *models.SiteText) error
}

// Store bundles the three persistence concerns behind one injection point
type Store interface {
	EventStore
	RegistrationStore
	SiteTextStore
}
