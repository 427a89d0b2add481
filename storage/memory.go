package storage

import (
	"sort"
	"sync"
	"time"

	"api/models"

	"github.com/google/uuid"
)

// MemoryStore is a mutex-guarded in-memory Store. Every write is serialized,
// so concurrent appends never corrupt the log or collide on id. Used by tests
// and for DB-less local runs.
type MemoryStore struct {
	mu            sync.RWMutex
	events        []*models.Event
	registrations []*models.Registration
	results       []*models.TestResult
	siteTexts     map[string]*models.SiteText
}

// NewMemoryStore creates an empty in-memory store
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		siteTexts: make(map[string]*models.SiteText),
	}
}

func (s *MemoryStore) ListEvents(category string) ([]*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	events := make([]*models.Event, 0, len(s.events))
	for _, event := range s.events {
		if category == "" || event.Category == category {
			events = append(events, event)
		}
	}
	return events, nil
}

func (s *MemoryStore) GetEvent(id string) (*models.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, event := range s.events {
		if event.ID == id {
			return event, nil
		}
	}
	return nil, ErrNotFound
}

func (s *MemoryStore) CreateEvent(event *models.Event) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.CreatedAt.IsZero() {
		event.CreatedAt = time.Now()
	}
	for _, question := range event.Questions {
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		question.EventID = event.ID
	}
	for _, existing := range s.events {
		if existing.ID == event.ID {
			return ErrConflict
		}
	}
	s.events = append(s.events, event)
	return nil
}

func (s *MemoryStore) DeleteEvent(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, event := range s.events {
		if event.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

func (s *MemoryStore) AppendRegistration(reg *models.Registration) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if reg.ID == "" {
		reg.ID = uuid.NewString()
	}
	if reg.CreatedAt.IsZero() {
		reg.CreatedAt = time.Now()
	}
	for _, existing := range s.registrations {
		if existing.ID == reg.ID {
			return ErrConflict
		}
	}
	s.registrations = append(s.registrations, reg)
	return nil
}

func (s *MemoryStore) AppendTestResult(result *models.TestResult) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if result.ID == "" {
		result.ID = uuid.NewString()
	}
	if result.CreatedAt.IsZero() {
		result.CreatedAt = time.Now()
	}
	s.results = append(s.results, result)
	return nil
}

func (s *MemoryStore) ListRegistrations() ([]*models.Registration, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	registrations := make([]*models.Registration, len(s.registrations))
	for i, reg := range s.registrations {
		joined := *reg
		joined.Results = nil
		for _, result := range s.results {
			if result.RegistrantRef == reg.ID {
				joined.Results = append(joined.Results, result)
			}
		}
		registrations[i] = &joined
	}
	sort.SliceStable(registrations, func(i, j int) bool {
		return registrations[i].CreatedAt.Before(registrations[j].CreatedAt)
	})
	return registrations, nil
}

func (s *MemoryStore) GetSiteText(key string) (*models.SiteText, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	text, ok := s.siteTexts[key]
	if !ok {
		return nil, ErrNotFound
	}
	return text, nil
}

func (s *MemoryStore) ListSiteTexts() ([]*models.SiteText, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	texts := make([]*models.SiteText, 0, len(s.siteTexts))
	for _, text := range s.siteTexts {
		texts = append(texts, text)
	}
	sort.Slice(texts, func(i, j int) bool { return texts[i].Key < texts[j].Key })
	return texts, nil
}

func (s *MemoryStore) PutSiteText(text *models.SiteText) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	text.UpdatedAt = time.Now()
	s.siteTexts[text.Key] = text
	return nil
}
