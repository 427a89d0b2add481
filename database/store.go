package database

import (
	"errors"

	"api/models"
	"api/storage"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormStore is the Postgres-backed storage.Store used in production
type GormStore struct {
	db *gorm.DB
}

// NewStore wraps the initialized database connection. InitDB must have been
// called first.
func NewStore() *GormStore {
	return &GormStore{db: DB}
}

func (s *GormStore) ListEvents(category string) ([]*models.Event, error) {
	var events []*models.Event
	query := s.db.Order("created_at ASC").Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	})
	if category != "" {
		query = query.Where("category = ?", category)
	}
	if err := query.Find(&events).Error; err != nil {
		return nil, &storage.StorageError{Op: "list events", Err: err}
	}
	return events, nil
}

func (s *GormStore) GetEvent(id string) (*models.Event, error) {
	var event models.Event
	err := s.db.Preload("Questions", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).First(&event, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, &storage.StorageError{Op: "get event", Err: err}
	}
	return &event, nil
}

func (s *GormStore) CreateEvent(event *models.Event) error {
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	for _, question := range event.Questions {
		if question.ID == "" {
			question.ID = uuid.NewString()
		}
		question.EventID = event.ID
	}
	if err := s.db.Create(event).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrConflict
		}
		return &storage.StorageError{Op: "create event", Err: err}
	}
	return nil
}

func (s *GormStore) DeleteEvent(id string) error {
	result := s.db.Where("id = ?", id).Delete(&models.Event{})
	if result.Error != nil {
		return &storage.StorageError{Op: "delete event", Err: result.Error}
	}
	if result.RowsAffected == 0 {
		return storage.ErrNotFound
	}
	// Questions go with the event; registrations keep their event reference
	if err := s.db.Where("event_id = ?", id).Delete(&models.Question{}).Error; err != nil {
		return &storage.StorageError{Op: "delete event questions", Err: err}
	}
	return nil
}

func (s *GormStore) AppendRegistration(reg *models.Registration) error {
	if err := s.db.Create(reg).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrConflict
		}
		return &storage.StorageError{Op: "append registration", Err: err}
	}
	return nil
}

func (s *GormStore) AppendTestResult(result *models.TestResult) error {
	if err := s.db.Create(result).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return storage.ErrConflict
		}
		return &storage.StorageError{Op: "append test result", Err: err}
	}
	return nil
}

func (s *GormStore) ListRegistrations() ([]*models.Registration, error) {
	var registrations []*models.Registration
	if err := s.db.Order("created_at ASC").Find(&registrations).Error; err != nil {
		return nil, &storage.StorageError{Op: "list registrations", Err: err}
	}

	var results []*models.TestResult
	if err := s.db.Order("created_at ASC").Find(&results).Error; err != nil {
		return nil, &storage.StorageError{Op: "list test results", Err: err}
	}
	byRef := make(map[string][]*models.TestResult, len(results))
	for _, result := range results {
		byRef[result.RegistrantRef] = append(byRef[result.RegistrantRef], result)
	}
	for _, reg := range registrations {
		reg.Results = byRef[reg.ID]
	}
	return registrations, nil
}

func (s *GormStore) GetSiteText(key string) (*models.SiteText, error) {
	var text models.SiteText
	if err := s.db.First(&text, "key = ?", key).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, storage.ErrNotFound
		}
		return nil, &storage.StorageError{Op: "get site text", Err: err}
	}
	return &text, nil
}

func (s *GormStore) ListSiteTexts() ([]*models.SiteText, error) {
	var texts []*models.SiteText
	if err := s.db.Order("key ASC").Find(&texts).Error; err != nil {
		return nil, &storage.StorageError{Op: "list site texts", Err: err}
	}
	return texts, nil
}

func (s *GormStore) PutSiteText(text *models.SiteText) error {
	err := s.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		UpdateAll: true,
	}).Create(text).Error
	if err != nil {
		return &storage.StorageError{Op: "put site text", Err: err}
	}
	return nil
}
