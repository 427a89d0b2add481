package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// AnonymousRef is stored as RegistrantRef when a submission is not linked to
// a registration record.
const AnonymousRef = "anonymous"

// AnswerSet maps a question's 1-indexed ordinal to the selected option key.
// An absent ordinal or empty key means the question was left unanswered.
type AnswerSet map[int]string

// Value serializes the answer set as JSON for storage
func (a AnswerSet) Value() (driver.Value, error) {
	if a == nil {
		return "{}", nil
	}
	data, err := json.Marshal(a)
	if err != nil {
		return nil, err
	}
	return string(data), nil
}

// Scan deserializes the answer set from its stored JSON form
func (a *AnswerSet) Scan(value interface{}) error {
	if value == nil {
		*a = AnswerSet{}
		return nil
	}
	var data []byte
	switch v := value.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported answer set type %T", value)
	}
	return json.Unmarshal(data, a)
}

// TestResult represents one scored submission of answers for an event's test.
// Records are append-only: re-submitting answers creates a new result rather
// than mutating history.
type TestResult struct {
	ID             string    `gorm:"type:uuid;primary_key" json:"id"`
	EventID        string    `gorm:"type:uuid;not null;column:event_id" json:"event_id"`
	RegistrantRef  string    `gorm:"type:varchar(64);not null;column:registrant_ref" json:"registrant_ref"`
	Answers        AnswerSet `gorm:"type:jsonb;not null" json:"answers"`
	Score          int       `gorm:"type:integer;not null" json:"score"`
	TotalQuestions int       `gorm:"type:integer;not null;column:total_questions" json:"total_questions"`
	AwardTier      string    `gorm:"type:varchar(20);not null;column:award_tier" json:"award_tier"`
	CreatedAt      time.Time `json:"created_at"`
}
