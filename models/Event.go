package models

import "time"

// Event categories. Only olympiads carry a scored test before payment.
const (
	CategoryOlympiad   = "olympiad"
	CategoryContest    = "contest"
	CategoryConference = "conference"
)

// Event represents a cataloged olympiad, contest or conference open for registration
type Event struct {
	ID               string      `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	Category         string      `gorm:"type:varchar(20);not null" json:"category"`
	Title            string      `gorm:"type:varchar(255);not null" json:"title"`
	ShortDescription string      `gorm:"type:varchar(500);column:short_description" json:"short_description"`
	Description      string      `gorm:"type:text" json:"description"`
	CreatedAt        time.Time   `json:"created_at"`
	Questions        []*Question `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"questions,omitempty"`
}

// ValidCategory reports whether category is one of the known event categories
func ValidCategory(category string) bool {
	switch category {
	case CategoryOlympiad, CategoryContest, CategoryConference:
		return true
	}
	return false
}

// Assessable reports whether registrants must take the event's test before payment
func (e *Event) Assessable() bool {
	return e.Category == CategoryOlympiad
}

// HasTest reports whether a test definition is bound to the event
func (e *Event) HasTest() bool {
	return len(e.Questions) > 0
}
