package models

import "time"

// Registration represents a registrant's submission for an event.
// Records are append-only and immutable once written. EventID is a weak
// reference: it survives deletion of the event for audit purposes.
type Registration struct {
	ID           string        `gorm:"type:uuid;primary_key" json:"id"`
	EventID      string        `gorm:"type:uuid;not null;column:event_id" json:"event_id"`
	Surname      string        `gorm:"type:varchar(255);not null" json:"surname"`
	Name         string        `gorm:"type:varchar(255);not null" json:"name"`
	Patronymic   string        `gorm:"type:varchar(255)" json:"patronymic"`
	Organization string        `gorm:"type:varchar(255);not null" json:"organization"`
	Country      string        `gorm:"type:varchar(255);not null" json:"country"`
	City         string        `gorm:"type:varchar(255);not null" json:"city"`
	Email        string        `gorm:"type:varchar(255);not null" json:"email"`
	Phone        string        `gorm:"type:varchar(50)" json:"phone"`
	CreatedAt    time.Time     `json:"created_at"`
	Results      []*TestResult `gorm:"-" json:"results,omitempty"`
}

// FullName joins the name fields for display and notification purposes
func (r *Registration) FullName() string {
	name := r.Surname + " " + r.Name
	if r.Patronymic != "" {
		name += " " + r.Patronymic
	}
	return name
}
