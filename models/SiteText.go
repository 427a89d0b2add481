package models

import "time"

// Well-known site text keys
const (
	SiteTextPaymentText = "payment_text"
	SiteTextFooterEmail = "footer_email"
	SiteTextFooterText  = "footer_text"
	SiteTextAboutText   = "about_text"
)

// SiteText represents one editable piece of site text (payment instructions,
// contact info, footer, about paragraph), stored as a key-value record
type SiteText struct {
	Key       string    `gorm:"type:varchar(50);primary_key" json:"key"`
	Value     string    `gorm:"type:text;not null" json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}
