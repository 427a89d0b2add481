package models

// OptionKeys is the closed alphabet of answer option keys, in display order
var OptionKeys = []string{"a", "b", "c", "d"}

// Limits carried over from the public test form
const (
	MaxQuestionsPerTest   = 15
	MaxOptionsPerQuestion = 4
)

// Question represents one multiple-choice question of an event's test definition.
// Position is the 1-indexed ordinal used for display numbering and answer correlation.
// An empty option text means the option is not offered.
type Question struct {
	ID         string `gorm:"type:uuid;default:gen_random_uuid();primary_key" json:"id"`
	EventID    string `gorm:"type:uuid;not null;column:event_id" json:"event_id"`
	Position   int    `gorm:"type:integer;not null" json:"position"`
	Prompt     string `gorm:"type:text;not null" json:"prompt"`
	OptionA    string `gorm:"type:varchar(500);column:option_a" json:"option_a"`
	OptionB    string `gorm:"type:varchar(500);column:option_b" json:"option_b"`
	OptionC    string `gorm:"type:varchar(500);column:option_c" json:"option_c"`
	OptionD    string `gorm:"type:varchar(500);column:option_d" json:"option_d"`
	CorrectKey string `gorm:"type:varchar(1);not null;column:correct_key" json:"-"`
}

// OptionText returns the text of the option behind key, or "" if the key is
// outside the option alphabet
func (q *Question) OptionText(key string) string {
	switch key {
	case "a":
		return q.OptionA
	case "b":
		return q.OptionB
	case "c":
		return q.OptionC
	case "d":
		return q.OptionD
	}
	return ""
}

// Options returns the offered options as a key -> text mapping, excluding
// options with empty text
func (q *Question) Options() map[string]string {
	options := make(map[string]string, len(OptionKeys))
	for _, key := range OptionKeys {
		if text := q.OptionText(key); text != "" {
			options[key] = text
		}
	}
	return options
}
