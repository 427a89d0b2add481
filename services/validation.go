package services

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"api/models"
)

// ValidationError names the first failing field of a malformed submission.
// Recoverable: surfaced to the caller with field detail, no state change.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

// ValidateRegistrant checks the registrant fields in place, trimming
// surrounding whitespace. Returns a ValidationError naming the first failing
// field. Patronymic and phone are optional.
func ValidateRegistrant(reg *models.Registration) error {
	reg.Surname = strings.TrimSpace(reg.Surname)
	reg.Name = strings.TrimSpace(reg.Name)
	reg.Patronymic = strings.TrimSpace(reg.Patronymic)
	reg.Organization = strings.TrimSpace(reg.Organization)
	reg.Country = strings.TrimSpace(reg.Country)
	reg.City = strings.TrimSpace(reg.City)
	reg.Email = strings.TrimSpace(reg.Email)
	reg.Phone = strings.TrimSpace(reg.Phone)

	required := []struct {
		field string
		value string
	}{
		{"surname", reg.Surname},
		{"name", reg.Name},
		{"organization", reg.Organization},
		{"country", reg.Country},
		{"city", reg.City},
		{"email", reg.Email},
	}
	for _, f := range required {
		if f.value == "" {
			return &ValidationError{Field: f.field, Message: "is required"}
		}
	}
	if !emailPattern.MatchString(reg.Email) {
		return &ValidationError{Field: "email", Message: "is not a valid email address"}
	}
	return nil
}

// ValidateTestDefinition checks an event's attached questions: prompts must be
// non-empty, the question count and option alphabet are bounded, and every
// correct key must reference an offered (non-empty) option. Positions are
// normalized to the 1-indexed submission order.
func ValidateTestDefinition(questions []*models.Question) error {
	if len(questions) > models.MaxQuestionsPerTest {
		return &ValidationError{
			Field:   "questions",
			Message: fmt.Sprintf("a test holds at most %d questions", models.MaxQuestionsPerTest),
		}
	}
	for i, question := range questions {
		question.Position = i + 1
		question.Prompt = strings.TrimSpace(question.Prompt)
		if question.Prompt == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("questions[%d].prompt", i),
				Message: "is required",
			}
		}
		if len(question.Options()) == 0 {
			return &ValidationError{
				Field:   fmt.Sprintf("questions[%d].options", i),
				Message: "at least one option must be offered",
			}
		}
		if question.OptionText(question.CorrectKey) == "" {
			return &ValidationError{
				Field:   fmt.Sprintf("questions[%d].correct_key", i),
				Message: "must reference an offered option",
			}
		}
	}
	return nil
}

// ValidateAnswers converts a raw ordinal -> option key mapping into an
// AnswerSet, rejecting non-numeric ordinals and keys outside the option
// alphabet. Null (unanswered) values arrive as empty strings. Ordinals beyond
// the question count are accepted here and ignored by scoring.
func ValidateAnswers(raw map[string]string) (models.AnswerSet, error) {
	answers := make(models.AnswerSet, len(raw))
	for ordinal, key := range raw {
		n, err := strconv.Atoi(ordinal)
		if err != nil || n < 1 {
			return nil, &ValidationError{
				Field:   "answers",
				Message: fmt.Sprintf("%q is not a question ordinal", ordinal),
			}
		}
		if key != "" && !validOptionKey(key) {
			return nil, &ValidationError{
				Field:   "answers",
				Message: fmt.Sprintf("%q is not an option key", key),
			}
		}
		answers[n] = key
	}
	return answers, nil
}

func validOptionKey(key string) bool {
	for _, valid := range models.OptionKeys {
		if key == valid {
			return true
		}
	}
	return false
}
