package utils

import (
	"api/models"
)

// Award tiers derived from the score percentage
const (
	AwardDiplomaFirst  = "diploma_first"
	AwardDiplomaSecond = "diploma_second"
	AwardDiplomaThird  = "diploma_third"
	AwardCertificate   = "certificate"
)

// Score counts the correct answers in a submission. For each question in
// order, the answer submitted for its 1-indexed ordinal must equal the
// question's correct key (case-sensitive); an absent or empty answer counts
// as incorrect. Ordinals beyond the question count are ignored. Total and
// deterministic: same inputs always give the same count.
func Score(questions []*models.Question, answers models.AnswerSet) int {
	correct := 0
	for i, question := range questions {
		ordinal := i + 1
		if key, ok := answers[ordinal]; ok && key != "" && key == question.CorrectKey {
			correct++
		}
	}
	return correct
}

// Percent converts a score into a whole percentage, rounding half up.
// totalQuestions must be positive; empty tests are rejected at event creation
// and never reach scoring.
func Percent(score int, totalQuestions int) int {
	return (200*score + totalQuestions) / (2 * totalQuestions)
}

// AwardTier maps a score percentage to its award tier
func AwardTier(percent int) string {
	switch {
	case percent >= 60:
		return AwardDiplomaFirst
	case percent >= 40:
		return AwardDiplomaSecond
	case percent >= 20:
		return AwardDiplomaThird
	}
	return AwardCertificate
}
