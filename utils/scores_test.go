package utils

import (
	"testing"

	"api/models"
)

func twoQuestionTest() []*models.Question {
	return []*models.Question{
		{Position: 1, Prompt: "2+2?", OptionA: "3", OptionB: "4", OptionC: "5", CorrectKey: "b"},
		{Position: 2, Prompt: "Capital of France?", OptionA: "Paris", OptionB: "Berlin", CorrectKey: "a"},
	}
}

func TestScore(t *testing.T) {
	questions := twoQuestionTest()

	cases := []struct {
		name    string
		answers models.AnswerSet
		want    int
	}{
		{"all correct", models.AnswerSet{1: "b", 2: "a"}, 2},
		{"one correct one wrong", models.AnswerSet{1: "b", 2: "c"}, 1},
		{"empty submission", models.AnswerSet{}, 0},
		{"nil submission", nil, 0},
		{"unanswered counts as incorrect", models.AnswerSet{1: "", 2: "a"}, 1},
		{"unknown ordinals ignored", models.AnswerSet{1: "b", 2: "a", 3: "a", 99: "b"}, 2},
		{"key match is case-sensitive", models.AnswerSet{1: "B", 2: "A"}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Score(questions, tc.answers); got != tc.want {
				t.Errorf("Score() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestScoreIsDeterministicAndBounded(t *testing.T) {
	questions := twoQuestionTest()
	answers := models.AnswerSet{1: "b", 2: "c"}

	first := Score(questions, answers)
	for i := 0; i < 10; i++ {
		if got := Score(questions, answers); got != first {
			t.Fatalf("Score() not deterministic: %d then %d", first, got)
		}
	}
	if first < 0 || first > len(questions) {
		t.Fatalf("Score() = %d out of range [0, %d]", first, len(questions))
	}
}

func TestScoreMonotonicInCorrectAnswers(t *testing.T) {
	questions := twoQuestionTest()

	// Fixing the second answer, correcting the first never lowers the score
	withOmitted := Score(questions, models.AnswerSet{2: "a"})
	withWrong := Score(questions, models.AnswerSet{1: "c", 2: "a"})
	withCorrect := Score(questions, models.AnswerSet{1: "b", 2: "a"})

	if withWrong != withOmitted {
		t.Errorf("wrong answer scored %d, omitted scored %d; both must earn nothing", withWrong, withOmitted)
	}
	if withCorrect < withOmitted {
		t.Errorf("correct answer scored %d, below omitted %d", withCorrect, withOmitted)
	}
}

func TestPercentRoundsHalfUp(t *testing.T) {
	cases := []struct {
		score, total, want int
	}{
		{1, 2, 50},
		{1, 8, 13}, // 12.5 rounds up
		{1, 3, 33},
		{2, 3, 67},
		{0, 5, 0},
		{5, 5, 100},
	}
	for _, tc := range cases {
		if got := Percent(tc.score, tc.total); got != tc.want {
			t.Errorf("Percent(%d, %d) = %d, want %d", tc.score, tc.total, got, tc.want)
		}
	}
}

func TestAwardTierBoundaries(t *testing.T) {
	cases := []struct {
		percent int
		want    string
	}{
		{100, AwardDiplomaFirst},
		{60, AwardDiplomaFirst},
		{59, AwardDiplomaSecond},
		{40, AwardDiplomaSecond},
		{39, AwardDiplomaThird},
		{20, AwardDiplomaThird},
		{19, AwardCertificate},
		{0, AwardCertificate},
	}
	for _, tc := range cases {
		if got := AwardTier(tc.percent); got != tc.want {
			t.Errorf("AwardTier(%d) = %s, want %s", tc.percent, got, tc.want)
		}
	}
}
