package services

import (
	"errors"
	"testing"

	"api/models"
	"api/storage"
)

func validOlympiad() *models.Event {
	return &models.Event{
		Category: models.CategoryOlympiad,
		Title:    "Statistics Olympiad",
		Questions: []*models.Question{
			{Prompt: "2+2?", OptionA: "3", OptionB: "4", CorrectKey: "b"},
			{Prompt: "Capital of France?", OptionA: "Paris", OptionB: "Berlin", CorrectKey: "a"},
		},
	}
}

func TestCreateEventValidation(t *testing.T) {
	cases := []struct {
		name      string
		mutate    func(*models.Event)
		wantField string
	}{
		{"missing title", func(e *models.Event) { e.Title = "  " }, "title"},
		{"unknown category", func(e *models.Event) { e.Category = "hackathon" }, "category"},
		{"empty prompt", func(e *models.Event) { e.Questions[0].Prompt = "" }, "questions[0].prompt"},
		{"correct key outside alphabet", func(e *models.Event) { e.Questions[1].CorrectKey = "z" }, "questions[1].correct_key"},
		{"correct key behind empty option", func(e *models.Event) { e.Questions[0].CorrectKey = "c" }, "questions[0].correct_key"},
		{"no options offered", func(e *models.Event) {
			e.Questions[0].OptionA = ""
			e.Questions[0].OptionB = ""
		}, "questions[0].options"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			svc := NewEventService(store)

			event := validOlympiad()
			tc.mutate(event)

			err := svc.CreateEvent(event)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("CreateEvent = %v, want ValidationError", err)
			}
			if vErr.Field != tc.wantField {
				t.Errorf("failing field = %q, want %q", vErr.Field, tc.wantField)
			}

			events, _ := store.ListEvents("")
			if len(events) != 0 {
				t.Errorf("invalid event must not persist, found %d events", len(events))
			}
		})
	}
}

func TestCreateEventNormalizesPositions(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewEventService(store)

	event := validOlympiad()
	if err := svc.CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	for i, question := range event.Questions {
		if question.Position != i+1 {
			t.Errorf("question %d position = %d, want %d", i, question.Position, i+1)
		}
	}
}

func TestCreateEventTooManyQuestions(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewEventService(store)

	event := validOlympiad()
	for len(event.Questions) <= models.MaxQuestionsPerTest {
		event.Questions = append(event.Questions, &models.Question{Prompt: "filler", OptionA: "x", CorrectKey: "a"})
	}

	err := svc.CreateEvent(event)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "questions" {
		t.Fatalf("CreateEvent = %v, want ValidationError on questions", err)
	}
}

func TestListEventsRejectsUnknownCategory(t *testing.T) {
	svc := NewEventService(storage.NewMemoryStore())
	_, err := svc.ListEvents("quiz")
	var vErr *ValidationError
	if !errors.As(err, &vErr) {
		t.Fatalf("ListEvents = %v, want ValidationError", err)
	}
}

func TestDeleteEventKeepsRegistrations(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewEventService(store)

	event := validOlympiad()
	if err := svc.CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}

	reg := &models.Registration{
		EventID: event.ID, Surname: "Ivanova", Name: "Anna",
		Organization: "KubSU", Country: "Russia", City: "Krasnodar", Email: "anna@example.com",
	}
	if err := store.AppendRegistration(reg); err != nil {
		t.Fatalf("AppendRegistration: %v", err)
	}
	result := &models.TestResult{EventID: event.ID, RegistrantRef: reg.ID, Answers: models.AnswerSet{1: "b"}, Score: 1, TotalQuestions: 2}
	if err := store.AppendTestResult(result); err != nil {
		t.Fatalf("AppendTestResult: %v", err)
	}

	if err := svc.DeleteEvent(event.ID); err != nil {
		t.Fatalf("DeleteEvent: %v", err)
	}
	if _, err := svc.GetEvent(event.ID); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("GetEvent after delete = %v, want ErrNotFound", err)
	}

	registrations, err := store.ListRegistrations()
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(registrations) != 1 || registrations[0].EventID != event.ID {
		t.Fatalf("registration must keep its event reference after deletion, got %+v", registrations)
	}
	if len(registrations[0].Results) != 1 {
		t.Fatalf("test result must survive event deletion")
	}
}
