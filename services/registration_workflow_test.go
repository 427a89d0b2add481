package services

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"api/models"
	"api/storage"
	"api/utils"
)

func seedEvent(t *testing.T, store storage.Store, event *models.Event) *models.Event {
	t.Helper()
	if err := NewEventService(store).CreateEvent(event); err != nil {
		t.Fatalf("CreateEvent: %v", err)
	}
	return event
}

func validRegistrant(eventID string) *models.Registration {
	return &models.Registration{
		EventID:      eventID,
		Surname:      "Petrova",
		Name:         "Maria",
		Patronymic:   "Sergeevna",
		Organization: "School 5",
		Country:      "Russia",
		City:         "Sochi",
		Email:        "maria@example.com",
		Phone:        "+7 900 000-00-00",
	}
}

func TestRegisterBranchesOnCategory(t *testing.T) {
	cases := []struct {
		name      string
		event     *models.Event
		wantState WorkflowState
	}{
		{"olympiad with test", validOlympiad(), StateAwaitingAssessment},
		{"olympiad without test", &models.Event{Category: models.CategoryOlympiad, Title: "Essay Olympiad"}, StateAwaitingPayment},
		{"contest", &models.Event{Category: models.CategoryContest, Title: "Photo Contest"}, StateAwaitingPayment},
		{"conference", &models.Event{Category: models.CategoryConference, Title: "Spring Conference"}, StateAwaitingPayment},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			seedEvent(t, store, tc.event)
			svc := NewRegistrationService(store, nil)

			outcome, err := svc.Register(validRegistrant(tc.event.ID))
			if err != nil {
				t.Fatalf("Register: %v", err)
			}
			if outcome.State != tc.wantState {
				t.Errorf("state = %s, want %s", outcome.State, tc.wantState)
			}
			if outcome.Registration.ID == "" {
				t.Error("registration must receive an id")
			}
		})
	}
}

func TestRegisterPaymentInstructions(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, &models.Event{Category: models.CategoryContest, Title: "Photo Contest"})
	if err := store.PutSiteText(&models.SiteText{Key: models.SiteTextPaymentText, Value: "Pay by invoice"}); err != nil {
		t.Fatalf("PutSiteText: %v", err)
	}
	if err := store.PutSiteText(&models.SiteText{Key: models.SiteTextFooterEmail, Value: "org@example.com"}); err != nil {
		t.Fatalf("PutSiteText: %v", err)
	}

	outcome, err := NewRegistrationService(store, nil).Register(validRegistrant(event.ID))
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if outcome.PaymentText != "Pay by invoice" || outcome.ContactEmail != "org@example.com" {
		t.Errorf("payment instructions = %q / %q", outcome.PaymentText, outcome.ContactEmail)
	}
}

func TestRegisterValidationFailureDoesNotPersist(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, validOlympiad())
	svc := NewRegistrationService(store, nil)

	reg := validRegistrant(event.ID)
	reg.Email = "not-an-email"

	_, err := svc.Register(reg)
	var vErr *ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "email" {
		t.Fatalf("Register = %v, want ValidationError on email", err)
	}

	registrations, _ := store.ListRegistrations()
	if len(registrations) != 0 {
		t.Errorf("failed registration must not persist, found %d", len(registrations))
	}
}

func TestRegisterUnknownEvent(t *testing.T) {
	svc := NewRegistrationService(storage.NewMemoryStore(), nil)
	_, err := svc.Register(validRegistrant("missing"))
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Register = %v, want ErrNotFound", err)
	}
}

func TestRegisterConcurrentDistinctIDs(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, validOlympiad())
	svc := NewRegistrationService(store, nil)

	const workers = 50
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			reg := validRegistrant(event.ID)
			reg.Email = fmt.Sprintf("user%d@example.com", i)
			if _, err := svc.Register(reg); err != nil {
				t.Errorf("Register: %v", err)
			}
		}(i)
	}
	wg.Wait()

	registrations, err := store.ListRegistrations()
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(registrations) != workers {
		t.Fatalf("persisted %d registrations, want %d", len(registrations), workers)
	}
	seen := make(map[string]bool, workers)
	for _, reg := range registrations {
		if seen[reg.ID] {
			t.Fatalf("duplicate registration id %s", reg.ID)
		}
		seen[reg.ID] = true
	}
}

func TestSubmitAnswersScoresAndCompletes(t *testing.T) {
	// Two questions, correct keys "b" and "a".
	cases := []struct {
		name      string
		answers   map[string]string
		wantScore int
		wantTier  string
	}{
		{"all correct", map[string]string{"1": "b", "2": "a"}, 2, utils.AwardDiplomaFirst},
		{"one wrong", map[string]string{"1": "b", "2": "c"}, 1, utils.AwardDiplomaSecond},
		{"nothing answered", map[string]string{}, 0, utils.AwardCertificate},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			event := seedEvent(t, store, validOlympiad())
			svc := NewRegistrationService(store, nil)

			reg := validRegistrant(event.ID)
			if _, err := svc.Register(reg); err != nil {
				t.Fatalf("Register: %v", err)
			}

			outcome, err := svc.SubmitAnswers(event.ID, reg.ID, tc.answers)
			if err != nil {
				t.Fatalf("SubmitAnswers: %v", err)
			}
			if outcome.State != StateCompleted {
				t.Errorf("state = %s, want %s", outcome.State, StateCompleted)
			}
			if outcome.Result.Score != tc.wantScore {
				t.Errorf("score = %d, want %d", outcome.Result.Score, tc.wantScore)
			}
			if outcome.Result.AwardTier != tc.wantTier {
				t.Errorf("award = %s, want %s", outcome.Result.AwardTier, tc.wantTier)
			}
			if outcome.Result.TotalQuestions != 2 {
				t.Errorf("total = %d, want 2", outcome.Result.TotalQuestions)
			}
		})
	}
}

func TestSubmitAnswersDefaultsToAnonymous(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, validOlympiad())

	outcome, err := NewRegistrationService(store, nil).SubmitAnswers(event.ID, "", map[string]string{"1": "b"})
	if err != nil {
		t.Fatalf("SubmitAnswers: %v", err)
	}
	if outcome.Result.RegistrantRef != models.AnonymousRef {
		t.Errorf("registrant ref = %q, want %q", outcome.Result.RegistrantRef, models.AnonymousRef)
	}
}

func TestSubmitAnswersAppendsOnResubmission(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, validOlympiad())
	svc := NewRegistrationService(store, nil)

	reg := validRegistrant(event.ID)
	if _, err := svc.Register(reg); err != nil {
		t.Fatalf("Register: %v", err)
	}

	first, err := svc.SubmitAnswers(event.ID, reg.ID, map[string]string{"1": "a", "2": "b"})
	if err != nil {
		t.Fatalf("first submission: %v", err)
	}
	second, err := svc.SubmitAnswers(event.ID, reg.ID, map[string]string{"1": "b", "2": "a"})
	if err != nil {
		t.Fatalf("second submission: %v", err)
	}
	if first.Result.ID == second.Result.ID {
		t.Fatal("resubmission must append a new result")
	}

	registrations, err := svc.ListRegistrations()
	if err != nil {
		t.Fatalf("ListRegistrations: %v", err)
	}
	if len(registrations) != 1 {
		t.Fatalf("got %d registrations, want 1", len(registrations))
	}
	results := registrations[0].Results
	if len(results) != 2 {
		t.Fatalf("got %d results, want both submissions kept", len(results))
	}
	if results[0].Score != 0 || results[1].Score != 2 {
		t.Errorf("result scores = %d, %d, want 0 then 2", results[0].Score, results[1].Score)
	}
}

func TestSubmitAnswersTestNotBound(t *testing.T) {
	cases := []struct {
		name  string
		event *models.Event
	}{
		{"conference", &models.Event{Category: models.CategoryConference, Title: "Spring Conference"}},
		{"olympiad without questions", &models.Event{Category: models.CategoryOlympiad, Title: "Essay Olympiad"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			store := storage.NewMemoryStore()
			seedEvent(t, store, tc.event)

			_, err := NewRegistrationService(store, nil).SubmitAnswers(tc.event.ID, "", map[string]string{"1": "a"})
			if !errors.Is(err, ErrTestNotBound) {
				t.Fatalf("SubmitAnswers = %v, want ErrTestNotBound", err)
			}
		})
	}
}

func TestSubmitAnswersRejectsMalformedPayload(t *testing.T) {
	store := storage.NewMemoryStore()
	event := seedEvent(t, store, validOlympiad())
	svc := NewRegistrationService(store, nil)

	for _, raw := range []map[string]string{
		{"one": "a"},
		{"0": "a"},
		{"1": "x"},
	} {
		_, err := svc.SubmitAnswers(event.ID, "", raw)
		var vErr *ValidationError
		if !errors.As(err, &vErr) {
			t.Errorf("SubmitAnswers(%v) = %v, want ValidationError", raw, err)
		}
	}
}

func TestWorkflowTransitionTable(t *testing.T) {
	if _, err := transition(StateReceived, StateValidated); err != nil {
		t.Errorf("received -> validated must be legal: %v", err)
	}
	illegal := [][2]WorkflowState{
		{StateReceived, StatePersisted},
		{StateValidated, StateCompleted},
		{StateCompleted, StateReceived},
		{StateAwaitingPayment, StateAwaitingAssessment},
	}
	for _, pair := range illegal {
		got, err := transition(pair[0], pair[1])
		var tErr *TransitionError
		if !errors.As(err, &tErr) {
			t.Errorf("transition(%s, %s) = %v, want TransitionError", pair[0], pair[1], err)
			continue
		}
		if got != pair[0] {
			t.Errorf("failed transition must keep state %s, got %s", pair[0], got)
		}
	}
}
