package services

import (
	"errors"
	"fmt"
	"log"

	"api/models"
	"api/storage"
	"api/utils"

	"github.com/google/uuid"
)

// WorkflowState is one step of the registration workflow
type WorkflowState string

const (
	StateReceived           WorkflowState = "received"
	StateValidated          WorkflowState = "validated"
	StatePersisted          WorkflowState = "persisted"
	StateAwaitingAssessment WorkflowState = "awaiting_assessment"
	StateAwaitingPayment    WorkflowState = "awaiting_payment"
	StateCompleted          WorkflowState = "completed"
)

// workflowTransitions is the transition table of the registration workflow.
// Assessable events route through AwaitingAssessment, everything else goes
// straight to AwaitingPayment.
var workflowTransitions = map[WorkflowState][]WorkflowState{
	StateReceived:           {StateValidated},
	StateValidated:          {StatePersisted},
	StatePersisted:          {StateAwaitingAssessment, StateAwaitingPayment},
	StateAwaitingAssessment: {StateCompleted},
	StateAwaitingPayment:    {StateCompleted},
}

// TransitionError marks an illegal workflow transition
type TransitionError struct {
	From WorkflowState
	To   WorkflowState
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("illegal workflow transition %s -> %s", e.From, e.To)
}

// ErrTestNotBound is returned when answers are submitted for an event that
// has no test definition or whose category is not assessable
var ErrTestNotBound = errors.New("no test is bound to the event")

func transition(from WorkflowState, to WorkflowState) (WorkflowState, error) {
	for _, allowed := range workflowTransitions[from] {
		if allowed == to {
			return to, nil
		}
	}
	return from, &TransitionError{From: from, To: to}
}

// RegistrationOutcome describes where the workflow left a new registration
type RegistrationOutcome struct {
	Registration *models.Registration
	Event        *models.Event
	State        WorkflowState
	PaymentText  string
	ContactEmail string
}

// AssessmentOutcome carries a scored submission and the payment instructions
// that complete the workflow
type AssessmentOutcome struct {
	Result       *models.TestResult
	State        WorkflowState
	PaymentText  string
	ContactEmail string
}

// RegistrationService orchestrates the registration workflow: validate the
// registrant, append the record, then branch to assessment or directly to
// payment instructions.
type RegistrationService struct {
	store  storage.Store
	mailer *EmailService
}

// NewRegistrationService creates the workflow service. mailer may be nil, in
// which case no notification emails are sent.
func NewRegistrationService(store storage.Store, mailer *EmailService) *RegistrationService {
	return &RegistrationService{store: store, mailer: mailer}
}

// Register runs the submission through the workflow up to the branch point.
// On validation failure nothing persists; on success the registration is
// durably appended with a fresh unique id.
func (s *RegistrationService) Register(reg *models.Registration) (*RegistrationOutcome, error) {
	state := StateReceived

	event, err := s.store.GetEvent(reg.EventID)
	if err != nil {
		return nil, err
	}

	if err := ValidateRegistrant(reg); err != nil {
		return nil, err
	}
	if state, err = transition(state, StateValidated); err != nil {
		return nil, err
	}

	reg.ID = uuid.NewString()
	if err := s.store.AppendRegistration(reg); err != nil {
		return nil, err
	}
	if state, err = transition(state, StatePersisted); err != nil {
		return nil, err
	}

	outcome := &RegistrationOutcome{Registration: reg, Event: event}
	if event.Assessable() && event.HasTest() {
		if state, err = transition(state, StateAwaitingAssessment); err != nil {
			return nil, err
		}
	} else {
		if state, err = transition(state, StateAwaitingPayment); err != nil {
			return nil, err
		}
		outcome.PaymentText, outcome.ContactEmail = s.paymentInstructions()
	}
	outcome.State = state

	if s.mailer != nil {
		// Best effort: an unreachable SMTP server never fails the user flow
		if err := s.mailer.SendRegistrationConfirmation(reg.Email, reg.FullName(), event.Title); err != nil {
			log.Printf("Failed to send confirmation email to %s: %v", reg.Email, err)
		}
	}
	return outcome, nil
}

// SubmitAnswers scores a submission against the event's test definition and
// appends the result. Re-submitting for the same registration appends a new
// result rather than mutating history.
func (s *RegistrationService) SubmitAnswers(eventID string, registrantRef string, raw map[string]string) (*AssessmentOutcome, error) {
	state := StateAwaitingAssessment

	event, err := s.store.GetEvent(eventID)
	if err != nil {
		return nil, err
	}
	if !event.Assessable() || !event.HasTest() {
		return nil, ErrTestNotBound
	}

	answers, err := ValidateAnswers(raw)
	if err != nil {
		return nil, err
	}

	if registrantRef == "" {
		registrantRef = models.AnonymousRef
	}

	score := utils.Score(event.Questions, answers)
	percent := utils.Percent(score, len(event.Questions))

	result := &models.TestResult{
		ID:             uuid.NewString(),
		EventID:        event.ID,
		RegistrantRef:  registrantRef,
		Answers:        answers,
		Score:          score,
		TotalQuestions: len(event.Questions),
		AwardTier:      utils.AwardTier(percent),
	}
	if err := s.store.AppendTestResult(result); err != nil {
		return nil, err
	}
	if state, err = transition(state, StateCompleted); err != nil {
		return nil, err
	}

	outcome := &AssessmentOutcome{Result: result, State: state}
	outcome.PaymentText, outcome.ContactEmail = s.paymentInstructions()

	if s.mailer != nil {
		if reg := s.findRegistrant(registrantRef); reg != nil {
			if err := s.mailer.SendTestResult(reg.Email, event.Title, score, len(event.Questions)); err != nil {
				log.Printf("Failed to send result email to %s: %v", reg.Email, err)
			}
		}
	}
	return outcome, nil
}

// ListRegistrations returns the joined registration list for the admin
// surface, ordered by creation time ascending. Values are raw stored text;
// escaping and export formatting are the caller's concern.
func (s *RegistrationService) ListRegistrations() ([]*models.Registration, error) {
	return s.store.ListRegistrations()
}

func (s *RegistrationService) paymentInstructions() (string, string) {
	var text, contact string
	if record, err := s.store.GetSiteText(models.SiteTextPaymentText); err == nil {
		text = record.Value
	}
	if record, err := s.store.GetSiteText(models.SiteTextFooterEmail); err == nil {
		contact = record.Value
	}
	return text, contact
}

func (s *RegistrationService) findRegistrant(ref string) *models.Registration {
	if ref == models.AnonymousRef {
		return nil
	}
	registrations, err := s.store.ListRegistrations()
	if err != nil {
		return nil
	}
	for _, reg := range registrations {
		if reg.ID == ref {
			return reg
		}
	}
	return nil
}
