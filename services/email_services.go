package services

import (
	"api/config"
	"fmt"
	"net/smtp"
	"strings"
)

type EmailService struct {
	host     string
	port     string
	username string
	password string
}

// NewEmailService builds the mailer from the environment configuration.
// Returns nil when no mail host is configured so notifications are skipped.
func NewEmailService() *EmailService {
	if config.MailHost == "" {
		return nil
	}
	return &EmailService{
		host:     config.MailHost,
		port:     config.MailPort,
		username: config.MailUsername,
		password: config.MailPassword,
	}
}

// SendRegistrationConfirmation notifies a registrant that their submission
// was received
func (s *EmailService) SendRegistrationConfirmation(to string, fullName string, eventTitle string) error {
	subject := "Заявка получена"
	body := fmt.Sprintf("Уважаемый(ая) %s, ваша заявка на мероприятие «%s» получена.", fullName, eventTitle)
	return s.send(to, subject, body)
}

// SendTestResult notifies a registrant of their score
func (s *EmailService) SendTestResult(to string, eventTitle string, score int, total int) error {
	subject := "Результат теста"
	body := fmt.Sprintf("Ваш результат по «%s»: %d из %d.", eventTitle, score, total)
	return s.send(to, subject, body)
}

func (s *EmailService) send(to string, subject string, body string) error {
	auth := smtp.PlainAuth("", s.username, s.password, s.host)

	msg := strings.TrimSpace(fmt.Sprintf(`
To: %s
MIME-version: 1.0
Content-Type: text/plain; charset="UTF-8"
Subject: %s

%s
`, to, subject, body))

	return smtp.SendMail(s.host+":"+s.port, auth, s.username, []string{to}, []byte(msg))
}
