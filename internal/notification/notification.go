// Package notification delivers best-effort emails to employees. Callers hand
// messages to a Dispatcher and never wait on, or fail because of, delivery.
package notification

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

const (
	KindWelcome       = "welcome"
	KindLeaveDecision = "leave_decision"
)

type Message struct {
	Kind    string
	To      string
	Name    string
	Subject string
	Body    string
	// Password is only set on welcome messages; the webhook mailer composes
	// its own text from it.
	Password string
}

type Sender interface {
	Send(ctx context.Context, msg Message) error
}

func WelcomeMessage(name, email, password string) Message {
	return Message{
		Kind:     KindWelcome,
		To:       email,
		Name:     name,
		Password: password,
		Subject:  "Welcome to HR Portal",
		Body: fmt.Sprintf(
			"Dear %s, your HR portal account has been created. Username: %s, Password: %s. Please login and change your password immediately.",
			name, email, password,
		),
	}
}

func LeaveDecisionMessage(name, email, status, startDate, endDate string) Message {
	return Message{
		Kind:    KindLeaveDecision,
		To:      email,
		Name:    name,
		Subject: fmt.Sprintf("Your leave request was %s", status),
		Body: fmt.Sprintf(
			"Dear %s, your leave request from %s to %s has been %s.",
			name, startDate, endDate, status,
		),
	}
}

// LogSender only logs. It is the fallback when neither SMTP nor a mailer URL
// is configured.
type LogSender struct {
	logger *zap.Logger
}

func NewLogSender(logger ...*zap.Logger) *LogSender {
	l := zap.L().Named("notification.log")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.log")
	}
	return &LogSender{logger: l}
}

func (s *LogSender) Send(_ context.Context, msg Message) error {
	s.logger.Info("notification not delivered, no transport configured",
		zap.String("kind", msg.Kind),
		zap.String("to", msg.To),
		zap.String("subject", msg.Subject),
	)
	return nil
}
