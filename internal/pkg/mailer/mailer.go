// Package mailer delivers trip-planning emails through EmailJS, Gmail or the log.
package mailer

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ijalalfrz/travel-booking-service/internal/pkg/exception"
)

const (
	DriverEmailJS = "emailjs"
	DriverGmail   = "gmail"
	DriverLog     = "log"

	upstreamName = "mailer"
)

type Kind string

const (
	KindTeamNotification     Kind = "team_notification"
	KindCustomerConfirmation Kind = "customer_confirmation"
)

var ErrSendFailed = exception.ApplicationError{
	StatusCode: http.StatusBadGateway,
	Message:    "Failed to send email. Please try again later.",
}

// Email is one templated message. Params are the template variables; Subject and
// the body are rendered from them by the driver.
type Email struct {
	Kind    Kind
	To      string
	ToName  string
	ReplyTo string
	Params  map[string]string
}

// LogMailer writes emails to the structured log instead of sending them.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(ctx context.Context, email Email) error {
	subject, body, err := render(email)
	if err != nil {
		return ErrSendFailed.WithCause(err)
	}

	slog.InfoContext(ctx, "email not sent, log driver",
		slog.String("kind", string(email.Kind)),
		slog.String("to", email.To),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}
