package mailer

import (
	"context"
	"log/slog"

	"cinema-ticketing/internal/domain/sale"
)

// LogMailer writes messages to the log. Used when no SMTP host is configured.
type LogMailer struct{}

func NewLogMailer() *LogMailer {
	return &LogMailer{}
}

func (LogMailer) Send(_ context.Context, email sale.Email) error {
	slog.Info("email (not sent, SMTP disabled)",
		"to", email.To,
		"subject", email.Subject,
		"body", email.Body)
	return nil
}
