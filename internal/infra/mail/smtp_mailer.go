// Package mail provides concrete Mailer implementations: a gomail-backed
// SMTP transport for production and a recording in-memory transport for
// development and tests.
package mail

import (
	"context"
	"log/slog"

	"github.com/pkg/errors"
	gomail "gopkg.in/gomail.v2"

	"couponhub/config"
	"couponhub/internal/domain/service"
)

// smtpMailer sends mail through an SMTP relay using gomail.
type smtpMailer struct {
	dialer *gomail.Dialer
	sender string
	logger *slog.Logger
}

// NewSMTPMailer is the constructor for smtpMailer.
func NewSMTPMailer(cfg *config.MailConfig, logger *slog.Logger) service.Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		sender: cfg.Sender,
		logger: logger,
	}
}

// Send delivers the message synchronously. The ambient request deadline is
// the only timeout; gomail dials per message, which is fine at this volume.
func (m *smtpMailer) Send(_ context.Context, msg *service.MailMessage) error {
	gm := gomail.NewMessage()

	from := msg.From
	if from == "" {
		from = m.sender
	}
	gm.SetHeader("From", from)
	gm.SetHeader("To", msg.To...)
	gm.SetHeader("Subject", msg.Subject)
	gm.SetBody("text/plain", msg.Text)
	if msg.HTML != "" {
		gm.AddAlternative("text/html", msg.HTML)
	}

	if err := m.dialer.DialAndSend(gm); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.Debug("Mail sent", slog.String("subject", msg.Subject), slog.Any("to", msg.To))

	return nil
}
