package service

import "context"

// MailMessage is a single outbound email with a plain-text body and an
// optional HTML alternative.
type MailMessage struct {
	Subject string
	From    string
	To      []string
	Text    string
	HTML    string
}

// Mailer abstracts the mail transport. Sending is fire-and-forget from the
// caller's perspective but executes synchronously within the request, so
// tests can assert deterministically on what was (or was not) sent.
type Mailer interface {
	Send(ctx context.Context, msg *MailMessage) error
}
