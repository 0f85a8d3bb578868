package mail

import (
	"log/slog"

	"couponhub/config"
	"couponhub/internal/domain/service"
)

// NewMailer selects the mail transport from configuration. Anything other
// than an explicit "smtp" provider falls back to the recording in-memory
// mailer, so a missing mail section never blocks startup.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.Mail != nil && cfg.Mail.Provider == "smtp" {
		logger.Info("Using SMTP mailer",
			slog.String("host", cfg.Mail.Host),
			slog.String("sender", cfg.Mail.Sender),
		)

		return NewSMTPMailer(cfg.Mail, logger)
	}

	logger.Info("Using in-memory mailer")

	return NewMemoryMailer()
}
