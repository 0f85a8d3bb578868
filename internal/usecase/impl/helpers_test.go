package impl

import (
	"io"
	"log/slog"
	"time"

	"couponhub/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Mail: &config.MailConfig{
			Sender:  "noreply@couponhub.test",
			SiteURL: "https://couponhub.test",
		},
		Verification: &config.VerificationConfig{
			CodeTTL: time.Hour,
		},
	}
}
