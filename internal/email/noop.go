package email

import (
	"research_connect/internal/logger"
)

// NoopProvider is used when SMTP is not configured. It logs the links
// so local development still surfaces them.
type NoopProvider struct{}

func (NoopProvider) SendVerification(to, link string) error {
	logger.Info("email disabled, verification link not sent", "to", to, "link", link)
	return nil
}

func (NoopProvider) SendPasswordReset(to, link string) error {
	logger.Info("email disabled, password reset link not sent", "to", to, "link", link)
	return nil
}

func (NoopProvider) Close() error { return nil }
