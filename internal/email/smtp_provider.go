package email

import (
	"fmt"

	"gopkg.in/gomail.v2"
)

// SMTPProvider implements Provider over gomail.
type SMTPProvider struct {
	config *SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPProvider(config *SMTPConfig) (*SMTPProvider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid email config: %w", err)
	}

	return &SMTPProvider{
		config: config,
		dialer: gomail.NewDialer(config.Host, config.Port, config.Username, config.Password),
	}, nil
}

func (p *SMTPProvider) SendVerification(to, link string) error {
	return p.send(to, "Verify your email", TemplateData{
		Subject:    "Verify your email",
		ActionURL:  link,
		ActionText: "Verify Email",
	})
}

func (p *SMTPProvider) SendPasswordReset(to, link string) error {
	return p.send(to, "Reset your password", TemplateData{
		Subject:    "Reset your password",
		ActionURL:  link,
		ActionText: "Reset Password",
	})
}

func (p *SMTPProvider) Close() error {
	return nil
}

func (p *SMTPProvider) send(to, subject string, data TemplateData) error {
	htmlBody, err := renderMail(data)
	if err != nil {
		return fmt.Errorf("failed to render mail template: %w", err)
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", p.config.FromEmail, p.config.FromName)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	if err := p.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", to, err)
	}
	return nil
}
