package email

// Provider sends the account-lifecycle emails. Delivery is best-effort;
// callers fire it from a goroutine and only log failures.
type Provider interface {
	// SendVerification mails the email-verification link.
	SendVerification(to, link string) error

	// SendPasswordReset mails the password-reset link.
	SendPasswordReset(to, link string) error

	// Close releases provider resources.
	Close() error
}
