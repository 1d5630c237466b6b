package resend

import "time"

// Config holds Resend settings, parsed with caarlos0/env.
type Config struct {
	APIKey      string        `env:"RESEND_API_KEY"`
	SenderEmail string        `env:"RESEND_SENDER_EMAIL" envDefault:"onboarding@resend.dev"`
	SenderName  string        `env:"RESEND_SENDER_NAME" envDefault:"Portfolio Contact"`
	BaseURL     string        `env:"RESEND_BASE_URL"`
	Timeout     time.Duration `env:"RESEND_TIMEOUT" envDefault:"10s"`
}

// Enabled reports whether an API key is configured.
func (c Config) Enabled() bool {
	return c.APIKey != ""
}

func (c Config) from() string {
	if c.SenderName == "" {
		return c.SenderEmail
	}
	return c.SenderName + " <" + c.SenderEmail + ">"
}
