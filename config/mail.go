package config

import "os"

type MailConfig struct {
	APIKey      string
	FromAddress string
	FromName    string
	FrontendURL string
}

func GetMailConfig() *MailConfig {
	return &MailConfig{
		APIKey:      os.Getenv("RESEND_API_KEY"),
		FromAddress: os.Getenv("EMAIL_FROM_ADDRESS"),
		FromName:    os.Getenv("EMAIL_FROM_NAME"),
		FrontendURL: os.Getenv("FRONTEND_URL"),
	}
}

func (c *MailConfig) Enabled() bool {
	return c.APIKey != "" && c.FromAddress != ""
}

// IsDevelopment reports whether the app runs in development mode, where the
// password reset code is returned in the API response instead of emailed.
func IsDevelopment() bool {
	env := os.Getenv("APP_ENV")
	return env == "" || env == "development"
}
