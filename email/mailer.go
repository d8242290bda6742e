package email

import (
	"fmt"

	"github.com/resendlabs/resend-go"
	"github.com/rolemap/api-go/config"
	log "github.com/sirupsen/logrus"
)

type Mailer struct {
	client *resend.Client
	cfg    *config.MailConfig
}

func NewMailer(cfg *config.MailConfig) *Mailer {
	return &Mailer{
		client: resend.NewClient(cfg.APIKey),
		cfg:    cfg,
	}
}

// SendPasswordResetEmail delivers the 6-digit code plus a deep link carrying
// the signed reset token.
func (m *Mailer) SendPasswordResetEmail(to, code, token string) error {
	resetLink := m.cfg.FrontendURL + "/reset-password?token=" + token

	html := fmt.Sprintf(`
		<h2>Password reset</h2>
		<p>Your reset code is: <strong>%s</strong></p>
		<p>It expires in 15 minutes. You can also <a href="%s">reset your password directly</a>.</p>
		<p>If you did not request this, ignore this email.</p>`, code, resetLink)

	params := &resend.SendEmailRequest{
		From:    m.cfg.FromName + " <" + m.cfg.FromAddress + ">",
		To:      []string{to},
		Subject: "Reset your password",
		Html:    html,
	}

	resp, err := m.client.Emails.Send(params)
	if err != nil {
		log.WithField("to", to).Error("Failed to send password reset email: ", err)
		return err
	}

	log.WithFields(log.Fields{"to": to, "id": resp.Id}).Info("Password reset email sent")
	return nil
}
