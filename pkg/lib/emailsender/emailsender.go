package emailsender

import (
	"fmt"
	"os"

	"gopkg.in/gomail.v2"

	"taskmanager/config"
)

type EmailSender struct {
	dialer    *gomail.Dialer
	fromEmail string
}

// New builds an SMTP sender. SMTP_PASSWORD must hold the app password for
// cfg.Username. The dial check catches bad credentials at startup instead of
// on the first reset request.
func New(cfg config.SMTPConfig) (*EmailSender, error) {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, os.Getenv("SMTP_PASSWORD"))

	conn, err := d.Dial()
	if err != nil {
		return nil, fmt.Errorf("failed to connect to SMTP server %s:%d for user %s: %w", cfg.Host, cfg.Port, cfg.Username, err)
	}
	defer conn.Close()

	return &EmailSender{dialer: d, fromEmail: cfg.Username}, nil
}

// SendResetCode mails a password-reset code. The code stays valid for 15
// minutes.
func (e *EmailSender) SendResetCode(code string, recipientEmail string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", e.fromEmail)
	m.SetHeader("To", recipientEmail)
	m.SetHeader("Subject", "Password reset code for Task Manager")
	body := fmt.Sprintf(`Hello,

You requested a password reset for your Task Manager account.

Your reset code is: %s

This code is valid for 15 minutes.

If you did not request a reset, you can safely ignore this email.

The Task Manager team`, code)
	m.SetBody("text/plain", body)

	if err := e.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send reset code email to %s: %w", recipientEmail, err)
	}
	return nil
}
