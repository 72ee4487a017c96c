// Package mailer delivers the run summary over SMTP.
package mailer

import (
	"fmt"
	"time"

	"github.com/wneessen/go-mail"

	"sprawdzacz/models"
)

const sendTimeout = 60 * time.Second

// Mailer sends one message at a time over the configured SMTP account.
type Mailer struct {
	host string
	port int
	user string
	pass string
	from string
	to   string
}

// New validates the SMTP configuration and returns a Mailer.
func New(cfg *models.Config) (*Mailer, error) {
	if cfg.SMTPUser == "" || cfg.SMTPPass == "" || cfg.EmailTo == "" {
		return nil, fmt.Errorf("SMTP_USER, SMTP_PASS and EMAIL_TO must be configured")
	}
	return &Mailer{
		host: cfg.SMTPHost,
		port: cfg.SMTPPort,
		user: cfg.SMTPUser,
		pass: cfg.SMTPPass,
		from: cfg.EmailFrom,
		to:   cfg.EmailTo,
	}, nil
}

// Send delivers one message. contentType is "text/plain" or
// "text/html"; STARTTLS is used when the server offers it.
func (m *Mailer) Send(subject, body, contentType string) error {
	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address %q: %w", m.from, err)
	}
	if err := msg.To(m.to); err != nil {
		return fmt.Errorf("invalid recipient address %q: %w", m.to, err)
	}
	msg.Subject(subject)

	ct := mail.TypeTextPlain
	if contentType == "text/html" {
		ct = mail.TypeTextHTML
	}
	msg.SetBodyString(ct, body)

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.user),
		mail.WithPassword(m.pass),
		mail.WithTLSPolicy(mail.TLSOpportunistic),
		mail.WithTimeout(sendTimeout),
	)
	if err != nil {
		return fmt.Errorf("failed to build SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send mail to %s: %w", m.to, err)
	}
	return nil
}
