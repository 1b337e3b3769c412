// Package mailer renders and delivers article notification emails. Delivery
// is best-effort: the caller records the outcome as notification metadata and
// never fails its own operation on a send error.
package mailer

import (
	"fmt"
	"log"
	"net/smtp"
	"strings"
)

// Config carries SMTP settings; an empty Host disables delivery.
type Config struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

type Mailer struct {
	cfg    Config
	logger *log.Logger
}

func New(cfg Config, logger *log.Logger) *Mailer {
	return &Mailer{cfg: cfg, logger: logger}
}

// Enabled reports whether SMTP delivery is configured.
func (m *Mailer) Enabled() bool {
	return m.cfg.Host != ""
}

// Send delivers one HTML email to the given recipients.
func (m *Mailer) Send(to []string, subject, html string) error {
	if !m.Enabled() {
		return fmt.Errorf("smtp not configured")
	}

	from := m.cfg.From
	if from == "" {
		from = m.cfg.Username
	}

	var msg strings.Builder
	fmt.Fprintf(&msg, "From: %s\r\n", from)
	fmt.Fprintf(&msg, "To: %s\r\n", strings.Join(to, ", "))
	fmt.Fprintf(&msg, "Subject: %s\r\n", subject)
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(html)

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}

	if err := smtp.SendMail(addr, auth, from, to, []byte(msg.String())); err != nil {
		return fmt.Errorf("send mail via %s: %w", addr, err)
	}
	if m.logger != nil {
		m.logger.Printf("sent notification email to %d recipient(s)", len(to))
	}
	return nil
}
