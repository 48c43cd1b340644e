// Package relay delivers contact-form submissions over SMTP.
package relay

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"net/smtp"
	"strings"
	"time"

	"github.com/avast/retry-go/v4"
	"go.uber.org/zap"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("smtp credentials not configured")

// Message is one contact-form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// Validate checks the fields a submission must carry.
func (m Message) Validate() error {
	if strings.TrimSpace(m.Name) == "" {
		return errors.New("name is required")
	}
	if strings.TrimSpace(m.Body) == "" {
		return errors.New("message is required")
	}
	if _, err := mail.ParseAddress(m.Email); err != nil {
		return fmt.Errorf("invalid email address: %w", err)
	}
	return nil
}

// Sender delivers a contact message somewhere useful.
type Sender interface {
	Send(ctx context.Context, m Message) error
}

// Config holds SMTP relay settings.
type Config struct {
	Host     string
	Port     string
	Username string
	Password string
	To       string
}

// SMTPSender relays messages through a plain-auth SMTP server, retrying
// transient failures a few times before giving up.
type SMTPSender struct {
	cfg      Config
	log      *zap.Logger
	attempts uint
}

// NewSMTPSender builds a sender from config.
func NewSMTPSender(cfg Config, log *zap.Logger) *SMTPSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &SMTPSender{cfg: cfg, log: log, attempts: 3}
}

// Send relays the message. Missing credentials surface as ErrNotConfigured
// so the handler can tell a deployment problem from a delivery problem.
func (s *SMTPSender) Send(ctx context.Context, m Message) error {
	if s.cfg.Username == "" || s.cfg.Password == "" {
		return ErrNotConfigured
	}

	addr := s.cfg.Host + ":" + s.cfg.Port
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	payload := compose(s.cfg.Username, s.cfg.To, m)

	err := retry.Do(
		func() error {
			return smtp.SendMail(addr, auth, s.cfg.Username, []string{s.cfg.To}, payload)
		},
		retry.Context(ctx),
		retry.Attempts(s.attempts),
		retry.Delay(500*time.Millisecond),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			s.log.Warn("smtp send retry", zap.Uint("attempt", n+1), zap.Error(err))
		}),
	)
	if err != nil {
		return fmt.Errorf("relay contact message: %w", err)
	}

	s.log.Info("contact message relayed",
		zap.String("from", m.Email),
		zap.String("name", m.Name))
	return nil
}

// compose builds the raw RFC 822 payload. Reply-To points at the visitor
// so answering lands in the right inbox.
func compose(from, to string, m Message) []byte {
	subject := fmt.Sprintf("Portfolio Contact: %s", m.Name)
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, m.Name, m.Email, m.Body)

	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("Subject: " + subject + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + m.Email + "\r\n")
	b.WriteString("\r\n")
	b.WriteString(body + "\r\n")
	return []byte(b.String())
}
