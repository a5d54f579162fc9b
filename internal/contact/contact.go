// Package contact validates contact form submissions and relays them by
// SMTP.
package contact

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"mime"
	"net"
	"net/mail"
	"net/smtp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mdashik24x7/portfolio/internal/config"
)

// ErrNotConfigured is returned when SMTP credentials are missing.
var ErrNotConfigured = errors.New("contact: smtp credentials not configured")

const maxBodyLen = 5000

// Message is one form submission.
type Message struct {
	Name  string
	Email string
	Body  string
}

// FieldErrors maps a form field to its problem.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range []string{"fullName", "email", "message"} {
		if msg, ok := e[f]; ok {
			parts = append(parts, f+": "+msg)
		}
	}
	return "invalid contact message: " + strings.Join(parts, "; ")
}

// Normalize trims the fields and checks them. The returned error is a
// FieldErrors when validation fails.
func (m Message) Normalize() (Message, error) {
	m.Name = strings.TrimSpace(m.Name)
	m.Email = strings.TrimSpace(m.Email)
	m.Body = strings.TrimSpace(strings.ReplaceAll(m.Body, "\r\n", "\n"))

	errs := FieldErrors{}
	switch {
	case m.Name == "":
		errs["fullName"] = "required"
	case strings.ContainsAny(m.Name, "\r\n"):
		errs["fullName"] = "must be a single line"
	}
	if m.Email == "" {
		errs["email"] = "required"
	} else if addr, err := mail.ParseAddress(m.Email); err != nil || addr.Address != m.Email {
		errs["email"] = "not a valid address"
	}
	switch {
	case m.Body == "":
		errs["message"] = "required"
	case utf8.RuneCountInString(m.Body) > maxBodyLen:
		errs["message"] = fmt.Sprintf("longer than %d characters", maxBodyLen)
	}
	if len(errs) > 0 {
		return m, errs
	}
	return m, nil
}

// Mailer delivers a validated message.
type Mailer interface {
	Send(ctx context.Context, m Message) error
}

type sendFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends through an authenticated SMTP relay.
type SMTPMailer struct {
	cfg    config.ContactConfig
	logger *slog.Logger
	send   sendFunc
}

// NewSMTPMailer returns a mailer for cfg.
func NewSMTPMailer(cfg config.ContactConfig, logger *slog.Logger) *SMTPMailer {
	if logger == nil {
		logger = slog.Default()
	}
	return &SMTPMailer{cfg: cfg, logger: logger, send: smtp.SendMail}
}

// Send relays m to the configured recipient.
func (s *SMTPMailer) Send(ctx context.Context, m Message) error {
	if !s.cfg.Enabled() {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	to := s.cfg.Recipient()
	addr := net.JoinHostPort(s.cfg.Host, strconv.Itoa(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)

	if err := s.send(addr, auth, s.cfg.User, []string{to}, compose(s.cfg.User, to, m)); err != nil {
		return fmt.Errorf("sending contact mail: %w", err)
	}
	s.logger.Info("contact mail sent", "reply_to", m.Email)
	return nil
}

func compose(from, to string, m Message) []byte {
	var b strings.Builder
	b.WriteString("To: " + to + "\r\n")
	b.WriteString("From: " + from + "\r\n")
	b.WriteString("Reply-To: " + (&mail.Address{Name: m.Name, Address: m.Email}).String() + "\r\n")
	b.WriteString("Subject: " + mime.QEncoding.Encode("utf-8", "Portfolio Contact: "+m.Name) + "\r\n")
	b.WriteString("Content-Type: text/plain; charset=UTF-8\r\n")
	b.WriteString("\r\n")
	b.WriteString("New contact form submission from your portfolio:\r\n\r\n")
	b.WriteString("Name: " + m.Name + "\r\n")
	b.WriteString("Email: " + m.Email + "\r\n")
	b.WriteString("Message:\r\n")
	body := strings.ReplaceAll(m.Body, "\r\n", "\n")
	b.WriteString(strings.ReplaceAll(body, "\n", "\r\n"))
	b.WriteString("\r\n")
	return []byte(b.String())
}
