// Package mailer sends transactional email (welcome / temporary password).
package mailer

import (
	"context"
	"fmt"

	"go.uber.org/zap"
	"gopkg.in/gomail.v2"

	"insekta-dashboard/pkg/utils"
)

type WelcomeMail struct {
	To           string
	Name         string
	Email        string
	TempPassword string
	LoginURL     string
}

type Mailer interface {
	SendWelcome(ctx context.Context, mail WelcomeMail) error
}

// New returns the SMTP mailer, or a log-only mailer when SMTP_HOST is unset.
func New(cfg utils.EmailConfig, log *zap.Logger) Mailer {
	if cfg.Host == "" {
		log.Warn("SMTP_HOST not set, emails will only be logged")
		return &LogMailer{log: log.With(zap.String("component", "mailer"))}
	}
	return NewSMTPMailer(cfg, log)
}

// ==================== SMTP ====================

type SMTPMailer struct {
	dialer   *gomail.Dialer
	from     string
	fromName string
	log      *zap.Logger
}

func NewSMTPMailer(cfg utils.EmailConfig, log *zap.Logger) *SMTPMailer {
	port := cfg.Port
	if port == 0 {
		port = 587
	}

	return &SMTPMailer{
		dialer:   gomail.NewDialer(cfg.Host, port, cfg.User, cfg.Password),
		from:     cfg.User,
		fromName: cfg.FromName,
		log:      log.With(zap.String("component", "mailer")),
	}
}

func (m *SMTPMailer) SendWelcome(ctx context.Context, mail WelcomeMail) error {
	html, err := renderWelcome(mail)
	if err != nil {
		return err
	}

	msg := gomail.NewMessage()
	msg.SetAddressHeader("From", m.from, m.fromName)
	msg.SetHeader("To", mail.To)
	msg.SetHeader("Subject", welcomeSubject)
	msg.SetBody("text/html", html)

	// gomail has no context support; bail out early if already cancelled
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.log.Error("Failed to send welcome email", zap.Error(err), zap.String("to", mail.To))
		return fmt.Errorf("send welcome email: %w", err)
	}

	m.log.Info("Welcome email sent", zap.String("to", mail.To))
	return nil
}

// ==================== LOG ONLY ====================

type LogMailer struct {
	log *zap.Logger
}

func (m *LogMailer) SendWelcome(ctx context.Context, mail WelcomeMail) error {
	if _, err := renderWelcome(mail); err != nil {
		return err
	}
	m.log.Info("Welcome email (not sent, SMTP disabled)", zap.String("to", mail.To))
	return nil
}
