// Package mail delivers account notifications.
package mail

import (
	"context"
	"fmt"

	"github.com/backprop/server/internal/logging"
	gomail "github.com/wneessen/go-mail"
)

type Sender interface {
	Send(ctx context.Context, to, subject, body string) error
}

type smtpClient interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

// newClient is a seam for testing gomail.NewClient.
var newClient = func(host string, opts ...gomail.Option) (smtpClient, error) {
	return gomail.NewClient(host, opts...)
}

// SMTPSender relays messages through a single SMTP server. STARTTLS is used
// when the server offers it.
type SMTPSender struct {
	from   string
	client smtpClient
}

// NewSMTPSender returns a sender for host:port. PLAIN auth is used when user
// is not empty.
func NewSMTPSender(host string, port int, user, password, from string) (*SMTPSender, error) {
	opts := []gomail.Option{
		gomail.WithPort(port),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	}
	if user != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(user),
			gomail.WithPassword(password),
		)
	}

	c, err := newClient(host, opts...)
	if err != nil {
		return nil, fmt.Errorf("mail: smtp client: %w", err)
	}
	return &SMTPSender{from: from, client: c}, nil
}

func (s *SMTPSender) Send(ctx context.Context, to, subject, body string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	m, err := s.message(to, subject, body)
	if err != nil {
		return err
	}
	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return fmt.Errorf("mail: send: %w", err)
	}
	return nil
}

func (s *SMTPSender) message(to, subject, body string) (*gomail.Msg, error) {
	m := gomail.NewMsg()
	if err := m.From(s.from); err != nil {
		return nil, fmt.Errorf("mail: from: %w", err)
	}
	if err := m.To(to); err != nil {
		return nil, fmt.Errorf("mail: to: %w", err)
	}
	m.Subject(subject)
	m.SetBodyString(gomail.TypeTextPlain, body)
	return m, nil
}

// LogSender stands in for SMTP in development. Only the recipient and
// subject are logged.
type LogSender struct {
	log logging.Logger
}

func NewLogSender(log logging.Logger) *LogSender {
	return &LogSender{log: log}
}

func (s *LogSender) Send(ctx context.Context, to, subject, _ string) error {
	s.log.Info(ctx, "mail not delivered, no smtp host configured", "to", to, "subject", subject)
	return nil
}
