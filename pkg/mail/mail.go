// Package mail wraps the outbound transactional email transport.
package mail

import (
	"context"
	"fmt"

	"github.com/resend/resend-go/v2"
	"github.com/unitedformulas/storefront-api/pkg/config"
)

// Message is one outbound HTML email.
type Message struct {
	From    string
	To      []string
	Subject string
	HTML    string
}

// Sender delivers messages through the configured transport. A sender that
// reports Configured() == false must never be asked to Send; the dispatch
// service downgrades to simulated mode instead.
type Sender interface {
	Configured() bool
	Send(ctx context.Context, msg Message) (string, error)
}

// ResendSender sends through the Resend HTTP API.
type ResendSender struct {
	client *resend.Client
	from   string
}

// NewResendSender builds a sender from mail config. A missing API key yields
// an unconfigured sender rather than an error so the storefront keeps
// serving in environments without outbound email wired up.
func NewResendSender(cfg config.MailConfig) *ResendSender {
	sender := &ResendSender{from: cfg.From}
	if cfg.APIKey != "" {
		sender.client = resend.NewClient(cfg.APIKey)
	}
	return sender
}

// Configured reports whether a transport credential is present.
func (s *ResendSender) Configured() bool {
	return s != nil && s.client != nil
}

// Send delivers the message and returns the provider's message id.
func (s *ResendSender) Send(ctx context.Context, msg Message) (string, error) {
	if !s.Configured() {
		return "", fmt.Errorf("mail transport not configured")
	}
	from := msg.From
	if from == "" {
		from = s.from
	}
	sent, err := s.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    from,
		To:      msg.To,
		Subject: msg.Subject,
		Html:    msg.HTML,
	})
	if err != nil {
		return "", fmt.Errorf("resend send: %w", err)
	}
	return sent.Id, nil
}
