package mailer

import (
	"context"
	"errors"
	"regexp"
)

// emailRegex is a light syntactic gate for sender configuration; full
// validation of submitted addresses is the rule package's job.
var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// EmailSender dispatches a rendered email through some transport. The
// Postmark client is the production implementation; DevSender writes
// emails to disk for local development.
type EmailSender interface {
	SendEmail(ctx context.Context, params SendEmailParams) error
}

// SendEmailParams is one outbound email, fully rendered.
type SendEmailParams struct {
	SendTo      string `json:"send_to"`                 // Recipient address
	ReplyTo     string `json:"reply_to,omitempty"`      // Optional reply-to address, typically the submitter
	ReplyToName string `json:"reply_to_name,omitempty"` // Optional display name for the reply-to address
	Subject     string `json:"subject"`                 // Subject line
	BodyHTML    string `json:"body_html"`               // HTML body
	Tag         string `json:"tag,omitempty"`           // Optional tag for transport-side analytics
}

// Validate checks that the params carry the minimum required to dispatch.
func (p SendEmailParams) Validate() error {
	if p.SendTo == "" {
		return errors.Join(ErrInvalidParams, errors.New("SendTo is required"))
	}
	if !emailRegex.MatchString(p.SendTo) {
		return errors.Join(ErrInvalidParams, errors.New("SendTo must be a valid email address"))
	}
	if p.Subject == "" {
		return errors.Join(ErrInvalidParams, errors.New("Subject is required"))
	}
	if p.BodyHTML == "" {
		return errors.Join(ErrInvalidParams, errors.New("BodyHTML is required"))
	}
	return nil
}
