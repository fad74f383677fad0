package notify

import (
	"context"
	"errors"
	"fmt"

	"github.com/wneessen/go-mail"
)

// SMTPConfig holds the submission parameters for the notification
// mailbox. For Gmail use smtp.gmail.com with an app password.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// Sender emails OAuth authorization links to clients over an
// authenticated STARTTLS submission.
type Sender struct {
	cfg SMTPConfig

	// deliver is the transport seam; tests substitute it.
	deliver func(ctx context.Context, msg *mail.Msg) error
}

// NewSender creates a Sender for the given SMTP configuration.
func NewSender(cfg SMTPConfig) *Sender {
	s := &Sender{cfg: cfg}
	s.deliver = s.dialAndSend
	return s
}

// Send emails the authorization URL to the client as a multipart
// message with plain-text and HTML alternatives.
func (s *Sender) Send(ctx context.Context, toEmail, oauthURL, clientName, assistantName string) error {
	if toEmail == "" {
		return &NotificationError{Op: "send", Err: errors.New("client email address is required")}
	}
	if oauthURL == "" {
		return &NotificationError{Op: "send", Err: errors.New("authorization URL is required")}
	}
	if clientName == "" {
		clientName = "there"
	}
	if assistantName == "" {
		assistantName = "Rafi"
	}

	msg := mail.NewMsg()
	if err := msg.From(s.cfg.From); err != nil {
		return &NotificationError{Op: "send", Err: fmt.Errorf("invalid from address %q: %w", s.cfg.From, err)}
	}
	if err := msg.To(toEmail); err != nil {
		return &NotificationError{Op: "send", Err: fmt.Errorf("invalid recipient %q: %w", toEmail, err)}
	}
	msg.Subject(fmt.Sprintf("Authorize Google Access for Your %s Assistant", assistantName))

	plain, html := emailBodies(clientName, assistantName, oauthURL)
	msg.SetBodyString(mail.TypeTextPlain, plain)
	msg.AddAlternativeString(mail.TypeTextHTML, html)

	if err := s.deliver(ctx, msg); err != nil {
		return &NotificationError{Op: "send", Err: err}
	}
	return nil
}

func (s *Sender) dialAndSend(ctx context.Context, msg *mail.Msg) error {
	client, err := mail.NewClient(s.cfg.Host,
		mail.WithPort(s.cfg.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(s.cfg.Username),
		mail.WithPassword(s.cfg.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client for %s: %w", s.cfg.Host, err)
	}
	return client.DialAndSendWithContext(ctx, msg)
}
