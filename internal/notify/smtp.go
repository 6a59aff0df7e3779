package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/sunny1561/EnrichProfile/internal/config"
)

// SMTPMailer sends mail over authenticated SMTP (STARTTLS). The default
// configuration targets Gmail with an app password.
type SMTPMailer struct {
	client *mail.Client
}

// NewSMTPMailer builds the SMTP client from configuration.
func NewSMTPMailer(cfg *config.Config) (*SMTPMailer, error) {
	client, err := mail.NewClient(cfg.Mail.Host,
		mail.WithPort(cfg.Mail.Port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(cfg.Mail.Username),
		mail.WithPassword(cfg.Mail.Password),
		mail.WithTLSPolicy(mail.TLSMandatory),
		mail.WithTimeout(cfg.Mail.Timeout),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create SMTP client: %w", err)
	}
	return &SMTPMailer{client: client}, nil
}

func (m *SMTPMailer) Send(ctx context.Context, msg *mail.Msg) error {
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return fmt.Errorf("smtp send failed: %w", err)
	}
	return nil
}
