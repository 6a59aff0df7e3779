// Package notify delivers the enriched profile report over email.
package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"

	"github.com/sunny1561/EnrichProfile/internal/config"
)

// Mailer sends one composed message. Implementations carry the transport
// (SMTP or SES); composition stays in the Notifier.
type Mailer interface {
	Send(ctx context.Context, msg *mail.Msg) error
}

// NewMailerFromConfig selects the mail transport from configuration.
func NewMailerFromConfig(cfg *config.Config) (Mailer, error) {
	switch cfg.Mail.Provider {
	case "smtp":
		return NewSMTPMailer(cfg)
	case "ses":
		return NewSESMailer(cfg)
	default:
		return nil, fmt.Errorf("unsupported mail provider: %s", cfg.Mail.Provider)
	}
}
