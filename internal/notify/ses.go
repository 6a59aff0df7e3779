package notify

import (
	"bytes"
	"context"
	"fmt"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/ses"
	"github.com/aws/aws-sdk-go-v2/service/ses/types"
	"github.com/wneessen/go-mail"

	"github.com/sunny1561/EnrichProfile/internal/config"
)

// SESMailer sends mail through Amazon SES. The composed message is serialized
// to raw MIME so attachments survive the trip unchanged.
type SESMailer struct {
	client *ses.Client
}

// NewSESMailer builds the SES client from the ambient AWS credential chain.
func NewSESMailer(cfg *config.Config) (*SESMailer, error) {
	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background(),
		awsconfig.WithRegion(cfg.Mail.Region),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS config: %w", err)
	}
	return &SESMailer{client: ses.NewFromConfig(awsCfg)}, nil
}

func (m *SESMailer) Send(ctx context.Context, msg *mail.Msg) error {
	var raw bytes.Buffer
	if _, err := msg.WriteTo(&raw); err != nil {
		return fmt.Errorf("failed to serialize message: %w", err)
	}

	_, err := m.client.SendRawEmail(ctx, &ses.SendRawEmailInput{
		RawMessage: &types.RawMessage{Data: raw.Bytes()},
	})
	if err != nil {
		return fmt.Errorf("ses send failed: %w", err)
	}
	return nil
}
