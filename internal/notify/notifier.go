package notify

import (
	"context"
	"fmt"
	"os"

	"github.com/wneessen/go-mail"

	"github.com/sunny1561/EnrichProfile/internal/config"
	"github.com/sunny1561/EnrichProfile/internal/logging"
	logtypes "github.com/sunny1561/EnrichProfile/internal/logging/types"
	"github.com/sunny1561/EnrichProfile/internal/metrics"
	"github.com/sunny1561/EnrichProfile/internal/report"
	"github.com/sunny1561/EnrichProfile/pkg/models"
)

// Notifier renders the PDF report and mails it to the requester, with the
// internal notification address on Cc. The temporary report file is removed
// after every delivery attempt, successful or not.
type Notifier struct {
	cfg      *config.Config
	renderer report.Renderer
	mailer   Mailer
	logger   logtypes.Logger
}

// NewNotifier wires the notifier with its renderer and mail transport.
func NewNotifier(cfg *config.Config, renderer report.Renderer, mailer Mailer) *Notifier {
	return &Notifier{
		cfg:      cfg,
		renderer: renderer,
		mailer:   mailer,
		logger:   logging.GetGlobalLogger(),
	}
}

// Deliver renders the report for the enriched profile and emails it to the
// requester. The attachment filename is derived from the same sanitized stem
// as the temp path, so what was written is what gets attached and removed.
func (n *Notifier) Deliver(ctx context.Context, enriched *models.EnrichResponse, requesterEmail string) error {
	var profile *models.Profile
	if enriched != nil {
		profile = enriched.Profile
	}
	view := report.BuildReportData(profile)

	artifact := report.NewArtifact(n.cfg.Report.TempDir, displayName(profile))
	defer n.cleanup(artifact.Path)

	if err := n.renderer.Render(ctx, profile, artifact.Path); err != nil {
		return err
	}

	msg := mail.NewMsg()
	if err := msg.From(n.cfg.Mail.From); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(requesterEmail); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	if err := msg.Cc(n.cfg.Mail.NotifyEmail); err != nil {
		return fmt.Errorf("invalid cc address: %w", err)
	}
	msg.Subject("Enriched Profile Report: " + view.Profile.FullName)
	msg.SetBodyString(mail.TypeTextHTML, summaryBody(view))
	msg.AttachFile(artifact.Path,
		mail.WithFileName(artifact.AttachmentName),
		mail.WithFileContentType(mail.ContentType("application/pdf")),
	)

	if err := n.mailer.Send(ctx, msg); err != nil {
		n.logger.Error("Failed to send profile report email", map[string]interface{}{
			"recipient": requesterEmail,
			"error":     err.Error(),
		})
		return err
	}

	metrics.EmailsSent.Inc()
	n.logger.Info("Profile report email sent", map[string]interface{}{
		"recipient":  requesterEmail,
		"cc":         n.cfg.Mail.NotifyEmail,
		"attachment": artifact.AttachmentName,
	})
	return nil
}

// cleanup removes the temporary report file. A missing file is fine (the
// render may have failed before writing anything); any other failure is
// logged and counted but never turns a delivered report into an error.
func (n *Notifier) cleanup(path string) {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		metrics.ReportCleanupFailures.Inc()
		n.logger.Warn("Failed to delete temporary report file", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
	}
}

func displayName(p *models.Profile) string {
	if p == nil || p.FullName == nil {
		return ""
	}
	return *p.FullName
}

func summaryBody(view report.ReportData) string {
	companyName := view.Company.Name
	return fmt.Sprintf(`<h2>Enriched Profile Details</h2>
<p><strong>Name:</strong> %s</p>
<p><strong>Headline:</strong> %s</p>
<p><strong>Location:</strong> %s</p>
<p><strong>Company:</strong> %s</p>
<p>The full profile report is attached as a PDF.</p>`,
		view.Profile.FullName,
		view.Profile.Headline,
		view.Profile.Location,
		companyName,
	)
}
