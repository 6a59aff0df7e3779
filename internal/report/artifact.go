package report

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// fallbackName is used when a profile carries no usable full name.
const fallbackName = "Unknown_User"

// Artifact identifies one temporary report file. Path and AttachmentName are
// derived from the same sanitized stem exactly once per run, so the file that
// gets attached is always the file that gets cleaned up. The path carries a
// per-request suffix to keep concurrent runs for similarly-named profiles
// from colliding.
type Artifact struct {
	Path           string
	AttachmentName string
}

// NewArtifact builds the artifact for one pipeline run.
func NewArtifact(tempDir, fullName string) Artifact {
	stem := SanitizeName(fullName)
	token := strings.Split(uuid.New().String(), "-")[0]
	return Artifact{
		Path:           filepath.Join(tempDir, fmt.Sprintf("%s_%s_Profile.pdf", stem, token)),
		AttachmentName: stem + "_Profile.pdf",
	}
}

// SanitizeName replaces filesystem-unsafe characters with underscores and
// falls back to a fixed placeholder when no name is present.
func SanitizeName(fullName string) string {
	if strings.TrimSpace(fullName) == "" {
		return fallbackName
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case '\\', '/', ':', '*', '?', '"', '<', '>', '|':
			return '_'
		}
		return r
	}, fullName)
}
