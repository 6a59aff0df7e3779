package report

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// ==========================
// Sanitization Tests
// ==========================

func TestSanitizeName(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "plain name", input: "Jane Doe", expected: "Jane Doe"},
		{name: "forward slash", input: "Jane/Doe", expected: "Jane_Doe"},
		{name: "backslash", input: `Jane\Doe`, expected: "Jane_Doe"},
		{name: "all unsafe characters", input: `a\b/c:d*e?f"g<h>i|j`, expected: "a_b_c_d_e_f_g_h_i_j"},
		{name: "empty name", input: "", expected: "Unknown_User"},
		{name: "whitespace only", input: "   ", expected: "Unknown_User"},
		{name: "unicode preserved", input: "José García", expected: "José García"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, SanitizeName(tt.input))
		})
	}
}

// ==========================
// Artifact Naming Tests
// ==========================

func TestNewArtifact_PathAndAttachmentShareStem(t *testing.T) {
	artifact := NewArtifact("/tmp", "Jane/Doe")

	assert.Equal(t, "Jane_Doe_Profile.pdf", artifact.AttachmentName)
	assert.Equal(t, "/tmp", filepath.Dir(artifact.Path))

	base := filepath.Base(artifact.Path)
	assert.True(t, strings.HasPrefix(base, "Jane_Doe_"))
	assert.True(t, strings.HasSuffix(base, "_Profile.pdf"))
}

func TestNewArtifact_ConcurrentRunsGetDistinctPaths(t *testing.T) {
	first := NewArtifact("/tmp", "Jane Doe")
	second := NewArtifact("/tmp", "Jane Doe")

	assert.NotEqual(t, first.Path, second.Path)
	assert.Equal(t, first.AttachmentName, second.AttachmentName)
}

func TestNewArtifact_FallbackName(t *testing.T) {
	artifact := NewArtifact("/tmp", "")

	assert.Equal(t, "Unknown_User_Profile.pdf", artifact.AttachmentName)
	assert.True(t, strings.HasPrefix(filepath.Base(artifact.Path), "Unknown_User_"))
}
