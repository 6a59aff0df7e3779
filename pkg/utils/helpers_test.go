package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateRequestID(t *testing.T) {
	first := GenerateRequestID()
	second := GenerateRequestID()

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
}

func TestTruncateForLog(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		max      int
		expected string
	}{
		{name: "short string unchanged", input: "hello", max: 10, expected: "hello"},
		{name: "exact length unchanged", input: "hello", max: 5, expected: "hello"},
		{name: "long string truncated", input: strings.Repeat("a", 20), max: 5, expected: "aaaaa..."},
		{name: "empty string", input: "", max: 5, expected: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, TruncateForLog(tt.input, tt.max))
		})
	}
}
