package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Loading Tests
// ==========================

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "https://api.contactout.com", cfg.ContactOut.BaseURL)
	assert.Equal(t, []string{"work_email", "personal_email", "phone"}, cfg.ContactOut.Include)
	assert.Equal(t, "smtp", cfg.Mail.Provider)
	assert.Equal(t, "smtp.gmail.com", cfg.Mail.Host)
	assert.Equal(t, 587, cfg.Mail.Port)
	assert.Equal(t, 100, cfg.RateLimit.Requests)
	assert.Equal(t, 15*time.Minute, cfg.RateLimit.Window)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("CONTACTOUT_API_KEY", "env-token")
	t.Setenv("EMAIL_USER", "sender@example.com")
	t.Setenv("NOTIFY_EMAIL", "internal@example.com")
	t.Setenv("RATE_LIMIT_REQUESTS", "25")
	t.Setenv("RATE_LIMIT_WINDOW", "5m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "env-token", cfg.ContactOut.APIKey)
	assert.Equal(t, "sender@example.com", cfg.Mail.Username)
	// Sender defaults to the SMTP username when not set explicitly.
	assert.Equal(t, "sender@example.com", cfg.Mail.From)
	assert.Equal(t, 25, cfg.RateLimit.Requests)
	assert.Equal(t, 5*time.Minute, cfg.RateLimit.Window)
}

// ==========================
// Validation Tests
// ==========================

func TestConfig_Validate(t *testing.T) {
	valid := func() *Config {
		cfg := &Config{}
		cfg.ContactOut.APIKey = "token"
		cfg.Mail.Provider = "smtp"
		cfg.Mail.Username = "sender@example.com"
		cfg.Mail.Password = "app-password"
		cfg.Mail.NotifyEmail = "internal@example.com"
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(cfg *Config)
		wantErr string
	}{
		{
			name:   "complete smtp config",
			mutate: func(cfg *Config) {},
		},
		{
			name: "ses needs no smtp credentials",
			mutate: func(cfg *Config) {
				cfg.Mail.Provider = "ses"
				cfg.Mail.Username = ""
				cfg.Mail.Password = ""
			},
		},
		{
			name:    "missing api key",
			mutate:  func(cfg *Config) { cfg.ContactOut.APIKey = "" },
			wantErr: "CONTACTOUT_API_KEY",
		},
		{
			name:    "missing smtp password",
			mutate:  func(cfg *Config) { cfg.Mail.Password = "" },
			wantErr: "EMAIL_APP_PASSWORD",
		},
		{
			name:    "missing notify address",
			mutate:  func(cfg *Config) { cfg.Mail.NotifyEmail = "" },
			wantErr: "NOTIFY_EMAIL",
		},
		{
			name:    "unknown provider",
			mutate:  func(cfg *Config) { cfg.Mail.Provider = "carrier-pigeon" },
			wantErr: "unsupported mail provider",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
			}
		})
	}
}
