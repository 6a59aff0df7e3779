package config

import (
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration
type Config struct {
	Server struct {
		Port         int           `yaml:"port"`
		Host         string        `yaml:"host"`
		ReadTimeout  time.Duration `yaml:"read_timeout"`
		WriteTimeout time.Duration `yaml:"write_timeout"`
		IdleTimeout  time.Duration `yaml:"idle_timeout"`
	} `yaml:"server"`

	ContactOut struct {
		APIKey  string        `yaml:"api_key"`
		BaseURL string        `yaml:"base_url"`
		Timeout time.Duration `yaml:"timeout"`
		Include []string      `yaml:"include"`
	} `yaml:"contactout"`

	Mail struct {
		Provider    string        `yaml:"provider"` // smtp or ses
		Host        string        `yaml:"host"`
		Port        int           `yaml:"port"`
		Username    string        `yaml:"username"`
		Password    string        `yaml:"password"`
		From        string        `yaml:"from"`
		NotifyEmail string        `yaml:"notify_email"`
		Region      string        `yaml:"region"` // ses only
		Timeout     time.Duration `yaml:"timeout"`
	} `yaml:"mail"`

	RateLimit struct {
		Requests int           `yaml:"requests"`
		Window   time.Duration `yaml:"window"`
		Burst    int           `yaml:"burst"`
	} `yaml:"rate_limit"`

	CORS struct {
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"cors"`

	Report struct {
		TempDir string `yaml:"temp_dir"`
	} `yaml:"report"`

	Logging struct {
		Level  string `yaml:"level"`
		Format string `yaml:"format"`

		Adapters []struct {
			Name    string                 `yaml:"name"`
			Type    string                 `yaml:"type"`
			Enabled bool                   `yaml:"enabled"`
			Options map[string]interface{} `yaml:"options"`
		} `yaml:"adapters"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	// Load .env file if it exists (ignore errors if file doesn't exist)
	_ = godotenv.Load()

	config := &Config{}

	// Set defaults
	config.Server.Port = 5000
	config.Server.Host = "0.0.0.0"
	config.Server.ReadTimeout = 30 * time.Second
	config.Server.WriteTimeout = 30 * time.Second
	config.Server.IdleTimeout = 60 * time.Second

	config.ContactOut.BaseURL = "https://api.contactout.com"
	config.ContactOut.Timeout = 30 * time.Second
	config.ContactOut.Include = []string{"work_email", "personal_email", "phone"}

	config.Mail.Provider = "smtp"
	config.Mail.Host = "smtp.gmail.com"
	config.Mail.Port = 587
	config.Mail.Timeout = 30 * time.Second

	config.RateLimit.Requests = 100
	config.RateLimit.Window = 15 * time.Minute
	config.RateLimit.Burst = 10

	config.CORS.AllowedOrigins = []string{"http://localhost:3000"}

	config.Report.TempDir = os.TempDir()

	config.Logging.Level = "info"
	config.Logging.Format = "json"

	// Load from YAML file if it exists
	if configPath != "" {
		if data, err := os.ReadFile(configPath); err == nil {
			yamlContent := expandEnvVars(string(data))
			if err := yaml.Unmarshal([]byte(yamlContent), config); err != nil {
				return nil, err
			}
		}
	}

	// Override with environment variables
	config.loadFromEnv()

	return config, nil
}

// Validate checks that all startup-required values are present. A missing
// value here is a fatal condition, never a per-request error.
func (c *Config) Validate() error {
	var missing []string
	if c.ContactOut.APIKey == "" {
		missing = append(missing, "CONTACTOUT_API_KEY")
	}
	if c.Mail.Provider == "smtp" {
		if c.Mail.Username == "" {
			missing = append(missing, "EMAIL_USER")
		}
		if c.Mail.Password == "" {
			missing = append(missing, "EMAIL_APP_PASSWORD")
		}
	}
	if c.Mail.NotifyEmail == "" {
		missing = append(missing, "NOTIFY_EMAIL")
	}
	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	if c.Mail.Provider != "smtp" && c.Mail.Provider != "ses" {
		return fmt.Errorf("unsupported mail provider: %s", c.Mail.Provider)
	}
	return nil
}

// loadFromEnv loads configuration from environment variables
func (c *Config) loadFromEnv() {
	if port := os.Getenv("PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Server.Port = p
		}
	}

	if host := os.Getenv("HOST"); host != "" {
		c.Server.Host = host
	}

	if apiKey := os.Getenv("CONTACTOUT_API_KEY"); apiKey != "" {
		c.ContactOut.APIKey = apiKey
	}

	if baseURL := os.Getenv("CONTACTOUT_BASE_URL"); baseURL != "" {
		c.ContactOut.BaseURL = baseURL
	}

	if provider := os.Getenv("MAIL_PROVIDER"); provider != "" {
		c.Mail.Provider = provider
	}

	if user := os.Getenv("EMAIL_USER"); user != "" {
		c.Mail.Username = user
		if c.Mail.From == "" {
			c.Mail.From = user
		}
	}

	if pass := os.Getenv("EMAIL_APP_PASSWORD"); pass != "" {
		c.Mail.Password = pass
	}

	if host := os.Getenv("EMAIL_HOST"); host != "" {
		c.Mail.Host = host
	}

	if port := os.Getenv("EMAIL_PORT"); port != "" {
		if p, err := strconv.Atoi(port); err == nil {
			c.Mail.Port = p
		}
	}

	if from := os.Getenv("EMAIL_FROM"); from != "" {
		c.Mail.From = from
	}

	if notify := os.Getenv("NOTIFY_EMAIL"); notify != "" {
		c.Mail.NotifyEmail = notify
	}

	if region := os.Getenv("AWS_REGION"); region != "" {
		c.Mail.Region = region
	}

	if origins := os.Getenv("ALLOWED_ORIGINS"); origins != "" {
		c.CORS.AllowedOrigins = strings.Split(origins, ",")
	}

	if tempDir := os.Getenv("REPORT_TEMP_DIR"); tempDir != "" {
		c.Report.TempDir = tempDir
	}

	if logLevel := os.Getenv("LOG_LEVEL"); logLevel != "" {
		c.Logging.Level = logLevel
	}

	if logFormat := os.Getenv("LOG_FORMAT"); logFormat != "" {
		c.Logging.Format = logFormat
	}

	if requests := os.Getenv("RATE_LIMIT_REQUESTS"); requests != "" {
		if r, err := strconv.Atoi(requests); err == nil {
			c.RateLimit.Requests = r
		}
	}

	if window := os.Getenv("RATE_LIMIT_WINDOW"); window != "" {
		if d, err := time.ParseDuration(window); err == nil {
			c.RateLimit.Window = d
		}
	}
}

// expandEnvVars expands environment variables in a string using ${VAR} or $VAR syntax
func expandEnvVars(s string) string {
	re := regexp.MustCompile(`\$\{([^}]+)\}`)
	s = re.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[2 : len(match)-1]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	re2 := regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)
	s = re2.ReplaceAllStringFunc(s, func(match string) string {
		varName := match[1:]
		if val := os.Getenv(varName); val != "" {
			return val
		}
		return match
	})

	return s
}
