package models

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// SessionCookie is one cookie attached to every page fetch. The tracked
// site hands out session state through a PHP session cookie plus two
// WordPress login cookies whose names carry a per-site suffix.
type SessionCookie struct {
	Name  string `yaml:"name"`
	Value string `yaml:"value"`
}

// Config holds the full runtime configuration for a run. Values come
// from an optional config.yaml, overridden by environment variables
// (a .env file is loaded first when present).
type Config struct {
	LogLevel string `yaml:"log_level"`

	// Tracking store. Backend is "sheet" (xlsx spreadsheet) or "sqlite".
	StoreBackend string `yaml:"store_backend"`
	SheetPath    string `yaml:"sheet_path"`
	Worksheet    string `yaml:"worksheet"`
	StorePath    string `yaml:"store_path"`

	// Notification.
	AlwaysSend  bool   `yaml:"always_send"`
	EmailFormat string `yaml:"email_format"` // plain | html
	SMTPHost    string `yaml:"smtp_host"`
	SMTPPort    int    `yaml:"smtp_port"`
	SMTPUser    string `yaml:"smtp_user"`
	SMTPPass    string `yaml:"smtp_pass"`
	EmailFrom   string `yaml:"email_from"`
	EmailTo     string `yaml:"email_to"`

	// Session cookies for authenticated fetching.
	Cookies []SessionCookie `yaml:"cookies"`
}

// defaults returns a Config populated with repository defaults.
func defaults() *Config {
	return &Config{
		LogLevel:     "info",
		StoreBackend: "sheet",
		SheetPath:    "dramy.xlsx",
		Worksheet:    "arkusz1",
		StorePath:    "sprawdzacz.db",
		AlwaysSend:   true,
		EmailFormat:  "plain",
		SMTPHost:     "smtp.gmail.com",
		SMTPPort:     587,
	}
}

// LoadConfig builds the runtime configuration. A .env file in the
// working directory is loaded into the environment first (missing file
// is fine), then the YAML file at path (skipped when absent), then
// environment variable overrides.
func LoadConfig(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
	}

	cfg.applyEnv()

	if cfg.EmailFrom == "" {
		cfg.EmailFrom = cfg.SMTPUser
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	setString(&c.LogLevel, "LOG_LEVEL")
	setString(&c.StoreBackend, "STORE_BACKEND")
	setString(&c.SheetPath, "SHEET_PATH")
	setString(&c.Worksheet, "WORKSHEET_TITLE")
	setString(&c.StorePath, "STORE_PATH")
	setBool(&c.AlwaysSend, "ALWAYS_SEND")
	setString(&c.EmailFormat, "EMAIL_FORMAT")
	setString(&c.SMTPHost, "SMTP_HOST")
	setInt(&c.SMTPPort, "SMTP_PORT")
	setString(&c.SMTPUser, "SMTP_USER")
	setString(&c.SMTPPass, "SMTP_PASS")
	setString(&c.EmailFrom, "EMAIL_FROM")
	setString(&c.EmailTo, "EMAIL_TO")

	// Cookie configuration mirrors the tracked site's conventions: a
	// fixed-name PHP session cookie and two name+value pairs with
	// site-specific names.
	if v := os.Getenv("PHPSESSID"); v != "" {
		c.Cookies = append(c.Cookies, SessionCookie{Name: "PHPSESSID", Value: v})
	}
	for _, prefix := range []string{"WP_LOGGED_IN_COOKIE", "WP_SEC_COOKIE"} {
		name := os.Getenv(prefix + "_NAME")
		value := os.Getenv(prefix + "_VALUE")
		if name != "" && value != "" {
			c.Cookies = append(c.Cookies, SessionCookie{Name: name, Value: value})
		}
	}
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(strings.TrimSpace(v)); err == nil {
			*dst = n
		}
	}
}

func setBool(dst *bool, key string) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "tak":
		*dst = true
	default:
		*dst = false
	}
}
