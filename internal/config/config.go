// Package config loads portfolio server settings from a YAML file with
// environment overrides.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultPath is used when PORTFOLIO_CONFIG is unset.
const DefaultPath = "config/portfolio.yaml"

// Config holds everything the portfolio binary needs.
type Config struct {
	// Network
	Host string `yaml:"host"`
	Port int    `yaml:"port"`

	// gin mode: debug, release or test
	Mode string `yaml:"mode"`

	// Logging: text or json
	LogFormat string `yaml:"log_format"`

	// Optional content tables override; empty uses the embedded tables.
	ContentPath string `yaml:"content_path"`

	// sqlite file for visits and terminal preferences. Empty disables
	// visitor tracking.
	DatabasePath string `yaml:"database_path"`

	Tracking TrackingConfig `yaml:"tracking"`
	Admin    AdminConfig    `yaml:"admin"`
	Contact  ContactConfig  `yaml:"contact"`

	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"`
}

// TrackingConfig controls the privacy-conscious visit log.
type TrackingConfig struct {
	Enabled         bool          `yaml:"enabled"`
	RetentionDays   int           `yaml:"retention_days"`
	CleanupInterval time.Duration `yaml:"cleanup_interval"`
}

// Retention returns RetentionDays as a duration.
func (t TrackingConfig) Retention() time.Duration {
	return time.Duration(t.RetentionDays) * 24 * time.Hour
}

// AdminConfig holds dashboard credentials.
type AdminConfig struct {
	Username string `yaml:"username"`
	Password string `yaml:"password"`
}

// ContactConfig holds the SMTP relay for the contact form.
type ContactConfig struct {
	Host     string `yaml:"smtp_host"`
	Port     int    `yaml:"smtp_port"`
	User     string `yaml:"smtp_user"`
	Password string `yaml:"smtp_password"`
	// Recipient; defaults to User.
	To string `yaml:"to"`
}

// Enabled reports whether credentials are present.
func (c ContactConfig) Enabled() bool {
	return c.User != "" && c.Password != ""
}

// Recipient returns To, falling back to User.
func (c ContactConfig) Recipient() string {
	if c.To != "" {
		return c.To
	}
	return c.User
}

// Default returns the config with development defaults.
func Default() Config {
	return Config{
		Host:         "",
		Port:         8080,
		Mode:         "debug",
		LogFormat:    "text",
		DatabasePath: "portfolio.db",
		Tracking: TrackingConfig{
			Enabled:         true,
			RetentionDays:   365,
			CleanupInterval: 24 * time.Hour,
		},
		Admin: AdminConfig{
			Username: "admin",
			Password: "admin123",
		},
		Contact: ContactConfig{
			Host: "smtp.gmail.com",
			Port: 587,
		},
		ShutdownTimeout: 10 * time.Second,
	}
}

// Addr is the listen address.
func (c Config) Addr() string {
	return c.Host + ":" + strconv.Itoa(c.Port)
}

// UsingDefaultAdmin reports whether the built-in development credentials
// are still in effect.
func (c Config) UsingDefaultAdmin() bool {
	d := Default().Admin
	return c.Admin.Username == d.Username || c.Admin.Password == d.Password
}

// Load reads path (missing file means defaults) and applies environment
// overrides on top.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parsing config %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, cfg.Validate()
}

// Path returns PORTFOLIO_CONFIG or DefaultPath.
func Path() string {
	if p := os.Getenv("PORTFOLIO_CONFIG"); p != "" {
		return p
	}
	return DefaultPath
}

func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	if v, ok := lookup("PORT"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("PORT %q: %w", v, err)
		}
		c.Port = p
	}
	if v, ok := lookup("SMTP_PORT"); ok && v != "" {
		p, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("SMTP_PORT %q: %w", v, err)
		}
		c.Contact.Port = p
	}
	str := map[string]*string{
		"HOST":           &c.Host,
		"GIN_MODE":       &c.Mode,
		"LOG_FORMAT":     &c.LogFormat,
		"CONTENT_PATH":   &c.ContentPath,
		"ADMIN_USERNAME": &c.Admin.Username,
		"ADMIN_PASSWORD": &c.Admin.Password,
		"SMTP_HOST":      &c.Contact.Host,
		"SMTP_USER":      &c.Contact.User,
		"SMTP_PASS":      &c.Contact.Password,
		"TO_EMAIL":       &c.Contact.To,
	}
	for key, dst := range str {
		if v, ok := lookup(key); ok && v != "" {
			*dst = v
		}
	}
	// An explicitly empty PORTFOLIO_DB disables the database.
	if v, ok := lookup("PORTFOLIO_DB"); ok {
		c.DatabasePath = v
	}
	return nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("port %d out of range", c.Port)
	}
	switch c.Mode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("unknown mode %q", c.Mode)
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("unknown log format %q", c.LogFormat)
	}
	if c.Contact.Enabled() && (c.Contact.Host == "" || c.Contact.Port <= 0) {
		return fmt.Errorf("contact form needs an smtp host and port")
	}
	if c.Tracking.Enabled && c.Tracking.RetentionDays <= 0 {
		return fmt.Errorf("tracking retention must be positive, got %d days", c.Tracking.RetentionDays)
	}
	return nil
}
