package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"PORT", "HOST", "GIN_MODE", "LOG_FORMAT", "CONTENT_PATH",
	"ADMIN_USERNAME", "ADMIN_PASSWORD", "PORTFOLIO_DB",
	"SMTP_HOST", "SMTP_PORT", "SMTP_USER", "SMTP_PASS", "TO_EMAIL",
}

// clearEnv unsets every override for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range envKeys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "portfolio.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.UsingDefaultAdmin())
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := writeConfig(t, `
host: 127.0.0.1
port: 9000
mode: release
database_path: ""
tracking:
  enabled: false
  retention_days: 30
  cleanup_interval: 1h
admin:
  username: ashik
  password: s3cret
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:9000", cfg.Addr())
	assert.Equal(t, "release", cfg.Mode)
	assert.Empty(t, cfg.DatabasePath)
	assert.False(t, cfg.Tracking.Enabled)
	assert.Equal(t, time.Hour, cfg.Tracking.CleanupInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.Tracking.Retention())
	assert.False(t, cfg.UsingDefaultAdmin())
	assert.Equal(t, "text", cfg.LogFormat, "unset keys keep defaults")
}

func TestLoad_EnvOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "3000")
	t.Setenv("ADMIN_USERNAME", "root")
	t.Setenv("LOG_FORMAT", "json")
	t.Setenv("PORTFOLIO_DB", "")

	cfg, err := Load(writeConfig(t, "port: 9000\n"))
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Port)
	assert.Equal(t, "root", cfg.Admin.Username)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Empty(t, cfg.DatabasePath)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		body string
		env  map[string]string
		want string
	}{
		{name: "bad yaml", body: "port: [", want: "parsing config"},
		{name: "bad port env", env: map[string]string{"PORT": "http"}, want: `PORT "http"`},
		{name: "port range", body: "port: 70000", want: "out of range"},
		{name: "mode", body: "mode: prod", want: `unknown mode "prod"`},
		{name: "log format", body: "log_format: xml", want: "unknown log format"},
		{name: "bad smtp port env", env: map[string]string{"SMTP_PORT": "x"}, want: `SMTP_PORT "x"`},
		{name: "smtp host", body: "contact: {smtp_host: '', smtp_user: a, smtp_password: b}", want: "smtp host and port"},
		{name: "retention", body: "tracking: {enabled: true, retention_days: 0}", want: "retention must be positive"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}
			_, err := Load(writeConfig(t, tt.body))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestLoad_Contact(t *testing.T) {
	clearEnv(t)
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.False(t, cfg.Contact.Enabled())

	t.Setenv("SMTP_USER", "me@example.com")
	t.Setenv("SMTP_PASS", "app-password")
	t.Setenv("SMTP_PORT", "2525")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.True(t, cfg.Contact.Enabled())
	assert.Equal(t, 2525, cfg.Contact.Port)
	assert.Equal(t, "smtp.gmail.com", cfg.Contact.Host)
	assert.Equal(t, "me@example.com", cfg.Contact.Recipient())

	t.Setenv("TO_EMAIL", "inbox@example.com")
	cfg, err = Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, "inbox@example.com", cfg.Contact.Recipient())
}

func TestPath(t *testing.T) {
	t.Setenv("PORTFOLIO_CONFIG", "")
	assert.Equal(t, DefaultPath, Path())
	t.Setenv("PORTFOLIO_CONFIG", "/etc/portfolio.yaml")
	assert.Equal(t, "/etc/portfolio.yaml", Path())
}
