package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleConfig = `
[server]
http_port = 9090

[database]
host = "db"
port = 5433
user = "groomer"
password = "secret"
dbname = "petshop"

[logs]
level = "debug"

[metrics]
enabled = false

[notifications]
spreadsheet_url = "https://script.google.com/macros/s/abc/exec"
webhook_url = "https://n8n.example.com/webhook/booking"
timeout = 5

[shop]
timezone = "UTC"
capacity = 3
`

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoad(t *testing.T) {
	cfg, err := Load(writeConfig(t, sampleConfig))
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.HTTPPort)
	assert.Equal(t, 10, cfg.Server.ReadTimeout, "defaults are kept for missing keys")
	assert.Equal(t, "host=db port=5433 user=groomer password=secret dbname=petshop sslmode=disable", cfg.Database.DSN())
	assert.Equal(t, "debug", cfg.Logs.Level)
	assert.False(t, cfg.Metrics.Enabled)
	assert.Equal(t, 5, cfg.Notifications.Timeout)
	assert.Equal(t, "https://n8n.example.com/webhook/booking", cfg.Notifications.WebhookURL)
	assert.Equal(t, 3, cfg.Shop.Capacity)
	assert.Equal(t, 3, cfg.Shop.SubmittedDisplayDelay)
}

func TestLoad_EnvOverride(t *testing.T) {
	path := writeConfig(t, sampleConfig)
	t.Setenv(ConfigPathEnv, path)

	cfg, err := Load("does-not-exist.toml")
	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.HTTPPort)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(c *Config)
	}{
		{"bad port", func(c *Config) { c.Server.HTTPPort = 0 }},
		{"no db host", func(c *Config) { c.Database.Host = "" }},
		{"metrics without path", func(c *Config) { c.Metrics.Path = "" }},
		{"zero notification timeout", func(c *Config) { c.Notifications.Timeout = 0 }},
		{"negative capacity", func(c *Config) { c.Shop.Capacity = -1 }},
		{"zero session ttl", func(c *Config) { c.Shop.SessionTTL = 0 }},
		{"unknown timezone", func(c *Config) { c.Shop.Timezone = "Mars/Olympus" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			assert.ErrorIs(t, cfg.Validate(), ErrInvalidConfig)
		})
	}

	assert.NoError(t, Default().Validate())
}
