package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	chdir(t, t.TempDir())

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), *cfg)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("TABLELOAD_ENDPOINT", "tables.example.com:443")
	t.Setenv("TABLELOAD_INSECURE", "false")
	t.Setenv("TABLELOAD_API_KEY", "secret")
	t.Setenv("TABLELOAD_WORKERS", "8")
	t.Setenv("TABLELOAD_TIMEOUT", "5s")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "tables.example.com:443", cfg.Endpoint)
	assert.False(t, cfg.Insecure)
	assert.Equal(t, "secret", cfg.APIKey)
	assert.Equal(t, 8, cfg.Workers)
	assert.Equal(t, 5*time.Second, cfg.Timeout)
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "custom.yaml")
	content := "endpoint: files.internal:9000\nclient_id: loader-1\nworkers: 2\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "files.internal:9000", cfg.Endpoint)
	assert.Equal(t, "loader-1", cfg.ClientID)
	assert.Equal(t, 2, cfg.Workers)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
}

func TestLoadMissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"empty endpoint", func(c *Config) { c.Endpoint = " " }},
		{"zero workers", func(c *Config) { c.Workers = 0 }},
		{"negative timeout", func(c *Config) { c.Timeout = -time.Second }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
	assert.NoError(t, DefaultConfig().Validate())
}
