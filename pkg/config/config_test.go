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
	t.Setenv("SCHOOL_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ListenHost)
	assert.Equal(t, 8080, cfg.ListenPort)
	assert.Equal(t, time.Hour, cfg.TokenTTL())
	assert.Equal(t, 1000, cfg.APIListLimitMax)
	assert.Equal(t, "default", cfg.Source("listen_port"))
}

func TestLoadFromFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCHOOL_CONFIG_PATH", dir)

	content := "listen_port: 9090\ntoken_ttl_minutes: 15\ntrusted_proxies:\n  - 10.0.0.0/8\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte(content), 0o644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.ListenPort)
	assert.Equal(t, "file", cfg.Source("listen_port"))
	assert.Equal(t, 15*time.Minute, cfg.TokenTTL())
	// Untouched values keep their defaults.
	assert.Equal(t, "0.0.0.0", cfg.ListenHost)
	assert.Equal(t, "default", cfg.Source("listen_host"))
	assert.True(t, cfg.IsTrustedProxy("10.1.2.3"))
	assert.False(t, cfg.IsTrustedProxy("192.168.1.1"))
}

func TestEnvironmentOverridesFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCHOOL_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("listen_port: 9090\n"), 0o644))

	t.Setenv("SCHOOL_LISTEN_PORT", "7070")
	t.Setenv("SCHOOL_TRUSTED_PROXIES", "10.0.0.0/8, 172.16.0.0/12")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 7070, cfg.ListenPort)
	assert.Equal(t, "environment", cfg.Source("listen_port"))
	assert.Equal(t, []string{"10.0.0.0/8", "172.16.0.0/12"}, cfg.TrustedProxies)
}

func TestLoadRejectsUnparseableFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("SCHOOL_CONFIG_PATH", dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ConfigFileName), []byte("listen_port: [nope\n"), 0o644))

	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*SchoolConfig)
		wantErr bool
	}{
		{"defaults are valid", func(c *SchoolConfig) {}, false},
		{"port out of range", func(c *SchoolConfig) { c.ListenPort = 70000 }, true},
		{"zero token ttl", func(c *SchoolConfig) { c.TokenTTLMinutes = 0 }, true},
		{"negative list limit", func(c *SchoolConfig) { c.APIListLimitMax = -1 }, true},
		{"bad trusted proxy", func(c *SchoolConfig) { c.TrustedProxies = []string{"not-a-cidr"} }, true},
		{"plain IP proxy is accepted", func(c *SchoolConfig) { c.TrustedProxies = []string{"10.0.0.1"} }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := newDefault()
			tc.mutate(cfg)
			err := cfg.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatText(t *testing.T) {
	t.Setenv("SCHOOL_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	out := cfg.FormatText()
	assert.Contains(t, out, "listen_port")
	assert.Contains(t, out, "8080")
	assert.Contains(t, out, "default")
}
