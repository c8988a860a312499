package config

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(WithDir(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, musicbrainz.DefaultBaseURL, cfg.BaseURL)
	assert.Equal(t, musicbrainz.DefaultUserAgent, cfg.UserAgent)
	assert.Equal(t, time.Duration(0), cfg.Timeout)
	assert.Equal(t, time.Second, cfg.Rate.Interval)
	assert.Equal(t, 1, cfg.Rate.Burst)
	assert.Equal(t, musicbrainz.DefaultMaxRetries, cfg.MaxRetries)
	assert.Equal(t, "blocking", cfg.Mode)
	assert.False(t, cfg.LegacySerialization)
	assert.Equal(t, "disabled", cfg.LogLevel)
}

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	yaml := `base_url: http://localhost:5000/ws/2
user_agent: tagger/2.1 ( tagger@example.com )
timeout: 30s
rate:
  interval: 500ms
  burst: 2
max_retries: 3
mode: async
legacy_serialization: true
log_level: debug
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000/ws/2", cfg.BaseURL)
	assert.Equal(t, "tagger/2.1 ( tagger@example.com )", cfg.UserAgent)
	assert.Equal(t, 30*time.Second, cfg.Timeout)
	assert.Equal(t, 500*time.Millisecond, cfg.Rate.Interval)
	assert.Equal(t, 2, cfg.Rate.Burst)
	assert.Equal(t, 3, cfg.MaxRetries)
	assert.Equal(t, "async", cfg.Mode)
	assert.True(t, cfg.LegacySerialization)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Environment(t *testing.T) {
	t.Setenv("MUSICBRAINZ_RATE_INTERVAL", "250ms")
	t.Setenv("MUSICBRAINZ_MODE", "async")
	t.Setenv("MUSICBRAINZ_MAX_RETRIES", "2")
	t.Setenv("MUSICBRAINZ_USER_AGENT", "env-agent/1.0")

	cfg, err := Load(WithDir(t.TempDir()))
	require.NoError(t, err)

	assert.Equal(t, 250*time.Millisecond, cfg.Rate.Interval)
	assert.Equal(t, "async", cfg.Mode)
	assert.Equal(t, 2, cfg.MaxRetries)
	assert.Equal(t, "env-agent/1.0", cfg.UserAgent)
}

func TestLoad_InvalidFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("rate: [unclosed\n"), 0644))

	_, err := Load(WithDir(dir))
	assert.Error(t, err)
}

func TestLoad_UserConfigDir(t *testing.T) {
	base := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", base)
	t.Setenv("HOME", base)
	if runtime.GOOS != "linux" {
		t.Skip("XDG_CONFIG_HOME only applies on Linux")
	}
	dir := filepath.Join(base, "musicbrainz")
	require.NoError(t, os.MkdirAll(dir, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("mode: async\n"), 0644))

	assert.Equal(t, dir, defaultDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "async", cfg.Mode)

	cfg.Mode = "blocking"
	require.NoError(t, cfg.Save())
	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "mode: blocking")
}

func TestSave_CreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "musicbrainz")
	cfg := &Config{Mode: "blocking", dir: dir}
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))
}

func TestSave_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	cfg, err := Load(WithDir(dir))
	require.NoError(t, err)

	cfg.UserAgent = "saved/1.0"
	cfg.Rate.Interval = 2 * time.Second
	cfg.Mode = "async"
	cfg.MaxRetries = 1
	require.NoError(t, cfg.Save())
	assert.FileExists(t, filepath.Join(dir, "config.yaml"))

	loaded, err := Load(WithDir(dir))
	require.NoError(t, err)
	assert.Equal(t, "saved/1.0", loaded.UserAgent)
	assert.Equal(t, 2*time.Second, loaded.Rate.Interval)
	assert.Equal(t, "async", loaded.Mode)
	assert.Equal(t, 1, loaded.MaxRetries)
}

func TestClientConfig(t *testing.T) {
	cfg, err := Load(WithDir(t.TempDir()))
	require.NoError(t, err)
	cfg.Mode = "async"
	cfg.LegacySerialization = true

	clientCfg, err := cfg.ClientConfig(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, musicbrainz.ModeAsync, clientCfg.Mode)
	assert.Equal(t, time.Second, clientCfg.RateInterval)
	assert.Equal(t, musicbrainz.DefaultMaxRetries, clientCfg.MaxRetries)
	assert.True(t, clientCfg.LegacySerialization)
	assert.Nil(t, clientCfg.Logger)

	client, err := musicbrainz.NewClient(clientCfg)
	require.NoError(t, err)
	assert.Equal(t, musicbrainz.ModeAsync, client.Mode())
}

func TestClientConfig_Errors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		check  func(t *testing.T, err error)
	}{
		{
			name:   "unknown mode",
			modify: func(c *Config) { c.Mode = "threads" },
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "threads")
			},
		},
		{
			name:   "unknown log level",
			modify: func(c *Config) { c.LogLevel = "chatty" },
			check: func(t *testing.T, err error) {
				assert.Contains(t, err.Error(), "chatty")
			},
		},
		{
			name:   "bad base url",
			modify: func(c *Config) { c.BaseURL = "ftp://example.com" },
			check: func(t *testing.T, err error) {
				assert.True(t, errors.Is(err, musicbrainz.ErrConfiguration))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(WithDir(t.TempDir()))
			require.NoError(t, err)
			tt.modify(cfg)

			_, err = cfg.ClientConfig(&bytes.Buffer{})
			require.Error(t, err)
			tt.check(t, err)
		})
	}
}

func TestClientConfig_ZeroRetries(t *testing.T) {
	cfg := &Config{Mode: "blocking", MaxRetries: 0}
	clientCfg, err := cfg.ClientConfig(&bytes.Buffer{})
	require.NoError(t, err)
	assert.Equal(t, -1, clientCfg.MaxRetries)
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	cfg := &Config{LogLevel: "info"}

	logger, err := cfg.Logger(&buf)
	require.NoError(t, err)
	assert.Equal(t, zerolog.InfoLevel, logger.GetLevel())

	logger.Debug().Msg("hidden")
	logger.Info().Str("component", "musicbrainz").Msg("visible")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"message":"visible"`)

	clientCfg, err := (&Config{Mode: "blocking", LogLevel: "debug"}).ClientConfig(&buf)
	require.NoError(t, err)
	require.NotNil(t, clientCfg.Logger)
	assert.Equal(t, zerolog.DebugLevel, clientCfg.Logger.GetLevel())
}
