// Package config loads MusicBrainz client settings from a YAML file and
// the environment.
package config

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/viper"

	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz"
)

// Config holds client configuration as stored on disk
type Config struct {
	// API root
	// Default: "https://musicbrainz.org/ws/2"
	BaseURL string

	// User-Agent sent with every request
	UserAgent string

	// Per-request timeout, 0 for none
	Timeout time.Duration

	// Rate limit settings
	Rate RateConfig

	// Retries after a throttling response
	// Default: 5
	MaxRetries int

	// Execution mode: "blocking" or "async"
	// Default: "blocking"
	Mode string

	// Accept and emit snake_case keys
	LegacySerialization bool

	// Log level: "disabled", "debug", "info", "warn" or "error"
	// Default: "disabled"
	LogLevel string

	dir string
}

// RateConfig holds rate limiter configuration
type RateConfig struct {
	// Time between requests, negative to disable
	// Default: 1s
	Interval time.Duration

	// Requests allowed at once
	// Default: 1
	Burst int
}

// Option customizes Load.
type Option func(*options)

type options struct {
	dir string
}

// WithDir reads and saves config.yaml in dir instead of the user config
// directory.
func WithDir(dir string) Option {
	return func(o *options) {
		o.dir = dir
	}
}

// Load reads configuration from file and environment
func Load(opts ...Option) (*Config, error) {
	o := options{}
	for _, opt := range opts {
		opt(&o)
	}
	if o.dir == "" {
		o.dir = defaultDir()
	}

	v := viper.New()

	// Set config name and paths
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(o.dir)
	v.AddConfigPath(".")

	// Set defaults
	v.SetDefault("base_url", musicbrainz.DefaultBaseURL)
	v.SetDefault("user_agent", musicbrainz.DefaultUserAgent)
	v.SetDefault("timeout", time.Duration(0))
	v.SetDefault("rate.interval", musicbrainz.DefaultRateInterval)
	v.SetDefault("rate.burst", 1)
	v.SetDefault("max_retries", musicbrainz.DefaultMaxRetries)
	v.SetDefault("mode", musicbrainz.ModeBlocking.String())
	v.SetDefault("legacy_serialization", false)
	v.SetDefault("log_level", "disabled")

	// Read config file (optional - don't fail if missing)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
	}

	// Read from environment variables, e.g. MUSICBRAINZ_RATE_INTERVAL
	v.SetEnvPrefix("MUSICBRAINZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Map config to struct
	cfg := &Config{
		BaseURL:   v.GetString("base_url"),
		UserAgent: v.GetString("user_agent"),
		Timeout:   v.GetDuration("timeout"),
		Rate: RateConfig{
			Interval: v.GetDuration("rate.interval"),
			Burst:    v.GetInt("rate.burst"),
		},
		MaxRetries:          v.GetInt("max_retries"),
		Mode:                v.GetString("mode"),
		LegacySerialization: v.GetBool("legacy_serialization"),
		LogLevel:            v.GetString("log_level"),
		dir:                 o.dir,
	}

	return cfg, nil
}

// defaultDir returns the musicbrainz directory under the user config
// directory ($XDG_CONFIG_HOME or ~/.config on Linux), or "." when neither
// is known.
func defaultDir() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return "."
	}
	return filepath.Join(base, "musicbrainz")
}

// Save writes configuration to config.yaml in the directory it was
// loaded from
func (c *Config) Save() error {
	v := viper.New()

	dir := c.dir
	if dir == "" {
		dir = defaultDir()
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config dir: %w", err)
	}
	configFile := filepath.Join(dir, "config.yaml")

	// Set values in viper
	v.Set("base_url", c.BaseURL)
	v.Set("user_agent", c.UserAgent)
	v.Set("timeout", c.Timeout.String())
	v.Set("rate.interval", c.Rate.Interval.String())
	v.Set("rate.burst", c.Rate.Burst)
	v.Set("max_retries", c.MaxRetries)
	v.Set("mode", c.Mode)
	v.Set("legacy_serialization", c.LegacySerialization)
	v.Set("log_level", c.LogLevel)

	// Write to file
	return v.WriteConfigAs(configFile)
}

// ClientConfig converts the stored settings into a musicbrainz.Config.
// Logs, if enabled, go to w.
func (c *Config) ClientConfig(w io.Writer) (musicbrainz.Config, error) {
	mode, err := musicbrainz.ParseMode(c.Mode)
	if err != nil {
		return musicbrainz.Config{}, err
	}

	cfg := musicbrainz.Config{
		BaseURL:             c.BaseURL,
		UserAgent:           c.UserAgent,
		Timeout:             c.Timeout,
		RateInterval:        c.Rate.Interval,
		RateBurst:           c.Rate.Burst,
		MaxRetries:          c.MaxRetries,
		Mode:                mode,
		LegacySerialization: c.LegacySerialization,
	}
	// MaxRetries of 0 in a file means no retries, which the client
	// spells as a negative value.
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = -1
	}

	logger, err := c.Logger(w)
	if err != nil {
		return musicbrainz.Config{}, err
	}
	if logger.GetLevel() != zerolog.Disabled {
		cfg.Logger = &logger
	}
	return cfg, cfg.Validate()
}

// Logger creates a logger at the configured level writing to w. A
// disabled level yields a no-op logger.
func (c *Config) Logger(w io.Writer) (zerolog.Logger, error) {
	// Parse log level
	var level zerolog.Level
	switch strings.ToLower(c.LogLevel) {
	case "", "disabled", "off":
		return zerolog.Nop(), nil
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	default:
		return zerolog.Nop(), fmt.Errorf("unknown log level %q", c.LogLevel)
	}

	// Create logger
	logger := zerolog.New(w).
		Level(level).
		With().
		Timestamp().
		Logger()

	// Use pretty console output if logging to stderr
	if w == os.Stderr {
		logger = logger.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}

	return logger, nil
}

// NewClient loads configuration and builds a client from it, logging to
// stderr.
func NewClient(opts ...Option) (*musicbrainz.Client, error) {
	cfg, err := Load(opts...)
	if err != nil {
		return nil, err
	}
	clientCfg, err := cfg.ClientConfig(os.Stderr)
	if err != nil {
		return nil, err
	}
	return musicbrainz.NewClient(clientCfg)
}
