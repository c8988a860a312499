package musicbrainz

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/rs/zerolog"

	"github.com/jfmyers9/musicbrainz/pkg/musicbrainz/entity"
)

const (
	// Version is the library version reported in the default User-Agent.
	Version = "0.1.0"

	// DefaultBaseURL is the MusicBrainz web service root.
	DefaultBaseURL = "https://musicbrainz.org/ws/2"

	// DefaultRateInterval is the time between permits. MusicBrainz allows
	// one request per second per client.
	DefaultRateInterval = time.Second

	// DefaultMaxRetries caps re-dispatches after throttling responses.
	DefaultMaxRetries = 5
)

// DefaultUserAgent identifies this library when the caller does not.
// MusicBrainz asks every application to send a meaningful User-Agent, so
// callers should set their own.
var DefaultUserAgent = "musicbrainz-go/" + Version + " ( https://github.com/jfmyers9/musicbrainz )"

// Mode selects how requests are executed.
type Mode int

const (
	// ModeBlocking runs every request on the caller's goroutine, including
	// the wait for a rate-limit permit.
	ModeBlocking Mode = iota
	// ModeAsync runs requests on their own goroutine. Client.Go returns at
	// once and the caller collects the result from the returned Call.
	ModeAsync
)

func (m Mode) String() string {
	switch m {
	case ModeBlocking:
		return "blocking"
	case ModeAsync:
		return "async"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "blocking" or "async" to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "blocking", "sync":
		return ModeBlocking, nil
	case "async":
		return ModeAsync, nil
	default:
		return 0, fmt.Errorf("musicbrainz: unknown mode %q", s)
	}
}

// Config holds client configuration.
type Config struct {
	BaseURL             string          // Optional: API root (defaults to DefaultBaseURL, override for mock servers)
	UserAgent           string          // Optional: User-Agent header (defaults to DefaultUserAgent)
	HTTPClient          *http.Client    // Optional: HTTP client (defaults to a new client using Timeout)
	Timeout             time.Duration   // Optional: per-request timeout passed to the HTTP client
	RateInterval        time.Duration   // Optional: time between permits (defaults to 1s, negative disables)
	RateBurst           int             // Optional: permits available at once (defaults to 1)
	MaxRetries          int             // Optional: retries after throttling (defaults to 5, negative disables)
	Mode                Mode            // Optional: ModeBlocking (default) or ModeAsync
	LegacySerialization bool            // Optional: accept and emit snake_case keys from older schemas
	Logger              *zerolog.Logger // Optional: debug logging (defaults to no logging)
}

// withDefaults fills zero values.
func (cfg Config) withDefaults() Config {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	if cfg.UserAgent == "" {
		cfg.UserAgent = DefaultUserAgent
	}
	if cfg.RateInterval == 0 {
		cfg.RateInterval = DefaultRateInterval
	}
	if cfg.RateBurst == 0 {
		cfg.RateBurst = 1
	}
	if cfg.MaxRetries == 0 {
		cfg.MaxRetries = DefaultMaxRetries
	}
	if cfg.MaxRetries < 0 {
		cfg.MaxRetries = 0
	}
	return cfg
}

// Validate checks the configuration after defaults are applied.
func (cfg Config) Validate() error {
	cfg = cfg.withDefaults()
	err := validation.ValidateStruct(&cfg,
		validation.Field(&cfg.BaseURL, validation.Required, validation.By(isHTTPURL)),
		validation.Field(&cfg.RateBurst, validation.Min(1)),
		validation.Field(&cfg.Timeout, validation.Min(time.Duration(0))),
		validation.Field(&cfg.Mode, validation.In(ModeBlocking, ModeAsync)),
	)
	if err != nil {
		return &Error{Kind: ErrKindConfiguration, Message: "invalid client configuration", Err: err}
	}
	return nil
}

func isHTTPURL(value interface{}) error {
	s, _ := value.(string)
	u, err := url.Parse(s)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return errors.New("must be an http or https URL")
	}
	if u.Host == "" {
		return errors.New("must include a host")
	}
	return nil
}

// Client is the main entry point for MusicBrainz API operations.
//
// A Client owns its rate limiter: two clients never share a budget. It is
// safe for concurrent use.
type Client struct {
	baseURL    string
	userAgent  atomic.Pointer[string]
	httpClient *http.Client
	limiter    *rateLimiter
	clock      clock
	maxRetries int
	interval   time.Duration
	mode       Mode
	dispatcher dispatcher
	codec      entity.Codec
	logger     zerolog.Logger
	stats      stats
}

// NewClient creates a new MusicBrainz API client.
//
// Returns a Configuration error if the configuration is invalid.
func NewClient(cfg Config) (*Client, error) {
	return newClient(cfg, realClock{})
}

func newClient(cfg Config, clk clock) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg = cfg.withDefaults()

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	} else if cfg.Timeout > 0 {
		hc := *httpClient
		hc.Timeout = cfg.Timeout
		httpClient = &hc
	}

	logger := zerolog.Nop()
	if cfg.Logger != nil {
		logger = *cfg.Logger
	}

	c := &Client{
		baseURL:    cfg.BaseURL,
		httpClient: httpClient,
		limiter:    newRateLimiter(cfg.RateInterval, cfg.RateBurst, clk),
		clock:      clk,
		maxRetries: cfg.MaxRetries,
		interval:   cfg.RateInterval,
		mode:       cfg.Mode,
		codec:      entity.Codec{Legacy: cfg.LegacySerialization},
		logger:     logger.With().Str("component", "musicbrainz").Logger(),
	}
	c.userAgent.Store(&cfg.UserAgent)

	switch cfg.Mode {
	case ModeAsync:
		c.dispatcher = asyncDispatcher{}
	default:
		c.dispatcher = blockingDispatcher{}
	}

	return c, nil
}

// SetUserAgent replaces the User-Agent sent with subsequent requests.
func (c *Client) SetUserAgent(ua string) {
	if ua == "" {
		ua = DefaultUserAgent
	}
	c.userAgent.Store(&ua)
}

// UserAgent returns the User-Agent sent with requests.
func (c *Client) UserAgent() string {
	return *c.userAgent.Load()
}

// Mode returns the execution mode chosen at construction.
func (c *Client) Mode() Mode {
	return c.mode
}

// Codec returns the JSON codec used to decode responses.
func (c *Client) Codec() entity.Codec {
	return c.codec
}

// Stats is a snapshot of request counters.
type Stats struct {
	Requests  uint64 // HTTP requests dispatched, retries included
	Retries   uint64 // Re-dispatches after a throttling response
	Throttled uint64 // Throttling responses received
}

type stats struct {
	requests  atomic.Uint64
	retries   atomic.Uint64
	throttled atomic.Uint64
}

// Stats returns a snapshot of the client's request counters.
func (c *Client) Stats() Stats {
	return Stats{
		Requests:  c.stats.requests.Load(),
		Retries:   c.stats.retries.Load(),
		Throttled: c.stats.throttled.Load(),
	}
}
