package translateplus

import (
	"fmt"
	"net/http"
	"time"

	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Defaults applied at client construction.
const (
	DefaultBaseURL       = "https://api.translateplus.io"
	DefaultTimeout       = 30 * time.Second
	DefaultMaxRetries    = 3
	DefaultMaxConcurrent = 5
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL        string
	timeout        time.Duration
	maxRetries     int
	maxConcurrent  int
	retryBaseDelay time.Duration
	httpClient     *http.Client
	logger         zerolog.Logger
	limiter        *rate.Limiter
	userAgent      string
}

func defaultConfig() *clientConfig {
	return &clientConfig{
		baseURL:        DefaultBaseURL,
		timeout:        DefaultTimeout,
		maxRetries:     DefaultMaxRetries,
		maxConcurrent:  DefaultMaxConcurrent,
		retryBaseDelay: time.Second,
		logger:         zerolog.Nop(),
		userAgent:      "translateplus-go/" + Version,
	}
}

// Option configures the client.
type Option func(*clientConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithMaxRetries sets the number of retries after the initial attempt.
func WithMaxRetries(count int) Option {
	return func(c *clientConfig) {
		if count >= 0 {
			c.maxRetries = count
		}
	}
}

// WithMaxConcurrent bounds the number of simultaneous in-flight requests
// issued by this client.
func WithMaxConcurrent(n int) Option {
	return func(c *clientConfig) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// WithRetryBaseDelay sets the initial backoff delay; subsequent delays
// double each attempt.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *clientConfig) {
		if delay > 0 {
			c.retryBaseDelay = delay
		}
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithLogger sets the logger used for retry and classification events.
// The client is silent by default.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRateLimit applies a client-side request rate limit of rps requests
// per second with the given burst, ahead of the concurrency gate.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *clientConfig) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), burst)
	}
}

// WithUserAgent overrides the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *clientConfig) {
		c.userAgent = ua
	}
}

// envSettings mirrors the TRANSLATEPLUS_* environment variables.
type envSettings struct {
	APIKey        string        `envconfig:"API_KEY"`
	BaseURL       string        `envconfig:"BASE_URL"`
	Timeout       time.Duration `envconfig:"TIMEOUT"`
	MaxRetries    int           `envconfig:"MAX_RETRIES" default:"-1"`
	MaxConcurrent int           `envconfig:"MAX_CONCURRENT"`
}

// NewFromEnv constructs a client from TRANSLATEPLUS_* environment
// variables (TRANSLATEPLUS_API_KEY, TRANSLATEPLUS_BASE_URL,
// TRANSLATEPLUS_TIMEOUT, TRANSLATEPLUS_MAX_RETRIES,
// TRANSLATEPLUS_MAX_CONCURRENT). Explicit options take precedence over the
// environment.
func NewFromEnv(opts ...Option) (*Client, error) {
	var env envSettings
	if err := envconfig.Process("translateplus", &env); err != nil {
		return nil, fmt.Errorf("read environment: %w", err)
	}

	envOpts := []Option{}
	if env.BaseURL != "" {
		envOpts = append(envOpts, WithBaseURL(env.BaseURL))
	}
	if env.Timeout > 0 {
		envOpts = append(envOpts, WithTimeout(env.Timeout))
	}
	if env.MaxRetries >= 0 {
		envOpts = append(envOpts, WithMaxRetries(env.MaxRetries))
	}
	if env.MaxConcurrent > 0 {
		envOpts = append(envOpts, WithMaxConcurrent(env.MaxConcurrent))
	}

	return New(env.APIKey, append(envOpts, opts...)...)
}
