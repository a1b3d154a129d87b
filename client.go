package translateplus

import (
	"sync"

	"github.com/translateplus/client-go/internal/api"
)

// Client is the main TranslatePlus client. It owns a shared transport and
// concurrency gate; one Client instance is safe for concurrent use and its
// resources are released by Close.
type Client struct {
	api *api.Client

	mu     sync.RWMutex
	closed bool
}

// New creates a new TranslatePlus client with the given API key.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, &ValidationError{Message: "API key is required"}
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithTimeout(cfg.timeout),
		api.WithMaxRetries(cfg.maxRetries),
		api.WithMaxConcurrent(cfg.maxConcurrent),
		api.WithRetryBaseDelay(cfg.retryBaseDelay),
		api.WithLogger(cfg.logger),
		api.WithUserAgent(cfg.userAgent),
	}
	if cfg.limiter != nil {
		apiOpts = append(apiOpts, api.WithRateLimiter(cfg.limiter))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, &ValidationError{Message: err.Error()}
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return &Client{api: apiClient}, nil
}

// checkClosed returns ErrClientClosed if the client has been closed.
func (c *Client) checkClosed() error {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.closed {
		return ErrClientClosed
	}
	return nil
}

// BaseURL returns the configured API base URL.
func (c *Client) BaseURL() string {
	return c.api.BaseURL()
}

// MaxConcurrent returns the configured in-flight request bound.
func (c *Client) MaxConcurrent() int {
	return c.api.MaxConcurrent()
}

// Close releases the transport resources. The client is unusable for new
// requests afterwards; calling Close more than once is safe.
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return nil
	}
	c.closed = true

	c.api.Close()
	return nil
}
