package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"
)

// Defaults for client construction.
const (
	DefaultBaseURL       = "https://api.translateplus.io"
	DefaultTimeout       = 30 * time.Second
	DefaultMaxConcurrent = 5
)

// Client is the low-level HTTP API client. It owns the shared transport,
// the retry policy and the concurrency gate; all requests issued by one
// Client share them.
type Client struct {
	baseURL       string
	apiKey        string
	userAgent     string
	httpClient    *http.Client
	retry         *RetryConfig
	maxConcurrent int
	permits       chan struct{}
	limiter       *rate.Limiter
	logger        zerolog.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = url
	}
}

// WithTimeout sets the per-attempt request timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithMaxRetries sets the number of retries after the initial attempt.
func WithMaxRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryBaseDelay sets the initial backoff delay.
func WithRetryBaseDelay(delay time.Duration) Option {
	return func(c *Client) {
		c.retry.BaseDelay = delay
	}
}

// WithMaxConcurrent sets the maximum number of in-flight requests.
func WithMaxConcurrent(n int) Option {
	return func(c *Client) {
		if n > 0 {
			c.maxConcurrent = n
		}
	}
}

// WithRateLimiter sets an optional client-side request rate limiter,
// applied before each network attempt.
func WithRateLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}

// WithLogger sets the logger used for retry and classification events.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithUserAgent sets the User-Agent header value.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		c.userAgent = ua
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL:   DefaultBaseURL,
		apiKey:    apiKey,
		userAgent: "translateplus-go",
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry:         DefaultRetryConfig(),
		maxConcurrent: DefaultMaxConcurrent,
		logger:        zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.permits = make(chan struct{}, c.maxConcurrent)

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// MaxConcurrent returns the configured in-flight request bound.
func (c *Client) MaxConcurrent() int {
	return c.maxConcurrent
}

// Close releases the transport's pooled connections. The client must not
// be used after Close.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// acquire takes a concurrency permit, blocking until one is free or the
// context is cancelled.
func (c *Client) acquire(ctx context.Context) error {
	select {
	case c.permits <- struct{}{}:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (c *Client) release() {
	<-c.permits
}

// request describes a single outbound API call. The payload is
// materialized to bytes once so retries resend the full body.
type request struct {
	method      string
	path        string
	query       url.Values
	contentType string
	payload     []byte
}

// dispatch sends the request with retry, backoff and error classification,
// returning the raw response body. When result is non-nil the body is also
// decoded into it as JSON.
//
// The concurrency permit is held only for the network attempt itself and
// released before any backoff sleep, so a backlogged retry never
// monopolizes the concurrency budget.
func (c *Client) dispatch(ctx context.Context, req *request, result interface{}) ([]byte, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	attempts := c.retry.MaxRetries + 1
	var lastErr error

	for attempt := 0; attempt < attempts; attempt++ {
		status, header, body, err := c.attempt(ctx, req.method, u, req.contentType, req.payload)
		if err != nil {
			lastErr = err
			c.logger.Debug().Err(err).Str("url", u).Int("attempt", attempt+1).
				Msg("transport failure")
			if attempt < c.retry.MaxRetries {
				if werr := c.retry.Wait(ctx, c.retry.Delay(attempt)); werr != nil {
					return nil, &TransportError{Err: werr, URL: u, Attempts: attempt + 1}
				}
				continue
			}
			return nil, &TransportError{Err: lastErr, URL: u, Attempts: attempts}
		}

		if status == http.StatusTooManyRequests && attempt < c.retry.MaxRetries {
			delay := c.retry.RetryAfter(header, attempt)
			c.logger.Debug().Str("url", u).Int("attempt", attempt+1).Dur("delay", delay).
				Msg("rate limited, backing off")
			if werr := c.retry.Wait(ctx, delay); werr != nil {
				return nil, &TransportError{Err: werr, URL: u, Attempts: attempt + 1}
			}
			continue
		}

		if status >= 400 {
			apiErr := newAPIError(status, body)
			c.logger.Debug().Str("url", u).Int("status", status).Str("kind", string(apiErr.Kind)).
				Msg("request failed")
			return nil, apiErr
		}

		if result != nil {
			if err := json.Unmarshal(body, result); err != nil {
				return nil, fmt.Errorf("decode response: %w", err)
			}
		}
		return body, nil
	}

	return nil, &TransportError{Err: lastErr, URL: u, Attempts: attempts}
}

// attempt issues one HTTP request under a concurrency permit and returns
// the status, headers and fully-read body. A non-nil error indicates a
// transport-level failure.
func (c *Client) attempt(ctx context.Context, method, url, contentType string, payload []byte) (int, http.Header, []byte, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return 0, nil, nil, err
		}
	}

	if err := c.acquire(ctx); err != nil {
		return 0, nil, nil, err
	}
	defer c.release()

	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return 0, nil, nil, err
	}

	req.Header.Set("X-API-KEY", c.apiKey)
	req.Header.Set("User-Agent", c.userAgent)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, nil, err
	}

	return resp.StatusCode, resp.Header, body, nil
}

// DoJSON sends a request with an optional JSON body and decodes the JSON
// response into result.
func (c *Client) DoJSON(ctx context.Context, method, path string, body, result interface{}) error {
	req := &request{method: method, path: path}
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		req.payload = payload
		req.contentType = "application/json"
	}
	_, err := c.dispatch(ctx, req, result)
	return err
}

// DoQuery sends a body-less request with query parameters and decodes the
// JSON response into result.
func (c *Client) DoQuery(ctx context.Context, method, path string, query url.Values, result interface{}) error {
	_, err := c.dispatch(ctx, &request{method: method, path: path, query: query}, result)
	return err
}

// MultipartFile describes a file attachment for multipart uploads.
type MultipartFile struct {
	Field   string
	Name    string
	Content []byte
}

// DoMultipart sends a multipart/form-data request. The content type,
// including the boundary, comes from the multipart writer.
func (c *Client) DoMultipart(ctx context.Context, method, path string, fields map[string]string, file *MultipartFile, result interface{}) error {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	for field, value := range fields {
		if err := w.WriteField(field, value); err != nil {
			return fmt.Errorf("write form field %q: %w", field, err)
		}
	}

	fw, err := w.CreateFormFile(file.Field, file.Name)
	if err != nil {
		return fmt.Errorf("create form file: %w", err)
	}
	if _, err := fw.Write(file.Content); err != nil {
		return fmt.Errorf("write form file: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("finalize multipart body: %w", err)
	}

	req := &request{
		method:      method,
		path:        path,
		contentType: w.FormDataContentType(),
		payload:     buf.Bytes(),
	}
	_, err = c.dispatch(ctx, req, result)
	return err
}

// DoRaw sends a body-less request and returns the response body verbatim,
// skipping JSON decoding. Error responses are classified the same way as
// for JSON requests.
func (c *Client) DoRaw(ctx context.Context, method, path string) ([]byte, error) {
	return c.dispatch(ctx, &request{method: method, path: path}, nil)
}
