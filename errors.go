package translateplus

import (
	"errors"
	"fmt"

	"github.com/translateplus/client-go/internal/api"
)

// Kind classifies an API failure.
type Kind = api.Kind

// Failure kinds carried by *APIError.
const (
	KindAuthentication      = api.KindAuthentication
	KindInsufficientCredits = api.KindInsufficientCredits
	KindRateLimit           = api.KindRateLimit
	KindAPI                 = api.KindAPI
	KindTransport           = api.KindTransport
)

// Sentinel errors for errors.Is() checks
var (
	// ErrClientClosed is returned when operations are attempted on a closed client.
	ErrClientClosed = errors.New("client has been closed")

	// ErrAuthentication is returned when the API key is invalid or lacks access (401/403).
	ErrAuthentication = errors.New("authentication failed")

	// ErrInsufficientCredits is returned when the account has no credits left (402).
	ErrInsufficientCredits = errors.New("insufficient credits")

	// ErrRateLimited is returned when the rate limit is still exceeded after retries (429).
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrValidation is returned for malformed caller input, before any network call.
	ErrValidation = errors.New("validation failed")
)

// TranslatePlusError is implemented by all SDK errors.
type TranslatePlusError interface {
	error
	TranslatePlusError() // marker method
}

// APIError represents an HTTP error from the TranslatePlus API. It carries
// the failure kind, the original status code and the raw error payload.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Body       []byte
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// TranslatePlusError implements the TranslatePlusError interface.
func (e *APIError) TranslatePlusError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Kind {
	case KindAuthentication:
		return target == ErrAuthentication
	case KindInsufficientCredits:
		return target == ErrInsufficientCredits
	case KindRateLimit:
		return target == ErrRateLimited
	}
	return false
}

// TransportError represents a network-level failure that survived the
// retry budget.
type TransportError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// TranslatePlusError implements the TranslatePlusError interface.
func (e *TransportError) TranslatePlusError() {}

// ValidationError is raised synchronously for malformed caller input. It
// never involves the network and is never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// Is implements errors.Is for sentinel error matching.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// TranslatePlusError implements the TranslatePlusError interface.
func (e *ValidationError) TranslatePlusError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Kind:       apiErr.Kind,
			StatusCode: apiErr.StatusCode,
			Message:    apiErr.Message,
			Body:       apiErr.Body,
		}
	}

	var transportErr *api.TransportError
	if errors.As(err, &transportErr) {
		return &TransportError{
			Err:      transportErr.Err,
			URL:      transportErr.URL,
			Attempts: transportErr.Attempts,
		}
	}

	return err
}
