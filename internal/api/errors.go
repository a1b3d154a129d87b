package api

import (
	"encoding/json"
	"fmt"
)

// Kind classifies an API failure.
type Kind string

const (
	// KindAuthentication covers 401 and 403 responses. Never retried.
	KindAuthentication Kind = "authentication"
	// KindInsufficientCredits covers 402 responses. Never retried.
	KindInsufficientCredits Kind = "insufficient_credits"
	// KindRateLimit covers 429 responses after the retry budget is exhausted.
	KindRateLimit Kind = "rate_limit"
	// KindAPI covers all other >=400 responses. Not retried.
	KindAPI Kind = "api"
	// KindTransport covers network-level failures after retry exhaustion.
	KindTransport Kind = "transport"
)

// classify maps an HTTP status code to a failure kind.
func classify(statusCode int) Kind {
	switch statusCode {
	case 401, 403:
		return KindAuthentication
	case 402:
		return KindInsufficientCredits
	case 429:
		return KindRateLimit
	default:
		return KindAPI
	}
}

// APIError represents an HTTP error response from the TranslatePlus API.
type APIError struct {
	Kind       Kind
	StatusCode int
	Message    string
	Body       []byte // raw error payload for diagnostics
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("API error %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error %d", e.StatusCode)
}

// newAPIError builds an APIError from a status code and raw response body.
// The server reports errors as {"detail": "..."}; anything else is kept
// verbatim in Body with a generic message.
func newAPIError(statusCode int, body []byte) *APIError {
	e := &APIError{
		Kind:       classify(statusCode),
		StatusCode: statusCode,
		Body:       body,
	}
	if len(body) > 0 {
		var detail struct {
			Detail string `json:"detail"`
		}
		if err := json.Unmarshal(body, &detail); err == nil && detail.Detail != "" {
			e.Message = detail.Detail
		}
	}
	return e
}

// TransportError represents a network-level failure (connection refusal,
// DNS, per-attempt timeout) that survived the retry budget.
type TransportError struct {
	Err      error
	URL      string
	Attempts int
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("request failed after %d attempts: %v", e.Attempts, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
