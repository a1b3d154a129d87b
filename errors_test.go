package translateplus

import (
	"errors"
	"strings"
	"testing"

	"github.com/translateplus/client-go/internal/api"
)

// Compile-time checks that all SDK error types implement the marker interface.
var (
	_ TranslatePlusError = (*APIError)(nil)
	_ TranslatePlusError = (*TransportError)(nil)
	_ TranslatePlusError = (*ValidationError)(nil)
)

func TestAPIError_SentinelMatching(t *testing.T) {
	tests := []struct {
		name     string
		err      *APIError
		sentinel error
	}{
		{"authentication", &APIError{Kind: KindAuthentication, StatusCode: 401}, ErrAuthentication},
		{"insufficient credits", &APIError{Kind: KindInsufficientCredits, StatusCode: 402}, ErrInsufficientCredits},
		{"rate limited", &APIError{Kind: KindRateLimit, StatusCode: 429}, ErrRateLimited},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

func TestAPIError_GenericDoesNotMatchSentinels(t *testing.T) {
	err := &APIError{Kind: KindAPI, StatusCode: 400}

	for _, sentinel := range []error{ErrAuthentication, ErrInsufficientCredits, ErrRateLimited, ErrValidation} {
		if errors.Is(err, sentinel) {
			t.Errorf("generic API error matched %v", sentinel)
		}
	}
}

func TestAPIError_Message(t *testing.T) {
	err := &APIError{Kind: KindAPI, StatusCode: 400, Message: "bad input"}
	if got := err.Error(); got != "API error 400: bad input" {
		t.Errorf("Error() = %q", got)
	}

	err = &APIError{Kind: KindAPI, StatusCode: 500}
	if got := err.Error(); got != "API error 500" {
		t.Errorf("Error() = %q", got)
	}
}

func TestValidationError_Matching(t *testing.T) {
	err := &ValidationError{Message: "texts list cannot be empty"}

	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
	if !strings.Contains(err.Error(), "texts list cannot be empty") {
		t.Errorf("Error() = %q, want message included", err.Error())
	}
}

func TestTransportError_UnwrapsUnderlying(t *testing.T) {
	underlying := errors.New("dial tcp: connection refused")
	err := &TransportError{Err: underlying, URL: "https://api.translateplus.io/v2/translate", Attempts: 4}

	if !errors.Is(err, underlying) {
		t.Error("errors.Is() should reach the underlying transport error")
	}
}

func TestWrapError(t *testing.T) {
	apiErr := wrapError(&api.APIError{
		Kind:       api.KindRateLimit,
		StatusCode: 429,
		Message:    "slow down",
		Body:       []byte(`{"detail": "slow down"}`),
	})

	var publicErr *APIError
	if !errors.As(apiErr, &publicErr) {
		t.Fatalf("wrapError() = %T, want *APIError", apiErr)
	}
	if publicErr.StatusCode != 429 || publicErr.Message != "slow down" {
		t.Errorf("wrapped error = %+v", publicErr)
	}
	if !errors.Is(apiErr, ErrRateLimited) {
		t.Error("wrapped error should match ErrRateLimited")
	}

	transportErr := wrapError(&api.TransportError{Err: errors.New("timeout"), Attempts: 2})
	var publicTransport *TransportError
	if !errors.As(transportErr, &publicTransport) {
		t.Fatalf("wrapError() = %T, want *TransportError", transportErr)
	}
	if publicTransport.Attempts != 2 {
		t.Errorf("Attempts = %d, want 2", publicTransport.Attempts)
	}

	if wrapError(nil) != nil {
		t.Error("wrapError(nil) != nil")
	}

	plain := errors.New("something else")
	if wrapError(plain) != plain {
		t.Error("wrapError should pass through unknown errors unchanged")
	}
}
