package translateplus

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func newTestServer(t *testing.T, handler http.HandlerFunc) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return server
}

func newTestClient(t *testing.T, serverURL string, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{
		WithBaseURL(serverURL),
		WithRetryBaseDelay(time.Millisecond),
	}, opts...)
	client, err := New("test-key", opts...)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client
}

func TestNew_EmptyAPIKey(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Fatal("expected error for empty API key")
	}

	var validationErr *ValidationError
	if !errors.As(err, &validationErr) {
		t.Errorf("expected ValidationError, got %T", err)
	}
	if !errors.Is(err, ErrValidation) {
		t.Error("errors.Is(err, ErrValidation) = false, want true")
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if client.BaseURL() != DefaultBaseURL {
		t.Errorf("BaseURL() = %s, want %s", client.BaseURL(), DefaultBaseURL)
	}
	if client.MaxConcurrent() != DefaultMaxConcurrent {
		t.Errorf("MaxConcurrent() = %d, want %d", client.MaxConcurrent(), DefaultMaxConcurrent)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com"),
		WithMaxConcurrent(10),
		WithTimeout(5*time.Second),
		WithMaxRetries(1),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	defer client.Close()

	if client.BaseURL() != "https://example.com" {
		t.Errorf("BaseURL() = %s, want https://example.com", client.BaseURL())
	}
	if client.MaxConcurrent() != 10 {
		t.Errorf("MaxConcurrent() = %d, want 10", client.MaxConcurrent())
	}
}

func TestClose_Idempotent(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if err := client.Close(); err != nil {
		t.Errorf("first Close() error = %v", err)
	}
	if err := client.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}

func TestClosedClientRejectsCalls(t *testing.T) {
	var calls int
	server := newTestServer(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.Write([]byte(`{}`))
	})

	client, err := New("test-key", WithBaseURL(server.URL))
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	client.Close()

	ctx := context.Background()

	if _, err := client.Translate(ctx, "Hello", "en", "fr"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("Translate() error = %v, want ErrClientClosed", err)
	}
	if _, err := client.SupportedLanguages(ctx); !errors.Is(err, ErrClientClosed) {
		t.Errorf("SupportedLanguages() error = %v, want ErrClientClosed", err)
	}
	if _, err := client.TranslateConcurrent(ctx, []string{"a"}, "en", "fr"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("TranslateConcurrent() error = %v, want ErrClientClosed", err)
	}
	if err := client.DeleteI18nJob(ctx, "1"); !errors.Is(err, ErrClientClosed) {
		t.Errorf("DeleteI18nJob() error = %v, want ErrClientClosed", err)
	}

	if calls != 0 {
		t.Errorf("network calls after Close = %d, want 0", calls)
	}
}
