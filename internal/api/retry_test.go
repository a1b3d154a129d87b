package api

import (
	"context"
	"net/http"
	"testing"
	"time"
)

func TestRetryConfig_Delay(t *testing.T) {
	r := &RetryConfig{
		MaxRetries: 3,
		BaseDelay:  time.Second,
		MaxDelay:   60 * time.Second,
	}

	tests := []struct {
		attempt int
		want    time.Duration
	}{
		{0, time.Second},
		{1, 2 * time.Second},
		{2, 4 * time.Second},
		{3, 8 * time.Second},
	}

	for _, tt := range tests {
		if got := r.Delay(tt.attempt); got != tt.want {
			t.Errorf("Delay(%d) = %v, want %v", tt.attempt, got, tt.want)
		}
	}
}

func TestRetryConfig_DelayCappedAtMax(t *testing.T) {
	r := &RetryConfig{
		BaseDelay: time.Second,
		MaxDelay:  5 * time.Second,
	}

	if got := r.Delay(10); got != 5*time.Second {
		t.Errorf("Delay(10) = %v, want %v (capped)", got, 5*time.Second)
	}
}

func TestRetryConfig_RetryAfter(t *testing.T) {
	r := DefaultRetryConfig()

	tests := []struct {
		name   string
		header string
		want   time.Duration
	}{
		{"integer seconds", "7", 7 * time.Second},
		{"zero", "0", 0},
		{"missing", "", r.Delay(1)},
		{"not a number", "Wed, 21 Oct 2026 07:28:00 GMT", r.Delay(1)},
		{"negative", "-3", r.Delay(1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			header := http.Header{}
			if tt.header != "" {
				header.Set("Retry-After", tt.header)
			}
			if got := r.RetryAfter(header, 1); got != tt.want {
				t.Errorf("RetryAfter(%q, 1) = %v, want %v", tt.header, got, tt.want)
			}
		})
	}
}

func TestRetryConfig_WaitCancellation(t *testing.T) {
	r := DefaultRetryConfig()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := r.Wait(ctx, time.Minute); err == nil {
		t.Error("expected context error from cancelled Wait")
	}
}

func TestRetryConfig_WaitCompletes(t *testing.T) {
	r := DefaultRetryConfig()

	if err := r.Wait(context.Background(), time.Millisecond); err != nil {
		t.Errorf("Wait() error = %v", err)
	}
}
