package httpx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"
	"time"
)

type statusErr int

func (s statusErr) Error() string       { return fmt.Sprintf("status %d", int(s)) }
func (s statusErr) HTTPStatusCode() int { return int(s) }

func TestIsRetryableError(t *testing.T) {
	cases := []struct {
		err  error
		want bool
	}{
		{nil, false},
		{context.Canceled, false},
		{context.DeadlineExceeded, true},
		{statusErr(http.StatusBadGateway), true},
		{statusErr(http.StatusTooManyRequests), true},
		{statusErr(http.StatusUnauthorized), false},
		{statusErr(http.StatusNotFound), false},
		{fmt.Errorf("wrapped: %w", statusErr(http.StatusServiceUnavailable)), true},
		{errors.New("decode failure"), false},
	}
	for _, tc := range cases {
		if got := IsRetryableError(tc.err); got != tc.want {
			t.Fatalf("IsRetryableError(%v): got %v want %v", tc.err, got, tc.want)
		}
	}
}

func TestRetryAfterDuration(t *testing.T) {
	resp := &http.Response{Header: http.Header{}}
	if got := RetryAfterDuration(resp, time.Second, 0); got != time.Second {
		t.Fatalf("fallback: got %s", got)
	}
	resp.Header.Set("Retry-After", "30")
	if got := RetryAfterDuration(resp, time.Second, 5*time.Second); got != 5*time.Second {
		t.Fatalf("capped: got %s", got)
	}
	if got := RetryAfterDuration(resp, time.Second, 0); got != 30*time.Second {
		t.Fatalf("uncapped: got %s", got)
	}
}
