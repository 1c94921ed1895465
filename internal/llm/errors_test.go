package llm

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestStatusError(t *testing.T) {
	cause := errors.New("sdk failure")
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{0, KindUnavailable},
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusRequestTimeout, KindUnavailable},
		{http.StatusUnauthorized, KindRejected},
		{http.StatusBadRequest, KindRejected},
		{http.StatusInternalServerError, KindUnavailable},
		{http.StatusServiceUnavailable, KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.status), func(t *testing.T) {
			err := statusError("openai", tt.status, cause)
			if err.Kind != tt.want {
				t.Errorf("kind = %v, want %v", err.Kind, tt.want)
			}
			if !errors.Is(err, cause) {
				t.Error("cause not reachable through Unwrap")
			}
		})
	}
}

func TestError_Message(t *testing.T) {
	err := &Error{Kind: KindRateLimited, Provider: "gemini", Err: errors.New("quota")}
	if got := err.Error(); got != "gemini: rate limited: quota" {
		t.Errorf("Error() = %q", got)
	}
	if got := (&Error{Kind: KindTruncated}).Error(); got != "output truncated" {
		t.Errorf("Error() = %q", got)
	}
}

func TestKindOf(t *testing.T) {
	wrapped := fmt.Errorf("coach generation: %w", &Error{Kind: KindInvalidOutput})
	if kind, ok := KindOf(wrapped); !ok || kind != KindInvalidOutput {
		t.Errorf("KindOf = %v, %v", kind, ok)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("plain error should have no kind")
	}
}
