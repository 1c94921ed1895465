package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

var fastRetry = RetryConfig{MaxAttempts: 3, InitialWait: time.Millisecond, MaxWait: 5 * time.Millisecond, Multiplier: 2}

func TestRetryProvider(t *testing.T) {
	ok := MockResponse{Content: json.RawMessage(`{"reply":"ok"}`)}
	fail := func(kind ErrorKind) MockResponse { return MockResponse{Err: &Error{Kind: kind}} }

	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{"first try", []MockResponse{ok}, 1, false},
		{"unavailable then ok", []MockResponse{fail(KindUnavailable), ok}, 2, false},
		{"rate limited twice then ok", []MockResponse{fail(KindRateLimited), fail(KindRateLimited), ok}, 3, false},
		{"gives up after max attempts", []MockResponse{fail(KindUnavailable), fail(KindUnavailable), fail(KindUnavailable), ok}, 3, true},
		{"rejected is final", []MockResponse{fail(KindRejected), ok}, 1, true},
		{"truncated is final", []MockResponse{fail(KindTruncated), ok}, 1, true},
		{"invalid output retried once", []MockResponse{fail(KindInvalidOutput), ok}, 2, false},
		{"invalid output not retried twice", []MockResponse{fail(KindInvalidOutput), fail(KindInvalidOutput), ok}, 2, true},
		{"untyped error retried", []MockResponse{{Err: errors.New("eof")}, ok}, 2, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			_, err := WithRetry(mock, fastRetry).Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Errorf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryProvider_StopsOnCancel(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: &Error{Kind: KindUnavailable}})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	slow := RetryConfig{MaxAttempts: 3, InitialWait: time.Hour, Multiplier: 1}
	_, err := WithRetry(mock, slow).Generate(ctx, Request{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
	if mock.CallCount() != 1 {
		t.Errorf("calls = %d, want 1", mock.CallCount())
	}
}

func TestRetryProvider_Backoff(t *testing.T) {
	r := &RetryProvider{cfg: RetryConfig{InitialWait: 100 * time.Millisecond, MaxWait: 300 * time.Millisecond, Multiplier: 2}}

	for attempt, nominal := range []time.Duration{100, 200, 300, 300} {
		nominal *= time.Millisecond
		got := r.backoff(attempt, errors.New("x"))
		if got < nominal*8/10 || got > nominal*12/10 {
			t.Errorf("attempt %d: backoff %v outside 20%% of %v", attempt, got, nominal)
		}
	}

	hinted := &Error{Kind: KindRateLimited, RetryAfter: 7 * time.Second}
	if got := r.backoff(0, hinted); got != 7*time.Second {
		t.Errorf("RetryAfter ignored: got %v", got)
	}
}

func TestWithRetry_SingleAttemptUnwrapped(t *testing.T) {
	mock := NewMockProvider()
	if p := WithRetry(mock, RetryConfig{MaxAttempts: 1}); p != Provider(mock) {
		t.Error("expected the provider back unchanged")
	}
}

type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}
func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 10*time.Millisecond)
	_, err := p.Generate(context.Background(), Request{})
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded, got %v", err)
	}
	if ProviderName(p) != "blocking" {
		t.Errorf("name = %q, want blocking", ProviderName(p))
	}
	if _, wrapped := WithTimeout(blockingProvider{}, 0).(*TimeoutProvider); wrapped {
		t.Error("zero timeout should return the provider unchanged")
	}
}

func TestMockProvider(t *testing.T) {
	mock := NewMockProvider()
	if _, err := mock.Generate(context.Background(), Request{System: "a"}); err == nil {
		t.Fatal("empty script should fail")
	}
	mock.AddResponse(MockResponse{Content: json.RawMessage(`"hi"`)})
	resp, err := mock.Generate(context.Background(), Request{System: "b"})
	if err != nil || string(resp.Content) != `"hi"` {
		t.Fatalf("got %v, %v", resp, err)
	}
	if mock.CallCount() != 2 || mock.Calls[1].System != "b" {
		t.Errorf("calls not recorded: %+v", mock.Calls)
	}
}
