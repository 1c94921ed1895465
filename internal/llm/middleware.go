package llm

import (
	"context"
	"errors"
	"math"
	"math/rand/v2"
	"time"
)

// RetryProvider retries transient failures with capped, jittered
// exponential backoff.
type RetryProvider struct {
	inner Provider
	cfg   RetryConfig
}

// WithRetry wraps p. A MaxAttempts below two returns p unchanged.
func WithRetry(p Provider, cfg RetryConfig) Provider {
	if cfg.MaxAttempts < 2 {
		return p
	}
	return &RetryProvider{inner: p, cfg: cfg}
}

func (r *RetryProvider) Name() string    { return ProviderName(r.inner) }
func (r *RetryProvider) ModelID() string { return r.inner.ModelID() }

func (r *RetryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	var (
		lastErr     error
		invalidOnce bool
	)
	for attempt := range r.cfg.MaxAttempts {
		if attempt > 0 {
			if err := sleep(ctx, r.backoff(attempt-1, lastErr)); err != nil {
				return nil, err
			}
		}
		resp, err := r.inner.Generate(ctx, req)
		if err == nil {
			return resp, nil
		}
		lastErr = err
		if !retryable(err, &invalidOnce) {
			break
		}
	}
	return nil, lastErr
}

// retryable decides whether err deserves another attempt. Invalid output is
// retried once, since a second sample often conforms.
func retryable(err error, invalidOnce *bool) bool {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	kind, ok := KindOf(err)
	if !ok {
		return true
	}
	switch kind {
	case KindRejected, KindTruncated:
		return false
	case KindInvalidOutput:
		if *invalidOnce {
			return false
		}
		*invalidOnce = true
	}
	return true
}

func (r *RetryProvider) backoff(attempt int, err error) time.Duration {
	var e *Error
	if errors.As(err, &e) && e.RetryAfter > 0 {
		return e.RetryAfter
	}
	wait := float64(r.cfg.InitialWait) * math.Pow(r.cfg.Multiplier, float64(attempt))
	if r.cfg.MaxWait > 0 {
		wait = math.Min(wait, float64(r.cfg.MaxWait))
	}
	// Spread concurrent clients across +/-20% of the nominal wait.
	return time.Duration(wait * (0.8 + 0.4*rand.Float64()))
}

func sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

// TimeoutProvider bounds a whole Generate call, retries included.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p. A non-positive d returns p unchanged.
func WithTimeout(p Provider, d time.Duration) Provider {
	if d <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: d}
}

func (t *TimeoutProvider) Name() string    { return ProviderName(t.inner) }
func (t *TimeoutProvider) ModelID() string { return t.inner.ModelID() }

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()
	return t.inner.Generate(ctx, req)
}
