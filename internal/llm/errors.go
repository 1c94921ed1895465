package llm

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"
)

// ErrorKind classifies a backend failure so middleware can decide whether
// another attempt is worthwhile.
type ErrorKind int

const (
	// KindUnavailable covers network failures and 5xx responses.
	KindUnavailable ErrorKind = iota
	KindRateLimited
	// KindRejected covers 4xx responses other than 429: bad keys, bad requests.
	KindRejected
	// KindInvalidOutput means the reply did not match the requested schema.
	KindInvalidOutput
	// KindTruncated means the reply hit the token limit.
	KindTruncated
)

func (k ErrorKind) String() string {
	switch k {
	case KindUnavailable:
		return "unavailable"
	case KindRateLimited:
		return "rate limited"
	case KindRejected:
		return "request rejected"
	case KindInvalidOutput:
		return "invalid output"
	case KindTruncated:
		return "output truncated"
	}
	return "unknown"
}

// Error is the error type returned by backends.
type Error struct {
	Kind     ErrorKind
	Provider string
	// RetryAfter is the server-suggested wait, when one was sent.
	RetryAfter time.Duration
	// Content holds the offending output for KindInvalidOutput and KindTruncated.
	Content json.RawMessage
	Err     error
}

func (e *Error) Error() string {
	msg := e.Kind.String()
	if e.Provider != "" {
		msg = e.Provider + ": " + msg
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the kind of err if it wraps an *Error.
func KindOf(err error) (ErrorKind, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}

// statusError classifies an HTTP failure reported by a backend SDK. A zero
// status means no response was received.
func statusError(backend string, status int, err error) *Error {
	e := &Error{Kind: KindUnavailable, Provider: backend, Err: err}
	switch {
	case status == http.StatusTooManyRequests:
		e.Kind = KindRateLimited
	case status == http.StatusRequestTimeout:
	case status >= 400 && status < 500:
		e.Kind = KindRejected
	}
	return e
}
