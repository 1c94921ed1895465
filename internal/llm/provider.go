// Package llm talks to hosted language models for the coach. Every backend
// sits behind Provider, and cross-cutting concerns (timeouts, retries, event
// logging) are layered on as decorators by NewProvider.
package llm

import (
	"context"
	"encoding/json"
)

// Provider generates one reply per Request. Implementations must be safe for
// concurrent use.
type Provider interface {
	Generate(ctx context.Context, req Request) (*Response, error)
	ModelID() string
}

// Namer is implemented by providers that can report their backend name.
type Namer interface {
	Name() string
}

// ProviderName returns p's backend name, or its model ID when unknown.
func ProviderName(p Provider) string {
	if n, ok := p.(Namer); ok {
		return n.Name()
	}
	return p.ModelID()
}

type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

type Message struct {
	Role    Role
	Content string
}

// Schema asks for JSON output matching Definition, a JSON Schema document
// expressed as nested maps.
type Schema struct {
	Name        string
	Description string
	Definition  map[string]any
}

type Request struct {
	System   string
	Messages []Message
	// Schema is nil for free-text replies.
	Schema    *Schema
	MaxTokens int
	// Temperature of zero keeps the backend default.
	Temperature float64
}

// Stop reasons reported in Response.StopReason.
const (
	StopEnd       = "end_turn"
	StopMaxTokens = "max_tokens"
)

type Response struct {
	Content    json.RawMessage
	Usage      Usage
	Model      string
	StopReason string
}

type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}

// PurposeCoach tags requests made by the learner coach.
const PurposeCoach = "coach"

type purposeKey struct{}

// WithPurpose tags ctx so the event log can attribute usage.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the tag set by WithPurpose, or "unknown".
func PurposeFrom(ctx context.Context) string {
	if p, ok := ctx.Value(purposeKey{}).(string); ok && p != "" {
		return p
	}
	return "unknown"
}

// finish checks raw backend output against the request schema and builds the
// Response every backend returns.
func finish(backend string, req Request, raw string, usage Usage, model, stop string) (*Response, error) {
	content := json.RawMessage(raw)
	if req.Schema != nil {
		if stop == StopMaxTokens {
			return nil, &Error{Kind: KindTruncated, Provider: backend, Content: content}
		}
		if err := validateResponse(req.Schema, content); err != nil {
			return nil, &Error{Kind: KindInvalidOutput, Provider: backend, Content: content, Err: err}
		}
	}
	if usage.TotalTokens == 0 {
		usage.TotalTokens = usage.InputTokens + usage.OutputTokens
	}
	return &Response{Content: content, Usage: usage, Model: model, StopReason: stop}, nil
}

// resolveModel expands a short alias. Unknown names pass through so any full
// model ID can be configured.
func resolveModel(name string, aliases map[string]string) string {
	if full, ok := aliases[name]; ok {
		return full
	}
	return name
}
