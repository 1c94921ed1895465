package llm

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go/option"
)

func newAnthropicTestProvider(t *testing.T, status int, body string, seen *map[string]any) *AnthropicProvider {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/messages" {
			t.Errorf("path = %s", r.URL.Path)
		}
		if seen != nil {
			raw, _ := io.ReadAll(r.Body)
			_ = json.Unmarshal(raw, seen)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	p, err := NewAnthropicProvider(AnthropicConfig{APIKey: "sk-test", Model: "claude-haiku"},
		option.WithBaseURL(srv.URL), option.WithMaxRetries(0))
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	return p
}

func TestAnthropicProvider_Generate(t *testing.T) {
	var sent map[string]any
	p := newAnthropicTestProvider(t, http.StatusOK, `{
		"id": "msg_1", "type": "message", "role": "assistant",
		"model": "claude-haiku-4-5-20251001",
		"content": [{"type": "text", "text": "{\"answer\":\"yes\"}"}],
		"stop_reason": "end_turn",
		"usage": {"input_tokens": 20, "output_tokens": 5}
	}`, &sent)

	resp, err := p.Generate(context.Background(), Request{
		System: "be brief",
		Messages: []Message{
			{Role: RoleUser, Content: "hi"},
			{Role: RoleAssistant, Content: "hello"},
			{Role: RoleUser, Content: "ready?"},
		},
		Schema: answerSchema,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"yes"}` || resp.Usage.TotalTokens != 25 || resp.StopReason != StopEnd {
		t.Errorf("unexpected response: %+v", resp)
	}

	if sent["model"] != "claude-haiku-4-5-20251001" {
		t.Errorf("model alias not resolved: %v", sent["model"])
	}
	if sent["max_tokens"] != float64(defaultMaxTokens) {
		t.Errorf("max_tokens = %v", sent["max_tokens"])
	}
	if msgs, _ := sent["messages"].([]any); len(msgs) != 3 {
		t.Errorf("messages = %v", sent["messages"])
	}
	if _, ok := sent["output_config"]; !ok {
		t.Error("schema not sent as output_config")
	}
}

func TestAnthropicProvider_Errors(t *testing.T) {
	const errBody = `{"type":"error","error":{"type":"rate_limit_error","message":"slow down"}}`
	tests := []struct {
		name   string
		status int
		want   ErrorKind
	}{
		{"rate limited", http.StatusTooManyRequests, KindRateLimited},
		{"bad key", http.StatusUnauthorized, KindRejected},
		{"overloaded", 529, KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newAnthropicTestProvider(t, tt.status, errBody, nil)
			_, err := p.Generate(context.Background(), Request{Messages: []Message{{Role: RoleUser, Content: "hi"}}})
			if kind, ok := KindOf(err); !ok || kind != tt.want {
				t.Errorf("kind = %v (%v), want %v", kind, err, tt.want)
			}
		})
	}
}

func TestNewAnthropicProvider_RequiresKey(t *testing.T) {
	if _, err := NewAnthropicProvider(AnthropicConfig{}); err == nil {
		t.Fatal("expected error without API key")
	}
}
