package llm

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

func chatServer(t *testing.T, status int, body string, seen *map[string]any) string {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/chat/completions" {
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
	return srv.URL
}

func TestOpenAIProvider_Generate(t *testing.T) {
	var sent map[string]any
	url := chatServer(t, http.StatusOK, `{
		"id": "c1", "object": "chat.completion", "model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"answer\":\"sure\"}"}, "finish_reason": "stop"}],
		"usage": {"prompt_tokens": 9, "completion_tokens": 3, "total_tokens": 12}
	}`, &sent)

	p, err := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: url})
	if err != nil {
		t.Fatalf("new provider: %v", err)
	}
	resp, err := p.Generate(context.Background(), Request{
		System:   "be brief",
		Messages: []Message{{Role: RoleUser, Content: "hi"}},
		Schema:   answerSchema,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"answer":"sure"}` || resp.Usage.TotalTokens != 12 {
		t.Errorf("unexpected response: %+v", resp)
	}

	msgs, _ := sent["messages"].([]any)
	if len(msgs) != 2 {
		t.Fatalf("messages = %v", sent["messages"])
	}
	if first, _ := msgs[0].(map[string]any); first["role"] != "system" {
		t.Errorf("system prompt not sent first: %v", msgs[0])
	}
	format, _ := sent["response_format"].(map[string]any)
	if format["type"] != "json_schema" {
		t.Errorf("response_format = %v", sent["response_format"])
	}
}

func TestOpenAIProvider_Truncated(t *testing.T) {
	url := chatServer(t, http.StatusOK, `{
		"model": "gpt-4o-mini",
		"choices": [{"index": 0, "message": {"role": "assistant", "content": "{\"answer\":"}, "finish_reason": "length"}]
	}`, nil)
	p, _ := NewOpenAIProvider(OpenAIConfig{APIKey: "sk-test", Model: "gpt-4o-mini", BaseURL: url})

	_, err := p.Generate(context.Background(), Request{Schema: answerSchema})
	if kind, _ := KindOf(err); kind != KindTruncated {
		t.Errorf("expected truncation, got %v", err)
	}
}

func TestOpenAIProvider_Errors(t *testing.T) {
	tests := []struct {
		status int
		want   ErrorKind
	}{
		{http.StatusTooManyRequests, KindRateLimited},
		{http.StatusUnauthorized, KindRejected},
		{http.StatusBadGateway, KindUnavailable},
	}
	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			url := chatServer(t, tt.status, `{"error":{"message":"nope","type":"server_error"}}`, nil)
			p, _ := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-exp", BaseURL: url})
			_, err := p.Generate(context.Background(), Request{})
			var e *Error
			if !errors.As(err, &e) || e.Kind != tt.want || e.Provider != "openrouter" {
				t.Errorf("got %v, want kind %v from openrouter", err, tt.want)
			}
		})
	}
}

func TestNewOpenRouterProvider_Defaults(t *testing.T) {
	p, err := NewOpenRouterProvider(OpenRouterConfig{APIKey: "sk-or", Model: "google/gemini-2.0-flash-exp"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "openrouter" || p.ModelID() != "google/gemini-2.0-flash-exp" {
		t.Errorf("got %s/%s", p.Name(), p.ModelID())
	}
	if _, err := NewOpenRouterProvider(OpenRouterConfig{}); err == nil {
		t.Error("expected error without API key")
	}
}
