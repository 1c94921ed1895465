package llm

import (
	"encoding/json"
	"errors"
	"testing"
)

var answerSchema = &Schema{
	Name: "test-answer",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"answer": map[string]any{"type": "string"},
			"tone":   map[string]any{"type": "string", "enum": []string{"warm", "plain"}},
		},
		"required":             []string{"answer"},
		"additionalProperties": false,
	},
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"valid", `{"answer":"yes","tone":"warm"}`, false},
		{"missing required", `{"tone":"warm"}`, true},
		{"bad enum", `{"answer":"yes","tone":"loud"}`, true},
		{"extra field", `{"answer":"yes","mood":"ok"}`, true},
		{"not json", `Sure! Here you go.`, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateResponse(answerSchema, json.RawMessage(tt.raw))
			if (err != nil) != tt.wantErr {
				t.Errorf("err = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestFinish(t *testing.T) {
	req := Request{Schema: answerSchema}

	resp, err := finish("openai", req, `{"answer":"yes"}`, Usage{InputTokens: 7, OutputTokens: 2}, "gpt-4o-mini", StopEnd)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Usage.TotalTokens != 9 || resp.Model != "gpt-4o-mini" {
		t.Errorf("unexpected response: %+v", resp)
	}

	_, err = finish("openai", req, `{"answer":"ye`, Usage{}, "gpt-4o-mini", StopMaxTokens)
	var e *Error
	if !errors.As(err, &e) || e.Kind != KindTruncated || string(e.Content) != `{"answer":"ye` {
		t.Errorf("expected truncation error with content, got %v", err)
	}

	_, err = finish("openai", req, `{}`, Usage{}, "gpt-4o-mini", StopEnd)
	if kind, _ := KindOf(err); kind != KindInvalidOutput {
		t.Errorf("expected invalid output, got %v", err)
	}

	resp, err = finish("openai", Request{}, "free text", Usage{}, "gpt-4o-mini", StopMaxTokens)
	if err != nil || string(resp.Content) != "free text" {
		t.Errorf("free text should pass through, got %v, %v", resp, err)
	}
}
