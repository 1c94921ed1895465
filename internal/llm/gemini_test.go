package llm

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"google.golang.org/genai"
)

func TestGeminiSchema(t *testing.T) {
	got := geminiSchema(map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{"type": "string", "description": "the answer"},
			"topic": map[string]any{"type": "string", "enum": []any{"progress", "other"}},
			"suggestions": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "string"},
			},
		},
		"required":             []string{"reply", "topic"},
		"additionalProperties": false,
	})

	want := &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"reply":       {Type: genai.TypeString, Description: "the answer"},
			"topic":       {Type: genai.TypeString, Enum: []string{"progress", "other"}},
			"suggestions": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
		},
		Required: []string{"reply", "topic"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("geminiSchema mismatch (-want +got):\n%s", diff)
	}
}

func TestGeminiContents(t *testing.T) {
	got := geminiContents([]Message{
		{Role: RoleUser, Content: "hi"},
		{Role: RoleAssistant, Content: "hello"},
	})
	if len(got) != 2 || got[0].Role != genai.RoleUser || got[1].Role != genai.RoleModel {
		t.Fatalf("roles = %v", got)
	}
	if got[1].Parts[0].Text != "hello" {
		t.Errorf("text = %q", got[1].Parts[0].Text)
	}
}

func TestGeminiConfig(t *testing.T) {
	conf := geminiConfig(Request{System: "be brief", MaxTokens: 300, Temperature: 0.4, Schema: answerSchema})
	if conf.MaxOutputTokens != 300 || conf.Temperature == nil || *conf.Temperature != float32(0.4) {
		t.Errorf("limits not applied: %+v", conf)
	}
	if conf.ResponseMIMEType != "application/json" || conf.ResponseSchema == nil {
		t.Error("schema not requested")
	}
	if conf.SystemInstruction == nil || conf.SystemInstruction.Parts[0].Text != "be brief" {
		t.Error("system instruction missing")
	}

	if plain := geminiConfig(Request{}); plain.Temperature != nil || plain.ResponseSchema != nil {
		t.Errorf("zero request should leave defaults: %+v", plain)
	}
}
