package coach

import "github.com/endevo/legacyready/internal/llm"

// TopicOther marks a model reply outside the built-in topics.
const TopicOther = "other"

// ReplySchema defines the JSON schema for coach replies.
var ReplySchema = &llm.Schema{
	Name:        "coach-reply",
	Description: "A short, friendly answer to a learner's question about legacy readiness training",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"reply": map[string]any{
				"type":        "string",
				"description": "The answer, 1-4 sentences, plain text",
			},
			"topic": map[string]any{
				"type": "string",
				"enum": append(topicEnum(), TopicOther),
			},
			"suggestions": map[string]any{
				"type":        "array",
				"items":       map[string]any{"type": "string"},
				"description": "0-3 short follow-up questions the learner might ask next",
			},
		},
		"required":             []any{"reply", "topic", "suggestions"},
		"additionalProperties": false,
	},
}

func topicEnum() []any {
	var out []any
	for _, k := range TopicKeys() {
		out = append(out, k)
	}
	return out
}
