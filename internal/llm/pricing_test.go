package llm

import (
	"math"
	"testing"
)

func TestLookupCost(t *testing.T) {
	tests := []struct {
		model string
		want  *ModelCost
	}{
		{"claude-haiku-4-5-20251001", &ModelCost{1, 5}},
		{"claude-opus-4-5-20251101", &ModelCost{5, 25}},
		{"claude-opus-4-1", &ModelCost{15, 75}},
		{"gpt-4o-mini-2024-07-18", &ModelCost{0.15, 0.6}},
		{"gpt-4o", &ModelCost{2.5, 10}},
		{"google/gemini-2.0-flash-exp", &ModelCost{0.1, 0.4}},
		{"mock", nil},
	}
	for _, tt := range tests {
		t.Run(tt.model, func(t *testing.T) {
			got := LookupCost(tt.model)
			if (got == nil) != (tt.want == nil) || (got != nil && *got != *tt.want) {
				t.Errorf("LookupCost(%q) = %v, want %v", tt.model, got, tt.want)
			}
		})
	}
}

func TestModelCost_Cost(t *testing.T) {
	got := ModelCost{InputPerMTok: 3, OutputPerMTok: 15}.Cost(2000, 500)
	if math.Abs(got-0.0135) > 1e-9 {
		t.Errorf("cost = %v, want 0.0135", got)
	}
}
