package assessment

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Bank(t *testing.T) {
	b := Default()
	require.NotNil(t, b)
	assert.Len(t, b.Questions, 10)
	assert.Equal(t, "legacy-readiness-v1", b.Version)

	for i, q := range b.Questions {
		assert.Equal(t, i+1, q.Order, "questions must be sorted by order")
		assert.Len(t, q.Options, 4, "question %s", q.ID)
	}
	assert.NoError(t, Validate(b))
}

func TestBank_Question(t *testing.T) {
	q := Default().Question("q4")
	require.NotNil(t, q)
	assert.Equal(t, 1.5, q.Weight)
	assert.Nil(t, Default().Question("nope"))
}

func TestBank_Unanswered(t *testing.T) {
	b := Default()
	a := allAnswered(b.Questions, best)
	assert.True(t, b.Complete(a))
	assert.Empty(t, b.Unanswered(a))

	delete(a, "q3")
	a["q7"] = "bogus"
	assert.False(t, b.Complete(a))
	assert.Equal(t, []string{"q3", "q7"}, b.Unanswered(a))

	res, err := b.Evaluate(a)
	require.NoError(t, err)
	assert.Equal(t, 8, res.Answered)
}

func TestBank_UnansweredSkipsUnscoredKinds(t *testing.T) {
	b := validBank()
	b.Questions[0].Kind = ""
	b.Questions[1].Kind = KindText

	a := Answers{"a": "x", "b": "free text"}
	assert.True(t, b.Complete(a))
	assert.Empty(t, b.Unanswered(a))
	assert.Equal(t, []string{"a"}, b.Unanswered(Answers{}))
}

func TestParse_RejectsUnscoredKinds(t *testing.T) {
	for _, kind := range []string{"text", "multiple_choice"} {
		t.Run(kind, func(t *testing.T) {
			data := strings.Replace(testBankYAML, "    text: First?\n", "    text: First?\n    kind: "+kind+"\n", 1)
			_, err := Parse([]byte(data))
			require.Error(t, err)
			assert.Contains(t, err.Error(), "is not supported in a bank")
		})
	}
}

const testBankYAML = `
version: test-v2
questions:
  - id: b
    order: 2
    text: Second?
    weight: 3
    options:
      - {id: b1, value: "yes", label: "Yes", score: 10}
      - {id: b2, value: "no", label: "No", score: 0}
  - id: a
    order: 1
    text: First?
    options:
      - {id: a1, value: "yes", label: "Yes", score: 10}
      - {id: a2, value: "no", label: "No", score: 2}
assignment:
  foundation: intro
  remedial_threshold: 40
  remedial: [intro, basics, advanced]
  default_extra: wrapup
  rules:
    - {question: b, weak: ["no"], module: basics}
`

func TestParse_YAML(t *testing.T) {
	b, err := Parse([]byte(testBankYAML))
	require.NoError(t, err)

	assert.Equal(t, "test-v2", b.Version)
	require.Len(t, b.Questions, 2)
	assert.Equal(t, "a", b.Questions[0].ID, "questions sorted by order")
	assert.Equal(t, KindSingleChoice, b.Questions[0].Kind, "kind defaults to single choice")
	assert.Equal(t, 1.0, b.Questions[0].EffectiveWeight())

	// a=yes (10*1), b=no (0*3): 10 / 40
	res, err := b.Evaluate(Answers{"a": "yes", "b": "no"})
	require.NoError(t, err)
	assert.Equal(t, 25, res.Score)
	assert.Equal(t, []string{"intro", "basics", "advanced"}, res.Modules)

	res, err = b.Evaluate(Answers{"a": "no", "b": "yes"})
	require.NoError(t, err)
	// (2 + 30) / 40
	assert.Equal(t, 80, res.Score)
	assert.Equal(t, []string{"intro", "wrapup"}, res.Modules)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bank.yaml")
	require.NoError(t, os.WriteFile(path, []byte(testBankYAML), 0o644))

	b, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "test-v2", b.Version)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestParse_InvalidYAML(t *testing.T) {
	_, err := Parse([]byte("questions: [::"))
	assert.Error(t, err)
}

func validBank() *Bank {
	return &Bank{
		Questions: []Question{
			{ID: "a", Order: 1, Kind: KindSingleChoice, Options: []Option{{Value: "x", Score: 10}, {Value: "y", Score: 0}}},
			{ID: "b", Order: 2, Kind: KindSingleChoice, Options: []Option{{Value: "x", Score: 5}}},
		},
		Rules: RuleTable{
			Foundation:        "m1",
			Rules:             []Rule{{Question: "a", Weak: []string{"y"}, Module: "m2"}},
			RemedialThreshold: 30,
			Remedial:          []string{"m1", "m2"},
		},
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(b *Bank)
		want   string
	}{
		{"duplicate id", func(b *Bank) { b.Questions[1].ID = "a" }, "duplicate question ID"},
		{"shared order", func(b *Bank) { b.Questions[1].Order = 1 }, "share order"},
		{"no options", func(b *Bank) { b.Questions[1].Options = nil }, "has no options"},
		{"score too high", func(b *Bank) { b.Questions[0].Options[0].Score = 11 }, "score must be in"},
		{"negative score", func(b *Bank) { b.Questions[0].Options[1].Score = -1 }, "score must be in"},
		{"duplicate option", func(b *Bank) { b.Questions[0].Options[1].Value = "x" }, "duplicate option value"},
		{"negative weight", func(b *Bank) { b.Questions[0].Weight = -2 }, "weight must be"},
		{"unknown kind", func(b *Bank) { b.Questions[0].Kind = "essay" }, "unknown kind"},
		{"text kind", func(b *Bank) { b.Questions[0].Kind = KindText }, "not supported in a bank"},
		{"missing foundation", func(b *Bank) { b.Rules.Foundation = "" }, "foundation module is required"},
		{"threshold range", func(b *Bank) { b.Rules.RemedialThreshold = 101 }, "remedial threshold"},
		{"empty remedial", func(b *Bank) { b.Rules.Remedial = nil }, "remedial list is empty"},
		{"remedial order", func(b *Bank) { b.Rules.Remedial = []string{"m2", "m1"} }, "must start with foundation"},
		{"remedial duplicate", func(b *Bank) { b.Rules.Remedial = []string{"m1", "m2", "m2"} }, "duplicate remedial"},
		{"dangling rule", func(b *Bank) { b.Rules.Rules[0].Question = "zz" }, "nonexistent question"},
		{"weak not an option", func(b *Bank) { b.Rules.Rules[0].Weak = []string{"q"} }, "is not an option"},
		{"rule without module", func(b *Bank) { b.Rules.Rules[0].Module = "" }, "module is required"},
	}

	require.NoError(t, Validate(validBank()))

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := validBank()
			tt.mutate(b)
			err := Validate(b)
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), tt.want), "error %q should mention %q", err, tt.want)
		})
	}
}
