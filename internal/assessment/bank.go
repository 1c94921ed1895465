package assessment

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"
)

// Bank is a question bank together with the module-assignment policy that
// applies to it. A Bank is read-only once built and safe for concurrent use.
type Bank struct {
	Version   string     `yaml:"version"`
	Questions []Question `yaml:"questions"`
	Rules     RuleTable  `yaml:"assignment"`
}

// Result is the outcome of evaluating one answer set.
type Result struct {
	Score    int
	Modules  []string
	Answered int
}

// defaultBank is the built-in bank, set by init() in seed.go.
var defaultBank *Bank

// Default returns the built-in question bank. Callers must not modify it.
func Default() *Bank {
	return defaultBank
}

// LoadFile reads a YAML bank from path, sorts its questions by order and
// validates it.
func LoadFile(path string) (*Bank, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read bank file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a YAML bank.
func Parse(data []byte) (*Bank, error) {
	var b Bank
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("decode bank: %w", err)
	}
	for i := range b.Questions {
		if b.Questions[i].Kind == "" {
			b.Questions[i].Kind = KindSingleChoice
		}
	}
	sortQuestions(b.Questions)
	if err := Validate(&b); err != nil {
		return nil, err
	}
	return &b, nil
}

// Question returns the question with the given ID, or nil.
func (b *Bank) Question(id string) *Question {
	for i := range b.Questions {
		if b.Questions[i].ID == id {
			return &b.Questions[i]
		}
	}
	return nil
}

// Score computes the readiness score for answers.
func (b *Bank) Score(answers Answers) int {
	return ComputeScore(b.Questions, answers)
}

// Evaluate scores answers and resolves the recommended modules.
func (b *Bank) Evaluate(answers Answers) (*Result, error) {
	score := b.Score(answers)
	modules, err := b.Rules.Assign(score, answers)
	if err != nil {
		return nil, fmt.Errorf("assign modules: %w", err)
	}
	return &Result{
		Score:    score,
		Modules:  modules,
		Answered: b.answered(answers),
	}, nil
}

// Unanswered returns the IDs of scored questions with no valid answer, in
// order.
func (b *Bank) Unanswered(answers Answers) []string {
	var out []string
	for _, q := range b.Questions {
		if !q.Scored() {
			continue
		}
		v, ok := answers[q.ID]
		if !ok {
			out = append(out, q.ID)
			continue
		}
		if _, ok := q.Option(v); !ok {
			out = append(out, q.ID)
		}
	}
	return out
}

// Complete reports whether every question has a valid answer.
func (b *Bank) Complete(answers Answers) bool {
	return len(b.Unanswered(answers)) == 0
}

func (b *Bank) answered(answers Answers) int {
	scored := 0
	for _, q := range b.Questions {
		if q.Scored() {
			scored++
		}
	}
	return scored - len(b.Unanswered(answers))
}

// sortQuestions orders questions by display order, then ID.
func sortQuestions(qs []Question) {
	sort.SliceStable(qs, func(i, j int) bool {
		if qs[i].Order != qs[j].Order {
			return qs[i].Order < qs[j].Order
		}
		return qs[i].ID < qs[j].ID
	})
}
