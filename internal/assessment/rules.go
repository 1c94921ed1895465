package assessment

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrInvalidScore is returned when a score outside [0, 100] is passed to
// module assignment.
var ErrInvalidScore = errors.New("score must be between 0 and 100")

// ErrInvalidRules is returned by Assign for a table that could produce a
// list without the foundation first or with repeated modules.
var ErrInvalidRules = errors.New("invalid assignment rule table")

// Rule assigns Module when the answer to Question is one of Weak.
type Rule struct {
	Question string   `yaml:"question"`
	Weak     []string `yaml:"weak"`
	Module   string   `yaml:"module"`
}

// Matches reports whether the recorded answer for the rule's question is
// one of its weak values. A missing answer never matches.
func (r Rule) Matches(answers Answers) bool {
	value, ok := answers[r.Question]
	if !ok {
		return false
	}
	return slices.Contains(r.Weak, value)
}

// RuleTable is the declarative module-assignment policy.
type RuleTable struct {
	// Foundation is always assigned, always first.
	Foundation string `yaml:"foundation"`

	Rules []Rule `yaml:"rules"`

	// Scores strictly below RemedialThreshold receive Remedial instead of
	// the rule-derived list.
	RemedialThreshold int      `yaml:"remedial_threshold"`
	Remedial          []string `yaml:"remedial"`

	// DefaultExtra, when set, is appended to every non-remedial assignment
	// that does not already contain it.
	DefaultExtra string `yaml:"default_extra,omitempty"`
}

// Assign returns the ordered, duplicate-free list of modules recommended
// for the given score and answers.
func (t RuleTable) Assign(score int, answers Answers) ([]string, error) {
	if score < 0 || score > 100 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidScore, score)
	}
	if errs := t.problems(); len(errs) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrInvalidRules, strings.Join(errs, "; "))
	}

	if score < t.RemedialThreshold {
		return slices.Clone(t.Remedial), nil
	}

	modules := []string{t.Foundation}
	add := func(id string) {
		if !slices.Contains(modules, id) {
			modules = append(modules, id)
		}
	}

	for _, r := range t.Rules {
		if r.Matches(answers) {
			add(r.Module)
		}
	}

	if t.DefaultExtra != "" {
		add(t.DefaultExtra)
	}

	return modules, nil
}

// Modules returns every module ID the table can produce, in first-seen
// order.
func (t RuleTable) Modules() []string {
	var out []string
	add := func(id string) {
		if id != "" && !slices.Contains(out, id) {
			out = append(out, id)
		}
	}
	add(t.Foundation)
	for _, r := range t.Rules {
		add(r.Module)
	}
	add(t.DefaultExtra)
	for _, id := range t.Remedial {
		add(id)
	}
	return out
}
