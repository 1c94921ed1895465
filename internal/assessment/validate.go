package assessment

import (
	"fmt"
	"slices"
	"strings"
)

// Validate performs structural checks on a bank and its rule table.
// Returns a combined error describing all problems found, or nil if valid.
func Validate(b *Bank) error {
	var errs []string

	if len(b.Questions) == 0 {
		errs = append(errs, "bank has no questions")
	}

	ids := make(map[string]bool, len(b.Questions))
	orders := make(map[int]string, len(b.Questions))
	for _, q := range b.Questions {
		if q.ID == "" {
			errs = append(errs, "question with empty ID")
		}
		if ids[q.ID] {
			errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
		}
		ids[q.ID] = true

		if other, ok := orders[q.Order]; ok {
			errs = append(errs, fmt.Sprintf("questions %q and %q share order %d", other, q.ID, q.Order))
		}
		orders[q.Order] = q.ID

		switch q.EffectiveKind() {
		case KindSingleChoice:
		case KindMultipleChoice, KindText:
			errs = append(errs, fmt.Sprintf("question %q: kind %q is not supported in a bank, use %q",
				q.ID, q.Kind, KindSingleChoice))
		default:
			errs = append(errs, fmt.Sprintf("question %q has unknown kind %q", q.ID, q.Kind))
		}
		if q.Weight < 0 {
			errs = append(errs, fmt.Sprintf("question %q: weight must be >= 0, got %g", q.ID, q.Weight))
		}
		if len(q.Options) == 0 {
			errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
		}

		values := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if values[o.Value] {
				errs = append(errs, fmt.Sprintf("question %q: duplicate option value %q", q.ID, o.Value))
			}
			values[o.Value] = true
			if o.Score < 0 || o.Score > MaxOptionScore {
				errs = append(errs, fmt.Sprintf("question %q option %q: score must be in [0, %d], got %d",
					q.ID, o.Value, MaxOptionScore, o.Score))
			}
		}
	}

	errs = append(errs, validateRules(b)...)

	if len(errs) > 0 {
		return fmt.Errorf("question bank validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateRules(b *Bank) []string {
	errs := b.Rules.problems()
	for i, r := range b.Rules.Rules {
		prefix := fmt.Sprintf("assignment rule %d", i)
		q := b.Question(r.Question)
		if q == nil {
			errs = append(errs, fmt.Sprintf("%s references nonexistent question %q", prefix, r.Question))
			continue
		}
		for _, w := range r.Weak {
			if _, ok := q.Option(w); !ok {
				errs = append(errs, fmt.Sprintf("%s: %q is not an option of question %q", prefix, w, q.ID))
			}
		}
	}
	return errs
}

// problems lists what is wrong with the table on its own, without looking
// at the questions its rules reference.
func (t RuleTable) problems() []string {
	var errs []string

	if t.Foundation == "" {
		errs = append(errs, "assignment: foundation module is required")
	}
	if t.RemedialThreshold < 0 || t.RemedialThreshold > 100 {
		errs = append(errs, fmt.Sprintf("assignment: remedial threshold must be in [0, 100], got %d", t.RemedialThreshold))
	}
	if len(t.Remedial) == 0 {
		errs = append(errs, "assignment: remedial list is empty")
	} else if t.Remedial[0] != t.Foundation {
		errs = append(errs, fmt.Sprintf("assignment: remedial list must start with foundation %q, got %q",
			t.Foundation, t.Remedial[0]))
	}
	if slices.Contains(t.Remedial, "") {
		errs = append(errs, "assignment: remedial list contains an empty module ID")
	}
	seen := make(map[string]bool, len(t.Remedial))
	for _, id := range t.Remedial {
		if seen[id] {
			errs = append(errs, fmt.Sprintf("assignment: duplicate remedial module %q", id))
		}
		seen[id] = true
	}
	for i, r := range t.Rules {
		prefix := fmt.Sprintf("assignment rule %d", i)
		if r.Module == "" {
			errs = append(errs, prefix+": module is required")
		}
		if len(r.Weak) == 0 {
			errs = append(errs, prefix+": weak answer set is empty")
		}
	}
	return errs
}
