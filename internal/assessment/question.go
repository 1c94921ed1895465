package assessment

// Kind is the response cardinality of a question.
type Kind string

const (
	KindSingleChoice   Kind = "single_choice"
	KindMultipleChoice Kind = "multiple_choice"
	KindText           Kind = "text"
)

// MaxOptionScore is the highest raw score an option can contribute.
const MaxOptionScore = 10

// Option is one selectable answer for a question.
type Option struct {
	ID    string `yaml:"id"`
	Value string `yaml:"value"`
	Label string `yaml:"label"`
	Score int    `yaml:"score"`
}

// Question is a single assessment item.
type Question struct {
	ID      string   `yaml:"id"`
	Order   int      `yaml:"order"`
	Text    string   `yaml:"text"`
	Kind    Kind     `yaml:"kind"`
	Options []Option `yaml:"options"`

	// Weight multiplies the option score. Zero means unset and counts as 1.
	Weight float64 `yaml:"weight,omitempty"`
}

// EffectiveKind returns the question's kind, treating unset as single
// choice.
func (q Question) EffectiveKind() Kind {
	if q.Kind == "" {
		return KindSingleChoice
	}
	return q.Kind
}

// Scored reports whether the question takes part in scoring and in
// completeness checks.
func (q Question) Scored() bool {
	return q.EffectiveKind() == KindSingleChoice
}

// EffectiveWeight returns the weight used for scoring.
func (q Question) EffectiveWeight() float64 {
	if q.Weight == 0 {
		return 1
	}
	return q.Weight
}

// Option returns the option whose value token matches value.
func (q Question) Option(value string) (Option, bool) {
	for _, o := range q.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}

// Answers maps a question ID to the value token of the selected option.
// Unanswered questions have no entry.
type Answers map[string]string

// Clone returns a copy of the answer set.
func (a Answers) Clone() Answers {
	out := make(Answers, len(a))
	for k, v := range a {
		out[k] = v
	}
	return out
}
