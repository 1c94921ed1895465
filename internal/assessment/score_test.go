package assessment

import (
	"math/rand/v2"
	"testing"
)

// equalQuestions builds n equally weighted questions with a best (10) and
// worst (0) option each.
func equalQuestions(n int) []Question {
	qs := make([]Question, n)
	for i := range qs {
		id := "e" + string(rune('1'+i))
		qs[i] = Question{
			ID:    id,
			Order: i + 1,
			Kind:  KindSingleChoice,
			Options: []Option{
				{ID: id + "-a", Value: "best", Score: 10},
				{ID: id + "-b", Value: "mid", Score: 1},
				{ID: id + "-c", Value: "worst", Score: 0},
			},
		}
	}
	return qs
}

func allAnswered(questions []Question, pick func(Question) string) Answers {
	a := make(Answers, len(questions))
	for _, q := range questions {
		a[q.ID] = pick(q)
	}
	return a
}

func best(q Question) string {
	top := q.Options[0]
	for _, o := range q.Options {
		if o.Score > top.Score {
			top = o
		}
	}
	return top.Value
}

func worst(q Question) string {
	low := q.Options[0]
	for _, o := range q.Options {
		if o.Score < low.Score {
			low = o
		}
	}
	return low.Value
}

func TestComputeScore_AllBestIs100(t *testing.T) {
	qs := Default().Questions
	if got := ComputeScore(qs, allAnswered(qs, best)); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestComputeScore_AllWorstIs0(t *testing.T) {
	qs := Default().Questions
	if got := ComputeScore(qs, allAnswered(qs, worst)); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestComputeScore_EmptyAnswers(t *testing.T) {
	if got := ComputeScore(Default().Questions, Answers{}); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
	if got := ComputeScore(Default().Questions, nil); got != 0 {
		t.Errorf("score (nil answers) = %d, want 0", got)
	}
	if got := ComputeScore(nil, Answers{"q1": "yes_recent"}); got != 0 {
		t.Errorf("score (no questions) = %d, want 0", got)
	}
}

func TestComputeScore_Scenarios(t *testing.T) {
	qs := equalQuestions(5)

	tests := []struct {
		name    string
		answers Answers
		want    int
	}{
		{
			name:    "four best one worst",
			answers: Answers{"e1": "best", "e2": "best", "e3": "best", "e4": "best", "e5": "worst"},
			want:    80,
		},
		{
			name:    "first two worst",
			answers: Answers{"e1": "worst", "e2": "worst", "e3": "best", "e4": "best", "e5": "best"},
			want:    60,
		},
		{
			name:    "only two answered",
			answers: Answers{"e1": "best", "e2": "best"},
			want:    100,
		},
		{
			name:    "unknown value treated as unanswered",
			answers: Answers{"e1": "best", "e2": "bogus"},
			want:    100,
		},
		{
			name:    "unknown question ignored",
			answers: Answers{"e1": "worst", "zz": "best"},
			want:    0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ComputeScore(qs, tt.answers); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeScore_RoundsHalfAwayFromZero(t *testing.T) {
	// 100 * 1 / 40 = 2.5
	qs := equalQuestions(4)
	a := Answers{"e1": "mid", "e2": "worst", "e3": "worst", "e4": "worst"}
	if got := ComputeScore(qs, a); got != 3 {
		t.Errorf("score = %d, want 3", got)
	}
}

func TestComputeScore_Weighted(t *testing.T) {
	qs := Default().Questions

	tests := []struct {
		name      string
		overrides Answers
		want      int
	}{
		// 125 / 145
		{"no will", Answers{"q1": "no_unsure"}, 86},
		// (145 - 20 - 10 - 15 + 6 + 0 + 4.5) / 145
		{"several gaps", Answers{"q2": "started", "q5": "not_considered", "q4": "discussed"}, 76},
		// q9 weight 0.5: (145 - 5) / 145
		{"low weight gap", Answers{"q9": "no_plan"}, 97},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := allAnswered(qs, best)
			for k, v := range tt.overrides {
				a[k] = v
			}
			if got := ComputeScore(qs, a); got != tt.want {
				t.Errorf("score = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestComputeScore_DefaultWeightIsOne(t *testing.T) {
	qs := equalQuestions(2)
	qs[1].Weight = 1
	a := Answers{"e1": "best", "e2": "worst"}
	if got := ComputeScore(qs, a); got != 50 {
		t.Errorf("score = %d, want 50", got)
	}
}

func TestComputeScore_SkipsNonSingleChoice(t *testing.T) {
	qs := equalQuestions(2)
	qs[1].Kind = KindMultipleChoice
	a := Answers{"e1": "best", "e2": "worst"}
	if got := ComputeScore(qs, a); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
}

func TestComputeScore_UnsetKindIsSingleChoice(t *testing.T) {
	qs := []Question{{ID: "a", Options: []Option{{Value: "best", Score: 10}, {Value: "worst", Score: 0}}}}
	if got := ComputeScore(qs, Answers{"a": "best"}); got != 100 {
		t.Errorf("score = %d, want 100", got)
	}
	if got := ComputeScore(qs, Answers{"a": "worst"}); got != 0 {
		t.Errorf("score = %d, want 0", got)
	}
}

func TestComputeScore_OrderIndependent(t *testing.T) {
	qs := Default().Questions
	a := Answers{"q1": "yes_old", "q3": "some_know", "q4": "not_done", "q8": "most", "q10": "not_very"}
	want := ComputeScore(qs, a)

	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 20; i++ {
		shuffled := make([]Question, len(qs))
		copy(shuffled, qs)
		r.Shuffle(len(shuffled), func(i, j int) {
			shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
		})
		if got := ComputeScore(shuffled, a.Clone()); got != want {
			t.Fatalf("shuffle %d: score = %d, want %d", i, got, want)
		}
	}
}

func TestComputeScore_DoesNotMutateAnswers(t *testing.T) {
	a := Answers{"q1": "yes_recent", "q2": "bogus"}
	ComputeScore(Default().Questions, a)
	if len(a) != 2 || a["q2"] != "bogus" {
		t.Errorf("answers mutated: %v", a)
	}
}

func TestBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{0, "Getting started"},
		{39, "Getting started"},
		{40, "Making progress"},
		{69, "Making progress"},
		{70, "Well prepared"},
		{100, "Well prepared"},
	}
	for _, tt := range tests {
		if got := Band(tt.score); got != tt.want {
			t.Errorf("Band(%d) = %q, want %q", tt.score, got, tt.want)
		}
	}
}
