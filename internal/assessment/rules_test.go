package assessment

import (
	"errors"
	"slices"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestAssign_FoundationOnlyWhenStrong(t *testing.T) {
	b := Default()
	got, err := b.Rules.Assign(100, allAnswered(b.Questions, best))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"module-1"}, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_WeakAnswersAddModulesInRuleOrder(t *testing.T) {
	b := Default()
	a := allAnswered(b.Questions, best)
	a["q4"] = "not_done"
	a["q1"] = "no_planned"
	a["q5"] = "thought_about"

	got, err := b.Rules.Assign(70, a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"module-1", "module-2", "module-3", "module-5"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_EmptyAnswersStillHasFoundation(t *testing.T) {
	for _, score := range []int{0, 29, 30, 55, 100} {
		got, err := Default().Rules.Assign(score, Answers{})
		if err != nil {
			t.Fatalf("score %d: unexpected error: %v", score, err)
		}
		if len(got) == 0 || got[0] != "module-1" {
			t.Errorf("score %d: modules = %v, want module-1 first", score, got)
		}
	}
}

func TestAssign_RemedialOverride(t *testing.T) {
	b := Default()
	want := []string{"module-1", "module-2", "module-3", "module-4", "module-5", "module-6"}

	// Strong answers do not matter below the threshold.
	for _, answers := range []Answers{{}, allAnswered(b.Questions, best), allAnswered(b.Questions, worst)} {
		got, err := b.Rules.Assign(29, answers)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if diff := cmp.Diff(want, got); diff != "" {
			t.Errorf("modules mismatch (-want +got):\n%s", diff)
		}
	}
}

func TestAssign_ThresholdIsExclusive(t *testing.T) {
	got, err := Default().Rules.Assign(30, Answers{"q1": "no_unsure"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"module-1", "module-2"}, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_RemedialIsACopy(t *testing.T) {
	b := Default()
	got, _ := b.Rules.Assign(0, nil)
	got[0] = "changed"
	again, _ := b.Rules.Assign(0, nil)
	if again[0] != "module-1" {
		t.Errorf("remedial list was mutated through a returned slice")
	}
}

func TestAssign_NoDuplicates(t *testing.T) {
	table := RuleTable{
		Foundation: "m1",
		Rules: []Rule{
			{Question: "a", Weak: []string{"x"}, Module: "m2"},
			{Question: "b", Weak: []string{"x"}, Module: "m2"},
			{Question: "c", Weak: []string{"x"}, Module: "m1"},
		},
		RemedialThreshold: 10,
		Remedial:          []string{"m1"},
		DefaultExtra:      "m2",
	}
	got, err := table.Assign(50, Answers{"a": "x", "b": "x", "c": "x"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"m1", "m2"}, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_DefaultExtra(t *testing.T) {
	table := Default().Rules
	table.DefaultExtra = "module-6"

	got, err := table.Assign(90, Answers{"q1": "no_unsure"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if diff := cmp.Diff([]string{"module-1", "module-2", "module-6"}, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}

	// Not appended twice when a rule already added it.
	got, _ = table.Assign(90, Answers{"q6": "not_yet"})
	if diff := cmp.Diff([]string{"module-1", "module-6"}, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}

	// The remedial list wins over the extra module.
	got, _ = table.Assign(10, nil)
	if diff := cmp.Diff(table.Remedial, got); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestAssign_RejectsInvalidTable(t *testing.T) {
	tests := []struct {
		name  string
		table RuleTable
	}{
		{"no foundation", RuleTable{Remedial: []string{""}}},
		{"remedial not led by foundation", RuleTable{Foundation: "m1", Remedial: []string{"m2", "m1"}}},
		{"remedial duplicate", RuleTable{Foundation: "m1", Remedial: []string{"m1", "m2", "m2"}}},
		{"rule without module", RuleTable{
			Foundation: "m1",
			Remedial:   []string{"m1"},
			Rules:      []Rule{{Question: "a", Weak: []string{"x"}}},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, score := range []int{0, 100} {
				got, err := tt.table.Assign(score, Answers{"a": "x"})
				if !errors.Is(err, ErrInvalidRules) {
					t.Errorf("Assign(%d) = %v, %v; want ErrInvalidRules", score, got, err)
				}
			}
		})
	}
}

func TestAssign_InvalidScore(t *testing.T) {
	for _, score := range []int{-1, 101, -100, 1000} {
		_, err := Default().Rules.Assign(score, nil)
		if !errors.Is(err, ErrInvalidScore) {
			t.Errorf("Assign(%d) error = %v, want ErrInvalidScore", score, err)
		}
	}
}

func TestRuleTable_Modules(t *testing.T) {
	want := []string{"module-1", "module-2", "module-4", "module-3", "module-5", "module-6"}
	if diff := cmp.Diff(want, Default().Rules.Modules()); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_ScoreThenModules(t *testing.T) {
	b := Default()
	a := allAnswered(b.Questions, best)
	a["q2"] = "not_started"
	a["q6"] = "brief"

	res, err := b.Evaluate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// (145 - 20 - 15 + 6) / 145
	if res.Score != 80 {
		t.Errorf("score = %d, want 80", res.Score)
	}
	if res.Answered != len(b.Questions) {
		t.Errorf("answered = %d, want %d", res.Answered, len(b.Questions))
	}
	if diff := cmp.Diff([]string{"module-1", "module-4", "module-6"}, res.Modules); diff != "" {
		t.Errorf("modules mismatch (-want +got):\n%s", diff)
	}
}

func TestEvaluate_LowScoreGetsRemedial(t *testing.T) {
	b := Default()
	a := allAnswered(b.Questions, worst)
	a["q10"] = "very"

	res, err := b.Evaluate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Score != 7 {
		t.Errorf("score = %d, want 7", res.Score)
	}
	if !slices.Equal(res.Modules, b.Rules.Remedial) {
		t.Errorf("modules = %v, want remedial %v", res.Modules, b.Rules.Remedial)
	}
}

func TestEvaluate_ConcurrentCallers(t *testing.T) {
	b := Default()
	a := allAnswered(b.Questions, best)
	a["q1"] = "no_planned"

	want, err := b.Evaluate(a)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var wg sync.WaitGroup
	errs := make(chan string, 16)
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			got, err := b.Evaluate(a)
			if err != nil || got.Score != want.Score || !slices.Equal(got.Modules, want.Modules) {
				errs <- "concurrent evaluation diverged"
			}
		}()
	}
	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
