package store

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.ReplaceAll(t.Name(), "/", "_")
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.Client() == nil {
		t.Fatal("expected non-nil ent client")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// journal_mode reports "memory" for in-memory databases.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestAutoMigrationCreatesTables(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	for _, table := range []string{"assessment_events", "progress_events", "llm_request_events", "global_sequence"} {
		var name string
		err := db.QueryRow(
			"SELECT name FROM sqlite_master WHERE type='table' AND name=?", table,
		).Scan(&name)
		if err != nil {
			t.Errorf("table %s: %v", table, err)
		}
	}
}

func TestSequenceCounter(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sc, err := newSequenceCounter(s.DB())
	if err != nil {
		t.Fatalf("new sequence counter: %v", err)
	}

	var seqs []int64
	for i := 0; i < 5; i++ {
		seq, err := sc.Next(ctx)
		if err != nil {
			t.Fatalf("next %d: %v", i, err)
		}
		seqs = append(seqs, seq)
	}

	for i, seq := range seqs {
		expected := int64(i + 1)
		if seq != expected {
			t.Errorf("seq[%d] = %d, want %d", i, seq, expected)
		}
	}
}

func TestResultSaveAndLatest(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	res, err := repo.Latest(ctx, "emp-1")
	if err != nil {
		t.Fatalf("latest (empty): %v", err)
	}
	if res != nil {
		t.Fatal("expected nil result when none exist")
	}

	first := &Result{
		RespondentID: "emp-1",
		Score:        25,
		Modules:      []string{"module-1", "module-2"},
		Answers:      map[string]string{"q1": "no_unsure"},
		BankVersion:  "v1",
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.ID == "" {
		t.Fatal("expected generated result ID")
	}
	if first.Sequence == 0 {
		t.Fatal("expected sequence to be assigned")
	}

	second := &Result{RespondentID: "emp-1", Score: 80, Modules: []string{"module-1"}}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	res, err = repo.Latest(ctx, "emp-1")
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if res.ID != second.ID || res.Score != 80 {
		t.Errorf("latest = %s/%d, want %s/80", res.ID, res.Score, second.ID)
	}

	got, err := repo.Get(ctx, first.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !slices.Equal(got.Modules, first.Modules) {
		t.Errorf("modules = %v, want %v", got.Modules, first.Modules)
	}
	if got.Answers["q1"] != "no_unsure" {
		t.Errorf("answers[q1] = %q, want no_unsure", got.Answers["q1"])
	}

	missing, err := repo.Get(ctx, "nope")
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Error("expected nil for unknown result ID")
	}
}

func TestResultSaveRequiresRespondent(t *testing.T) {
	s := openTestStore(t)
	if err := s.ResultRepo().Save(context.Background(), &Result{Score: 10}); err == nil {
		t.Fatal("expected error for missing respondent")
	}
}

func TestResultList(t *testing.T) {
	s := openTestStore(t)
	repo := s.ResultRepo()
	ctx := context.Background()

	for i, who := range []string{"emp-1", "emp-2", "emp-1", "emp-3"} {
		if err := repo.Save(ctx, &Result{RespondentID: who, Score: i * 10}); err != nil {
			t.Fatalf("save %d: %v", i, err)
		}
	}

	all, err := repo.List(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(all) != 4 {
		t.Fatalf("len = %d, want 4", len(all))
	}
	if all[0].RespondentID != "emp-3" {
		t.Errorf("first = %s, want newest (emp-3)", all[0].RespondentID)
	}

	mine, err := repo.List(ctx, QueryOpts{RespondentID: "emp-1"})
	if err != nil {
		t.Fatalf("list emp-1: %v", err)
	}
	if len(mine) != 2 {
		t.Errorf("emp-1 results = %d, want 2", len(mine))
	}

	limited, err := repo.List(ctx, QueryOpts{Limit: 1})
	if err != nil {
		t.Fatalf("list limit: %v", err)
	}
	if len(limited) != 1 {
		t.Errorf("limited = %d, want 1", len(limited))
	}

	after, err := repo.List(ctx, QueryOpts{After: all[1].Sequence})
	if err != nil {
		t.Fatalf("list after: %v", err)
	}
	if len(after) != 1 || after[0].Sequence != all[0].Sequence {
		t.Errorf("after = %+v, want only the newest", after)
	}
}

func TestProgressAppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.ProgressRepo()
	ctx := context.Background()

	events := []ProgressEventData{
		{RespondentID: "emp-1", ModuleID: "module-1", Action: ActionStart},
		{RespondentID: "emp-2", ModuleID: "module-1", Action: ActionStart},
		{RespondentID: "emp-1", ModuleID: "module-1", Action: ActionLesson, LessonsCompleted: 1},
		{RespondentID: "emp-1", ModuleID: "module-1", Action: ActionComplete, LessonsCompleted: 4},
	}
	for i, e := range events {
		if err := repo.Append(ctx, e); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	mine, err := repo.ByRespondent(ctx, "emp-1")
	if err != nil {
		t.Fatalf("by respondent: %v", err)
	}
	if len(mine) != 3 {
		t.Fatalf("len = %d, want 3", len(mine))
	}
	wantActions := []ProgressAction{ActionStart, ActionLesson, ActionComplete}
	for i, rec := range mine {
		if rec.Action != wantActions[i] {
			t.Errorf("event %d action = %s, want %s", i, rec.Action, wantActions[i])
		}
		if i > 0 && rec.Sequence <= mine[i-1].Sequence {
			t.Errorf("event %d sequence %d not after %d", i, rec.Sequence, mine[i-1].Sequence)
		}
	}

	all, err := repo.All(ctx)
	if err != nil {
		t.Fatalf("all: %v", err)
	}
	if len(all) != 4 {
		t.Errorf("all = %d, want 4", len(all))
	}
}

func TestProgressAppendRejectsUnknownAction(t *testing.T) {
	s := openTestStore(t)
	err := s.ProgressRepo().Append(context.Background(), ProgressEventData{
		RespondentID: "emp-1", ModuleID: "module-1", Action: "pause",
	})
	if err == nil {
		t.Fatal("expected error for unknown action")
	}
}

func TestLLMEvents(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	data := []LLMRequestEventData{
		{Provider: "mock", Model: "m-a", Purpose: "coach", InputTokens: 10, OutputTokens: 5, LatencyMs: 100, Success: true, RequestBody: "{}", ResponseBody: `{"reply":"hi"}`},
		{Provider: "mock", Model: "m-a", Purpose: "coach", InputTokens: 20, OutputTokens: 5, LatencyMs: 300, Success: true},
		{Provider: "mock", Model: "m-b", Purpose: "summary", InputTokens: 1, OutputTokens: 1, LatencyMs: 50, Success: false, ErrorMessage: "boom"},
	}
	for i, d := range data {
		if err := repo.AppendLLMRequest(ctx, d); err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("len = %d, want 2", len(events))
	}
	if events[0].Purpose != "summary" {
		t.Errorf("newest purpose = %s, want summary", events[0].Purpose)
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query all: %v", err)
	}
	oldest := all[len(all)-1]
	got, err := repo.GetLLMEvent(ctx, oldest.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.ResponseBody != `{"reply":"hi"}` {
		t.Errorf("response body = %q", got.ResponseBody)
	}

	none, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if none != nil {
		t.Error("expected nil for unknown event")
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("purposes = %d, want 2", len(byPurpose))
	}
	coach := byPurpose[0]
	if coach.Purpose != "coach" || coach.Calls != 2 || coach.InputTokens != 30 || coach.AvgLatencyMs != 200 {
		t.Errorf("coach usage = %+v", coach)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[0].Model != "m-a" || byModel[0].OutputTokens != 10 {
		t.Errorf("model usage = %+v", byModel)
	}
}

func TestResetRespondent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"emp-1", "emp-2"} {
		if err := s.ResultRepo().Save(ctx, &Result{RespondentID: id, Score: 50, Modules: []string{"module-1"}}); err != nil {
			t.Fatalf("save %s: %v", id, err)
		}
		if err := s.ProgressRepo().Append(ctx, ProgressEventData{RespondentID: id, ModuleID: "module-1", Action: ActionStart}); err != nil {
			t.Fatalf("append %s: %v", id, err)
		}
	}

	n, err := s.ResetRespondent(ctx, "emp-1")
	if err != nil {
		t.Fatalf("reset: %v", err)
	}
	if n != 2 {
		t.Errorf("removed = %d, want 2", n)
	}

	if res, _ := s.ResultRepo().Latest(ctx, "emp-1"); res != nil {
		t.Error("expected emp-1 result to be deleted")
	}
	if res, _ := s.ResultRepo().Latest(ctx, "emp-2"); res == nil {
		t.Error("expected emp-2 result to survive")
	}
	if recs, _ := s.ProgressRepo().ByRespondent(ctx, "emp-1"); len(recs) != 0 {
		t.Errorf("emp-1 progress = %d events, want 0", len(recs))
	}
	if recs, _ := s.ProgressRepo().ByRespondent(ctx, "emp-2"); len(recs) != 1 {
		t.Errorf("emp-2 progress = %d events, want 1", len(recs))
	}
}
