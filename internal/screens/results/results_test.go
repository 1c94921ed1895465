package results

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/store"
)

type mockResultRepo struct {
	saved []*store.Result
	err   error
}

func (m *mockResultRepo) Save(_ context.Context, r *store.Result) error {
	if m.err != nil {
		return m.err
	}
	r.ID = "result-1"
	m.saved = append(m.saved, r)
	return nil
}
func (m *mockResultRepo) Latest(context.Context, string) (*store.Result, error) { return nil, nil }
func (m *mockResultRepo) Get(context.Context, string) (*store.Result, error)    { return nil, nil }
func (m *mockResultRepo) List(context.Context, store.QueryOpts) ([]store.Result, error) {
	return nil, nil
}

// bestAnswers picks the highest scoring option for every question.
func bestAnswers(b *assessment.Bank) assessment.Answers {
	a := make(assessment.Answers)
	for _, q := range b.Questions {
		best := q.Options[0]
		for _, o := range q.Options {
			if o.Score > best.Score {
				best = o
			}
		}
		a[q.ID] = best.Value
	}
	return a
}

func TestResultsScreen_SavesOnInit(t *testing.T) {
	bank := assessment.Default()
	repo := &mockResultRepo{}
	s := New(bank, bestAnswers(bank), repo, "emp-1", nil)

	if s.Result() == nil || s.Result().Score != 100 {
		t.Fatalf("expected score 100, got %+v", s.Result())
	}

	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a save command")
	}
	s.Update(cmd())

	if len(repo.saved) != 1 {
		t.Fatalf("expected 1 saved result, got %d", len(repo.saved))
	}
	got := repo.saved[0]
	if got.RespondentID != "emp-1" || got.Score != 100 || got.BankVersion != bank.Version {
		t.Errorf("unexpected saved result: %+v", got)
	}
	if len(got.Answers) != len(bank.Questions) {
		t.Errorf("saved %d answers, want %d", len(got.Answers), len(bank.Questions))
	}
	if !s.saved {
		t.Error("screen should report the result as saved")
	}
	if !strings.Contains(s.View(100, 40), "Result saved") {
		t.Error("view should confirm the save")
	}
}

func TestResultsScreen_SaveError(t *testing.T) {
	bank := assessment.Default()
	s := New(bank, bestAnswers(bank), &mockResultRepo{err: errors.New("disk full")}, "emp-1", nil)
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 40), "disk full") {
		t.Error("view should show the save error")
	}
}

func TestResultsScreen_NoRepo(t *testing.T) {
	s := New(assessment.Default(), assessment.Answers{}, nil, "emp-1", nil)
	if s.Init() != nil {
		t.Error("no repo means nothing to save")
	}
	if !strings.Contains(s.View(100, 40), "Understanding Your Legacy") {
		t.Error("view should list assigned module titles")
	}
}

func TestResultsScreen_EnterPops(t *testing.T) {
	s := New(assessment.Default(), assessment.Answers{}, nil, "emp-1", nil)
	for _, key := range []tea.KeyPressMsg{{Code: tea.KeyEnter}, {Code: tea.KeyEscape}} {
		_, cmd := s.Update(key)
		if cmd == nil {
			t.Fatalf("expected a command for %s", key.String())
		}
		if _, ok := cmd().(router.PopScreenMsg); !ok {
			t.Errorf("expected PopScreenMsg for %s", key.String())
		}
	}
}
