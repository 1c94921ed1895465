package history

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/store"
)

type listRepo struct {
	results []store.Result
	err     error
	opts    store.QueryOpts
}

func (r *listRepo) Save(context.Context, *store.Result) error               { return nil }
func (r *listRepo) Latest(context.Context, string) (*store.Result, error) { return nil, nil }
func (r *listRepo) Get(context.Context, string) (*store.Result, error)    { return nil, nil }
func (r *listRepo) List(_ context.Context, opts store.QueryOpts) ([]store.Result, error) {
	r.opts = opts
	return r.results, r.err
}

func TestHistoryScreen_Loads(t *testing.T) {
	repo := &listRepo{results: []store.Result{
		{ID: "b", Score: 82, Modules: []string{"module-1"}, Timestamp: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)},
		{ID: "a", Score: 25, Modules: []string{"module-1", "module-2"}, Timestamp: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC)},
	}}
	s := New(repo, "emp-1")
	s.Update(s.Init()())

	if repo.opts.RespondentID != "emp-1" || repo.opts.Limit != historyLimit {
		t.Errorf("unexpected query opts: %+v", repo.opts)
	}
	view := s.View(100, 30)
	if !strings.Contains(view, "score  82") || !strings.Contains(view, "Feb 01, 2026") {
		t.Errorf("view missing results:\n%s", view)
	}
	if !strings.Contains(view, "+57") {
		t.Errorf("view missing score change:\n%s", view)
	}

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !strings.Contains(s.View(100, 30), "Important Documents & Information") {
		t.Error("expanded result should list module titles")
	}
}

func TestHistoryScreen_Empty(t *testing.T) {
	s := New(&listRepo{}, "emp-1")
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "No assessments yet") {
		t.Error("expected empty state")
	}
}

func TestHistoryScreen_Error(t *testing.T) {
	s := New(&listRepo{err: errors.New("db locked")}, "emp-1")
	s.Update(s.Init()())
	if !strings.Contains(s.View(100, 30), "db locked") {
		t.Error("expected error message")
	}
}

func TestHistoryScreen_EscPops(t *testing.T) {
	s := New(&listRepo{}, "emp-1")
	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Fatal("expected pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}
