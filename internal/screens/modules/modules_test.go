package modules

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/store"
)

type fixedResultRepo struct {
	result *store.Result
}

func (r fixedResultRepo) Save(context.Context, *store.Result) error { return nil }
func (r fixedResultRepo) Latest(context.Context, string) (*store.Result, error) {
	return r.result, nil
}
func (r fixedResultRepo) Get(context.Context, string) (*store.Result, error) { return r.result, nil }
func (r fixedResultRepo) List(context.Context, store.QueryOpts) ([]store.Result, error) {
	return nil, nil
}

type memProgressRepo struct {
	events []store.ProgressRecord
}

func (m *memProgressRepo) Append(_ context.Context, data store.ProgressEventData) error {
	m.events = append(m.events, store.ProgressRecord{
		Sequence:          int64(len(m.events) + 1),
		Timestamp:         time.Now(),
		ProgressEventData: data,
	})
	return nil
}
func (m *memProgressRepo) ByRespondent(_ context.Context, id string) ([]store.ProgressRecord, error) {
	var out []store.ProgressRecord
	for _, e := range m.events {
		if e.RespondentID == id {
			out = append(out, e)
		}
	}
	return out, nil
}
func (m *memProgressRepo) All(context.Context) ([]store.ProgressRecord, error) {
	return m.events, nil
}

func newTestService() (*progress.Service, *memProgressRepo) {
	repo := &memProgressRepo{}
	result := &store.Result{ID: "r1", RespondentID: "emp-1", Score: 55, Modules: []string{"module-1", "module-2"}}
	return progress.NewService(directory.Seed(), fixedResultRepo{result: result}, repo, nil), repo
}

func load(t *testing.T, s screen.Screen) {
	t.Helper()
	cmd := s.Init()
	if cmd == nil {
		t.Fatal("expected a load command")
	}
	s.Update(cmd())
}

func TestModulesScreen_ListsPlan(t *testing.T) {
	svc, _ := newTestService()
	s := New(svc, "emp-1")
	if !strings.Contains(s.View(100, 30), "Loading") {
		t.Error("expected loading view before summary arrives")
	}
	load(t, s)

	view := s.View(100, 30)
	for _, want := range []string{"Understanding Your Legacy", "Important Documents", "0/5 lessons"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if strings.Contains(view, "Digital Assets") {
		t.Error("unassigned, untouched modules should not be listed")
	}
}

func TestModulesScreen_NavigateAndOpen(t *testing.T) {
	svc, _ := newTestService()
	s := New(svc, "emp-1")
	load(t, s)

	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if s.cursor != 1 {
		t.Fatalf("cursor = %d, want 1 (clamped)", s.cursor)
	}

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected push command")
	}
	push, ok := cmd().(router.PushScreenMsg)
	if !ok {
		t.Fatalf("expected PushScreenMsg, got %T", cmd())
	}
	if push.Screen.Title() != "Important Documents & Information" {
		t.Errorf("detail title = %q", push.Screen.Title())
	}
}

func TestModulesScreen_ResumeReloads(t *testing.T) {
	svc, _ := newTestService()
	s := New(svc, "emp-1")
	load(t, s)

	if err := svc.Start(context.Background(), "emp-1", "module-1"); err != nil {
		t.Fatal(err)
	}
	_, cmd := s.Update(screen.ResumeMsg{})
	if cmd == nil {
		t.Fatal("resume should reload")
	}
	s.Update(cmd())
	if s.summary.InProgress != 1 {
		t.Errorf("in progress = %d, want 1", s.summary.InProgress)
	}
}

func TestDetailScreen_Lessons(t *testing.T) {
	svc, repo := newTestService()
	sum, err := svc.Summary(context.Background(), "emp-1")
	if err != nil {
		t.Fatal(err)
	}
	d := newDetail(svc, "emp-1", *sum.Module("module-1"))

	_, cmd := d.Update(tea.KeyPressMsg{Code: 'l', Text: "l"})
	if cmd == nil {
		t.Fatal("expected action command")
	}
	// Input is ignored while the action runs.
	if _, again := d.Update(tea.KeyPressMsg{Code: 'l', Text: "l"}); again != nil {
		t.Error("second key while busy should be ignored")
	}
	d.Update(cmd())

	if d.mp.Status != progress.InProgress || d.mp.LessonsCompleted != 1 {
		t.Errorf("got %s with %d lessons, want in progress with 1", d.mp.Status.Label(), d.mp.LessonsCompleted)
	}
	if !strings.Contains(d.View(100, 30), "Lesson 1 done") {
		t.Error("view should confirm the lesson")
	}
	if len(repo.events) != 2 {
		t.Errorf("events = %d, want start + lesson", len(repo.events))
	}

	_, cmd = d.Update(tea.KeyPressMsg{Code: 'c', Text: "c"})
	d.Update(cmd())
	if d.mp.Status != progress.Completed {
		t.Fatalf("status = %s, want completed", d.mp.Status.Label())
	}
	if _, cmd := d.Update(tea.KeyPressMsg{Code: 'l', Text: "l"}); cmd != nil {
		t.Error("completed module should not accept more lessons")
	}
	if len(d.KeyHints()) != 1 {
		t.Errorf("completed module hints = %d, want 1", len(d.KeyHints()))
	}
}
