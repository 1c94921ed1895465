package home

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/screens/assess"
	"github.com/endevo/legacyready/internal/screens/chat"
	"github.com/endevo/legacyready/internal/screens/history"
	"github.com/endevo/legacyready/internal/screens/modules"
	"github.com/endevo/legacyready/internal/store"
)

type resultRepo struct {
	latest *store.Result
}

func (r *resultRepo) Save(_ context.Context, res *store.Result) error {
	r.latest = res
	return nil
}
func (r *resultRepo) Latest(context.Context, string) (*store.Result, error) { return r.latest, nil }
func (r *resultRepo) Get(context.Context, string) (*store.Result, error)    { return r.latest, nil }
func (r *resultRepo) List(context.Context, store.QueryOpts) ([]store.Result, error) {
	return nil, nil
}

type progressRepo struct {
	events []store.ProgressRecord
}

func (p *progressRepo) Append(_ context.Context, data store.ProgressEventData) error {
	p.events = append(p.events, store.ProgressRecord{Sequence: int64(len(p.events) + 1), Timestamp: time.Now(), ProgressEventData: data})
	return nil
}
func (p *progressRepo) ByRespondent(context.Context, string) ([]store.ProgressRecord, error) {
	return p.events, nil
}
func (p *progressRepo) All(context.Context) ([]store.ProgressRecord, error) { return p.events, nil }

func newTestHome(t *testing.T) (*HomeScreen, *resultRepo) {
	t.Helper()
	dir := directory.Seed()
	emp, err := dir.Employee("emp-1")
	if err != nil {
		t.Fatal(err)
	}
	results := &resultRepo{}
	svc := progress.NewService(dir, results, &progressRepo{}, nil)
	h := New(Deps{
		Employee: emp,
		Bank:     assessment.Default(),
		Results:  results,
		Progress: svc,
	})
	h.Update(h.Init()())
	return h, results
}

func selectItem(h *HomeScreen, item int) tea.Cmd {
	for h.menu.Selected > 0 {
		h.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	}
	for i := 0; i < item; i++ {
		h.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	}
	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	return cmd
}

func TestHomeScreen_MenuOpensScreens(t *testing.T) {
	h, _ := newTestHome(t)

	tests := []struct {
		item  int
		check func(screen.Screen) bool
	}{
		{itemAssess, func(s screen.Screen) bool { _, ok := s.(*assess.AssessScreen); return ok }},
		{itemModules, func(s screen.Screen) bool { _, ok := s.(*modules.ModulesScreen); return ok }},
		{itemHistory, func(s screen.Screen) bool { _, ok := s.(*history.HistoryScreen); return ok }},
		{itemCoach, func(s screen.Screen) bool { _, ok := s.(*chat.ChatScreen); return ok }},
	}
	for _, tt := range tests {
		cmd := selectItem(h, tt.item)
		if cmd == nil {
			t.Fatalf("item %d: expected a command", tt.item)
		}
		push, ok := cmd().(router.PushScreenMsg)
		if !ok {
			t.Fatalf("item %d: expected PushScreenMsg", tt.item)
		}
		if !tt.check(push.Screen) {
			t.Errorf("item %d: unexpected screen %T", tt.item, push.Screen)
		}
	}
}

func TestHomeScreen_NoResultYet(t *testing.T) {
	h, _ := newTestHome(t)

	if h.Status() != "Jane Doe" {
		t.Errorf("Status = %q, want name only", h.Status())
	}
	if emblemFor(h.Summary()) != EmblemStart {
		t.Error("expected start emblem before the assessment")
	}
	view := h.View(120, 40)
	for _, want := range []string{"TAKE ASSESSMENT", "Start with the Peace of Mind Assessment", "built-in help topics"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestHomeScreen_ResumeRefreshes(t *testing.T) {
	h, results := newTestHome(t)
	results.latest = &store.Result{ID: "r1", RespondentID: "emp-1", Score: 64, Modules: []string{"module-1", "module-4"}}

	_, cmd := h.Update(screen.ResumeMsg{})
	if cmd == nil {
		t.Fatal("resume should reload the summary")
	}
	h.Update(cmd())

	if h.Status() != "Jane Doe · 64/100" {
		t.Errorf("Status = %q", h.Status())
	}
	if h.menu.Items[itemAssess].Label != "RETAKE ASSESSMENT" {
		t.Errorf("label = %q, want RETAKE ASSESSMENT", h.menu.Items[itemAssess].Label)
	}
	if emblemFor(h.Summary()) != EmblemLearning {
		t.Error("expected learning emblem once a plan exists")
	}
	if !strings.Contains(h.View(120, 40), "Up next: Understanding Your Legacy") {
		t.Error("expected next module hint")
	}
}

func TestHomeScreen_CompactView(t *testing.T) {
	h, _ := newTestHome(t)
	h.deps.LatestVersion = "v1.2.0"
	view := h.View(80, 18)
	if !strings.Contains(view, "L E G A C Y") {
		t.Error("expected compact title")
	}
	if !strings.Contains(view, "New version v1.2.0 available") {
		t.Error("expected update note")
	}
}

func TestHomeScreen_Exit(t *testing.T) {
	h, _ := newTestHome(t)
	cmd := selectItem(h, itemExit)
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("expected QuitMsg, got %T", cmd())
	}
}
