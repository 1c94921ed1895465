package assess

import (
	"context"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screens/results"
	"github.com/endevo/legacyready/internal/store"
)

type nopResultRepo struct{}

func (nopResultRepo) Save(context.Context, *store.Result) error               { return nil }
func (nopResultRepo) Latest(context.Context, string) (*store.Result, error) { return nil, nil }
func (nopResultRepo) Get(context.Context, string) (*store.Result, error)    { return nil, nil }
func (nopResultRepo) List(context.Context, store.QueryOpts) ([]store.Result, error) {
	return nil, nil
}

var (
	enter = tea.KeyPressMsg{Code: tea.KeyEnter}
	left  = tea.KeyPressMsg{Code: tea.KeyLeft}
	right = tea.KeyPressMsg{Code: tea.KeyRight}
	esc   = tea.KeyPressMsg{Code: tea.KeyEscape}
)

func newTestScreen() *AssessScreen {
	return New(assessment.Default(), nopResultRepo{}, "emp-1", nil)
}

func TestAnswerAdvances(t *testing.T) {
	s := newTestScreen()
	bank := assessment.Default()

	s.Update(enter)
	if s.Index() != 1 {
		t.Fatalf("index = %d, want 1", s.Index())
	}
	got := s.Answers()[bank.Questions[0].ID]
	if got != bank.Questions[0].Options[0].Value {
		t.Errorf("answer = %q, want first option", got)
	}
}

func TestNumberKeyAnswers(t *testing.T) {
	s := newTestScreen()
	bank := assessment.Default()

	s.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if got := s.Answers()[bank.Questions[0].ID]; got != bank.Questions[0].Options[1].Value {
		t.Errorf("answer = %q, want second option", got)
	}
}

func TestNextBlockedUntilAnswered(t *testing.T) {
	s := newTestScreen()
	s.Update(right)
	if s.Index() != 0 {
		t.Errorf("next should be blocked on an unanswered question, index = %d", s.Index())
	}
}

func TestBackKeepsAnswer(t *testing.T) {
	s := newTestScreen()
	s.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	s.Update(enter)
	s.Update(left)

	if s.Index() != 0 {
		t.Fatalf("index = %d, want 0", s.Index())
	}
	if s.choice.Marked != 1 || s.choice.Selected != 1 {
		t.Errorf("previous answer should be restored, got marked=%d selected=%d", s.choice.Marked, s.choice.Selected)
	}

	// Already answered, so next moves forward without re-answering.
	s.Update(right)
	if s.Index() != 1 {
		t.Errorf("index = %d, want 1", s.Index())
	}

	s.Update(left)
	s.Update(left)
	if s.Index() != 0 {
		t.Errorf("back on the first question should stay put, index = %d", s.Index())
	}
}

func TestCompleteReplacesWithResults(t *testing.T) {
	s := newTestScreen()
	total := len(assessment.Default().Questions)

	var cmd tea.Cmd
	for i := 0; i < total; i++ {
		_, cmd = s.Update(enter)
	}
	if cmd == nil {
		t.Fatal("expected a command after the last answer")
	}
	msg, ok := cmd().(router.ReplaceScreenMsg)
	if !ok {
		t.Fatalf("expected ReplaceScreenMsg, got %T", cmd())
	}
	rs, ok := msg.Screen.(*results.ResultsScreen)
	if !ok {
		t.Fatalf("expected results screen, got %T", msg.Screen)
	}
	if rs.Result() == nil {
		t.Fatal("results screen should carry an evaluated result")
	}
	if len(s.Answers()) != total {
		t.Errorf("answered %d, want %d", len(s.Answers()), total)
	}

	// Further input is ignored once finished.
	if _, cmd := s.Update(enter); cmd != nil {
		t.Error("finished screen should ignore enter")
	}
}

func TestEscWithoutAnswersPops(t *testing.T) {
	s := newTestScreen()
	_, cmd := s.Update(esc)
	if cmd == nil {
		t.Fatal("expected pop")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestEscConfirmsQuit(t *testing.T) {
	s := newTestScreen()
	s.Update(enter)

	_, cmd := s.Update(esc)
	if cmd != nil || !s.confirmQuit {
		t.Fatal("esc with answers should ask for confirmation")
	}
	if hints := s.KeyHints(); len(hints) != 2 {
		t.Errorf("confirm hints = %d, want 2", len(hints))
	}

	s.Update(tea.KeyPressMsg{Code: 'n', Text: "n"})
	if s.confirmQuit {
		t.Fatal("n should cancel")
	}

	s.Update(esc)
	_, cmd = s.Update(tea.KeyPressMsg{Code: 'y', Text: "y"})
	if cmd == nil {
		t.Fatal("y should leave")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg, got %T", cmd())
	}
}

func TestView(t *testing.T) {
	s := newTestScreen()
	if s.View(100, 40) == "" {
		t.Error("expected non-empty view")
	}
	if !s.InterceptsBack() {
		t.Error("assessment handles esc itself")
	}
}
