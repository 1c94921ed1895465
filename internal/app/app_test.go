package app

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screens/assess"
	"github.com/endevo/legacyready/internal/screens/welcome"
)

func TestNewAppModel_StartScreen(t *testing.T) {
	m := newAppModel(Options{})
	if _, ok := m.router.Active().(*welcome.WelcomeScreen); !ok {
		t.Errorf("expected welcome screen, got %T", m.router.Active())
	}
}

func TestUpdate_EscPopsUnlessIntercepted(t *testing.T) {
	m := newAppModel(Options{})
	esc := tea.KeyPressMsg{Code: tea.KeyEscape}

	if _, cmd := m.Update(esc); cmd != nil {
		t.Error("esc at the bottom of the stack should do nothing")
	}

	m.router.Push(assess.New(assessment.Default(), nil, "emp-1", nil))
	_, cmd := m.Update(esc)
	if cmd == nil {
		t.Fatal("assessment should receive esc")
	}
	// No answers yet, so the assessment itself asks to be popped.
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Errorf("expected PopScreenMsg from the assessment, got %T", cmd())
	}
}

func TestView_TracksWindowSize(t *testing.T) {
	m := newAppModel(Options{})
	updated, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 10})
	am := updated.(AppModel)
	if am.width != 40 || am.height != 10 {
		t.Fatalf("size = %dx%d, want 40x10", am.width, am.height)
	}
	_ = am.View()
}

func TestFooterHints(t *testing.T) {
	m := newAppModel(Options{})
	if got := m.footerHints(); len(got) != 3 || got[0].Description != "Navigate" {
		t.Errorf("root hints = %+v", got)
	}

	m.router.Push(welcome.New("", nil))
	got := m.footerHints()
	if len(got) != 2 || got[0].Key != "Esc" || got[1] != quitHint {
		t.Errorf("nested hints = %+v", got)
	}
}
