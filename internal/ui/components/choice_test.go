package components

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
)

func TestChoice_NavigateAndPick(t *testing.T) {
	c := NewChoice("Do you have a will?", []string{"Yes", "No", "Unsure"}, -1)

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	if c.Selected != 2 {
		t.Fatalf("Selected = %d, want 2 (clamped)", c.Selected)
	}
	if c.Submitted {
		t.Fatal("should not be submitted before enter")
	}

	c, _ = c.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if !c.Submitted || c.Picked != 2 {
		t.Errorf("got submitted=%v picked=%d, want true/2", c.Submitted, c.Picked)
	}
}

func TestChoice_NumberKey(t *testing.T) {
	c := NewChoice("q", []string{"a", "b", "c"}, -1)
	c, _ = c.Update(tea.KeyPressMsg{Code: '2', Text: "2"})
	if !c.Submitted || c.Picked != 1 {
		t.Errorf("got submitted=%v picked=%d, want true/1", c.Submitted, c.Picked)
	}

	c = NewChoice("q", []string{"a", "b"}, -1)
	c, _ = c.Update(tea.KeyPressMsg{Code: '9', Text: "9"})
	if c.Submitted {
		t.Error("out of range number should be ignored")
	}
}

func TestChoice_MarkedStartsCursor(t *testing.T) {
	c := NewChoice("q", []string{"a", "b", "c"}, 1)
	if c.Selected != 1 || c.Marked != 1 {
		t.Errorf("got selected=%d marked=%d, want 1/1", c.Selected, c.Marked)
	}
	if !strings.Contains(c.View(), "✓") {
		t.Error("view should mark the recorded answer")
	}

	c = NewChoice("q", []string{"a"}, 5)
	if c.Marked != -1 || c.Selected != 0 {
		t.Errorf("invalid mark should be dropped, got selected=%d marked=%d", c.Selected, c.Marked)
	}
}

func TestMenu_SkipsDisabled(t *testing.T) {
	called := ""
	m := NewMenu([]MenuItem{
		{Label: "Off", Disabled: true},
		{Label: "One", Action: func() tea.Cmd { called = "one"; return nil }},
		{Label: "Two", Action: func() tea.Cmd { called = "two"; return nil }},
	})
	if m.Selected != 1 {
		t.Fatalf("Selected = %d, want first enabled item", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyUp})
	if m.Selected != 1 {
		t.Errorf("up should not land on a disabled item, got %d", m.Selected)
	}

	m, _ = m.Update(tea.KeyPressMsg{Code: tea.KeyDown})
	m.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if called != "two" {
		t.Errorf("called = %q, want two", called)
	}
}
