package components

import (
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/ui/theme"
)

// MenuItem is one entry of a Menu. Disabled items are shown but skipped by
// the cursor.
type MenuItem struct {
	Label    string
	Action   func() tea.Cmd
	Disabled bool
}

// Menu is a vertical list of actions.
type Menu struct {
	Items    []MenuItem
	Selected int
}

var menuKeys = struct {
	Up, Down, Choose key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Choose: key.NewBinding(key.WithKeys("enter")),
}

var (
	menuCursor = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	menuItem   = lipgloss.NewStyle().Foreground(theme.Text)
	menuOff    = lipgloss.NewStyle().Foreground(theme.TextDim)
)

// NewMenu places the cursor on the first enabled item.
func NewMenu(items []MenuItem) Menu {
	m := Menu{Items: items, Selected: -1}
	m.move(1)
	if m.Selected < 0 {
		m.Selected = 0
	}
	return m
}

// move steps the cursor in direction step to the next enabled item, staying
// put when there is none.
func (m *Menu) move(step int) {
	for i := m.Selected + step; i >= 0 && i < len(m.Items); i += step {
		if !m.Items[i].Disabled {
			m.Selected = i
			return
		}
	}
}

func (m Menu) Update(msg tea.Msg) (Menu, tea.Cmd) {
	kp, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	switch {
	case key.Matches(kp, menuKeys.Up):
		m.move(-1)
	case key.Matches(kp, menuKeys.Down):
		m.move(1)
	case key.Matches(kp, menuKeys.Choose):
		if m.Selected >= 0 && m.Selected < len(m.Items) {
			if it := m.Items[m.Selected]; it.Action != nil && !it.Disabled {
				return m, it.Action()
			}
		}
	}
	return m, nil
}

func (m Menu) View() string {
	var b strings.Builder
	for i, it := range m.Items {
		switch {
		case i == m.Selected:
			b.WriteString(menuCursor.Render("  ▸ " + it.Label))
		case it.Disabled:
			b.WriteString(menuOff.Render("    " + it.Label))
		default:
			b.WriteString(menuItem.Render("    " + it.Label))
		}
		b.WriteByte('\n')
	}
	return b.String()
}
