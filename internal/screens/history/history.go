// Package history lists a learner's past assessment results, newest first,
// with the change in score against the result before each one.
package history

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"charm.land/lipgloss/v2/table"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/store"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

const historyLimit = 50

var keys = struct {
	Up, Down, Toggle, Back key.Binding
}{
	Up:     key.NewBinding(key.WithKeys("up", "k")),
	Down:   key.NewBinding(key.WithKeys("down", "j")),
	Toggle: key.NewBinding(key.WithKeys("enter")),
	Back:   key.NewBinding(key.WithKeys("esc")),
}

type loadedMsg struct {
	results []store.Result
	err     error
}

// HistoryScreen shows past results. Enter toggles the assigned modules of
// the highlighted result.
type HistoryScreen struct {
	repo         store.ResultRepo
	respondentID string

	results []store.Result
	err     error
	loaded  bool
	cursor  int
	open    bool
}

var (
	_ screen.Screen          = (*HistoryScreen)(nil)
	_ screen.KeyHintProvider = (*HistoryScreen)(nil)
)

func New(repo store.ResultRepo, respondentID string) *HistoryScreen {
	return &HistoryScreen{repo: repo, respondentID: respondentID}
}

func (s *HistoryScreen) Title() string { return "Past Results" }

func (s *HistoryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Details"},
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *HistoryScreen) Init() tea.Cmd {
	repo, id := s.repo, s.respondentID
	return func() tea.Msg {
		rs, err := repo.List(context.Background(), store.QueryOpts{RespondentID: id, Limit: historyLimit})
		return loadedMsg{results: rs, err: err}
	}
}

func (s *HistoryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.results, s.err, s.loaded = msg.results, msg.err, true
	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, keys.Back):
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		case key.Matches(msg, keys.Up):
			s.moveTo(s.cursor - 1)
		case key.Matches(msg, keys.Down):
			s.moveTo(s.cursor + 1)
		case key.Matches(msg, keys.Toggle):
			s.open = !s.open
		}
	}
	return s, nil
}

// moveTo changes the highlighted row and collapses the detail panel.
func (s *HistoryScreen) moveTo(i int) {
	if i < 0 || i >= len(s.results) || i == s.cursor {
		return
	}
	s.cursor, s.open = i, false
}

// delta is the score change from the result listed below i, which is the
// one taken before it.
func (s *HistoryScreen) delta(i int) string {
	if i+1 >= len(s.results) {
		return ""
	}
	d := s.results[i].Score - s.results[i+1].Score
	if d > 0 {
		return "+" + strconv.Itoa(d)
	}
	return strconv.Itoa(d)
}

func (s *HistoryScreen) View(width, height int) string {
	notice := func(style lipgloss.Style, text string) string {
		return style.Width(width).Align(lipgloss.Center).Render("\n\n" + text)
	}
	switch {
	case s.err != nil:
		return notice(lipgloss.NewStyle().Foreground(theme.Error), "Error: "+s.err.Error())
	case !s.loaded:
		return notice(theme.Hint, "Loading results...")
	case len(s.results) == 0:
		return notice(theme.Hint, "No assessments yet. Take one from the home screen!")
	}

	t := table.New().
		Headers("Taken", "Score", "Change", "Modules").
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			st := lipgloss.NewStyle().Padding(0, 1).Foreground(theme.Text)
			switch {
			case row == table.HeaderRow:
				return st.Foreground(theme.TextDim).Bold(true)
			case row == s.cursor:
				return st.Foreground(theme.Primary).Bold(true)
			}
			return st
		})
	for i, r := range s.results {
		t.Row(r.Timestamp.Format("Jan 02, 2006 15:04"),
			fmt.Sprintf("score %3d", r.Score), s.delta(i), strconv.Itoa(len(r.Modules)))
	}

	parts := []string{t.Render()}
	if s.open {
		var b strings.Builder
		for n, id := range s.results[s.cursor].Modules {
			fmt.Fprintf(&b, "%d. %s\n", n+1, catalog.Title(id))
		}
		parts = append(parts, lipgloss.NewStyle().Foreground(theme.TextDim).Render(strings.TrimRight(b.String(), "\n")))
	}
	return lipgloss.PlaceHorizontal(width, lipgloss.Center, lipgloss.JoinVertical(lipgloss.Left, parts...))
}
