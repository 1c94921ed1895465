// Package chat is the coach conversation screen.
package chat

import (
	"context"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/coach"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

const maxQuestionLen = 280

type replyMsg struct {
	Reply coach.Reply
	Err   error
}

type learnerLoadedMsg struct {
	Learner *coach.Learner
}

type entry struct {
	fromUser bool
	text     string
	source   coach.Source
}

// ChatScreen lets the learner ask the coach questions.
type ChatScreen struct {
	coach      *coach.Coach
	svc        *progress.Service
	employeeID string

	learner     *coach.Learner
	input       components.TextInput
	transcript  []entry
	suggestions []string
	waiting     bool
}

var _ screen.Screen = (*ChatScreen)(nil)
var _ screen.KeyHintProvider = (*ChatScreen)(nil)

// New creates a ChatScreen. svc may be nil, in which case the coach gets no
// learner context.
func New(c *coach.Coach, svc *progress.Service, employeeID string) *ChatScreen {
	return &ChatScreen{
		coach:      c,
		svc:        svc,
		employeeID: employeeID,
		input:      components.NewTextInput("Ask a question...", maxQuestionLen),
		transcript: []entry{{text: coach.Greeting, source: coach.SourceMenu}},
	}
}

func (s *ChatScreen) Init() tea.Cmd {
	cmds := []tea.Cmd{s.input.Init()}
	if s.svc != nil {
		svc, id := s.svc, s.employeeID
		cmds = append(cmds, func() tea.Msg {
			sum, err := svc.Summary(context.Background(), id)
			if err != nil {
				return learnerLoadedMsg{}
			}
			return learnerLoadedMsg{Learner: coach.LearnerFor(sum)}
		})
	}
	return tea.Batch(cmds...)
}

func (s *ChatScreen) Title() string {
	return "Ask the Coach"
}

func (s *ChatScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Ask"},
		{Key: "Tab", Description: "Use suggestion"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ChatScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case learnerLoadedMsg:
		s.learner = msg.Learner
		return s, nil

	case replyMsg:
		s.waiting = false
		if msg.Err != nil {
			s.transcript = append(s.transcript, entry{text: "Sorry, something went wrong: " + msg.Err.Error(), source: coach.SourceMenu})
			return s, nil
		}
		s.transcript = append(s.transcript, entry{text: msg.Reply.Text, source: msg.Reply.Source})
		s.suggestions = msg.Reply.Suggestions
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter":
			return s, s.ask()
		case "tab":
			if len(s.suggestions) > 0 && s.input.Value() == "" {
				s.input.Fill(s.suggestions[0])
				s.suggestions = s.suggestions[1:]
			}
			return s, nil
		}
	}

	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

func (s *ChatScreen) ask() tea.Cmd {
	q := s.input.Value()
	if q == "" || s.waiting {
		return nil
	}
	s.input.Reset()
	s.waiting = true
	s.suggestions = nil
	s.transcript = append(s.transcript, entry{fromUser: true, text: q})

	c, learner := s.coach, s.learner
	return func() tea.Msg {
		reply, err := c.Ask(context.Background(), q, learner)
		return replyMsg{Reply: reply, Err: err}
	}
}

func (s *ChatScreen) View(width, height int) string {
	cw := components.ContentWidth(width)
	bubble := lipgloss.NewStyle().Width(cw - 4)

	var lines []string
	for _, e := range s.transcript {
		var block string
		if e.fromUser {
			block = lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Render("You") + "\n" +
				bubble.Foreground(theme.Text).Render(e.text)
		} else {
			label := "Coach"
			if e.source == coach.SourceLLM {
				label = "Coach (AI)"
			}
			block = lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).Render(label) + "\n" +
				bubble.Foreground(theme.Text).Render(e.text)
		}
		lines = append(lines, strings.Split(block, "\n")...)
		lines = append(lines, "")
	}
	if s.waiting {
		lines = append(lines, theme.Hint.Render("Coach is typing..."))
	}

	// Input, suggestions and padding take the bottom rows.
	room := height - 6
	if len(s.suggestions) > 0 {
		room--
	}
	if room < 1 {
		room = 1
	}
	if len(lines) > room {
		lines = lines[len(lines)-room:]
	}

	var b strings.Builder
	b.WriteString(strings.Join(lines, "\n"))
	b.WriteString("\n")
	if len(s.suggestions) > 0 {
		b.WriteString(theme.Hint.Render("Try: " + strings.Join(s.suggestions, " · ")))
		b.WriteString("\n")
	}
	b.WriteString(lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Width(cw - 2).
		Render(s.input.View()))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Bottom,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
