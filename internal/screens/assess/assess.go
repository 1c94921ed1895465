// Package assess is the interactive readiness assessment: one question at a
// time, with back / next navigation and a progress bar.
package assess

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/screens/results"
	"github.com/endevo/legacyready/internal/store"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

const privacyNote = "Your answers are private. HR only sees completion status, not your individual responses."

// AssessScreen walks the learner through the question bank.
type AssessScreen struct {
	bank         *assessment.Bank
	results      store.ResultRepo
	respondentID string
	logger       *zap.Logger

	answers     assessment.Answers
	index       int
	choice      components.Choice
	confirmQuit bool
	finished    bool
}

var _ screen.Screen = (*AssessScreen)(nil)
var _ screen.KeyHintProvider = (*AssessScreen)(nil)
var _ screen.BackInterceptor = (*AssessScreen)(nil)

// New creates an AssessScreen. results may be nil, in which case the outcome
// is shown but not saved.
func New(bank *assessment.Bank, results store.ResultRepo, respondentID string, logger *zap.Logger) *AssessScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &AssessScreen{
		bank:         bank,
		results:      results,
		respondentID: respondentID,
		logger:       logger,
		answers:      make(assessment.Answers),
	}
	s.loadQuestion()
	return s
}

func (s *AssessScreen) Init() tea.Cmd {
	return nil
}

func (s *AssessScreen) Title() string {
	return "Peace of Mind Assessment"
}

// InterceptsBack keeps Esc inside the screen so it can confirm quitting.
func (s *AssessScreen) InterceptsBack() bool {
	return true
}

func (s *AssessScreen) KeyHints() []layout.KeyHint {
	if s.confirmQuit {
		return []layout.KeyHint{
			{Key: "Y", Description: "Leave"},
			{Key: "N", Description: "Keep going"},
		}
	}
	next := "Next"
	if s.isLast() {
		next = "Finish"
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Choose"},
		{Key: "Enter", Description: "Answer"},
		{Key: "←", Description: "Back"},
		{Key: "→", Description: next},
		{Key: "Esc", Description: "Quit"},
	}
}

// Answers returns a copy of the answers recorded so far.
func (s *AssessScreen) Answers() assessment.Answers {
	return s.answers.Clone()
}

// Index returns the position of the current question.
func (s *AssessScreen) Index() int {
	return s.index
}

func (s *AssessScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || s.finished || len(s.bank.Questions) == 0 {
		if ok && kmsg.String() == "esc" {
			return s, pop
		}
		return s, nil
	}

	if s.confirmQuit {
		switch kmsg.String() {
		case "y", "Y":
			s.logger.Info("assessment abandoned",
				zap.String("respondent", s.respondentID),
				zap.Int("answered", len(s.answers)))
			return s, pop
		case "n", "N", "esc":
			s.confirmQuit = false
		}
		return s, nil
	}

	switch kmsg.String() {
	case "esc":
		if len(s.answers) == 0 {
			return s, pop
		}
		s.confirmQuit = true
		return s, nil
	case "left", "h", "b":
		if s.index > 0 {
			s.index--
			s.loadQuestion()
		}
		return s, nil
	case "right", "l", "n":
		return s, s.advance()
	}

	s.choice, _ = s.choice.Update(msg)
	if s.choice.Submitted {
		q := s.current()
		s.answers[q.ID] = q.Options[s.choice.Picked].Value
		return s, s.advance()
	}
	return s, nil
}

// advance moves to the next question once the current one is answered, and
// finishes the assessment after the last.
func (s *AssessScreen) advance() tea.Cmd {
	if _, ok := s.answers[s.current().ID]; !ok {
		return nil
	}
	if !s.isLast() {
		s.index++
		s.loadQuestion()
		return nil
	}
	s.finished = true
	next := results.New(s.bank, s.answers.Clone(), s.results, s.respondentID, s.logger)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

func (s *AssessScreen) current() assessment.Question {
	return s.bank.Questions[s.index]
}

func (s *AssessScreen) isLast() bool {
	return s.index == len(s.bank.Questions)-1
}

func (s *AssessScreen) loadQuestion() {
	if len(s.bank.Questions) == 0 {
		return
	}
	q := s.current()
	labels := make([]string, len(q.Options))
	marked := -1
	for i, o := range q.Options {
		labels[i] = o.Label
		if s.answers[q.ID] == o.Value {
			marked = i
		}
	}
	s.choice = components.NewChoice(q.Text, labels, marked)
}

func (s *AssessScreen) View(width, height int) string {
	if len(s.bank.Questions) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("The question bank is empty."))
	}
	if s.confirmQuit {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			components.Card(theme.Body.Render("Leave the assessment? Your answers will not be saved.\n\n")+
				theme.Hint.Render("Y to leave, N to keep going"), components.ContentWidth(width)))
	}

	cw := components.ContentWidth(width)
	total := len(s.bank.Questions)

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(cw).Render(fmt.Sprintf("Question %d of %d", s.index+1, total)))
	b.WriteString("\n")
	bar := components.NewProgressBar("", float64(s.index+1)/float64(total), true, cw)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Width(cw).Render(s.choice.View()))
	b.WriteString("\n")

	back := components.Button("← Back", false, s.index == 0, 14)
	nextLabel := "Next →"
	if s.isLast() {
		nextLabel = "Complete"
	}
	_, answered := s.answers[s.current().ID]
	next := components.Button(nextLabel, answered, !answered, 14)
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, back, "  ", next))
	b.WriteString("\n\n")
	b.WriteString(theme.Hint.Width(cw).Render(privacyNote))

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, b.String())
}

func pop() tea.Msg {
	return router.PopScreenMsg{}
}
