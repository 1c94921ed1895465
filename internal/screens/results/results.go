// Package results shows the outcome of a finished assessment and saves it.
package results

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/store"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

type savedMsg struct {
	ID  string
	Err error
}

// ResultsScreen displays the readiness score and the assigned modules.
type ResultsScreen struct {
	bank         *assessment.Bank
	answers      assessment.Answers
	repo         store.ResultRepo
	respondentID string
	logger       *zap.Logger

	result  *assessment.Result
	errMsg  string
	saved   bool
	saveErr string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New evaluates answers against bank. The result is saved to repo when the
// screen starts; a nil repo skips saving.
func New(bank *assessment.Bank, answers assessment.Answers, repo store.ResultRepo, respondentID string, logger *zap.Logger) *ResultsScreen {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &ResultsScreen{
		bank:         bank,
		answers:      answers,
		repo:         repo,
		respondentID: respondentID,
		logger:       logger,
	}
	res, err := bank.Evaluate(answers)
	if err != nil {
		s.errMsg = err.Error()
	} else {
		s.result = res
	}
	return s
}

func (s *ResultsScreen) Init() tea.Cmd {
	if s.result == nil || s.repo == nil {
		return nil
	}
	rec := &store.Result{
		RespondentID: s.respondentID,
		Score:        s.result.Score,
		Modules:      s.result.Modules,
		Answers:      map[string]string(s.answers),
		BankVersion:  s.bank.Version,
	}
	return func() tea.Msg {
		err := s.repo.Save(context.Background(), rec)
		return savedMsg{ID: rec.ID, Err: err}
	}
}

func (s *ResultsScreen) Title() string {
	return "Assessment Results"
}

func (s *ResultsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start learning"},
		{Key: "Esc", Description: "Home"},
	}
}

// Result returns the evaluated result, or nil if evaluation failed.
func (s *ResultsScreen) Result() *assessment.Result {
	return s.result
}

func (s *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case savedMsg:
		if msg.Err != nil {
			s.saveErr = msg.Err.Error()
			s.logger.Error("save assessment result", zap.String("respondent", s.respondentID), zap.Error(msg.Err))
			return s, nil
		}
		s.saved = true
		s.logger.Info("assessment saved",
			zap.String("result", msg.ID),
			zap.String("respondent", s.respondentID),
			zap.Int("score", s.result.Score),
			zap.Strings("modules", s.result.Modules))
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}


func (s *ResultsScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Error).Render("Error: "+s.errMsg))
	}

	cw := components.ContentWidth(width)
	res := s.result

	var b strings.Builder
	b.WriteString(theme.Title.Width(cw).Render("✓ Assessment Complete!"))
	b.WriteString("\n\n")

	score := theme.ScoreColor(res.Score).Render(fmt.Sprintf("%d", res.Score)) +
		theme.Hint.Render(" / 100")
	scoreCard := "Your Readiness Score\n\n" + score + "\n" + theme.Hint.Render(assessment.Band(res.Score))
	b.WriteString(components.Card(scoreCard, cw))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true).
		Render("Your Personalized Learning Path"))
	b.WriteString("\n")
	b.WriteString(theme.Hint.Render(fmt.Sprintf("%d modules, about %.1f hours",
		len(res.Modules), catalog.TotalHours(catalog.Lookup(res.Modules)))))
	b.WriteString("\n\n")

	for i, id := range res.Modules {
		line := fmt.Sprintf("%d. %s", i+1, catalog.Title(id))
		b.WriteString(theme.Body.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	switch {
	case s.saveErr != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("Could not save result: " + s.saveErr))
	case s.saved:
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("Result saved"))
	case s.repo != nil:
		b.WriteString(theme.Hint.Render("Saving..."))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.NewStyle().Width(cw).Render(b.String()))
}
