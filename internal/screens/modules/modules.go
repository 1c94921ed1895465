// Package modules lists the learner's plan with progress and lets them
// record lessons.
package modules

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

type summaryLoadedMsg struct {
	Summary *progress.Summary
	Err     error
}

// ModulesScreen shows every module in the learner's plan.
type ModulesScreen struct {
	svc        *progress.Service
	employeeID string

	summary *progress.Summary
	cursor  int
	loaded  bool
	errMsg  string
}

var _ screen.Screen = (*ModulesScreen)(nil)
var _ screen.KeyHintProvider = (*ModulesScreen)(nil)

// New creates a ModulesScreen for an employee.
func New(svc *progress.Service, employeeID string) *ModulesScreen {
	return &ModulesScreen{svc: svc, employeeID: employeeID}
}

func (s *ModulesScreen) Init() tea.Cmd {
	return loadSummary(s.svc, s.employeeID)
}

func loadSummary(svc *progress.Service, employeeID string) tea.Cmd {
	return func() tea.Msg {
		sum, err := svc.Summary(context.Background(), employeeID)
		return summaryLoadedMsg{Summary: sum, Err: err}
	}
}

func (s *ModulesScreen) Title() string {
	return "My Modules"
}

func (s *ModulesScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Open"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *ModulesScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		s.loaded = true
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
			return s, nil
		}
		s.errMsg = ""
		s.summary = msg.Summary
		if s.cursor >= len(s.summary.Modules) {
			s.cursor = max(len(s.summary.Modules)-1, 0)
		}
		return s, nil

	case screen.ResumeMsg:
		return s, loadSummary(s.svc, s.employeeID)

	case tea.KeyMsg:
		if s.summary == nil {
			return s, nil
		}
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.summary.Modules)-1 {
				s.cursor++
			}
		case "enter":
			if len(s.summary.Modules) == 0 {
				return s, nil
			}
			detail := newDetail(s.svc, s.employeeID, s.summary.Modules[s.cursor])
			return s, func() tea.Msg { return router.PushScreenMsg{Screen: detail} }
		}
	}
	return s, nil
}

// StatusIcon returns the list glyph for a module status.
func StatusIcon(st progress.Status) string {
	switch st {
	case progress.Completed:
		return "●"
	case progress.InProgress:
		return "◐"
	default:
		return "○"
	}
}

func statusStyle(st progress.Status) lipgloss.Style {
	switch st {
	case progress.Completed:
		return lipgloss.NewStyle().Foreground(theme.Success)
	case progress.InProgress:
		return lipgloss.NewStyle().Foreground(theme.Accent)
	default:
		return lipgloss.NewStyle().Foreground(theme.TextDim)
	}
}

func (s *ModulesScreen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading modules...")
	}

	sum := s.summary
	cw := components.ContentWidth(width)

	var b strings.Builder
	b.WriteString("\n")

	overall := components.NewProgressBar("Plan", float64(sum.Percent())/100, true, cw)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, overall.View()))
	b.WriteString("\n")
	stats := fmt.Sprintf("%d completed · %d in progress · %d not started · %.1f hours invested",
		sum.Completed, sum.InProgress, sum.NotStarted, sum.HoursInvested)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Hint.Render(stats)))
	b.WriteString("\n\n")

	if sum.Result == nil {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.Accent).
				Render("Take the assessment to get a personalized plan.")))
		b.WriteString("\n\n")
	}

	offPlan := false
	for i, mp := range sum.Modules {
		if !mp.Assigned && !offPlan {
			offPlan = true
			b.WriteString("\n")
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				theme.Hint.Render("Also in progress")))
			b.WriteString("\n")
		}

		prefix := "  "
		titleStyle := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.cursor {
			prefix = "▸ "
			titleStyle = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		}

		title := fmt.Sprintf("%s%s %s", prefix, statusStyle(mp.Status).Render(StatusIcon(mp.Status)), titleStyle.Render(mp.Module.Title))
		detail := theme.Hint.Render(fmt.Sprintf("%3d%%  %d/%d lessons", mp.Percent(), mp.LessonsCompleted, mp.Module.Lessons))

		gap := cw - lipgloss.Width(title) - lipgloss.Width(detail)
		if gap < 1 {
			gap = 1
		}
		line := title + strings.Repeat(" ", gap) + detail
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return b.String()
}
