package modules

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/catalog"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/layout"
	"github.com/endevo/legacyready/internal/ui/theme"
)

type actionDoneMsg struct {
	Module *progress.ModuleProgress
	Notice string
	Err    error
}

// DetailScreen shows one module and records progress in it.
type DetailScreen struct {
	svc        *progress.Service
	employeeID string
	mp         progress.ModuleProgress
	notice     string
	errMsg     string
	busy       bool
}

var _ screen.Screen = (*DetailScreen)(nil)
var _ screen.KeyHintProvider = (*DetailScreen)(nil)

func newDetail(svc *progress.Service, employeeID string, mp progress.ModuleProgress) *DetailScreen {
	return &DetailScreen{svc: svc, employeeID: employeeID, mp: mp}
}

func (d *DetailScreen) Init() tea.Cmd { return nil }
func (d *DetailScreen) Title() string { return d.mp.Module.Title }

func (d *DetailScreen) KeyHints() []layout.KeyHint {
	if d.mp.Status == progress.Completed {
		return []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
		}
	}
	return []layout.KeyHint{
		{Key: "S", Description: "Start"},
		{Key: "L", Description: "Finish lesson"},
		{Key: "C", Description: "Mark complete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (d *DetailScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case actionDoneMsg:
		d.busy = false
		if msg.Err != nil {
			d.errMsg = msg.Err.Error()
			d.notice = ""
			return d, nil
		}
		d.errMsg = ""
		d.notice = msg.Notice
		if msg.Module != nil {
			d.mp = *msg.Module
		}
		return d, nil

	case tea.KeyMsg:
		if d.busy || d.mp.Status == progress.Completed {
			return d, nil
		}
		switch msg.String() {
		case "s":
			d.busy = true
			return d, d.run(func(ctx context.Context) (string, error) {
				return "Module started", d.svc.Start(ctx, d.employeeID, d.mp.Module.ID)
			})
		case "l":
			d.busy = true
			return d, d.run(func(ctx context.Context) (string, error) {
				mp, err := d.svc.CompleteLesson(ctx, d.employeeID, d.mp.Module.ID)
				if err != nil {
					return "", err
				}
				if mp.Status == progress.Completed {
					return "Module complete! Your certificate is ready.", nil
				}
				return fmt.Sprintf("Lesson %d done", mp.LessonsCompleted), nil
			})
		case "c":
			d.busy = true
			return d, d.run(func(ctx context.Context) (string, error) {
				return "Module complete! Your certificate is ready.", d.svc.Complete(ctx, d.employeeID, d.mp.Module.ID)
			})
		}
	}
	return d, nil
}

// run performs a progress action and reloads the module afterwards.
func (d *DetailScreen) run(action func(ctx context.Context) (string, error)) tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		notice, err := action(ctx)
		if err != nil {
			if errors.Is(err, progress.ErrAlreadyCompleted) {
				return actionDoneMsg{Err: errors.New("this module is already completed")}
			}
			return actionDoneMsg{Err: err}
		}
		sum, err := d.svc.Summary(ctx, d.employeeID)
		if err != nil {
			return actionDoneMsg{Err: err}
		}
		return actionDoneMsg{Module: sum.Module(d.mp.Module.ID), Notice: notice}
	}
}

func (d *DetailScreen) View(width, height int) string {
	m := d.mp.Module
	contentWidth := width - 8
	if contentWidth > 70 {
		contentWidth = 70
	}

	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render(fmt.Sprintf("  %s  %s", StatusIcon(d.mp.Status), m.Title)))
	b.WriteString("\n")
	b.WriteString(statusStyle(d.mp.Status).Render("  " + d.mp.Status.Label()))
	b.WriteString("\n\n")

	if m.Description != "" {
		b.WriteString(lipgloss.NewStyle().
			Width(contentWidth).
			Foreground(theme.Text).
			PaddingLeft(2).
			Render(m.Description))
		b.WriteString("\n\n")
	}

	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	valStyle := lipgloss.NewStyle().Foreground(theme.Text)

	required := "Optional"
	if m.Required {
		required = "Required"
	}
	b.WriteString(dimStyle.Render("  Category:    ") + valStyle.Render(catalog.CategoryDisplayName(m.Category)) + "\n")
	b.WriteString(dimStyle.Render("  Competency:  ") + valStyle.Render(m.Competency) + "\n")
	b.WriteString(dimStyle.Render("  Time:        ") + valStyle.Render(fmt.Sprintf("about %.2g hours", m.EstimatedHours)) + "\n")
	b.WriteString(dimStyle.Render("  Type:        ") + valStyle.Render(required) + "\n")
	if !d.mp.Assigned {
		b.WriteString(dimStyle.Render("  Plan:        ") + valStyle.Render("Not in your plan") + "\n")
	}
	b.WriteString("\n")

	bar := components.NewProgressBar(
		fmt.Sprintf("  Lessons %d/%d", d.mp.LessonsCompleted, m.Lessons),
		float64(d.mp.Percent())/100, true, contentWidth)
	b.WriteString(bar.View())
	b.WriteString("\n\n")

	switch {
	case d.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render("  " + d.errMsg))
	case d.notice != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Success).Render("  " + d.notice))
	}

	return lipgloss.Place(width, height, lipgloss.Left, lipgloss.Top,
		"\n"+b.String())
}
