package home

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/ui/components"
	"github.com/endevo/legacyready/internal/ui/theme"
)

const titleFull = `╦  ╔═╗╔═╗╔═╗╔═╗╦ ╦  ╦═╗╔═╗╔═╗╔╦╗╦ ╦
║  ║╣ ║ ╦╠═╣║  ╚╦╝  ╠╦╝║╣ ╠═╣ ║║╚╦╝
╩═╝╚═╝╚═╝╩ ╩╚═╝ ╩   ╩╚═╚═╝╩ ╩═╩╝ ╩ `

const titleCompact = "L E G A C Y   R E A D Y"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders the learner's dashboard numbers in a bordered box
// matching content width.
func renderStatsBar(sum *progress.Summary, cw int, compact bool) string {
	dimStyle := lipgloss.NewStyle().Foreground(theme.TextDim)
	planStyle := lipgloss.NewStyle().Foreground(theme.Secondary).Bold(true)
	doneStyle := lipgloss.NewStyle().Foreground(theme.Success).Bold(true)

	var scoreText string
	if sum == nil || sum.Result == nil {
		scoreText = dimStyle.Render("NO SCORE YET")
		if compact {
			scoreText = dimStyle.Render("--")
		}
	} else {
		style := theme.ScoreColor(sum.Result.Score)
		if compact {
			scoreText = style.Render(fmt.Sprintf("%d", sum.Result.Score))
		} else {
			scoreText = style.Render(fmt.Sprintf("SCORE %d/100", sum.Result.Score))
		}
	}

	var pct, done, total int
	if sum != nil {
		pct = sum.Percent()
		done = sum.Completed
		total = len(sum.Assigned())
	}

	var stats string
	if compact {
		stats = fmt.Sprintf("%s %s %s",
			scoreText,
			planStyle.Render(fmt.Sprintf("%d%%", pct)),
			doneStyle.Render(fmt.Sprintf("%d/%d", done, total)),
		)
	} else {
		stats = fmt.Sprintf("%s  %s  %s",
			scoreText,
			planStyle.Render(fmt.Sprintf("PLAN %d%%", pct)),
			doneStyle.Render(fmt.Sprintf("%d/%d MODULES", done, total)),
		)
	}

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.Secondary).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

// renderNextStep tells the learner what to do next.
func renderNextStep(sum *progress.Summary, cw int) string {
	var text string
	switch {
	case sum == nil:
		return ""
	case sum.Result == nil:
		text = "Start with the Peace of Mind Assessment"
	case sum.Current() != nil:
		text = "Continue: " + sum.Current().Module.Title
	case sum.Next() != nil:
		text = "Up next: " + sum.Next().Module.Title
	default:
		text = "All modules complete. Well done!"
	}
	return lipgloss.NewStyle().
		Foreground(theme.Text).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}

// renderMenu renders each menu item as a fixed-width button.
func renderMenu(items []string, selected, cw int) string {
	var buttons []string
	for i, label := range items {
		buttons = append(buttons, components.Button(label, i == selected, false, buttonWidth))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(buttons, "\n"))
}

// renderMenuCompact renders menu items as simple text lines (no borders)
// for small terminals where bordered buttons would overflow.
func renderMenuCompact(items []string, selected, cw int) string {
	var lines []string
	for i, label := range items {
		if i == selected {
			lines = append(lines, lipgloss.NewStyle().
				Foreground(theme.BgDark).
				Background(theme.Highlight).
				Bold(true).
				Render(" ▸ "+label+" "))
			continue
		}
		lines = append(lines, lipgloss.NewStyle().
			Foreground(theme.Text).
			Render("   "+label))
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(strings.Join(lines, "\n"))
}

// renderNote renders a dim one-line notice.
func renderNote(text string, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(text)
}
