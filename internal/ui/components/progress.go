package components

import (
	"charm.land/bubbles/v2/progress"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/ui/theme"
)

// minBarWidth keeps the bar visible in narrow frames.
const minBarWidth = 4

// ProgressBar is a static completion bar with an optional leading label.
// Percent is a fraction from 0 to 1.
type ProgressBar struct {
	Label       string
	Percent     float64
	ShowPercent bool
	Width       int
}

func NewProgressBar(label string, percent float64, showPercent bool, width int) ProgressBar {
	return ProgressBar{Label: label, Percent: percent, ShowPercent: showPercent, Width: width}
}

// View renders the label and bar so together they span Width cells.
func (p ProgressBar) View() string {
	label := ""
	if p.Label != "" {
		label = theme.Body.Render(p.Label) + "  "
	}

	opts := []progress.Option{
		progress.WithColors(theme.Secondary),
		progress.WithFillCharacters('█', '░'),
		progress.WithWidth(max(p.Width-lipgloss.Width(label), minBarWidth)),
	}
	if !p.ShowPercent {
		opts = append(opts, progress.WithoutPercentage())
	}
	bar := progress.New(opts...)
	bar.EmptyColor = theme.Border
	bar.PercentageStyle = lipgloss.NewStyle().Foreground(theme.TextDim)

	return label + bar.ViewAs(min(max(p.Percent, 0), 1))
}
