package components

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/ui/theme"
)

const (
	minContent = 20
	maxContent = 64
)

// ContentWidth is the width shared by every boxed section inside a frame of
// frameWidth, so stacked cards line up. Six columns go to border and padding.
func ContentWidth(frameWidth int) int {
	return min(max(frameWidth-6, minContent), maxContent)
}

// box is a bordered block; w and h are outer sizes and ignored when zero.
func box(border lipgloss.Border, edge color.Color, w, h int) lipgloss.Style {
	st := lipgloss.NewStyle().Border(border).BorderForeground(edge)
	if w > 0 {
		st = st.Width(w - 2)
	}
	if h > 0 {
		st = st.Height(h - 2)
	}
	return st
}

// Frame centers content inside a double border filling width x height.
func Frame(content string, width, height int) string {
	return box(lipgloss.DoubleBorder(), theme.Primary, width, height).
		Align(lipgloss.Center, lipgloss.Center).
		Render(content)
}

// Card is a rounded, padded box cw columns wide.
func Card(content string, cw int) string {
	return box(lipgloss.RoundedBorder(), theme.Border, cw, 0).
		Align(lipgloss.Center).
		Padding(1, 2).
		Render(content)
}

// Button renders a menu button of the given inner width. Disabled wins
// over selected.
func Button(label string, selected, disabled bool, width int) string {
	st := box(lipgloss.RoundedBorder(), theme.Border, 0, 0).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1).
		Foreground(theme.Text)
	switch {
	case disabled:
		st = st.Foreground(theme.TextDim)
	case selected:
		st = st.Bold(true).Foreground(theme.BgDark).Background(theme.Highlight).BorderForeground(theme.Highlight)
		label = "▸ " + label
	}
	return st.Render(label)
}
