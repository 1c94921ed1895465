// Package theme holds the palette and shared text styles of the TUI.
package theme

import "charm.land/lipgloss/v2"

var (
	Primary   = lipgloss.Color("#2563EB") // blue: brand, focus
	Secondary = lipgloss.Color("#0D9488") // teal: progress fill
	Accent    = lipgloss.Color("#F59E0B") // amber: in progress, mid scores
	Highlight = lipgloss.Color("#FDE68A")
	Success   = lipgloss.Color("#22C55E")
	Error     = lipgloss.Color("#F43F5E")
	Text      = lipgloss.Color("#F8FAFC")
	TextDim   = lipgloss.Color("#94A3B8")
	BgDark    = lipgloss.Color("#0B1324")
	BgCard    = lipgloss.Color("#1E293B")
	Border    = lipgloss.Color("#334155")
)

var (
	Title    = lipgloss.NewStyle().Bold(true).Foreground(Primary).Align(lipgloss.Center)
	Subtitle = lipgloss.NewStyle().Foreground(TextDim).Align(lipgloss.Center)
	Body     = lipgloss.NewStyle().Foreground(Text)
	Hint     = lipgloss.NewStyle().Foreground(TextDim).Italic(true)
)

// ScoreColor picks the style for a 0-100 readiness score, using the same
// cut-offs as the readiness bands.
func ScoreColor(score int) lipgloss.Style {
	s := lipgloss.NewStyle().Bold(true)
	switch {
	case score >= 70:
		return s.Foreground(Success)
	case score >= 40:
		return s.Foreground(Accent)
	}
	return s.Foreground(Error)
}
