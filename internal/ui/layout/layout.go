// Package layout draws the chrome shared by every screen: the header bar,
// the key-hint footer and the fallback shown when the terminal is too small.
package layout

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/ui/theme"
)

// The smallest terminal the screens are laid out for.
const (
	MinWidth  = 80
	MinHeight = 24
)

// KeyHint is one "key description" pair in the footer.
type KeyHint struct {
	Key         string
	Description string
}

func IsTooSmall(width, height int) bool {
	return width < MinWidth || height < MinHeight
}

var (
	bar = lipgloss.NewStyle().
		Background(theme.BgCard).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 1)
	brand     = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
	hintKey   = lipgloss.NewStyle().Foreground(theme.Text).Bold(true)
	hintLabel = lipgloss.NewStyle().Foreground(theme.TextDim)
)

func RenderMinSizeMessage(width, height int) string {
	msg := fmt.Sprintf("Terminal too small\n\nResize to at least %d x %d\n(currently %d x %d)",
		MinWidth, MinHeight, width, height)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		theme.Body.Align(lipgloss.Center).Render(msg))
}

// RenderHeader shows the product name on the left, title centered and
// status (which may be empty) on the right.
func RenderHeader(title, status string, width int) string {
	inner := max(width-4, 0)
	left := brand.Render("Legacy Ready")
	right := lipgloss.NewStyle().Foreground(theme.Accent).Render(status)

	// Equal side columns keep the title centered whatever the status length.
	side := max(lipgloss.Width(left), lipgloss.Width(right))
	middle := max(inner-2*side, 0)
	row := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.NewStyle().Width(side).Render(left),
		theme.Body.Width(middle).Align(lipgloss.Center).Render(title),
		lipgloss.NewStyle().Width(side).Align(lipgloss.Right).Render(right),
	)
	return bar.Width(width).Render(row)
}

func RenderFooter(hints []KeyHint, width int) string {
	parts := make([]string, len(hints))
	for i, h := range hints {
		parts[i] = hintKey.Render(h.Key) + " " + hintLabel.Render(h.Description)
	}
	return bar.Width(width).Render(strings.Join(parts, "   "))
}

// RenderFrame stacks header, content and footer, giving content whatever
// height is left.
func RenderFrame(header, content, footer string, width, height int) string {
	rest := max(height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	body := lipgloss.NewStyle().Width(width).Height(rest).Render(content)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}
