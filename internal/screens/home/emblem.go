package home

import (
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/ui/theme"
)

// EmblemVariant selects which emblem art to display.
type EmblemVariant int

const (
	EmblemStart    EmblemVariant = iota // No assessment yet
	EmblemLearning                      // Plan in progress
	EmblemReady                         // Plan completed
)

const emblemStart = `┌─────┐
│ ═══ │
│ ══  │
│ ?   │
└─────┘`

const emblemLearning = `┌─────┐
│ ═══ │
│ ══  │
│ ◐   │
└─────┘`

const emblemReady = `┌─────┐
│ ═══ │
│ ══  │
│   ✓ │
└─╥═╥─┘
  ╚═╝`

// emblemFor picks the emblem for a learner's state.
func emblemFor(sum *progress.Summary) EmblemVariant {
	switch {
	case sum == nil || sum.Result == nil:
		return EmblemStart
	case sum.State() == progress.Completed:
		return EmblemReady
	default:
		return EmblemLearning
	}
}

// RenderEmblem returns the emblem art for the given variant.
func RenderEmblem(v EmblemVariant) string {
	var art string
	fg := theme.Primary

	switch v {
	case EmblemReady:
		art = emblemReady
		fg = theme.Success
	case EmblemLearning:
		art = emblemLearning
		fg = theme.Accent
	default:
		art = emblemStart
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}

// renderEmblemBox centers the emblem in a box matching content width.
func renderEmblemBox(v EmblemVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderEmblem(v))
}
