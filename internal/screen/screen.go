// Package screen defines what the router stacks. Optional behavior is
// opted into by implementing the small interfaces below.
package screen

import (
	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/ui/layout"
)

// Screen is one page of the TUI. View draws only the area between the
// header and footer.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Title() string
}

// KeyHintProvider replaces the default footer hints.
type KeyHintProvider interface {
	KeyHints() []layout.KeyHint
}

// StatusProvider fills the right side of the header.
type StatusProvider interface {
	Status() string
}

// BackInterceptor screens receive Esc instead of being popped.
type BackInterceptor interface {
	InterceptsBack() bool
}

// ResumeMsg is sent to a screen that is on top again after a pop.
type ResumeMsg struct{}
