// Package welcome is the splash shown once at startup. It reveals the
// emblem, then the wordmark and greeting, and hands over to the home screen
// on the first key press or after autoAdvance.
package welcome

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/ui/theme"
)

const (
	frameInterval = 120 * time.Millisecond
	revealWords   = 4  // frames before the wordmark appears
	revealText    = 10 // frames before the tagline and hint appear
	autoAdvance   = 50 // frames before moving on without input
)

// Tagline is shown under the wordmark.
const Tagline = "Plan today. Protect the people you love."

const emblem = `╭───────────╮
│  ═══════  │
│  ═════    │
│  ═══════  │
│        ✓  │
╰───────────╯`

const wordmark = `╦  ╔═╗╔═╗╔═╗╔═╗╦ ╦  ╦═╗╔═╗╔═╗╔╦╗╦ ╦
║  ║╣ ║ ╦╠═╣║  ╚╦╝  ╠╦╝║╣ ╠═╣ ║║╚╦╝
╩═╝╚═╝╚═╝╩ ╩╚═╝ ╩   ╩╚═╚═╝╩ ╩═╩╝ ╩ `

// narrowWordmark replaces the block letters below this width.
const narrowWidth = 44

type frameMsg struct{}

// WelcomeScreen is the startup splash.
type WelcomeScreen struct {
	name   string
	next   func() screen.Screen
	frames int
	done   bool
}

var _ screen.Screen = (*WelcomeScreen)(nil)

// New builds the splash. name is the learner's first name and may be empty;
// next is called once to build the screen that replaces the splash.
func New(name string, next func() screen.Screen) *WelcomeScreen {
	return &WelcomeScreen{name: name, next: next}
}

func (w *WelcomeScreen) Title() string { return "" }

func (w *WelcomeScreen) Init() tea.Cmd { return nextFrame() }

func nextFrame() tea.Cmd {
	return tea.Tick(frameInterval, func(time.Time) tea.Msg { return frameMsg{} })
}

func (w *WelcomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg.(type) {
	case frameMsg:
		if w.done {
			return w, nil
		}
		w.frames++
		if w.frames >= autoAdvance {
			return w, w.leave()
		}
		return w, nextFrame()
	case tea.KeyPressMsg:
		return w, w.leave()
	}
	return w, nil
}

func (w *WelcomeScreen) leave() tea.Cmd {
	if w.done {
		return nil
	}
	w.done = true
	s := w.next()
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: s} }
}

func (w *WelcomeScreen) View(width, height int) string {
	primary := lipgloss.NewStyle().Foreground(theme.Primary)
	parts := []string{primary.Render(emblem)}

	if w.frames >= revealWords {
		mark := wordmark
		if width < narrowWidth {
			mark = "LEGACY READY"
		}
		parts = append(parts, "", primary.Bold(true).Render(mark))
	}
	if w.frames >= revealText {
		parts = append(parts, "", lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(Tagline))
		if w.name != "" {
			parts = append(parts, lipgloss.NewStyle().Foreground(theme.Accent).Render("Welcome, "+w.name))
		}
		parts = append(parts, "", theme.Hint.Render("press any key to continue"))
	}

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, strings.Join(parts, "\n"))
}
