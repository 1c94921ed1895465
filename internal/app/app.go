// Package app hosts the Bubble Tea program: the screen stack plus the header
// and footer drawn around the active screen.
package app

import (
	"context"
	"errors"
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/screens/home"
	"github.com/endevo/legacyready/internal/screens/welcome"
	"github.com/endevo/legacyready/internal/ui/layout"
)

// Options configures the TUI.
type Options struct {
	home.Deps

	// SkipWelcome starts directly on the home screen.
	SkipWelcome bool
}

// AppModel is the root model.
type AppModel struct {
	router        *router.Router
	width, height int
}

func newAppModel(opts Options) AppModel {
	toHome := func() screen.Screen { return home.New(opts.Deps) }
	if opts.SkipWelcome {
		return AppModel{router: router.New(toHome())}
	}
	return AppModel{router: router.New(welcome.New(opts.Employee.FirstName, toHome))}
}

func (m AppModel) Init() tea.Cmd {
	return m.router.Active().Init()
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = size.Width, size.Height
		return m, nil
	}
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if !m.interceptsBack() {
				if m.router.Depth() == 1 {
					return m, nil
				}
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
		}
	}
	return m, m.router.Update(msg)
}

func (m AppModel) interceptsBack() bool {
	bi, ok := m.router.Active().(screen.BackInterceptor)
	return ok && bi.InterceptsBack()
}

var quitHint = layout.KeyHint{Key: "Ctrl+C", Description: "Quit"}

// footerHints prefers the screen's own hints, then falls back to the
// generic ones for nested or root screens.
func (m AppModel) footerHints() []layout.KeyHint {
	if kp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		return append(kp.KeyHints(), quitHint)
	}
	if m.router.Depth() > 1 {
		return []layout.KeyHint{{Key: "Esc", Description: "Back"}, quitHint}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Select"},
		quitHint,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true
	switch {
	case m.width == 0 || m.height == 0:
		return v
	case layout.IsTooSmall(m.width, m.height):
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.router.Active()
	var status string
	if sp, ok := active.(screen.StatusProvider); ok {
		status = sp.Status()
	}
	header := layout.RenderHeader(active.Title(), status, m.width)
	footer := layout.RenderFooter(m.footerHints(), m.width)

	body := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	v.SetContent(layout.RenderFrame(header, m.router.View(m.width, body), footer, m.width, m.height))
	return v
}

// Run blocks until the user quits or ctx is cancelled. Cancellation is not
// reported as an error.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return nil
		}
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}
