// Package router keeps the stack of TUI screens. The top screen receives
// every message that is not a navigation request.
package router

import (
	tea "charm.land/bubbletea/v2"

	"github.com/endevo/legacyready/internal/screen"
)

// Navigation requests, sent as messages by screens.
type (
	PushScreenMsg    struct{ Screen screen.Screen }
	PopScreenMsg     struct{}
	ReplaceScreenMsg struct{ Screen screen.Screen }
)

// Router is a screen stack that never becomes empty.
type Router struct {
	stack []screen.Screen
}

func New(root screen.Screen) *Router {
	return &Router{stack: []screen.Screen{root}}
}

func (r *Router) Depth() int { return len(r.stack) }

func (r *Router) Active() screen.Screen {
	if len(r.stack) == 0 {
		return nil
	}
	return r.stack[len(r.stack)-1]
}

// Push shows s on top and runs its Init.
func (r *Router) Push(s screen.Screen) tea.Cmd {
	r.stack = append(r.stack, s)
	return s.Init()
}

// Replace swaps the top screen for s and runs its Init.
func (r *Router) Replace(s screen.Screen) tea.Cmd {
	r.stack[len(r.stack)-1] = s
	return s.Init()
}

// Pop drops the top screen, unless it is the root, and sends the newly
// exposed screen a ResumeMsg so it can reload.
func (r *Router) Pop() tea.Cmd {
	if len(r.stack) < 2 {
		return nil
	}
	r.stack[len(r.stack)-1] = nil
	r.stack = r.stack[:len(r.stack)-1]
	return func() tea.Msg { return screen.ResumeMsg{} }
}

func (r *Router) Update(msg tea.Msg) tea.Cmd {
	switch nav := msg.(type) {
	case PushScreenMsg:
		return r.Push(nav.Screen)
	case PopScreenMsg:
		return r.Pop()
	case ReplaceScreenMsg:
		return r.Replace(nav.Screen)
	}
	top := r.Active()
	if top == nil {
		return nil
	}
	next, cmd := top.Update(msg)
	r.stack[len(r.stack)-1] = next
	return cmd
}

func (r *Router) View(width, height int) string {
	if top := r.Active(); top != nil {
		return top.View(width, height)
	}
	return ""
}
