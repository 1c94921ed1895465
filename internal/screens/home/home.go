package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/endevo/legacyready/internal/assessment"
	"github.com/endevo/legacyready/internal/coach"
	"github.com/endevo/legacyready/internal/directory"
	"github.com/endevo/legacyready/internal/progress"
	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
	"github.com/endevo/legacyready/internal/screens/assess"
	"github.com/endevo/legacyready/internal/screens/chat"
	"github.com/endevo/legacyready/internal/screens/history"
	"github.com/endevo/legacyready/internal/screens/modules"
	"github.com/endevo/legacyready/internal/store"
	"github.com/endevo/legacyready/internal/ui/components"
)

// Deps are the services the home screen hands to the screens it opens.
type Deps struct {
	Employee directory.Employee
	Bank     *assessment.Bank
	Results  store.ResultRepo
	Progress *progress.Service
	Coach    *coach.Coach
	Logger   *zap.Logger

	// LatestVersion is set when a newer release is available.
	LatestVersion string
}

type summaryLoadedMsg struct {
	Summary *progress.Summary
	Err     error
}

const (
	itemAssess = iota
	itemModules
	itemHistory
	itemCoach
	itemExit
)

// HomeScreen is the learner's dashboard and main menu.
type HomeScreen struct {
	deps    Deps
	menu    components.Menu
	summary *progress.Summary
	errMsg  string
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.StatusProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.Coach == nil {
		deps.Coach = coach.New(nil, coach.DefaultConfig(), deps.Logger)
	}
	h := &HomeScreen{deps: deps}

	push := func(build func() screen.Screen) func() tea.Cmd {
		return func() tea.Cmd {
			s := build()
			return func() tea.Msg { return router.PushScreenMsg{Screen: s} }
		}
	}

	items := make([]components.MenuItem, itemExit+1)
	items[itemAssess] = components.MenuItem{Label: "TAKE ASSESSMENT", Action: push(func() screen.Screen {
		return assess.New(deps.Bank, deps.Results, deps.Employee.ID, deps.Logger)
	})}
	items[itemModules] = components.MenuItem{Label: "MY MODULES", Action: push(func() screen.Screen {
		return modules.New(deps.Progress, deps.Employee.ID)
	})}
	items[itemHistory] = components.MenuItem{Label: "PAST RESULTS", Action: push(func() screen.Screen {
		return history.New(deps.Results, deps.Employee.ID)
	})}
	items[itemCoach] = components.MenuItem{Label: "ASK THE COACH", Action: push(func() screen.Screen {
		return chat.New(deps.Coach, deps.Progress, deps.Employee.ID)
	})}
	items[itemExit] = components.MenuItem{Label: "EXIT", Action: func() tea.Cmd {
		return tea.Quit
	}}
	h.menu = components.NewMenu(items)

	return h
}

func (h *HomeScreen) Init() tea.Cmd {
	return h.load()
}

func (h *HomeScreen) load() tea.Cmd {
	svc, id := h.deps.Progress, h.deps.Employee.ID
	return func() tea.Msg {
		sum, err := svc.Summary(context.Background(), id)
		return summaryLoadedMsg{Summary: sum, Err: err}
	}
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case summaryLoadedMsg:
		if msg.Err != nil {
			h.errMsg = msg.Err.Error()
			h.deps.Logger.Error("load learner summary", zap.String("employee", h.deps.Employee.ID), zap.Error(msg.Err))
			return h, nil
		}
		h.errMsg = ""
		h.summary = msg.Summary
		h.relabel()
		return h, nil

	case screen.ResumeMsg:
		return h, h.load()
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

// relabel adjusts menu labels to the learner's state.
func (h *HomeScreen) relabel() {
	if h.summary != nil && h.summary.Result != nil {
		h.menu.Items[itemAssess].Label = "RETAKE ASSESSMENT"
	} else {
		h.menu.Items[itemAssess].Label = "TAKE ASSESSMENT"
	}
}

// Summary returns the loaded learner summary, or nil before it arrives.
func (h *HomeScreen) Summary() *progress.Summary {
	return h.summary
}

// Status shows the learner's name and latest score in the header.
func (h *HomeScreen) Status() string {
	name := h.deps.Employee.Name()
	if h.summary == nil || h.summary.Result == nil {
		return name
	}
	return fmt.Sprintf("%s · %d/100", name, h.summary.Result.Score)
}

func (h *HomeScreen) labels() []string {
	out := make([]string, len(h.menu.Items))
	for i, it := range h.menu.Items {
		out[i] = it.Label
	}
	return out
}

func (h *HomeScreen) View(width, height int) string {
	// height is the content area; estimate full terminal height
	// by adding back header (3) + footer (3) + frame gaps
	termHeight := height + 8
	compact := termHeight < 34 || width < 100
	tiny := termHeight < 28

	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderEmblemBox(emblemFor(h.summary), cw))
	}
	sections = append(sections, renderStatsBar(h.summary, cw, compact))
	if next := renderNextStep(h.summary, cw); next != "" {
		sections = append(sections, next)
	}
	if tiny {
		sections = append(sections, renderMenuCompact(h.labels(), h.menu.Selected, cw))
	} else {
		sections = append(sections, renderMenu(h.labels(), h.menu.Selected, cw))
	}

	var notes []string
	if h.errMsg != "" {
		notes = append(notes, "Could not load progress: "+h.errMsg)
	}
	if !h.deps.Coach.UsesLLM() && !compact {
		notes = append(notes, "Coach is using built-in help topics (no LLM key set)")
	}
	if h.deps.LatestVersion != "" {
		notes = append(notes, fmt.Sprintf("New version %s available", h.deps.LatestVersion))
	}
	if len(notes) > 0 {
		sections = append(sections, renderNote(strings.Join(notes, "\n"), cw))
	}

	return components.Frame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
