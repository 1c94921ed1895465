package welcome

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endevo/legacyready/internal/router"
	"github.com/endevo/legacyready/internal/screen"
)

type homeStub struct{}

func (h *homeStub) Init() tea.Cmd                          { return nil }
func (h *homeStub) Update(tea.Msg) (screen.Screen, tea.Cmd) { return h, nil }
func (h *homeStub) View(int, int) string                   { return "home" }
func (h *homeStub) Title() string                          { return "Home" }

func newSplash(name string) (*WelcomeScreen, *int) {
	built := 0
	return New(name, func() screen.Screen {
		built++
		return &homeStub{}
	}), &built
}

func advance(w *WelcomeScreen, n int) tea.Cmd {
	var cmd tea.Cmd
	for range n {
		_, cmd = w.Update(frameMsg{})
	}
	return cmd
}

func TestReveal(t *testing.T) {
	w, _ := newSplash("Ana")

	view := w.View(100, 30)
	assert.NotContains(t, view, Tagline)
	assert.NotContains(t, view, "╦")

	advance(w, revealWords)
	view = w.View(100, 30)
	assert.Contains(t, view, "╦")
	assert.NotContains(t, view, Tagline)

	advance(w, revealText-revealWords)
	view = w.View(100, 30)
	assert.Contains(t, view, Tagline)
	assert.Contains(t, view, "Welcome, Ana")
	assert.Contains(t, view, "press any key")
}

func TestNarrowTerminalUsesPlainWordmark(t *testing.T) {
	w, _ := newSplash("")
	advance(w, revealText)

	view := w.View(40, 30)
	assert.Contains(t, view, "LEGACY READY")
	assert.NotContains(t, view, "Welcome,")
}

func TestKeyPressLeavesOnce(t *testing.T) {
	w, built := newSplash("")
	advance(w, 2)

	_, cmd := w.Update(tea.KeyPressMsg{Code: ' '})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	assert.IsType(t, &homeStub{}, msg.Screen)

	_, cmd = w.Update(tea.KeyPressMsg{Code: 'q'})
	assert.Nil(t, cmd)
	assert.Nil(t, advance(w, 1), "frames stop after leaving")
	assert.Equal(t, 1, *built)
}

func TestAutoAdvance(t *testing.T) {
	w, built := newSplash("")

	cmd := advance(w, autoAdvance-1)
	require.NotNil(t, cmd)
	assert.Zero(t, *built)

	cmd = advance(w, 1)
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
	assert.Equal(t, 1, *built)
}

func TestTitleIsBlank(t *testing.T) {
	w, _ := newSplash("")
	assert.Empty(t, strings.TrimSpace(w.Title()))
}
