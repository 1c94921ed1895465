package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/endevo/legacyready/internal/screen"
)

type fakeScreen struct {
	name  string
	inits int
	seen  []tea.Msg
}

func (f *fakeScreen) Init() tea.Cmd { f.inits++; return nil }
func (f *fakeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	f.seen = append(f.seen, msg)
	return f, nil
}
func (f *fakeScreen) View(int, int) string { return f.name }
func (f *fakeScreen) Title() string        { return f.name }

func TestNavigation(t *testing.T) {
	home := &fakeScreen{name: "home"}
	assess := &fakeScreen{name: "assess"}
	results := &fakeScreen{name: "results"}
	r := New(home)

	r.Update(PushScreenMsg{Screen: assess})
	assert.Equal(t, 2, r.Depth())
	assert.Equal(t, 1, assess.inits)

	r.Update(ReplaceScreenMsg{Screen: results})
	assert.Equal(t, 2, r.Depth(), "replace keeps depth")
	assert.Equal(t, "results", r.View(80, 24))
	assert.Equal(t, 1, results.inits)

	cmd := r.Update(PopScreenMsg{})
	require.NotNil(t, cmd)
	assert.IsType(t, screen.ResumeMsg{}, cmd())
	assert.Equal(t, "home", r.Active().Title())

	assert.Nil(t, r.Pop(), "root is never popped")
	assert.Equal(t, 1, r.Depth())
}

func TestUpdateGoesToTopScreen(t *testing.T) {
	home := &fakeScreen{name: "home"}
	chat := &fakeScreen{name: "chat"}
	r := New(home)
	r.Push(chat)

	r.Update(tea.KeyPressMsg{Code: 'x', Text: "x"})
	assert.Len(t, chat.seen, 1)
	assert.Empty(t, home.seen)
}
