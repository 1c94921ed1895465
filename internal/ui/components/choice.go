package components

import (
	"fmt"
	"strconv"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/endevo/legacyready/internal/ui/theme"
)

// Choice is a single-choice selector. Enter or a number key picks an
// option; the caller reads Submitted and Picked after Update.
type Choice struct {
	Prompt    string
	Options   []string
	Selected  int
	Marked    int
	Submitted bool
	Picked    int
}

// NewChoice creates a selector. marked is the index of a previously
// recorded answer, or -1; the cursor starts on it.
func NewChoice(prompt string, options []string, marked int) Choice {
	selected := 0
	if marked >= 0 && marked < len(options) {
		selected = marked
	} else {
		marked = -1
	}
	return Choice{
		Prompt:   prompt,
		Options:  options,
		Selected: selected,
		Marked:   marked,
		Picked:   -1,
	}
}

// Init returns nil.
func (c Choice) Init() tea.Cmd {
	return nil
}

// Update handles keyboard navigation and selection.
func (c Choice) Update(msg tea.Msg) (Choice, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(c.Options) == 0 {
		return c, nil
	}

	key := kmsg.String()
	switch key {
	case "up", "k":
		if c.Selected > 0 {
			c.Selected--
		}
	case "down", "j":
		if c.Selected < len(c.Options)-1 {
			c.Selected++
		}
	case "enter", "space":
		c.pick(c.Selected)
	default:
		if n, err := strconv.Atoi(key); err == nil && n >= 1 && n <= len(c.Options) {
			c.Selected = n - 1
			c.pick(c.Selected)
		}
	}

	return c, nil
}

func (c *Choice) pick(i int) {
	c.Submitted = true
	c.Picked = i
	c.Marked = i
}

// View renders the prompt and options.
func (c Choice) View() string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(c.Prompt))
	b.WriteString("\n\n")

	for i, opt := range c.Options {
		prefix := "  "
		if i == c.Selected {
			prefix = "▸ "
		}
		mark := " "
		if i == c.Marked {
			mark = "✓"
		}
		line := fmt.Sprintf("%s%d) %s %s", prefix, i+1, opt, mark)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		switch {
		case i == c.Selected:
			style = lipgloss.NewStyle().Foreground(theme.Primary).Bold(true)
		case i == c.Marked:
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}
		b.WriteString(style.Render(line) + "\n")
	}

	return b.String()
}
