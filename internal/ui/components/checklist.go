package components

import (
	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/ui/theme"
)

// Checklist renders the session objectives with a movable cursor.
// Completion itself happens through the engine; the checklist only
// tracks which objective the cursor points at.
type Checklist struct {
	Cursor int
}

// Update handles cursor movement over n items.
func (c Checklist) Update(msg tea.Msg, n int) Checklist {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || n == 0 {
		return c
	}
	switch kmsg.String() {
	case "up", "k":
		if c.Cursor > 0 {
			c.Cursor--
		}
	case "down", "j":
		if c.Cursor < n-1 {
			c.Cursor++
		}
	}
	return c
}

// View renders the objectives list.
func (c Checklist) View(objectives []engine.Objective, focused bool) string {
	var s string
	for i, obj := range objectives {
		box := "[ ]"
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if obj.Completed {
			box = "[✓]"
			style = lipgloss.NewStyle().Foreground(theme.Success)
		}

		prefix := "  "
		if focused && i == c.Cursor {
			prefix = "▸ "
			if !obj.Completed {
				style = style.Foreground(theme.Primary).Bold(true)
			}
		}

		s += style.Render(prefix+box+" "+obj.Text) + "\n"
	}
	return s
}
