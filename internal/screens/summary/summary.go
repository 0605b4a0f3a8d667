package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/ui/layout"
	"github.com/anika/sprout/internal/ui/nav"
	"github.com/anika/sprout/internal/ui/theme"
)

// Screen displays the end-of-session summary with earned badges.
type Screen struct {
	summary *engine.SessionSummary
}

var _ nav.Screen = (*Screen)(nil)
var _ nav.KeyHinter = (*Screen)(nil)

// New creates a summary screen.
func New(summary *engine.SessionSummary) *Screen {
	return &Screen{summary: summary}
}

func (s *Screen) Init() tea.Cmd {
	return nil
}

func (s *Screen) Title() string {
	return "Summary"
}

func (s *Screen) KeyHints() []nav.KeyHint {
	return []nav.KeyHint{
		{Key: "Enter", Description: "Home"},
	}
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			return s, func() tea.Msg { return nav.PopMsg{} }
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	var b strings.Builder
	b.WriteString("\n")

	headline := "Session complete!"
	headlineColor := theme.Success
	if sum.State == engine.StateAbandoned {
		headline = "Session ended early"
		headlineColor = theme.Warning
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(headlineColor).
		Bold(true).
		Render(headline))
	b.WriteString("\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("%s (%s)", sum.Title, sum.Type)))
	b.WriteString("\n\n")

	statsLine := fmt.Sprintf("Time: %s        Goals: %d/%d        Completion: %.0f%%",
		layout.FormatClock(sum.Duration),
		sum.ObjectivesDone, sum.ObjectivesTotal,
		sum.CompletionRate*100)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(statsLine))
	b.WriteString("\n")

	detailLine := fmt.Sprintf("Interactions: %d", sum.Interactions)
	if sum.AvgResponseTime > 0 {
		detailLine += fmt.Sprintf("        Average answer: %.1fs", sum.AvgResponseTime.Seconds())
	}
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(detailLine))
	b.WriteString("\n\n")

	if len(sum.Achievements) > 0 {
		divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
			strings.Repeat("─", min(width-8, 60)))
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Badges")))
		b.WriteString("\n")
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
		b.WriteString("\n\n")

		for _, a := range sum.Achievements {
			line := fmt.Sprintf("  ★ %s — %s", a.Title, a.Caption)
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.Accent).Render(line)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
