package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/ui/components"
	"github.com/anika/sprout/internal/ui/layout"
	"github.com/anika/sprout/internal/ui/theme"
)

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.naming {
		return s.renderNaming(width)
	}
	sess := s.eng.CurrentSession()
	if s.sessionID == "" || sess == nil {
		return renderLoading(width)
	}
	if s.eng.ShowSessionComplete() {
		return s.renderComplete(width, sess)
	}
	if s.confirmAbandon {
		return renderAbandonConfirm(width)
	}
	if s.eng.IsBreakTime() {
		return s.renderBreak(width, sess)
	}
	return s.renderSession(width, sess)
}

// renderNaming renders the title prompt for a custom session.
func (s *Screen) renderNaming(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Bold(true).
		Render("Your own session"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(s.input.View()))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press Enter when you're ready to start."))

	return b.String()
}

// renderSession renders the main learning view.
func (s *Screen) renderSession(width int, sess *engine.LearningSession) string {
	var b strings.Builder
	b.WriteString("\n")

	bar := components.NewCountdownBar(
		"  Time left",
		s.eng.TimeRemaining(),
		sess.Timing.Recommended(),
		min(width-4, 70),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n")

	if s.eng.TimeExpired() {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("Time's up! Finish when you're ready."))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if sess.State == engine.StatePaused {
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Warning).
			Bold(true).
			Render("Paused — press P to keep going"))
		b.WriteString("\n\n")
	}

	if len(sess.Objectives) > 0 {
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			lipgloss.NewStyle().Foreground(theme.TextDim).Render("Today's goals")))
		b.WriteString("\n")
		list := s.checklist.View(sess.Objectives, sess.State == engine.StateActive)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, list))
		b.WriteString("\n")
	}

	statsLine := fmt.Sprintf("Worked: %s   Goals: %d/%d   Interactions: %d",
		layout.FormatClock(sess.TotalDuration),
		sess.ObjectivesDone(), len(sess.Objectives),
		sess.InteractionCount)
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render(statsLine))

	if s.eng.PersistErr() != nil {
		b.WriteString("\n\n")
		b.WriteString(lipgloss.NewStyle().
			Width(width).
			Align(lipgloss.Center).
			Foreground(theme.Error).
			Render("Couldn't save progress — your session keeps running. Press X to hide."))
	}

	return b.String()
}

// renderBreak renders the break overlay with its own countdown.
func (s *Screen) renderBreak(width int, sess *engine.LearningSession) string {
	var b strings.Builder
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Secondary).
		Bold(true).
		Render("Break time!"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render("Stand up, stretch, rest your eyes."))
	b.WriteString("\n\n")

	bar := components.NewCountdownBar(
		"  Break",
		s.eng.BreakTimeRemaining(),
		sess.Timing.Break(),
		min(width-4, 60),
	)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, bar.View()))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Learning starts again on its own, or press Enter to jump back in."))

	return b.String()
}

// renderComplete renders the celebration overlay before the summary.
func (s *Screen) renderComplete(width int, sess *engine.LearningSession) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Success).
		Bold(true).
		Render("Great work!"))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Render(fmt.Sprintf("You finished \"%s\" — %d of %d goals done.",
			sess.Title, sess.ObjectivesDone(), len(sess.Objectives))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Press any key to see your summary..."))

	return b.String()
}

// renderAbandonConfirm renders the stop-session dialog.
func renderAbandonConfirm(width int) string {
	var b strings.Builder
	b.WriteString("\n\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Text).
		Bold(true).
		Render("Stop this session?"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("Your time so far will be saved."))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render("[Y] Yes, stop"))
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Primary).
		Render("[N] No, keep going"))

	return b.String()
}

// renderLoading renders the setup state.
func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Getting your session ready...")
}

// renderError renders an error message.
func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Error: %s\n\n  Press any key to go back.", errMsg))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
