package components

import (
	"fmt"
	"image/color"
	"strings"
	"time"

	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/ui/theme"
)

// CountdownBar displays a draining time bar with a m:ss readout. The
// bar empties as Remaining approaches zero and shifts color in the
// final minute.
type CountdownBar struct {
	Label     string
	Remaining time.Duration
	Total     time.Duration
	Width     int
}

// NewCountdownBar creates a countdown bar.
func NewCountdownBar(label string, remaining, total time.Duration, width int) CountdownBar {
	return CountdownBar{
		Label:     label,
		Remaining: remaining,
		Total:     total,
		Width:     width,
	}
}

// fillColor picks the bar color from how much time is left.
func (c CountdownBar) fillColor() color.Color {
	switch {
	case c.Remaining <= 0:
		return theme.Error
	case c.Remaining <= time.Minute:
		return theme.Warning
	default:
		return theme.Secondary
	}
}

// View renders the countdown bar.
func (c CountdownBar) View() string {
	var result string

	if c.Label != "" {
		result += lipgloss.NewStyle().Foreground(theme.Text).Render(c.Label) + "  "
	}

	remaining := c.Remaining
	if remaining < 0 {
		remaining = 0
	}
	mins := int(remaining.Minutes())
	secs := int(remaining.Seconds()) % 60
	clock := fmt.Sprintf(" %d:%02d", mins, secs)

	labelWidth := lipgloss.Width(result)
	barWidth := c.Width - labelWidth - len(clock) - 1
	if barWidth < 4 {
		barWidth = 4
	}

	frac := 0.0
	if c.Total > 0 {
		frac = float64(remaining) / float64(c.Total)
	}
	filled := int(float64(barWidth) * frac)
	if filled > barWidth {
		filled = barWidth
	}
	if filled < 0 {
		filled = 0
	}
	empty := barWidth - filled

	result += lipgloss.NewStyle().
		Background(c.fillColor()).
		Render(strings.Repeat(" ", filled))
	result += lipgloss.NewStyle().
		Background(theme.Border).
		Render(strings.Repeat(" ", empty))

	result += lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(clock)

	return result
}
