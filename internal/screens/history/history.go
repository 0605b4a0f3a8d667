package history

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/ui/layout"
	"github.com/anika/sprout/internal/ui/nav"
	"github.com/anika/sprout/internal/ui/theme"
)

type historyLoadedMsg struct {
	Sessions []*engine.LearningSession
	Stats    *engine.ChildStats
	Err      error
}

// Screen lists a child's recent sessions with their outcomes.
type Screen struct {
	repo    engine.Repository
	childID string
	limit   int

	sessions []*engine.LearningSession
	stats    *engine.ChildStats
	selected int
	loaded   bool
	errMsg   string
}

var _ nav.Screen = (*Screen)(nil)
var _ nav.KeyHinter = (*Screen)(nil)

// New creates a history screen for one child.
func New(repo engine.Repository, childID string, limit int) *Screen {
	if limit <= 0 {
		limit = 20
	}
	return &Screen{repo: repo, childID: childID, limit: limit}
}

func (s *Screen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()

		sessions, err := s.repo.FetchRecent(ctx, s.childID, s.limit)
		if err != nil {
			return historyLoadedMsg{Err: err}
		}
		stats, err := s.repo.FetchStats(ctx, s.childID)
		if err != nil {
			return historyLoadedMsg{Sessions: sessions}
		}
		return historyLoadedMsg{Sessions: sessions, Stats: stats}
	}
}

func (s *Screen) Title() string {
	return "History"
}

func (s *Screen) KeyHints() []nav.KeyHint {
	return []nav.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case historyLoadedMsg:
		if msg.Err != nil {
			s.errMsg = msg.Err.Error()
		} else {
			s.sessions = msg.Sessions
			s.stats = msg.Stats
		}
		s.loaded = true
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "esc":
			return s, func() tea.Msg { return nav.PopMsg{} }
		case "up", "k":
			if s.selected > 0 {
				s.selected--
			}
		case "down", "j":
			if s.selected < len(s.sessions)-1 {
				s.selected++
			}
		}
	}
	return s, nil
}

func (s *Screen) View(width, height int) string {
	if s.errMsg != "" {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.Error).
			Render(fmt.Sprintf("\n\nError: %s", s.errMsg))
	}
	if !s.loaded {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render("\n\n  Loading history...")
	}
	if len(s.sessions) == 0 {
		return lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).Italic(true).
			Render("\n\n  No sessions yet. Start your first one!")
	}

	var b strings.Builder
	b.WriteString("\n")

	if s.stats != nil && s.stats.TotalSessions > 0 {
		statsLine := fmt.Sprintf("Sessions: %d   Finished: %d   Total time: %s",
			s.stats.TotalSessions,
			s.stats.CompletedSessions,
			layout.FormatClock(s.stats.TotalActive))
		b.WriteString(lipgloss.NewStyle().
			Width(width).Align(lipgloss.Center).Foreground(theme.TextDim).
			Render(statsLine))
		b.WriteString("\n\n")
	}

	for i, sess := range s.sessions {
		dateStr := sess.CreatedAt.Format("Jan 02")
		durationStr := layout.FormatClock(sess.TotalDuration)

		outcome := stateLabel(sess.State)

		prefix := "  "
		if i == s.selected {
			prefix = "> "
		}

		line := fmt.Sprintf("%s%s  %-20s %-10s %s  %s",
			prefix, dateStr, truncate(sess.Title, 20), sess.Type, durationStr, outcome)

		style := lipgloss.NewStyle().Foreground(theme.Text)
		if i == s.selected {
			style = style.Foreground(theme.Primary).Bold(true)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
			style.Render(line)))
		b.WriteString("\n")

		if i == s.selected && len(sess.Objectives) > 0 {
			detail := fmt.Sprintf("    %d/%d goals", sess.ObjectivesDone(), len(sess.Objectives))
			if sess.State == engine.StateCompleted {
				detail += fmt.Sprintf("   %.0f%% complete", sess.CompletionRate*100)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
				lipgloss.NewStyle().Foreground(theme.TextDim).Render(detail)))
			b.WriteString("\n")
		}
	}

	return b.String()
}

func stateLabel(state engine.State) string {
	switch state {
	case engine.StateCompleted:
		return "finished"
	case engine.StateAbandoned:
		return "stopped"
	default:
		return string(state)
	}
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
