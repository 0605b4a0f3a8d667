package home

import (
	"context"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/config"
	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/screens/history"
	sessionscreen "github.com/anika/sprout/internal/screens/session"
	"github.com/anika/sprout/internal/ui/components"
	"github.com/anika/sprout/internal/ui/layout"
	"github.com/anika/sprout/internal/ui/nav"
	"github.com/anika/sprout/internal/ui/theme"
)

type statsLoadedMsg struct {
	Stats *engine.ChildStats
	Err   error
}

// sessionPreset is one ready-to-start session offered on the menu.
type sessionPreset struct {
	label      string
	title      string
	sType      engine.SessionType
	objectives []string
}

var presets = []sessionPreset{
	{
		label: "START LEARNING",
		title: "Learning time",
		sType: engine.TypeLesson,
		objectives: []string{
			"Warm up with something you know",
			"Learn one new thing",
			"Try it yourself",
			"Explain it out loud",
		},
	},
	{
		label: "PRACTICE",
		title: "Practice round",
		sType: engine.TypePractice,
		objectives: []string{
			"Pick a skill to practice",
			"Do it five times",
			"Beat yesterday's best",
		},
	},
	{
		label: "QUICK REVIEW",
		title: "Quick review",
		sType: engine.TypeReview,
		objectives: []string{
			"Look back at last time",
			"Redo the tricky part",
		},
	},
}

// Screen is the main menu: mascot, stats strip, and session presets.
type Screen struct {
	eng  *engine.Engine
	repo engine.Repository
	cfg  config.Config

	menu  components.Menu
	stats *engine.ChildStats
}

var _ nav.Screen = (*Screen)(nil)

// New creates the home screen. Stats load asynchronously in Init.
func New(eng *engine.Engine, repo engine.Repository, cfg config.Config) *Screen {
	s := &Screen{eng: eng, repo: repo, cfg: cfg}

	items := make([]components.MenuItem, 0, len(presets)+2)
	for _, p := range presets {
		preset := p
		items = append(items, components.MenuItem{
			Label: preset.label,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return nav.PushMsg{
						Screen: sessionscreen.New(eng, cfg, preset.title, preset.sType, preset.objectives),
					}
				}
			},
		})
	}
	items = append(items, components.MenuItem{
		Label: "MY OWN SESSION",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				// An empty title puts the screen in its naming phase.
				return nav.PushMsg{
					Screen: sessionscreen.New(eng, cfg, "", engine.TypePractice, nil),
				}
			}
		},
	})
	items = append(items, components.MenuItem{
		Label: "HISTORY",
		Action: func() tea.Cmd {
			return func() tea.Msg {
				return nav.PushMsg{Screen: history.New(repo, cfg.ChildID, cfg.HistoryLimit)}
			}
		},
		Disabled: repo == nil,
	})
	items = append(items, components.MenuItem{
		Label: "EXIT",
		Action: func() tea.Cmd {
			return tea.Quit
		},
	})

	s.menu = components.NewMenu(items)
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.repo == nil {
		return nil
	}
	repo, childID := s.repo, s.cfg.ChildID
	return func() tea.Msg {
		stats, err := repo.FetchStats(context.Background(), childID)
		return statsLoadedMsg{Stats: stats, Err: err}
	}
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case statsLoadedMsg:
		if msg.Err == nil {
			s.stats = msg.Stats
		}
		return s, nil
	}

	var cmd tea.Cmd
	s.menu, cmd = s.menu.Update(msg)
	return s, cmd
}

func (s *Screen) View(width, height int) string {
	compact := layout.IsCompactHeight(height + 8)

	var sections []string

	title := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true).
		Render("S P R O U T")
	greeting := lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Render(fmt.Sprintf("Hi %s! Ready to grow?", s.cfg.ChildName))
	sections = append(sections, title+"\n"+greeting)

	if !compact {
		total := 0
		if s.stats != nil {
			total = s.stats.TotalSessions
		}
		sections = append(sections, RenderMascot(stageFor(total)))
	}

	if s.stats != nil && s.stats.TotalSessions > 0 {
		strip := fmt.Sprintf("%d sessions   %s learning   %d finished",
			s.stats.TotalSessions,
			layout.FormatClock(s.stats.TotalActive),
			s.stats.CompletedSessions)
		sections = append(sections, lipgloss.NewStyle().
			Foreground(theme.TextDim).
			Render(strip))
	}

	sections = append(sections, s.menu.View())

	content := strings.Join(sections, "\n\n")

	centered := lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Render(content)
	return lipgloss.PlaceVertical(height, lipgloss.Center, centered)
}

func (s *Screen) Title() string {
	return "Home"
}
