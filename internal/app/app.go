package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/anika/sprout/internal/config"
	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/screens/home"
	"github.com/anika/sprout/internal/ui/layout"
	"github.com/anika/sprout/internal/ui/nav"
	"github.com/anika/sprout/internal/ui/theme"
)

// Options carries the wired dependencies into the TUI.
type Options struct {
	Engine *engine.Engine
	Repo   engine.Repository
	Config config.Config
}

// Model is the root Bubble Tea model.
type Model struct {
	stack *nav.Stack
	opts  Options

	width  int
	height int
}

// newModel creates the root model with the home screen on the stack.
func newModel(opts Options) Model {
	homeScreen := home.New(opts.Engine, opts.Repo, opts.Config)
	return Model{
		stack: nav.NewStack(homeScreen),
		opts:  opts,
	}
}

func (m Model) Init() tea.Cmd {
	return m.stack.Active().Init()
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.stack.Update(msg)
	return m, cmd
}

func (m Model) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	active := m.stack.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	var state engine.State
	if sess := m.opts.Engine.CurrentSession(); sess != nil && !sess.State.Terminal() {
		state = sess.State
	}

	header := layout.RenderHeader(title, m.opts.Config.ChildName, state, m.width)

	var footerHints []nav.KeyHint
	if hinter, ok := active.(nav.KeyHinter); ok {
		footerHints = hinter.KeyHints()
	}
	if footerHints == nil {
		footerHints = []nav.KeyHint{
			{Key: "↑↓", Description: "Navigate"},
			{Key: "Enter", Description: "Select"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	headerHeight := lipgloss.Height(header)
	footerHeight := lipgloss.Height(footer)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.stack.View(m.width, contentHeight)
	frame := layout.RenderFrame(header, content, footer, m.width, m.height)

	v.SetContent(frame)
	return v
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	if opts.Engine == nil {
		opts.Engine = engine.New()
	}
	theme.SetAge(string(opts.Config.AgeGroup))

	p := tea.NewProgram(newModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
