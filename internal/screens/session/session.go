package session

import (
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anika/sprout/internal/config"
	"github.com/anika/sprout/internal/engine"
	"github.com/anika/sprout/internal/screens/summary"
	"github.com/anika/sprout/internal/ui/components"
	"github.com/anika/sprout/internal/ui/nav"
)

// Screen drives one learning session from start to the summary handoff.
// All lifecycle decisions live in the engine; the screen translates keys
// into engine commands and renders the engine's read model.
type Screen struct {
	eng *engine.Engine
	cfg config.Config

	title       string
	sessionType engine.SessionType
	objectives  []string

	// naming is the pre-start phase for custom sessions created
	// without a title.
	naming bool
	input  components.TextInput

	sessionID string
	checklist components.Checklist

	// lastAction anchors the response-time sample for the next
	// objective completion.
	lastAction time.Time

	confirmAbandon bool
	errMsg         string
}

var _ nav.Screen = (*Screen)(nil)
var _ nav.KeyHinter = (*Screen)(nil)

// New creates a session screen. The session itself is created and
// started asynchronously in Init. An empty title starts in the naming
// phase so the child can describe the session first.
func New(eng *engine.Engine, cfg config.Config, title string, sessionType engine.SessionType, objectives []string) *Screen {
	s := &Screen{
		eng:         eng,
		cfg:         cfg,
		title:       title,
		sessionType: sessionType,
		objectives:  objectives,
	}
	if strings.TrimSpace(title) == "" {
		s.naming = true
		s.input = components.NewTextInput("What will you work on?", 40)
	}
	return s
}

func (s *Screen) Init() tea.Cmd {
	if s.naming {
		return s.input.Init()
	}
	return s.startSession()
}

func (s *Screen) Title() string {
	if s.naming {
		return "New session"
	}
	return s.title
}

func (s *Screen) KeyHints() []nav.KeyHint {
	switch {
	case s.naming:
		return []nav.KeyHint{
			{Key: "Enter", Description: "Start"},
			{Key: "Esc", Description: "Back"},
		}
	case s.errMsg != "":
		return []nav.KeyHint{{Key: "any key", Description: "Back"}}
	case s.confirmAbandon:
		return []nav.KeyHint{
			{Key: "Y", Description: "Stop session"},
			{Key: "N", Description: "Keep going"},
		}
	case s.eng.ShowSessionComplete():
		return []nav.KeyHint{{Key: "any key", Description: "See summary"}}
	case s.eng.IsBreakTime():
		return []nav.KeyHint{
			{Key: "Enter", Description: "Back to learning"},
			{Key: "Esc", Description: "Stop"},
		}
	default:
		hints := []nav.KeyHint{
			{Key: "↑↓", Description: "Pick goal"},
			{Key: "Enter", Description: "Done!"},
			{Key: "P", Description: s.pauseHint()},
			{Key: "C", Description: "Finish"},
			{Key: "Esc", Description: "Stop"},
		}
		return hints
	}
}

func (s *Screen) pauseHint() string {
	if sess := s.eng.CurrentSession(); sess != nil && sess.State == engine.StatePaused {
		return "Resume"
	}
	return "Pause"
}

func (s *Screen) Update(msg tea.Msg) (nav.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case sessionReadyMsg:
		return s.handleReady(msg)

	case timerTickMsg:
		return s.handleTick()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	// Cursor blinks and other input messages during the naming phase.
	if s.naming {
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}
	return s, nil
}

// startSession creates and starts the session through the engine.
func (s *Screen) startSession() tea.Cmd {
	return func() tea.Msg {
		timing := s.cfg.Timing()
		sess, err := s.eng.CreateSession(engine.CreateRequest{
			ChildID:    s.cfg.ChildID,
			AgeGroup:   s.cfg.AgeGroup,
			Type:       s.sessionType,
			Title:      s.title,
			Objectives: s.objectives,
			Timing:     &timing,
		})
		if err != nil {
			return sessionReadyMsg{Err: err}
		}
		if err := s.eng.Start(sess.ID); err != nil {
			return sessionReadyMsg{Err: err}
		}
		return sessionReadyMsg{ID: sess.ID}
	}
}

func (s *Screen) handleReady(msg sessionReadyMsg) (nav.Screen, tea.Cmd) {
	if msg.Err != nil {
		s.errMsg = msg.Err.Error()
		return s, nil
	}
	s.sessionID = msg.ID
	s.lastAction = time.Now()
	return s, tickCmd()
}

func (s *Screen) handleTick() (nav.Screen, tea.Cmd) {
	if s.sessionID == "" {
		return s, nil
	}

	s.eng.Tick()

	// A break that ran its full course ends automatically; retire the
	// reminder so the overlay drops with it.
	if s.eng.ShowBreakReminder() && !s.eng.IsBreakTime() {
		s.eng.DismissBreakReminder()
	}

	if sess := s.eng.CurrentSession(); sess != nil && sess.State.Terminal() {
		// Keep rendering the completion overlay, no more ticks needed.
		return s, nil
	}
	return s, tickCmd()
}

func (s *Screen) handleKey(msg tea.KeyMsg) (nav.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		return s, func() tea.Msg { return nav.PopMsg{} }
	}

	// Naming phase: Enter starts once a title is typed, Esc backs out.
	if s.naming {
		switch key {
		case "enter":
			title := strings.TrimSpace(s.input.Value())
			if title == "" {
				return s, nil
			}
			s.title = title
			s.naming = false
			return s, s.startSession()
		case "esc":
			return s, func() tea.Msg { return nav.PopMsg{} }
		}
		var cmd tea.Cmd
		s.input, cmd = s.input.Update(msg)
		return s, cmd
	}

	if s.sessionID == "" {
		return s, nil
	}

	// Completion overlay: any key moves on to the summary.
	if s.eng.ShowSessionComplete() {
		s.eng.DismissSessionComplete()
		return s, s.goSummary()
	}

	// Abandon confirmation dialog.
	if s.confirmAbandon {
		switch key {
		case "y", "Y":
			s.confirmAbandon = false
			if err := s.eng.Abandon(s.sessionID); err != nil {
				s.errMsg = err.Error()
				return s, nil
			}
			return s, s.goSummary()
		case "n", "N", "esc":
			s.confirmAbandon = false
		}
		return s, nil
	}

	// Break overlay.
	if s.eng.IsBreakTime() {
		switch key {
		case "enter", "r":
			_ = s.eng.Resume(s.sessionID)
			s.eng.DismissBreakReminder()
		case "esc":
			s.confirmAbandon = true
		}
		return s, nil
	}

	switch key {
	case "esc":
		s.confirmAbandon = true
		return s, nil

	case "p":
		sess := s.eng.CurrentSession()
		if sess != nil && sess.State == engine.StatePaused {
			_ = s.eng.Resume(s.sessionID)
		} else {
			_ = s.eng.Pause(s.sessionID)
		}
		return s, nil

	case "c":
		if err := s.eng.Complete(s.sessionID); err != nil {
			s.errMsg = err.Error()
		}
		return s, nil

	case "enter", "space", " ":
		sess := s.eng.CurrentSession()
		if sess == nil || len(sess.Objectives) == 0 {
			return s, nil
		}
		responseTime := time.Since(s.lastAction)
		if err := s.eng.CompleteObjective(s.sessionID, s.checklist.Cursor, responseTime); err == nil {
			s.lastAction = time.Now()
		}
		return s, nil

	case "x":
		s.eng.DismissPersistErr()
		return s, nil
	}

	if sess := s.eng.CurrentSession(); sess != nil {
		s.checklist = s.checklist.Update(msg, len(sess.Objectives))
	}
	return s, nil
}

// goSummary swaps this screen for the summary so Esc from there lands
// back on home.
func (s *Screen) goSummary() tea.Cmd {
	sess := s.eng.CurrentSession()
	if sess == nil {
		return func() tea.Msg { return nav.PopMsg{} }
	}
	sum := engine.BuildSummary(sess)
	return func() tea.Msg {
		return nav.ReplaceMsg{Screen: summary.New(sum)}
	}
}

// tickCmd returns a 1-second tick command.
func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return timerTickMsg(t)
	})
}
