package summary

import (
	"strings"
	"testing"
	"time"

	tea "charm.land/bubbletea/v2"

	"github.com/anika/sprout/internal/engine"
)

func testSummary() *engine.SessionSummary {
	return &engine.SessionSummary{
		Title:           "Reading time",
		Type:            engine.TypeLesson,
		State:           engine.StateCompleted,
		Duration:        18 * time.Minute,
		CompletionRate:  1.0,
		ObjectivesDone:  3,
		ObjectivesTotal: 3,
		Interactions:    12,
		AvgResponseTime: 2 * time.Second,
		Achievements: []engine.Achievement{
			{ID: "high_achiever", Title: "High Achiever", Caption: "Completed almost every objective"},
			{ID: "active_learner", Title: "Active Learner", Caption: "Stayed busy the whole session"},
		},
	}
}

func TestScreen_Title(t *testing.T) {
	s := New(testSummary())
	if s.Title() != "Summary" {
		t.Errorf("Title = %q, want %q", s.Title(), "Summary")
	}
}

func TestScreen_Display(t *testing.T) {
	s := New(testSummary())
	view := s.View(80, 24)
	if view == "" {
		t.Fatal("expected non-empty summary view")
	}
	if !strings.Contains(view, "Session complete!") {
		t.Error("expected completion headline")
	}
	if !strings.Contains(view, "High Achiever") {
		t.Error("expected badge titles in view")
	}
}

func TestScreen_Display_Abandoned(t *testing.T) {
	sum := testSummary()
	sum.State = engine.StateAbandoned
	s := New(sum)

	view := s.View(80, 24)
	if !strings.Contains(view, "Session ended early") {
		t.Error("expected early-end headline for abandoned session")
	}
}

func TestScreen_Navigation(t *testing.T) {
	s := New(testSummary())

	_, cmd := s.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Error("expected a command on Enter (pop)")
	}

	_, cmd = s.Update(tea.KeyPressMsg{Code: tea.KeyEscape})
	if cmd == nil {
		t.Error("expected a command on Esc (pop)")
	}
}

func TestScreen_KeyHints(t *testing.T) {
	s := New(testSummary())
	if len(s.KeyHints()) != 1 {
		t.Errorf("KeyHints length = %d, want 1", len(s.KeyHints()))
	}
}
