package engine

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func terminalSession() *LearningSession {
	return &LearningSession{
		ID:      "s1",
		ChildID: "c1",
		Title:   "Fractions",
		Type:    TypeLesson,
		Timing:  TimingConfig{RecommendedDuration: 20, BreakDuration: 5}.withDefaults(),
		State:   StateCompleted,
	}
}

func achievementIDs(s *LearningSession) []string {
	var ids []string
	for _, a := range Achievements(s) {
		ids = append(ids, a.ID)
	}
	return ids
}

func TestAchievements_None(t *testing.T) {
	s := terminalSession()
	s.CompletionRate = 0.5
	s.TotalDuration = 5 * time.Minute
	s.InteractionCount = 3

	assert.Empty(t, Achievements(s))
}

func TestAchievements_HighAchiever(t *testing.T) {
	s := terminalSession()
	s.CompletionRate = 0.9

	assert.Contains(t, achievementIDs(s), "high_achiever")
}

func TestAchievements_TimeManager(t *testing.T) {
	s := terminalSession()
	s.TotalDuration = 20 * time.Minute

	assert.Contains(t, achievementIDs(s), "time_manager")
}

func TestAchievements_ActiveLearner(t *testing.T) {
	s := terminalSession()
	s.InteractionCount = 10

	assert.Contains(t, achievementIDs(s), "active_learner")
}

func TestAchievements_QuickResponder(t *testing.T) {
	s := terminalSession()
	s.AvgResponseTime = 3 * time.Second
	assert.Contains(t, achievementIDs(s), "quick_responder")

	// No samples means no badge, not an instant one.
	s.AvgResponseTime = 0
	assert.NotContains(t, achievementIDs(s), "quick_responder")

	s.AvgResponseTime = 3100 * time.Millisecond
	assert.NotContains(t, achievementIDs(s), "quick_responder")
}

func TestAchievements_AllAtOnce(t *testing.T) {
	s := terminalSession()
	s.CompletionRate = 1.0
	s.TotalDuration = 25 * time.Minute
	s.InteractionCount = 42
	s.AvgResponseTime = 1500 * time.Millisecond

	assert.Len(t, Achievements(s), 4)
}

func TestBuildSummary(t *testing.T) {
	s := terminalSession()
	s.Objectives = []Objective{
		{Text: "a", Completed: true},
		{Text: "b", Completed: true},
		{Text: "c"},
	}
	s.CompletionRate = 2.0 / 3.0
	s.TotalDuration = 21 * time.Minute
	s.InteractionCount = 12
	s.AvgResponseTime = 2 * time.Second

	sum := BuildSummary(s)

	assert.Equal(t, "Fractions", sum.Title)
	assert.Equal(t, StateCompleted, sum.State)
	assert.Equal(t, 21*time.Minute, sum.Duration)
	assert.Equal(t, 2, sum.ObjectivesDone)
	assert.Equal(t, 3, sum.ObjectivesTotal)
	assert.Equal(t, 12, sum.Interactions)
	assert.Len(t, sum.Achievements, 3) // time manager, active learner, quick responder
}

func TestObjectiveRate(t *testing.T) {
	s := terminalSession()
	assert.Equal(t, 0.0, objectiveRate(s))

	s.Objectives = []Objective{{Completed: true}, {}, {Completed: true}, {}}
	assert.InDelta(t, 0.5, objectiveRate(s), 1e-9)
}
