package engine

import "time"

// objectiveRate is the fraction of objectives marked complete.
func objectiveRate(s *LearningSession) float64 {
	if len(s.Objectives) == 0 {
		return 0
	}
	return float64(s.ObjectivesDone()) / float64(len(s.Objectives))
}

// Achievement is a badge shown on the completion summary. Achievements
// are pure functions of final session stats and are never stored.
type Achievement struct {
	ID      string
	Title   string
	Caption string
}

// Achievements evaluates the badge rules against a session's stats.
func Achievements(s *LearningSession) []Achievement {
	var earned []Achievement

	if s.CompletionRate >= 0.9 {
		earned = append(earned, Achievement{
			ID:      "high_achiever",
			Title:   "High Achiever",
			Caption: "Completed almost every objective",
		})
	}
	if s.TotalDuration >= s.Timing.Recommended() {
		earned = append(earned, Achievement{
			ID:      "time_manager",
			Title:   "Time Manager",
			Caption: "Worked through the whole recommended time",
		})
	}
	if s.InteractionCount >= 10 {
		earned = append(earned, Achievement{
			ID:      "active_learner",
			Title:   "Active Learner",
			Caption: "Stayed busy the whole session",
		})
	}
	if s.AvgResponseTime > 0 && s.AvgResponseTime <= 3*time.Second {
		earned = append(earned, Achievement{
			ID:      "quick_responder",
			Title:   "Quick Responder",
			Caption: "Fast answers all session long",
		})
	}

	return earned
}

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Title           string
	Type            SessionType
	State           State
	Duration        time.Duration
	CompletionRate  float64
	ObjectivesDone  int
	ObjectivesTotal int
	Interactions    int
	AvgResponseTime time.Duration
	Achievements    []Achievement
}

// BuildSummary creates a SessionSummary from a terminal-state session.
func BuildSummary(s *LearningSession) *SessionSummary {
	return &SessionSummary{
		Title:           s.Title,
		Type:            s.Type,
		State:           s.State,
		Duration:        s.TotalDuration,
		CompletionRate:  s.CompletionRate,
		ObjectivesDone:  s.ObjectivesDone(),
		ObjectivesTotal: len(s.Objectives),
		Interactions:    s.InteractionCount,
		AvgResponseTime: s.AvgResponseTime,
		Achievements:    Achievements(s),
	}
}
