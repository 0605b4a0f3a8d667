package engine

import "time"

// State is the lifecycle state of a learning session.
type State string

const (
	StateNotStarted State = "not_started"
	StateActive     State = "active"
	StatePaused     State = "paused"
	StateBreak      State = "break"
	StateCompleted  State = "completed"
	StateAbandoned  State = "abandoned"
)

// Terminal reports whether no further transitions are permitted.
func (s State) Terminal() bool {
	return s == StateCompleted || s == StateAbandoned
}

// SessionType categorizes what kind of learning activity a session is.
type SessionType string

const (
	TypeLesson     SessionType = "lesson"
	TypePractice   SessionType = "practice"
	TypeReview     SessionType = "review"
	TypeAssessment SessionType = "assessment"
)

// AgeGroup selects age-appropriate defaults (timing, theming).
type AgeGroup string

const (
	Ages3To5   AgeGroup = "ages3to5"
	Ages6To9   AgeGroup = "ages6to9"
	Ages10To12 AgeGroup = "ages10to12"
)

// Objective is a single learning goal within a session. Objectives are
// marked complete by the consumer; the engine only reads them when it
// derives the completion rate.
type Objective struct {
	Text      string
	Completed bool
}

// TimingConfig controls the session cadence. All values are minutes.
type TimingConfig struct {
	// RecommendedDuration is the target active time for the session.
	RecommendedDuration int

	// BreakDuration is how long an automatic break lasts. Zero disables
	// automatic breaks entirely.
	BreakDuration int

	// BreakInterval is the continuous active time before a break is due.
	// Zero means "derive from RecommendedDuration" (half of it, at least
	// one minute).
	BreakInterval int
}

// withDefaults fills in the derived break interval.
func (tc TimingConfig) withDefaults() TimingConfig {
	if tc.BreakInterval <= 0 {
		half := tc.RecommendedDuration / 2
		if half < 1 {
			half = 1
		}
		tc.BreakInterval = half
	}
	return tc
}

// Recommended returns the recommended active duration.
func (tc TimingConfig) Recommended() time.Duration {
	return time.Duration(tc.RecommendedDuration) * time.Minute
}

// Break returns the break countdown duration.
func (tc TimingConfig) Break() time.Duration {
	return time.Duration(tc.BreakDuration) * time.Minute
}

// breakDue returns the continuous-active threshold that triggers a break.
func (tc TimingConfig) breakDue() time.Duration {
	return time.Duration(tc.BreakInterval) * time.Minute
}

// DefaultTiming returns age-appropriate timing defaults.
func DefaultTiming(age AgeGroup) TimingConfig {
	switch age {
	case Ages3To5:
		return TimingConfig{RecommendedDuration: 10, BreakDuration: 3}
	case Ages10To12:
		return TimingConfig{RecommendedDuration: 30, BreakDuration: 5}
	default:
		return TimingConfig{RecommendedDuration: 20, BreakDuration: 5}
	}
}

// LearningSession is one bounded unit of a child's learning activity,
// tracked from creation to completion or abandonment. Identity and
// descriptive fields are immutable after creation; counters and derived
// stats mutate while the session is live.
type LearningSession struct {
	ID          string
	ChildID     string
	AgeGroup    AgeGroup
	Type        SessionType
	Title       string
	Description string

	Objectives []Objective
	Timing     TimingConfig

	State State

	// TotalDuration is the cumulative active time. It only grows while
	// the session is active and is frozen in every other state.
	TotalDuration time.Duration

	// InteractionCount counts discrete user interactions recorded by the
	// consumer.
	InteractionCount int

	// CompletionRate is in [0, 1]. Set on completion from the objectives
	// or from an explicit caller-supplied ratio.
	CompletionRate float64

	// AvgResponseTime is the rolling average of response-time samples fed
	// through RecordInteraction.
	AvgResponseTime time.Duration

	CreatedAt time.Time
}

// ObjectivesDone returns how many objectives are marked complete.
func (s *LearningSession) ObjectivesDone() int {
	done := 0
	for _, o := range s.Objectives {
		if o.Completed {
			done++
		}
	}
	return done
}
