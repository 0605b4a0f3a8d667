package engine

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Repository persists sessions and serves history/stats queries. It is
// implemented externally (internal/store); the engine only needs it for
// optimistic persistence and never for lifecycle correctness.
type Repository interface {
	Persist(ctx context.Context, s *LearningSession) error
	FetchRecent(ctx context.Context, childID string, limit int) ([]*LearningSession, error)
	FetchStats(ctx context.Context, childID string) (*ChildStats, error)
}

// ChildStats aggregates a child's session history for the stats surfaces.
type ChildStats struct {
	TotalSessions     int
	CompletedSessions int
	AbandonedSessions int
	TotalActive       time.Duration
	TotalInteractions int
	AvgCompletionRate float64
}

// CreateRequest is the input to Engine.CreateSession.
type CreateRequest struct {
	ChildID     string
	AgeGroup    AgeGroup
	Type        SessionType
	Title       string
	Description string
	Objectives  []string

	// Timing overrides the age-group defaults when non-nil.
	Timing *TimingConfig
}

// Engine owns the lifecycle state machine, the countdown and break timers,
// and the derived statistics for one active session per child. Commands
// are synchronous against the in-memory state; persistence is optimistic
// and its failures surface through PersistErr rather than rolling back a
// transition.
//
// The engine is single-threaded by design: the owner drives it from one
// goroutine (the Bubble Tea update loop in the app, the test body in
// tests). A reentrant dispatch during a transition's side effects is
// queued and applied in order, never interleaved.
type Engine struct {
	clock Clock
	repo  Repository // optional

	session *LearningSession

	// Timer bookkeeping. Elapsed time is computed from wall-clock deltas
	// between ticks, so missed ticks never drift the countdown ahead of
	// real time.
	lastTick     time.Time
	sinceBreak   time.Duration // continuous active time since the last break
	breakElapsed time.Duration

	// Rolling-average state for response-time samples.
	responseSamples int

	showBreakReminder   bool
	showSessionComplete bool

	persistErr error

	dispatching bool
	queue       []event
}

// Option configures an Engine.
type Option func(*Engine)

// WithClock injects a clock, primarily for tests.
func WithClock(c Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithRepository enables optimistic persistence of session transitions.
func WithRepository(r Repository) Option {
	return func(e *Engine) { e.repo = r }
}

// New creates an Engine with no session.
func New(opts ...Option) *Engine {
	e := &Engine{clock: systemClock{}}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// CreateSession validates the request and installs a new session in the
// not_started state. It fails with ConflictError while a non-terminal
// session exists for the child.
func (e *Engine) CreateSession(req CreateRequest) (*LearningSession, error) {
	if strings.TrimSpace(req.ChildID) == "" {
		return nil, &ValidationError{Field: "childId", Reason: "must not be empty"}
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, &ValidationError{Field: "title", Reason: "must not be empty"}
	}
	if e.session != nil && !e.session.State.Terminal() && e.session.ChildID == req.ChildID {
		return nil, &ConflictError{ChildID: req.ChildID, SessionID: e.session.ID}
	}

	age := req.AgeGroup
	if age == "" {
		age = Ages6To9
	}
	timing := DefaultTiming(age)
	if req.Timing != nil {
		timing = *req.Timing
	}
	timing = timing.withDefaults()

	sessionType := req.Type
	if sessionType == "" {
		sessionType = TypePractice
	}

	objectives := make([]Objective, 0, len(req.Objectives))
	for _, text := range req.Objectives {
		objectives = append(objectives, Objective{Text: text})
	}

	s := &LearningSession{
		ID:          uuid.New().String(),
		ChildID:     req.ChildID,
		AgeGroup:    age,
		Type:        sessionType,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Objectives:  objectives,
		Timing:      timing,
		State:       StateNotStarted,
		CreatedAt:   e.clock.Now(),
	}

	e.session = s
	e.sinceBreak = 0
	e.breakElapsed = 0
	e.responseSamples = 0
	e.showBreakReminder = false
	e.showSessionComplete = false

	e.persist("create")
	return s, nil
}

// Start begins the countdown. Valid only from not_started.
func (e *Engine) Start(sessionID string) error {
	return e.command(sessionID, event{kind: evStart})
}

// Pause freezes duration accumulation and the countdown. Pausing an
// already-paused session is a safe no-op.
func (e *Engine) Pause(sessionID string) error {
	return e.command(sessionID, event{kind: evPause})
}

// Resume continues from paused, or ends a break early.
func (e *Engine) Resume(sessionID string) error {
	return e.command(sessionID, event{kind: evResume})
}

// Complete finalizes the session. The completion rate derives from the
// objectives, defaulting to zero when the session has none.
func (e *Engine) Complete(sessionID string) error {
	return e.command(sessionID, event{kind: evComplete})
}

// CompleteWithRate finalizes the session with an explicit completion
// ratio, overriding the objective-derived value.
func (e *Engine) CompleteWithRate(sessionID string, rate float64) error {
	return e.command(sessionID, event{kind: evComplete, rate: rate, hasRate: true})
}

// Abandon cancels the session from any non-terminal state and halts the
// timer. No completion stats are computed beyond what already accrued.
func (e *Engine) Abandon(sessionID string) error {
	return e.command(sessionID, event{kind: evAbandon})
}

// RecordInteraction increments the interaction counter and feeds optional
// response-time samples into the rolling average. It never changes the
// lifecycle state, but is rejected once the session is terminal.
func (e *Engine) RecordInteraction(sessionID string, samples ...time.Duration) error {
	s, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	if s.State.Terminal() {
		return &InvalidTransitionError{From: s.State, Command: "record-interaction"}
	}

	s.InteractionCount++
	for _, sample := range samples {
		e.responseSamples++
		s.AvgResponseTime += (sample - s.AvgResponseTime) / time.Duration(e.responseSamples)
	}

	if s.InteractionCount%10 == 0 {
		e.persist("interaction")
	}
	return nil
}

// CompleteObjective marks the nth objective complete and counts it as an
// interaction with the supplied response time.
func (e *Engine) CompleteObjective(sessionID string, index int, responseTime time.Duration) error {
	s, err := e.lookup(sessionID)
	if err != nil {
		return err
	}
	if s.State.Terminal() {
		return &InvalidTransitionError{From: s.State, Command: "complete-objective"}
	}
	if index < 0 || index >= len(s.Objectives) {
		return &ValidationError{Field: "objective", Reason: "index out of range"}
	}
	if s.Objectives[index].Completed {
		return nil
	}
	s.Objectives[index].Completed = true
	return e.RecordInteraction(sessionID, responseTime)
}

// Tick advances the timers by the real elapsed time since the previous
// tick. The owner should call it about once per second; correctness does
// not depend on the rate, only on wall-clock deltas.
func (e *Engine) Tick() {
	if e.session == nil || e.session.State.Terminal() {
		return
	}
	now := e.clock.Now()
	delta := now.Sub(e.lastTick)
	e.lastTick = now
	// Internal tick processing never surfaces errors; anomalous deltas
	// are clamped in apply.
	_ = e.dispatch(event{kind: evTick, delta: delta})
}

// command validates the session and dispatches a user command event.
func (e *Engine) command(sessionID string, ev event) error {
	if _, err := e.lookup(sessionID); err != nil {
		return err
	}
	prev := e.session.State
	if err := e.dispatch(ev); err != nil {
		return err
	}
	if e.session.State != prev {
		e.persist(ev.kind.String())
	}
	return nil
}

// dispatch applies an event through the transition table. Events raised
// while another event is being applied are queued and processed in order
// before dispatch returns, so an automatic transition triggered by a tick
// is settled before any later command is evaluated.
func (e *Engine) dispatch(ev event) error {
	if e.dispatching {
		e.queue = append(e.queue, ev)
		return nil
	}
	e.dispatching = true
	defer func() { e.dispatching = false }()

	prev := e.session.State
	err := e.apply(ev)
	for len(e.queue) > 0 {
		next := e.queue[0]
		e.queue = e.queue[1:]
		_ = e.apply(next)
	}
	if err == nil && ev.kind == evTick && e.session.State != prev {
		// Automatic transitions (break start/end) persist like commands.
		e.persist(string(e.session.State))
	}
	return err
}

func (e *Engine) enqueue(ev event) {
	e.queue = append(e.queue, ev)
}

func (e *Engine) lookup(sessionID string) (*LearningSession, error) {
	if e.session == nil || e.session.ID != sessionID {
		return nil, &ValidationError{Field: "sessionId", Reason: "no such session"}
	}
	return e.session, nil
}

// persist writes the session through the repository, if one is wired.
// The transition has already been applied; a failure is recorded on the
// persistence error channel and never rolls the state back.
func (e *Engine) persist(op string) {
	if e.repo == nil || e.session == nil {
		return
	}
	if err := e.repo.Persist(context.Background(), e.session); err != nil {
		e.persistErr = &PersistenceError{Op: op, Err: err}
	}
}

// --- Read model ---

// CurrentSession returns the session the engine currently owns, or nil.
func (e *Engine) CurrentSession() *LearningSession {
	return e.session
}

// IsSessionActive reports whether a session is live (active, paused, or
// on a break).
func (e *Engine) IsSessionActive() bool {
	if e.session == nil {
		return false
	}
	switch e.session.State {
	case StateActive, StatePaused, StateBreak:
		return true
	}
	return false
}

// TimeRemaining is the countdown toward the recommended duration. It
// never goes negative; the session keeps running past zero until the
// caller completes it.
func (e *Engine) TimeRemaining() time.Duration {
	if e.session == nil {
		return 0
	}
	remaining := e.session.Timing.Recommended() - e.session.TotalDuration
	if remaining < 0 {
		return 0
	}
	return remaining
}

// TimeExpired reports whether the recommended duration has fully elapsed.
// Reaching it never auto-completes the session.
func (e *Engine) TimeExpired() bool {
	return e.session != nil && e.session.State != StateNotStarted && e.TimeRemaining() == 0
}

// IsBreakTime reports whether the session is on an automatic break.
func (e *Engine) IsBreakTime() bool {
	return e.session != nil && e.session.State == StateBreak
}

// BreakTimeRemaining is the break countdown, zero outside of breaks.
func (e *Engine) BreakTimeRemaining() time.Duration {
	if e.session == nil || e.session.State != StateBreak {
		return 0
	}
	remaining := e.session.Timing.Break() - e.breakElapsed
	if remaining < 0 {
		return 0
	}
	return remaining
}

// ShowBreakReminder reports the UI-facing break reminder flag. It stays
// raised until DismissBreakReminder.
func (e *Engine) ShowBreakReminder() bool { return e.showBreakReminder }

// ShowSessionComplete reports the UI-facing completion summary flag. It
// stays raised until DismissSessionComplete.
func (e *Engine) ShowSessionComplete() bool { return e.showSessionComplete }

// DismissBreakReminder clears the break reminder flag.
func (e *Engine) DismissBreakReminder() { e.showBreakReminder = false }

// DismissSessionComplete clears the completion summary flag.
func (e *Engine) DismissSessionComplete() { e.showSessionComplete = false }

// PersistErr returns the most recent persistence failure, if any. The
// underlying transition succeeded; callers may retry persistence
// independently or just surface a banner.
func (e *Engine) PersistErr() error { return e.persistErr }

// DismissPersistErr clears the persistence error channel.
func (e *Engine) DismissPersistErr() { e.persistErr = nil }
