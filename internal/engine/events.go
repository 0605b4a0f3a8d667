package engine

import "time"

// maxTickDelta bounds the elapsed time credited by a single tick. A
// suspended terminal can produce arbitrarily large wall-clock gaps; the
// countdown must not jump past real active time because of them.
const maxTickDelta = 5 * time.Second

// eventKind identifies a transition trigger. User commands and timer
// events flow through the same transition table so there is exactly one
// authoritative set of edges regardless of the event source.
type eventKind int

const (
	evStart eventKind = iota
	evPause
	evResume
	evComplete
	evAbandon
	evTick     // wall-clock delta while the timer runs
	evBreakDue // continuous active time crossed the break threshold
	evBreakOver
)

func (k eventKind) String() string {
	switch k {
	case evStart:
		return "start"
	case evPause:
		return "pause"
	case evResume:
		return "resume"
	case evComplete:
		return "complete"
	case evAbandon:
		return "abandon"
	case evTick:
		return "tick"
	case evBreakDue:
		return "break-due"
	case evBreakOver:
		return "break-over"
	}
	return "unknown"
}

type event struct {
	kind  eventKind
	delta time.Duration // evTick only

	rate    float64 // evComplete only
	hasRate bool
}

// apply is the single transition function. It mutates the current session
// and the engine's timer bookkeeping, and may enqueue follow-up automatic
// events (break start/end). It never calls back into command methods.
func (e *Engine) apply(ev event) error {
	s := e.session

	if s.State.Terminal() && ev.kind != evTick {
		return &InvalidTransitionError{From: s.State, Command: ev.kind.String()}
	}

	switch ev.kind {
	case evStart:
		if s.State != StateNotStarted {
			return &InvalidTransitionError{From: s.State, Command: "start"}
		}
		s.State = StateActive
		e.lastTick = e.clock.Now()
		e.sinceBreak = 0

	case evPause:
		switch s.State {
		case StatePaused:
			// Idempotent no-op.
		case StateActive:
			s.State = StatePaused
		default:
			return &InvalidTransitionError{From: s.State, Command: "pause"}
		}

	case evResume:
		switch s.State {
		case StateActive:
			// Idempotent no-op.
		case StatePaused:
			s.State = StateActive
			e.lastTick = e.clock.Now()
		case StateBreak:
			// Early resume: the break countdown is discarded and the
			// continuous-active clock restarts.
			s.State = StateActive
			e.breakElapsed = 0
			e.sinceBreak = 0
			e.lastTick = e.clock.Now()
		default:
			return &InvalidTransitionError{From: s.State, Command: "resume"}
		}

	case evComplete:
		switch s.State {
		case StateActive, StatePaused, StateBreak:
			s.State = StateCompleted
			if ev.hasRate {
				s.CompletionRate = clampRate(ev.rate)
			} else if len(s.Objectives) > 0 {
				s.CompletionRate = objectiveRate(s)
			}
			e.showSessionComplete = true
		default:
			return &InvalidTransitionError{From: s.State, Command: "complete"}
		}

	case evAbandon:
		// Abandon is the cancellation path and is accepted from any
		// non-terminal state, including not_started.
		s.State = StateAbandoned

	case evTick:
		d := clampDelta(ev.delta)
		switch s.State {
		case StateActive:
			s.TotalDuration += d
			e.sinceBreak += d
			if s.Timing.BreakDuration > 0 && e.sinceBreak >= s.Timing.breakDue() {
				e.enqueue(event{kind: evBreakDue})
			}
		case StateBreak:
			e.breakElapsed += d
			if e.breakElapsed >= s.Timing.Break() {
				e.enqueue(event{kind: evBreakOver})
			}
		}
		// Paused and terminal states ignore elapsed time entirely.

	case evBreakDue:
		if s.State != StateActive {
			return &InvalidTransitionError{From: s.State, Command: "break-due"}
		}
		s.State = StateBreak
		e.breakElapsed = 0
		e.showBreakReminder = true

	case evBreakOver:
		if s.State != StateBreak {
			return &InvalidTransitionError{From: s.State, Command: "break-over"}
		}
		s.State = StateActive
		e.breakElapsed = 0
		e.sinceBreak = 0
	}

	return nil
}

// clampDelta bounds a tick delta to [0, maxTickDelta] so clock anomalies
// (backward jumps, long suspensions) never corrupt the countdown.
func clampDelta(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	if d > maxTickDelta {
		return maxTickDelta
	}
	return d
}

func clampRate(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 1 {
		return 1
	}
	return r
}
