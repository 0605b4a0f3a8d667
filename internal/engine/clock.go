package engine

import "time"

// Clock provides the engine's notion of time. Injecting it lets tests
// simulate ticks deterministically instead of sleeping on real timers.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns a Clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
