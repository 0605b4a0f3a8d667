package session

import "time"

// sessionReadyMsg is sent when the session has been created and started.
type sessionReadyMsg struct {
	ID  string
	Err error
}

// timerTickMsg is sent every second to advance the session timers.
type timerTickMsg time.Time
