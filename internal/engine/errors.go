package engine

import "fmt"

// ValidationError reports malformed command input. No state is mutated.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// ConflictError reports an attempt to create a session while another
// non-terminal session exists for the same child.
type ConflictError struct {
	ChildID   string
	SessionID string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("child %s already has a live session %s", e.ChildID, e.SessionID)
}

// InvalidTransitionError reports a command issued from a state that does
// not permit it. The session is left unchanged.
type InvalidTransitionError struct {
	From    State
	Command string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s from state %q", e.Command, e.From)
}

// PersistenceError wraps a repository failure. The in-memory transition it
// followed has already been applied and is not rolled back; the error is
// surfaced on a separate channel (Engine.PersistErr) so the UI can show a
// dismissible banner without blocking further commands.
type PersistenceError struct {
	Op  string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("persist %s: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
