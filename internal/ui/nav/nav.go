package nav

import (
	tea "charm.land/bubbletea/v2"
)

// Screen is the interface all application screens implement.
type Screen interface {
	// Init returns an initial command when the screen is first shown.
	Init() tea.Cmd

	// Update handles messages and returns the updated screen + command.
	Update(msg tea.Msg) (Screen, tea.Cmd)

	// View renders the screen content (excluding header/footer).
	View(width, height int) string

	// Title returns the screen name for the header.
	Title() string
}

// KeyHinter is an optional interface screens implement to provide
// custom footer key hints.
type KeyHinter interface {
	KeyHints() []KeyHint
}

// KeyHint is a key binding hint shown in the footer.
type KeyHint struct {
	Key         string
	Description string
}

// PushMsg requests the stack to push a new screen.
type PushMsg struct {
	Screen Screen
}

// PopMsg requests the stack to pop the current screen.
type PopMsg struct{}

// ReplaceMsg swaps the current screen in place, so popping from the new
// screen skips the replaced one (session -> summary -> home).
type ReplaceMsg struct {
	Screen Screen
}

// HomeMsg pops everything back to the root screen.
type HomeMsg struct{}

// Stack manages the screen stack.
type Stack struct {
	screens []Screen
}

// NewStack creates a Stack with the given root screen.
func NewStack(root Screen) *Stack {
	return &Stack{screens: []Screen{root}}
}

// Push adds a screen on top of the stack and calls its Init.
func (st *Stack) Push(s Screen) tea.Cmd {
	st.screens = append(st.screens, s)
	return s.Init()
}

// Pop removes the top screen. No-op at the root.
func (st *Stack) Pop() tea.Cmd {
	if len(st.screens) <= 1 {
		return nil
	}
	st.screens = st.screens[:len(st.screens)-1]
	return nil
}

// Replace swaps the active screen for a new one and calls its Init.
func (st *Stack) Replace(s Screen) tea.Cmd {
	st.screens[len(st.screens)-1] = s
	return s.Init()
}

// Home unwinds the stack to the root screen.
func (st *Stack) Home() tea.Cmd {
	st.screens = st.screens[:1]
	return nil
}

// Active returns the top screen.
func (st *Stack) Active() Screen {
	if len(st.screens) == 0 {
		return nil
	}
	return st.screens[len(st.screens)-1]
}

// Depth returns the number of screens on the stack.
func (st *Stack) Depth() int {
	return len(st.screens)
}

// Update forwards a message to the active screen and handles navigation
// messages.
func (st *Stack) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case PushMsg:
		return st.Push(msg.Screen)
	case PopMsg:
		return st.Pop()
	case ReplaceMsg:
		return st.Replace(msg.Screen)
	case HomeMsg:
		return st.Home()
	}

	active := st.Active()
	if active == nil {
		return nil
	}

	updated, cmd := active.Update(msg)
	st.screens[len(st.screens)-1] = updated
	return cmd
}

// View renders the active screen.
func (st *Stack) View(width, height int) string {
	active := st.Active()
	if active == nil {
		return ""
	}
	return active.View(width, height)
}
