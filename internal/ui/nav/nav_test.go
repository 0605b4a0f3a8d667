package nav

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

type stubScreen struct {
	title  string
	inited bool
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) { return s, nil }

func (s *stubScreen) View(width, height int) string { return s.title }

func (s *stubScreen) Title() string { return s.title }

func TestStack_PushPop(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)

	if st.Depth() != 1 {
		t.Fatalf("Depth = %d, want 1", st.Depth())
	}

	child := &stubScreen{title: "child"}
	st.Push(child)
	if st.Depth() != 2 {
		t.Fatalf("Depth after push = %d, want 2", st.Depth())
	}
	if !child.inited {
		t.Error("expected pushed screen to be initialized")
	}
	if st.Active() != Screen(child) {
		t.Error("expected pushed screen to be active")
	}

	st.Pop()
	if st.Active() != Screen(root) {
		t.Error("expected root active after pop")
	}
}

func TestStack_PopAtRootIsNoop(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)

	st.Pop()
	if st.Depth() != 1 {
		t.Errorf("Depth = %d, want 1", st.Depth())
	}
}

func TestStack_Replace(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)
	st.Push(&stubScreen{title: "session"})

	sum := &stubScreen{title: "summary"}
	st.Replace(sum)

	if st.Depth() != 2 {
		t.Fatalf("Depth after replace = %d, want 2", st.Depth())
	}
	if !sum.inited {
		t.Error("expected replacement screen to be initialized")
	}

	// Popping from the replacement lands on root, skipping the
	// replaced screen.
	st.Pop()
	if st.Active() != Screen(root) {
		t.Error("expected root active after pop from replacement")
	}
}

func TestStack_Home(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)
	st.Push(&stubScreen{title: "a"})
	st.Push(&stubScreen{title: "b"})

	st.Home()
	if st.Depth() != 1 {
		t.Errorf("Depth after home = %d, want 1", st.Depth())
	}
}

func TestStack_UpdateRoutesNavMessages(t *testing.T) {
	root := &stubScreen{title: "root"}
	st := NewStack(root)

	st.Update(PushMsg{Screen: &stubScreen{title: "child"}})
	if st.Depth() != 2 {
		t.Fatalf("Depth after PushMsg = %d, want 2", st.Depth())
	}

	st.Update(PopMsg{})
	if st.Depth() != 1 {
		t.Errorf("Depth after PopMsg = %d, want 1", st.Depth())
	}
}
