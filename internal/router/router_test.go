package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/retomath/internal/screen"
)

// stubScreen is a minimal screen for testing.
type stubScreen struct {
	title   string
	initRan bool
	closed  int
	got     []tea.Msg
}

func (s *stubScreen) Init() tea.Cmd {
	s.initRan = true
	return nil
}
func (s *stubScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	s.got = append(s.got, msg)
	return s, nil
}
func (s *stubScreen) View(int, int) string { return s.title }
func (s *stubScreen) Title() string        { return s.title }

// closingScreen records Close calls.
type closingScreen struct{ stubScreen }

func (c *closingScreen) Close() { c.closed++ }

func TestPush(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)

	if r.Depth() != 2 {
		t.Errorf("expected depth 2, got %d", r.Depth())
	}
	if r.Active().Title() != "second" {
		t.Errorf("expected active 'second', got %q", r.Active().Title())
	}
	if !s2.initRan {
		t.Error("expected Init() to run on pushed screen")
	}
}

func TestPop(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	r := New(s1)

	s2 := &stubScreen{title: "second"}
	r.Push(s2)
	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1, got %d", r.Depth())
	}
	if r.Active().Title() != "first" {
		t.Errorf("expected active 'first', got %q", r.Active().Title())
	}
}

func TestPopNoopAtBottom(t *testing.T) {
	s1 := &closingScreen{stubScreen{title: "first"}}
	r := New(s1)

	r.Pop()

	if r.Depth() != 1 {
		t.Errorf("expected depth 1 after pop at bottom, got %d", r.Depth())
	}
	if s1.closed != 0 {
		t.Error("bottom screen must not be closed")
	}
}

func TestPopClosesScreen(t *testing.T) {
	r := New(&stubScreen{title: "home"})
	s2 := &closingScreen{stubScreen{title: "session"}}
	r.Update(PushScreenMsg{Screen: s2})
	r.Update(PopScreenMsg{})

	if s2.closed != 1 {
		t.Errorf("closed = %d, want 1", s2.closed)
	}
	if r.Active().Title() != "home" {
		t.Errorf("expected active 'home', got %q", r.Active().Title())
	}
}

func TestCloseAll(t *testing.T) {
	s1 := &closingScreen{stubScreen{title: "home"}}
	s2 := &closingScreen{stubScreen{title: "session"}}
	r := New(s1)
	r.Push(s2)
	r.CloseAll()

	if s1.closed != 1 || s2.closed != 1 {
		t.Errorf("closed = %d/%d, want 1/1", s1.closed, s2.closed)
	}
}

func TestUpdateForwardsToActive(t *testing.T) {
	s1 := &stubScreen{title: "first"}
	s2 := &stubScreen{title: "second"}
	r := New(s1)
	r.Push(s2)

	r.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	if len(s1.got) != 0 {
		t.Error("inactive screen received a message")
	}
	if len(s2.got) != 1 {
		t.Errorf("active screen got %d messages, want 1", len(s2.got))
	}
	if r.View(80, 24) != "second" {
		t.Errorf("View = %q, want %q", r.View(80, 24), "second")
	}
}
