package session

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/router"
	sess "github.com/abhisek/retomath/internal/session"
	"github.com/abhisek/retomath/internal/store"
)

func keyPress(r rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

// runCmd executes cmd and flattens batches, skipping nil commands.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, runCmd(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// findBatch returns the batchMsg among msgs.
func findBatch(t *testing.T, msgs []tea.Msg) batchMsg {
	t.Helper()
	for _, m := range msgs {
		if b, ok := m.(batchMsg); ok {
			return b
		}
	}
	t.Fatalf("no batchMsg in %v", msgs)
	return batchMsg{}
}

// testSessionScreen returns an offline session at grade 3 whose first
// batch has been delivered.
func testSessionScreen(t *testing.T) (*SessionScreen, *profile.Store) {
	t.Helper()
	ctx := context.Background()
	prof, err := profile.Open(ctx, store.NewMemoryKV(), catalog.Default())
	if err != nil {
		t.Fatalf("open profile: %v", err)
	}
	src := problemgen.NewSource(nil, nil, problemgen.DefaultConfig(), nil)
	ctrl, err := sess.New(src, prof, problemgen.Grade3, locale.Spanish)
	if err != nil {
		t.Fatalf("new controller: %v", err)
	}

	s := New(ctrl)
	msg := findBatch(t, runCmd(s.Init()))
	if ctrl.Phase() != sess.PhaseLoading {
		t.Fatalf("phase = %s before delivery, want loading", ctrl.Phase())
	}
	s.Update(msg)
	return s, prof
}

func TestSessionScreen_Title(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.Title() != "3° Primaria" {
		t.Errorf("Title = %q, want %q", s.Title(), "3° Primaria")
	}
}

func TestSessionScreen_PresentsFirstQuestion(t *testing.T) {
	s, _ := testSessionScreen(t)
	if s.ctrl.Phase() != sess.PhasePresenting {
		t.Fatalf("phase = %s, want presenting", s.ctrl.Phase())
	}
	want := problemgen.DefaultBank().Questions(locale.Spanish)[0].Text
	if view := s.View(100, 30); !strings.Contains(view, want) {
		t.Errorf("view does not contain first question %q", want)
	}
}

func TestSessionScreen_AnswerWithLetter(t *testing.T) {
	s, prof := testSessionScreen(t)

	_, cmd := s.Update(keyPress('b'))
	if cmd == nil {
		t.Error("expected celebration tick after correct answer")
	}
	if s.ctrl.Phase() != sess.PhaseChecking {
		t.Fatalf("phase = %s, want checking", s.ctrl.Phase())
	}
	if s.feedback == nil || !s.feedback.Correct {
		t.Fatal("expected correct feedback")
	}
	if got := prof.Snapshot().Coins; got != 10 {
		t.Errorf("coins = %d, want 10", got)
	}
	if !strings.Contains(s.View(100, 30), "+10 monedas") {
		t.Error("expected reward line in view")
	}

	// A second answer is ignored.
	s.Update(keyPress('a'))
	if got := prof.Snapshot().Coins; got != 10 {
		t.Errorf("coins after second answer = %d, want 10", got)
	}
}

func TestSessionScreen_ArrowsAndEnter(t *testing.T) {
	s, prof := testSessionScreen(t)

	s.Update(specialKey(tea.KeyDown))
	s.Update(specialKey(tea.KeyDown))
	if s.choice.Cursor != 2 {
		t.Fatalf("cursor = %d, want 2", s.choice.Cursor)
	}
	s.Update(specialKey(tea.KeyEnter))

	if s.feedback == nil || s.feedback.Correct {
		t.Fatal("expected incorrect feedback for option C")
	}
	if got := prof.Snapshot().Coins; got != 0 {
		t.Errorf("coins = %d, want 0", got)
	}
	if !strings.Contains(s.View(100, 30), "B") {
		t.Error("expected the correct letter in the view")
	}
}

func TestSessionScreen_AdvanceAndRefetch(t *testing.T) {
	s, _ := testSessionScreen(t)
	bank := problemgen.DefaultBank().Questions(locale.Spanish)

	for i := range bank {
		v, _ := s.ctrl.Current()
		if v.Number != i+1 {
			t.Fatalf("question number = %d, want %d", v.Number, i+1)
		}
		s.Update(keyPress('a'))
		_, cmd := s.Update(specialKey(tea.KeyEnter))
		if i < len(bank)-1 {
			if cmd != nil {
				t.Errorf("unexpected command advancing within batch at %d", i)
			}
			continue
		}
		// Bank exhausted: a new fetch is issued.
		if s.ctrl.Phase() != sess.PhaseLoading {
			t.Fatalf("phase = %s, want loading", s.ctrl.Phase())
		}
		s.Update(findBatch(t, runCmd(cmd)))
	}

	v, ok := s.ctrl.Current()
	if !ok || v.Number != len(bank)+1 {
		t.Errorf("after refetch question = %d, want %d", v.Number, len(bank)+1)
	}
}

func TestSessionScreen_CloseDiscardsLateBatch(t *testing.T) {
	s, _ := testSessionScreen(t)
	var cmd tea.Cmd
	for range len(problemgen.DefaultBank().Questions(locale.Spanish)) {
		s.Update(keyPress('a'))
		_, cmd = s.Update(specialKey(tea.KeyEnter))
	}
	if s.ctrl.Phase() != sess.PhaseLoading {
		t.Fatalf("phase = %s, want loading", s.ctrl.Phase())
	}

	s.Close()
	s.Update(findBatch(t, runCmd(cmd)))

	if s.ctrl.Phase() != sess.PhaseEnded {
		t.Errorf("phase = %s, want ended", s.ctrl.Phase())
	}
	if s.errMsg != "" {
		t.Errorf("stale batch surfaced as error: %s", s.errMsg)
	}
}

func TestSessionScreen_EmptyGoesBack(t *testing.T) {
	ctx := context.Background()
	prof, _ := profile.Open(ctx, store.NewMemoryKV(), catalog.Default())
	ctrl, _ := sess.New(emptySource{}, prof, problemgen.Grade1, locale.English)
	s := New(ctrl)
	s.Update(findBatch(t, runCmd(s.Init())))

	if ctrl.Phase() != sess.PhaseEmpty {
		t.Fatalf("phase = %s, want empty", ctrl.Phase())
	}
	if !strings.Contains(s.View(100, 30), "No questions") {
		t.Error("expected empty-state text")
	}
	_, cmd := s.Update(specialKey(tea.KeyEnter))
	if cmd == nil {
		t.Fatal("expected pop command")
	}
	if _, ok := cmd().(router.PopScreenMsg); !ok {
		t.Error("expected PopScreenMsg")
	}
}

func TestSessionScreen_KeyHints(t *testing.T) {
	s, _ := testSessionScreen(t)
	if len(s.KeyHints()) == 0 {
		t.Error("expected non-empty key hints")
	}
}

type emptySource struct{}

func (emptySource) FetchBatch(context.Context, problemgen.Grade, locale.Language, int) []problemgen.Question {
	return nil
}
