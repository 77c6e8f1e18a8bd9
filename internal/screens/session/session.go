package session

import (
	"context"
	"errors"
	"time"

	"charm.land/bubbles/v2/spinner"
	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/retomath/internal/router"
	"github.com/abhisek/retomath/internal/screen"
	sess "github.com/abhisek/retomath/internal/session"
	"github.com/abhisek/retomath/internal/ui/components"
	"github.com/abhisek/retomath/internal/ui/layout"
	"github.com/abhisek/retomath/internal/ui/theme"
)

const celebrateFor = 1500 * time.Millisecond

// SessionScreen implements screen.Screen for an active play session.
// Fetches run as tea.Cmds; leaving the screen exits the controller so
// late results are discarded.
type SessionScreen struct {
	ctrl   *sess.Controller
	ctx    context.Context
	cancel context.CancelFunc

	spinner     spinner.Model
	choice      components.MultiChoice
	feedback    *sess.Feedback
	celebrating bool
	errMsg      string
}

var _ screen.Screen = (*SessionScreen)(nil)
var _ screen.KeyHintProvider = (*SessionScreen)(nil)
var _ screen.Closer = (*SessionScreen)(nil)

// New creates a SessionScreen driving ctrl.
func New(ctrl *sess.Controller) *SessionScreen {
	ctx, cancel := context.WithCancel(context.Background())
	return &SessionScreen{
		ctrl:   ctrl,
		ctx:    ctx,
		cancel: cancel,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(theme.Coins),
		),
	}
}

func (s *SessionScreen) Init() tea.Cmd {
	req, err := s.ctrl.Start()
	if err != nil {
		s.errMsg = err.Error()
		return nil
	}
	return tea.Batch(s.spinner.Tick, s.fetch(req))
}

// Close abandons the session and any fetch in flight.
func (s *SessionScreen) Close() {
	s.cancel()
	s.ctrl.Exit()
}

func (s *SessionScreen) Title() string {
	return s.ctrl.Grade().Label()
}

func (s *SessionScreen) KeyHints() []layout.KeyHint {
	lang := s.ctrl.Language()
	back := layout.KeyHint{Key: "Esc", Description: lang.Pick("Menú", "Menu")}

	switch s.ctrl.Phase() {
	case sess.PhasePresenting:
		return []layout.KeyHint{
			{Key: "↑↓", Description: lang.Pick("Mover", "Move")},
			{Key: "A-D", Description: lang.Pick("Responder", "Answer")},
			{Key: "Enter", Description: lang.Pick("Confirmar", "Submit")},
			back,
		}
	case sess.PhaseChecking:
		return []layout.KeyHint{
			{Key: "Enter", Description: lang.Pick("Siguiente", "Next")},
			back,
		}
	}
	return []layout.KeyHint{back}
}

func (s *SessionScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case batchMsg:
		return s.handleBatch(msg)

	case spinner.TickMsg:
		if s.ctrl.Phase() != sess.PhaseLoading {
			return s, nil
		}
		var cmd tea.Cmd
		s.spinner, cmd = s.spinner.Update(msg)
		return s, cmd

	case celebrateDoneMsg:
		s.celebrating = false
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

// fetch runs the source call off the UI goroutine.
func (s *SessionScreen) fetch(req sess.FetchRequest) tea.Cmd {
	ctrl, ctx := s.ctrl, s.ctx
	return func() tea.Msg {
		return batchMsg{Result: ctrl.Fetch(ctx, req)}
	}
}

func (s *SessionScreen) handleBatch(msg batchMsg) (screen.Screen, tea.Cmd) {
	err := s.ctrl.Deliver(msg.Result)
	switch {
	case errors.Is(err, sess.ErrAbandoned):
		return s, nil
	case err != nil:
		s.errMsg = err.Error()
		return s, nil
	}
	s.resetChoice()
	return s, nil
}

func (s *SessionScreen) resetChoice() {
	s.feedback = nil
	if v, ok := s.ctrl.Current(); ok {
		s.choice = components.NewMultiChoice(v.Options)
	}
}

func (s *SessionScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	key := msg.String()

	if s.errMsg != "" {
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
		return s, nil
	}

	switch s.ctrl.Phase() {
	case sess.PhaseEmpty:
		if key == "enter" {
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}

	case sess.PhasePresenting:
		switch key {
		case "up", "k":
			s.choice = s.choice.Move(-1)
		case "down", "j":
			s.choice = s.choice.Move(1)
		case "enter", "space", " ":
			return s.answer(s.choice.Cursor)
		default:
			if idx, ok := components.OptionIndex(key, len(s.choice.Options)); ok {
				s.choice.Cursor = idx
				return s.answer(idx)
			}
		}

	case sess.PhaseChecking:
		if key == "enter" || key == "space" || key == " " {
			return s.advance()
		}
	}
	return s, nil
}

func (s *SessionScreen) answer(idx int) (screen.Screen, tea.Cmd) {
	fb, err := s.ctrl.Answer(s.ctx, idx)
	if err != nil {
		return s, nil
	}
	s.feedback = &fb
	s.choice.Chosen = fb.Selected
	s.choice.Correct = fb.CorrectIndex

	if !fb.Celebrate {
		return s, nil
	}
	s.celebrating = true
	return s, tea.Tick(celebrateFor, func(time.Time) tea.Msg { return celebrateDoneMsg{} })
}

func (s *SessionScreen) advance() (screen.Screen, tea.Cmd) {
	req, err := s.ctrl.Advance()
	if err != nil {
		return s, nil
	}
	s.celebrating = false
	if req != nil {
		s.feedback = nil
		return s, tea.Batch(s.spinner.Tick, s.fetch(*req))
	}
	s.resetChoice()
	return s, nil
}
