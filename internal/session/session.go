// Package session runs one play session: fetch a batch of questions for a
// grade, present them one at a time, score answers and refill the batch
// when it runs out.
//
// The controller never blocks on the network itself. Start and Advance
// hand back a FetchRequest; the caller runs Fetch wherever it likes (a
// tea.Cmd, a goroutine, inline) and hands the result to Deliver. Results
// for requests issued before the latest Exit or the latest fetch are
// rejected, so an abandoned call can never touch session or profile state.
package session

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/profile"
)

// Rewarder is the slice of the profile store the controller mutates.
type Rewarder interface {
	AwardCoins(ctx context.Context, amount int) error
	RegisterPlayToday(ctx context.Context) (profile.StreakUpdate, error)
}

// FetchRequest identifies one outstanding batch fetch.
type FetchRequest struct {
	SessionID string
	Grade     problemgen.Grade
	Lang      locale.Language
	Count     int

	epoch uint64
}

// FetchResult carries the questions returned for a FetchRequest.
type FetchResult struct {
	Request   FetchRequest
	Questions []problemgen.Question
}

// QuestionView is what the presentation layer may see of the current
// question. CorrectIndex is -1 and Explanation empty until answered.
type QuestionView struct {
	Number       int
	Text         string
	Options      []string
	Difficulty   problemgen.Difficulty
	Answer       AnswerState
	Selected     int
	CorrectIndex int
	Explanation  string
}

// Feedback is the result of Answer.
type Feedback struct {
	Correct      bool
	Selected     int
	CorrectIndex int
	Explanation  string

	// Reward is the coins credited, 0 when incorrect.
	Reward int
	Score  int

	// Celebrate asks the presentation layer for its celebration effect.
	Celebrate bool
	Streak    profile.StreakUpdate
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(c *Controller) { c.log = logging.OrNop(log) }
}

// WithClock overrides the clock used for durations.
func WithClock(now func() time.Time) Option {
	return func(c *Controller) { c.now = now }
}

// WithSessionID fixes the session id.
func WithSessionID(id string) Option {
	return func(c *Controller) { c.id = id }
}

// Controller is the play-session state machine. It is safe for
// concurrent use.
type Controller struct {
	mu sync.Mutex

	source  problemgen.Source
	rewards Rewarder
	grade   problemgen.Grade
	lang    locale.Language
	log     *zap.SugaredLogger
	now     func() time.Time
	id      string

	phase     Phase
	answer    AnswerState
	selected  int
	batch     []problemgen.Question
	index     int
	score     int
	progress  Progress
	epoch     uint64
	startedAt time.Time
	endedAt   time.Time
}

// New creates a controller for one session at grade in lang.
func New(source problemgen.Source, rewards Rewarder, grade problemgen.Grade, lang locale.Language, opts ...Option) (*Controller, error) {
	if source == nil || rewards == nil {
		return nil, fmt.Errorf("session: source and profile are required")
	}
	if !grade.Valid() {
		return nil, fmt.Errorf("session: invalid grade %d", int(grade))
	}
	if !lang.Valid() {
		lang = locale.Default
	}
	c := &Controller{
		source:  source,
		rewards: rewards,
		grade:   grade,
		lang:    lang,
		log:     logging.Nop(),
		now:     time.Now,
	}
	for _, o := range opts {
		o(c)
	}
	if c.id == "" {
		c.id = uuid.NewString()
	}
	return c, nil
}

// ID returns the session id.
func (c *Controller) ID() string { return c.id }

// Grade returns the session grade.
func (c *Controller) Grade() problemgen.Grade { return c.grade }

// Language returns the content language.
func (c *Controller) Language() locale.Language { return c.lang }

// Phase returns the current phase.
func (c *Controller) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Score returns the session score.
func (c *Controller) Score() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.score
}

// Start moves to loading and returns the first fetch.
func (c *Controller) Start() (FetchRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.phase != PhaseNew {
		return FetchRequest{}, fmt.Errorf("start: %w (%s)", ErrWrongPhase, c.phase)
	}
	c.startedAt = c.now()
	c.log.Infow("Session started", "session_id", c.id, "grade", c.grade.Label(), "lang", c.lang)
	return c.beginFetch(), nil
}

// beginFetch must be called with mu held. Issuing a request supersedes
// any earlier one.
func (c *Controller) beginFetch() FetchRequest {
	c.phase = PhaseLoading
	c.epoch++
	return FetchRequest{
		SessionID: c.id,
		Grade:     c.grade,
		Lang:      c.lang,
		Count:     BatchSize,
		epoch:     c.epoch,
	}
}

// Fetch calls the question source for req. It reads no mutable
// controller state and may run on any goroutine.
func (c *Controller) Fetch(ctx context.Context, req FetchRequest) FetchResult {
	return FetchResult{
		Request:   req,
		Questions: c.source.FetchBatch(ctx, req.Grade, req.Lang, req.Count),
	}
}

// Deliver appends a fetched batch. Results for superseded or abandoned
// requests return ErrAbandoned and change nothing.
func (c *Controller) Deliver(res FetchResult) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if res.Request.SessionID != c.id || res.Request.epoch != c.epoch || c.phase == PhaseEnded {
		c.log.Debugw("Discarding stale batch", "session_id", c.id, "questions", len(res.Questions))
		return ErrAbandoned
	}
	if c.phase != PhaseLoading {
		return fmt.Errorf("deliver: %w (%s)", ErrWrongPhase, c.phase)
	}

	for _, q := range res.Questions {
		c.batch = append(c.batch, q.Clone())
	}
	if c.index >= len(c.batch) {
		c.phase = PhaseEmpty
		c.log.Warnw("No questions available", "session_id", c.id)
		return nil
	}
	c.phase = PhasePresenting
	c.answer = Unanswered
	return nil
}

// Answer scores selected against the current question. A correct answer
// awards Reward coins and registers today's play. Persistence failures
// are logged; the session carries on.
func (c *Controller) Answer(ctx context.Context, selected int) (Feedback, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	switch c.phase {
	case PhasePresenting:
	case PhaseChecking:
		return Feedback{}, ErrAlreadyAnswered
	default:
		return Feedback{}, fmt.Errorf("answer: %w (%s)", ErrWrongPhase, c.phase)
	}

	q := c.batch[c.index]
	if selected < 0 || selected >= len(q.Options) {
		return Feedback{}, ErrInvalidOption
	}

	fb := Feedback{
		Correct:      q.IsCorrect(selected),
		Selected:     selected,
		CorrectIndex: q.CorrectIndex,
		Explanation:  q.Explanation,
	}
	c.phase = PhaseChecking
	c.selected = selected
	c.progress.Record(fb.Correct)

	if !fb.Correct {
		c.answer = CheckingIncorrect
		fb.Score = c.score
		return fb, nil
	}

	c.answer = CheckingCorrect
	if err := c.rewards.AwardCoins(ctx, Reward); err != nil {
		c.log.Errorw("Failed to award coins", "session_id", c.id, "error", err)
	}
	up, err := c.rewards.RegisterPlayToday(ctx)
	if err != nil {
		c.log.Errorw("Failed to register play", "session_id", c.id, "error", err)
	}
	c.score += Reward
	fb.Reward = Reward
	fb.Score = c.score
	fb.Celebrate = true
	fb.Streak = up
	return fb, nil
}

// Advance moves past the answered question. When the batch is exhausted
// it returns a request for the next one and the controller waits in
// loading; otherwise it returns nil.
func (c *Controller) Advance() (*FetchRequest, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseChecking {
		return nil, fmt.Errorf("advance: %w (%s)", ErrWrongPhase, c.phase)
	}
	c.answer = Unanswered
	c.index++
	if c.index < len(c.batch) {
		c.phase = PhasePresenting
		return nil, nil
	}
	req := c.beginFetch()
	return &req, nil
}

// Exit ends the session from any phase. Outstanding fetches become stale
// and the batch is dropped. Calling Exit again returns the same summary.
func (c *Controller) Exit() Summary {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhaseEnded {
		c.epoch++
		c.endedAt = c.now()
		c.log.Infow("Session ended",
			"session_id", c.id,
			"score", c.score,
			"answered", c.progress.Answered,
			"correct", c.progress.Correct)
	}
	c.phase = PhaseEnded
	c.batch = nil
	c.answer = Unanswered

	var d time.Duration
	if !c.startedAt.IsZero() {
		d = c.endedAt.Sub(c.startedAt)
	}
	return Summary{
		SessionID: c.id,
		Grade:     c.grade,
		Duration:  d,
		Score:     c.score,
		Progress:  c.progress,
	}
}

// Current returns the question on screen, if any.
func (c *Controller) Current() (QuestionView, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.phase != PhasePresenting && c.phase != PhaseChecking {
		return QuestionView{}, false
	}
	q := c.batch[c.index]
	v := QuestionView{
		Number:       c.index + 1,
		Text:         q.Text,
		Options:      append([]string(nil), q.Options...),
		Difficulty:   q.Difficulty,
		Answer:       c.answer,
		Selected:     -1,
		CorrectIndex: -1,
	}
	if c.phase == PhaseChecking {
		v.Selected = c.selected
		v.CorrectIndex = q.CorrectIndex
		v.Explanation = q.Explanation
	}
	return v, true
}

// StartSync starts the session and waits for the first batch.
func (c *Controller) StartSync(ctx context.Context) error {
	req, err := c.Start()
	if err != nil {
		return err
	}
	return c.Deliver(c.Fetch(ctx, req))
}

// AdvanceSync advances and, if needed, waits for the next batch.
func (c *Controller) AdvanceSync(ctx context.Context) error {
	req, err := c.Advance()
	if err != nil || req == nil {
		return err
	}
	return c.Deliver(c.Fetch(ctx, *req))
}
