// Package problemgen produces batches of multiple-choice math questions,
// from an LLM when one is configured and from the offline bank otherwise.
package problemgen

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/llm"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
)

// Source returns question batches. FetchBatch never fails: on any problem
// it returns the offline bank. An empty result means no content at all.
type Source interface {
	FetchBatch(ctx context.Context, grade Grade, lang locale.Language, count int) []Question
}

// ErrNoValidQuestions means the generator answered but every entry was
// rejected.
var ErrNoValidQuestions = errors.New("no valid questions in generated batch")

// LLMSource generates batches with an llm.Provider and falls back to a Bank.
type LLMSource struct {
	provider llm.Provider
	bank     *Bank
	config   Config
	log      *zap.SugaredLogger

	newID func() string
}

// NewSource creates an LLMSource. A nil provider means offline: every
// fetch returns the bank.
func NewSource(provider llm.Provider, bank *Bank, cfg Config, log *zap.SugaredLogger) *LLMSource {
	if bank == nil {
		bank = DefaultBank()
	}
	return &LLMSource{
		provider: provider,
		bank:     bank,
		config:   cfg,
		log:      logging.OrNop(log),
		newID:    uuid.NewString,
	}
}

// FetchBatch implements Source.
func (s *LLMSource) FetchBatch(ctx context.Context, grade Grade, lang locale.Language, count int) []Question {
	qs, err := s.Generate(ctx, grade, lang, count)
	if err == nil {
		return qs
	}

	if errors.Is(err, llm.ErrNotConfigured) {
		s.log.Warnw("question generation not configured, using offline questions",
			"grade", grade.Label(), "lang", lang)
	} else {
		s.log.Errorw("question generation failed, using offline questions",
			"grade", grade.Label(), "lang", lang, "error", err)
	}
	return s.bank.Questions(lang)
}

// rawQuestion is one generated entry before validation.
type rawQuestion struct {
	QuestionText       string   `json:"questionText"`
	Options            []string `json:"options"`
	CorrectAnswerIndex int      `json:"correctAnswerIndex"`
	Explanation        string   `json:"explanation"`
	Difficulty         string   `json:"difficulty"`
}

// Generate asks the provider for count questions and returns the valid
// ones, each with a fresh id. Unlike FetchBatch it reports failures.
func (s *LLMSource) Generate(ctx context.Context, grade Grade, lang locale.Language, count int) ([]Question, error) {
	if s.provider == nil {
		return nil, llm.ErrNotConfigured
	}
	if !grade.Valid() {
		return nil, fmt.Errorf("invalid grade %d", int(grade))
	}
	if count < 1 {
		count = 1
	}

	ctx = llm.WithPurpose(ctx, llm.PurposeQuestionBatch)
	req := llm.Request{
		System: systemPrompt(lang),
		Messages: []llm.Message{
			{Role: llm.RoleUser, Content: buildUserMessage(grade, lang, count)},
		},
		Schema:      BatchSchema,
		MaxTokens:   s.config.MaxTokens,
		Temperature: s.config.Temperature,
	}

	resp, err := s.provider.Generate(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("LLM generation failed: %w", err)
	}

	var raw []rawQuestion
	if err := json.Unmarshal(resp.Content, &raw); err != nil {
		return nil, fmt.Errorf("failed to parse LLM response: %w", err)
	}

	qs := make([]Question, 0, len(raw))
	for i, r := range raw {
		q := Question{
			Text:         r.QuestionText,
			Options:      r.Options,
			CorrectIndex: r.CorrectAnswerIndex,
			Explanation:  r.Explanation,
			Difficulty:   Difficulty(r.Difficulty),
		}
		if verr := s.check(&q); verr != nil {
			s.log.Warnw("dropping generated question", "index", i, "reason", verr.Message)
			continue
		}
		qs = append(qs, q)
	}

	qs = dedupe(qs)
	if len(qs) == 0 {
		return nil, ErrNoValidQuestions
	}
	if len(qs) > count {
		qs = qs[:count]
	}
	for i := range qs {
		qs[i].ID = s.newID()
	}
	return qs, nil
}

func (s *LLMSource) check(q *Question) *ValidationError {
	for _, v := range s.config.Validators {
		if verr := v.Validate(q); verr != nil {
			return verr
		}
	}
	return nil
}
