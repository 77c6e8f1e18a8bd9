package problemgen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/retomath/internal/locale"
)

func TestDefaultBank_FirstQuestion(t *testing.T) {
	for _, lang := range []locale.Language{locale.Spanish, locale.English} {
		qs := DefaultBank().Questions(lang)
		require.Len(t, qs, 5, lang)

		first := qs[0]
		assert.Equal(t, []string{"4", "5", "6"}, first.Options)
		assert.Equal(t, 1, first.CorrectIndex)
		assert.True(t, first.IsCorrect(1))
		assert.Equal(t, DifficultyEasy, first.Difficulty)
	}
	assert.Contains(t, DefaultBank().Questions(locale.Spanish)[0].Text, "manzanas")
	assert.Contains(t, DefaultBank().Questions(locale.English)[0].Text, "apples")
}

func TestDefaultBank_FixedOrder(t *testing.T) {
	qs := DefaultBank().Questions(locale.English)
	ids := make([]string, len(qs))
	for i, q := range qs {
		ids[i] = q.ID
	}
	assert.Equal(t, []string{"fb-1", "fb-2", "fb-3", "fb-4", "fb-5"}, ids)
}

func TestBank_QuestionsAreCopies(t *testing.T) {
	b := DefaultBank()
	qs := b.Questions(locale.Spanish)
	qs[0].Options[0] = "changed"
	qs[0].Text = "changed"

	again := b.Questions(locale.Spanish)
	assert.Equal(t, "4", again[0].Options[0])
	assert.NotEqual(t, "changed", again[0].Text)
}

func TestBank_UnknownLanguageUsesDefault(t *testing.T) {
	b := DefaultBank()
	assert.Equal(t, b.Questions(locale.Default), b.Questions(locale.Language("fr")))
	assert.Equal(t, 5, len(b.Questions(locale.English)))
}

func TestParseBank_Rejects(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "[unclosed"},
		{"missing english", `
es:
  - {id: a, text: t, options: ["1","2","3"], correct: 0, explanation: e, difficulty: easy}
`},
		{"bad index", `
es:
  - {id: a, text: t, options: ["1","2","3"], correct: 5, explanation: e, difficulty: easy}
en:
  - {id: a, text: t, options: ["1","2","3"], correct: 0, explanation: e, difficulty: easy}
`},
		{"unknown language", `
xx:
  - {id: a, text: t, options: ["1","2","3"], correct: 0, explanation: e, difficulty: easy}
`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseBank([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}
