package problemgen

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/abhisek/retomath/internal/locale"
)

//go:embed data/bank.yaml
var bankYAML []byte

// Bank is the offline question list per language. It ignores grade and
// count: every fallback serves the same questions in the same order.
type Bank struct {
	byLang map[locale.Language][]Question
}

var defaultBank = mustParseBank(bankYAML)

// DefaultBank returns the embedded offline bank.
func DefaultBank() *Bank {
	return defaultBank
}

func mustParseBank(data []byte) *Bank {
	b, err := ParseBank(data)
	if err != nil {
		panic(fmt.Sprintf("problemgen: embedded bank: %v", err))
	}
	return b
}

// ParseBank decodes and validates a YAML bank keyed by language code.
// Both supported languages must be present and non-empty.
func ParseBank(data []byte) (*Bank, error) {
	var raw map[string][]Question
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse bank: %w", err)
	}

	sv := &StructuralValidator{}
	b := &Bank{byLang: make(map[locale.Language][]Question, len(raw))}
	for code, qs := range raw {
		lang, ok := locale.Parse(code)
		if !ok {
			return nil, fmt.Errorf("bank: unsupported language %q", code)
		}
		for i := range qs {
			if verr := sv.Validate(&qs[i]); verr != nil {
				return nil, fmt.Errorf("bank %s[%d]: %w", code, i, verr)
			}
		}
		b.byLang[lang] = qs
	}
	for _, lang := range []locale.Language{locale.Spanish, locale.English} {
		if len(b.byLang[lang]) == 0 {
			return nil, fmt.Errorf("bank: no questions for %q", lang)
		}
	}
	return b, nil
}

// Questions returns copies of the bank entries for lang.
func (b *Bank) Questions(lang locale.Language) []Question {
	src, ok := b.byLang[lang]
	if !ok {
		src = b.byLang[locale.Default]
	}
	out := make([]Question, len(src))
	for i, q := range src {
		out[i] = q.Clone()
	}
	return out
}
