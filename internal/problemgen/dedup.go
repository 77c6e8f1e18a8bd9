package problemgen

import (
	"strings"
	"unicode"
)

// dedupe drops questions whose text repeats an earlier one in the batch,
// ignoring case, punctuation and spacing.
func dedupe(qs []Question) []Question {
	seen := make(map[string]bool, len(qs))
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		k := normalizeText(q.Text)
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, q)
	}
	return out
}

func normalizeText(s string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
