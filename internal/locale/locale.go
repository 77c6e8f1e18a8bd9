package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// Language is the content language of the app.
type Language string

const (
	Spanish Language = "es"
	English Language = "en"
)

// Default is used for new profiles and anything that fails to match.
const Default = Spanish

var supported = []language.Tag{language.Spanish, language.English}

var matcher = language.NewMatcher(supported)

// Parse maps a BCP 47 tag ("es-MX", "en_US", "EN") onto a supported
// Language. Unknown or empty input yields Default with ok=false.
func Parse(s string) (Language, bool) {
	s = strings.TrimSpace(strings.ReplaceAll(s, "_", "-"))
	if s == "" {
		return Default, false
	}
	tag, err := language.Parse(s)
	if err != nil {
		return Default, false
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return Default, false
	}
	if idx == 1 {
		return English, true
	}
	return Spanish, true
}

// Toggle returns the other supported language.
func (l Language) Toggle() Language {
	if l == English {
		return Spanish
	}
	return English
}

// Valid reports whether l is one of the supported languages.
func (l Language) Valid() bool {
	return l == Spanish || l == English
}

// Pick returns es or en depending on l.
func (l Language) Pick(es, en string) string {
	if l == English {
		return en
	}
	return es
}

func (l Language) String() string { return string(l) }
