package locale

import "testing"

func TestParse(t *testing.T) {
	tests := []struct {
		in     string
		want   Language
		wantOK bool
	}{
		{"es", Spanish, true},
		{"en", English, true},
		{"EN", English, true},
		{"es-MX", Spanish, true},
		{"en_US", English, true},
		{"", Spanish, false},
		{"not a tag!", Spanish, false},
	}

	for _, tt := range tests {
		got, ok := Parse(tt.in)
		if got != tt.want || ok != tt.wantOK {
			t.Errorf("Parse(%q) = (%q, %v), want (%q, %v)", tt.in, got, ok, tt.want, tt.wantOK)
		}
	}
}

func TestToggle(t *testing.T) {
	if Spanish.Toggle() != English {
		t.Error("es should toggle to en")
	}
	if English.Toggle() != Spanish {
		t.Error("en should toggle to es")
	}
}

func TestPick(t *testing.T) {
	if got := English.Pick("Hola", "Hello"); got != "Hello" {
		t.Errorf("English.Pick = %q", got)
	}
	if got := Spanish.Pick("Hola", "Hello"); got != "Hola" {
		t.Errorf("Spanish.Pick = %q", got)
	}
}
