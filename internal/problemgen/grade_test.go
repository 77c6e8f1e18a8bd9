package problemgen

import (
	"strings"
	"testing"

	"github.com/abhisek/retomath/internal/locale"
)

func TestGradeLabels(t *testing.T) {
	want := []string{"1° Primaria", "2° Primaria", "3° Primaria", "4° Primaria", "5° Primaria"}
	for i, g := range Grades() {
		if g.Label() != want[i] {
			t.Errorf("Grades()[%d].Label() = %q, want %q", i, g.Label(), want[i])
		}
	}
}

func TestParseGrade(t *testing.T) {
	tests := []struct {
		in      string
		want    Grade
		wantErr bool
	}{
		{"3", Grade3, false},
		{"3°", Grade3, false},
		{"3° Primaria", Grade3, false},
		{" 5 ", Grade5, false},
		{"0", 0, true},
		{"6", 0, true},
		{"tercero", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseGrade(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseGrade(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseGrade(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGradeRubric(t *testing.T) {
	if !strings.Contains(Grade1.Rubric(locale.Spanish), "conteo") {
		t.Errorf("unexpected grade 1 rubric: %q", Grade1.Rubric(locale.Spanish))
	}
	if !strings.Contains(Grade5.Rubric(locale.English), "olympiad") {
		t.Errorf("unexpected grade 5 rubric: %q", Grade5.Rubric(locale.English))
	}
	if Grade(0).Rubric(locale.Spanish) != "" {
		t.Error("invalid grade should have no rubric")
	}
}
