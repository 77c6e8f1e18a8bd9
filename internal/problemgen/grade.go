package problemgen

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abhisek/retomath/internal/locale"
)

// Grade is an elementary school year, 1 through 5, ordered by difficulty.
type Grade int

const (
	Grade1 Grade = iota + 1
	Grade2
	Grade3
	Grade4
	Grade5
)

// Grades lists every grade from easiest to hardest.
func Grades() []Grade {
	return []Grade{Grade1, Grade2, Grade3, Grade4, Grade5}
}

// Valid reports whether g is one of the five grades.
func (g Grade) Valid() bool {
	return g >= Grade1 && g <= Grade5
}

// Label is the grade's display name, e.g. "3° Primaria".
func (g Grade) Label() string {
	return fmt.Sprintf("%d° Primaria", int(g))
}

func (g Grade) String() string {
	return g.Label()
}

// ParseGrade accepts "3", "3°", or the full "3° Primaria" label.
func ParseGrade(in string) (Grade, error) {
	s := strings.TrimSpace(in)
	s = strings.TrimSuffix(s, "Primaria")
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "°")
	n, err := strconv.Atoi(s)
	if err != nil || !Grade(n).Valid() {
		return 0, fmt.Errorf("invalid grade %q: want 1-5", in)
	}
	return Grade(n), nil
}

var rubrics = map[locale.Language][5]string{
	locale.Spanish: {
		"lógica simple, conteo, comparaciones, patrones cortos, problemas de suma, resta, doble y mitad.",
		"patrones, sumas encadenadas, problemas verbales simples, problemas de doble, mitad y multiplicaciones de una cifra.",
		"series numéricas, lógica, problemas verbales con 2 pasos, problemas de cuatro operaciones (suma, resta, multiplicación y división), problemas con operaciones continuas.",
		"razonamiento lógico, patrones complejos, geometría básica, problemas con operaciones continuas (de 2 a 4 pasos), problemas tipo CONAMAT y Canguro Matemático.",
		"razonamiento avanzado, fracciones simples, múltiplos, divisibilidad, lógica tipo acertijo, problemas de olimpiadas nacionales e internacionales.",
	},
	locale.English: {
		"simple logic, counting, comparisons, short patterns, addition and subtraction problems, doubles and halves.",
		"patterns, chained sums, simple word problems, doubles and halves, single-digit multiplication.",
		"number series, logic, two-step word problems, all four operations (addition, subtraction, multiplication, division), chained operations.",
		"logical reasoning, complex patterns, basic geometry, chained operations (2 to 4 steps), CONAMAT and Math Kangaroo style problems.",
		"advanced reasoning, simple fractions, multiples, divisibility, riddle logic, national and international olympiad problems.",
	},
}

// Rubric is the difficulty guidance for g in lang.
func (g Grade) Rubric(lang locale.Language) string {
	if !g.Valid() {
		return ""
	}
	r, ok := rubrics[lang]
	if !ok {
		r = rubrics[locale.Default]
	}
	return r[g-1]
}
