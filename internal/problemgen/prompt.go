package problemgen

import (
	"fmt"
	"strings"

	"github.com/abhisek/retomath/internal/locale"
)

// languageInstruction tells the model which language to write in.
func languageInstruction(lang locale.Language) string {
	return lang.Pick(
		"Genera el contenido en Español neutro.",
		"Generate content in English.",
	)
}

func systemPrompt(lang locale.Language) string {
	return "You are an expert math tutor for elementary school kids. " + languageInstruction(lang)
}

// promptText holds the localized fixed parts of the user prompt.
type promptText struct {
	persona    string
	task       string // Sprintf(count, grade label)
	difficulty string
	rulesTitle string
	rules      []string
	format     string
}

var prompts = map[locale.Language]promptText{
	locale.Spanish: {
		persona:    "Eres un profesor experto en matemáticas para niños y diseñador de problemas tipo concurso.",
		task:       "Genera EXACTAMENTE %d preguntas de matemáticas para estudiantes de %s.",
		difficulty: "DIFICULTAD (MUY IMPORTANTE):",
		rulesTitle: "REGLAS OBLIGATORIAS:",
		rules: []string{
			`PROHIBIDO usar preguntas básicas como "2+2", "3+5", etc.`,
			"Cada pregunta debe ser DIFERENTE entre sí (no repitas estructuras).",
			`No reutilices preguntas típicas como "tengo 3 manzanas...".`,
			"Las preguntas deben ser retadoras pero comprensibles para el grado.",
			"Usa contexto divertido o interesante (historias, juegos, retos).",
			"Usa emojis con moderación (máx. 1 por pregunta).",
			"Cada pregunta debe tener exactamente 3 opciones.",
			"Solo UNA opción correcta.",
			"No expliques el proceso paso a paso, solo una explicación corta y clara.",
		},
		format: "Devuelve ÚNICAMENTE un array JSON válido. Sin texto adicional, sin comentarios, sin markdown.",
	},
	locale.English: {
		persona:    "You are an expert math teacher for children and a designer of contest-style problems.",
		task:       "Generate EXACTLY %d math questions for %s students.",
		difficulty: "DIFFICULTY (VERY IMPORTANT):",
		rulesTitle: "MANDATORY RULES:",
		rules: []string{
			`Do NOT use basic questions like "2+2", "3+5", etc.`,
			"Every question must be DIFFERENT (do not repeat structures).",
			`Do not reuse stock questions like "I have 3 apples...".`,
			"Questions must be challenging but understandable for the grade.",
			"Use a fun or interesting context (stories, games, challenges).",
			"Use emojis sparingly (at most 1 per question).",
			"Each question must have exactly 3 options.",
			"Only ONE correct option.",
			"Do not explain step by step, just a short and clear explanation.",
		},
		format: "Return ONLY a valid JSON array. No extra text, no comments, no markdown.",
	},
}

// buildUserMessage renders the generation prompt for one batch.
func buildUserMessage(grade Grade, lang locale.Language, count int) string {
	p, ok := prompts[lang]
	if !ok {
		p = prompts[locale.Default]
	}

	var b strings.Builder

	b.WriteString(languageInstruction(lang))
	b.WriteString("\n\n")
	b.WriteString(p.persona)
	b.WriteString("\n\n")
	fmt.Fprintf(&b, p.task, count, grade.Label())
	b.WriteString("\n\n")

	b.WriteString(p.difficulty)
	b.WriteString("\n")
	for _, g := range Grades() {
		fmt.Fprintf(&b, "- %s: %s\n", g.Label(), g.Rubric(lang))
	}

	b.WriteString("\n")
	b.WriteString(p.rulesTitle)
	b.WriteString("\n")
	for i, r := range p.rules {
		fmt.Fprintf(&b, "%d. %s\n", i+1, r)
	}

	b.WriteString("\n")
	b.WriteString(p.format)
	return b.String()
}
