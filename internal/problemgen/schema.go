package problemgen

import "github.com/abhisek/retomath/internal/llm"

// BatchSchema constrains the generator to an array of questions. Option
// count and index range are checked per entry after parsing so one bad
// entry doesn't sink the batch.
var BatchSchema = &llm.Schema{
	Name:        "question-batch",
	Description: "A batch of multiple-choice math questions for children",
	Definition: map[string]any{
		"type": "array",
		"items": map[string]any{
			"type": "object",
			"properties": map[string]any{
				"questionText": map[string]any{
					"type":        "string",
					"description": "The text of the math problem.",
				},
				"options": map[string]any{
					"type":        "array",
					"items":       map[string]any{"type": "string"},
					"description": "A list of 3 or 4 possible answers.",
				},
				"correctAnswerIndex": map[string]any{
					"type":        "integer",
					"description": "The index (0-based) of the correct answer in the options array.",
				},
				"explanation": map[string]any{
					"type":        "string",
					"description": "A short explanation of why the answer is correct.",
				},
				"difficulty": map[string]any{
					"type":        "string",
					"enum":        []any{"easy", "medium", "hard"},
					"description": "The difficulty level of the question.",
				},
			},
			"required":             []any{"questionText", "options", "correctAnswerIndex", "explanation", "difficulty"},
			"additionalProperties": false,
		},
	},
}
