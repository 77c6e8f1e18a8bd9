package problemgen

// Question is a multiple-choice math question ready for display.
type Question struct {
	// ID is unique per fetched question. Offline bank entries keep their
	// fixed ids.
	ID string `json:"id" yaml:"id"`

	// Text is the prompt shown to the learner, e.g. "¿Qué número sigue en
	// la serie? 2, 4, 6, 8...".
	Text string `json:"questionText" yaml:"text" validate:"required,max=500"`

	// Options holds 3 or 4 distinct answers.
	Options []string `json:"options" yaml:"options" validate:"min=3,max=4,unique,dive,required,max=120"`

	// CorrectIndex is the 0-based index of the right option.
	CorrectIndex int `json:"correctAnswerIndex" yaml:"correct"`

	// Explanation is a short reason shown after answering.
	Explanation string `json:"explanation" yaml:"explanation" validate:"required,max=1000"`

	Difficulty Difficulty `json:"difficulty" yaml:"difficulty" validate:"oneof=easy medium hard"`
}

// Clone returns a copy that shares no slices with q.
func (q Question) Clone() Question {
	q.Options = append([]string(nil), q.Options...)
	return q
}

// IsCorrect reports whether idx is the right option.
func (q Question) IsCorrect(idx int) bool {
	return idx == q.CorrectIndex
}

// Difficulty is the generator's self-assessed difficulty.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
)
