package problemgen

// Config controls LLMSource.
type Config struct {
	// Validators run in order on every generated question; the first
	// failure drops it.
	Validators []Validator

	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the standard validator chain at temperature 0.7.
func DefaultConfig() Config {
	return Config{
		Validators:  []Validator{&StructuralValidator{}},
		MaxTokens:   2048,
		Temperature: 0.7,
	}
}
