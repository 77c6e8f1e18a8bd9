package session

import "errors"

// Phase represents the current phase of the session.
type Phase int

const (
	PhaseNew        Phase = iota // Created, Start not called yet
	PhaseLoading                 // Waiting for a batch
	PhasePresenting              // Showing a question, awaiting an answer
	PhaseChecking                // Showing feedback for the answered question
	PhaseEmpty                   // The source returned nothing to show
	PhaseEnded                   // Exited; the controller is inert
)

func (p Phase) String() string {
	switch p {
	case PhaseNew:
		return "new"
	case PhaseLoading:
		return "loading"
	case PhasePresenting:
		return "presenting"
	case PhaseChecking:
		return "checking"
	case PhaseEmpty:
		return "empty"
	case PhaseEnded:
		return "ended"
	}
	return "unknown"
}

// AnswerState is the outcome shown for the current question.
type AnswerState int

const (
	Unanswered AnswerState = iota
	CheckingCorrect
	CheckingIncorrect
)

const (
	// BatchSize is how many questions each fetch asks for.
	BatchSize = 3

	// Reward is the coins and score credited for a correct answer.
	Reward = 10
)

var (
	ErrAlreadyAnswered = errors.New("question already answered")
	ErrAbandoned       = errors.New("fetch result belongs to an abandoned request")
	ErrWrongPhase      = errors.New("operation not valid in current phase")
	ErrInvalidOption   = errors.New("option index out of range")
)
