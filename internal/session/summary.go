package session

import (
	"time"

	"github.com/abhisek/retomath/internal/problemgen"
)

// Summary describes a finished session. It is never persisted.
type Summary struct {
	SessionID string
	Grade     problemgen.Grade
	Duration  time.Duration
	Score     int
	Progress
}
