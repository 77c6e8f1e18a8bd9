package session

import (
	sess "github.com/abhisek/retomath/internal/session"
)

// batchMsg carries a fetched batch back to the UI goroutine.
type batchMsg struct {
	Result sess.FetchResult
}

// celebrateDoneMsg ends the celebration banner.
type celebrateDoneMsg struct{}
