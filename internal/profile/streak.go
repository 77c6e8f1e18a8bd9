package profile

import (
	"strings"
	"time"
	"unicode/utf8"
)

const dateLayout = "2006-01-02"

// StreakUpdate is the outcome of RegisterPlayToday.
type StreakUpdate struct {
	// Credited is false when today was already counted.
	Credited bool

	Previous int
	Streak   int

	// Reset is true when a gap of two or more days restarted the streak
	// at 1.
	Reset bool
}

// nextStreak applies one play on now's local calendar date.
func nextStreak(last string, streak int, now time.Time) (StreakUpdate, string) {
	today := now.Format(dateLayout)
	yesterday := now.AddDate(0, 0, -1).Format(dateLayout)

	up := StreakUpdate{Previous: streak, Streak: streak}
	switch last {
	case today:
		return up, last
	case yesterday:
		up.Streak = streak + 1
	default:
		up.Streak = 1
		up.Reset = last != ""
	}
	up.Credited = true
	return up, today
}

func validDate(s string) bool {
	if s == "" {
		return true
	}
	_, err := time.Parse(dateLayout, s)
	return err == nil
}

func normalizeName(s string) (string, error) {
	s = strings.TrimSpace(s)
	if n := utf8.RuneCountInString(s); n == 0 || n > MaxNameLen {
		return "", ErrInvalidName
	}
	return s, nil
}
