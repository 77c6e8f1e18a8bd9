package home

import (
	"time"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes: already played today
	MascotAlert                            // Orange, exclamation: streak ends tonight
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ±×÷ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ±×÷ │
└─╥═╥─┘
  ╚═╝`

const mascotAlert = `┌─────┐
│ ◉ ◉ │ !
│  ▽  │
│ ±×÷ │
└─────┘`

// mascotFor picks the variant for p on now's local date.
func mascotFor(p profile.Profile, now time.Time) MascotVariant {
	switch p.LastPlayedDate {
	case "":
		return MascotIdle
	case now.Format("2006-01-02"):
		return MascotCelebrating
	case now.AddDate(0, 0, -1).Format("2006-01-02"):
		if p.Streak > 0 {
			return MascotAlert
		}
	}
	return MascotIdle
}

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
