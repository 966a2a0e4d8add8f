package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/rehearse/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Yellow, star eyes: everything mastered last time
	MascotAlert                            // Orange, exclamation: no learning sets found
)

const mascotIdle = `┌───────┐
│ ◉   ◉ │
│   ▽   │
│ A → B │
└───────┘`

const mascotCelebrating = `┌───────┐
│ ★   ★ │
│   ▿   │
│ A → B │
└─╥═══╥─┘
  ╚═══╝`

const mascotAlert = `┌───────┐
│ ◉   ◉ │ !
│   ○   │
│ A → ? │
└───────┘`

// RenderMascot returns the mascot ASCII art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary

	switch v {
	case MascotCelebrating:
		art = mascotCelebrating
		fg = theme.Highlight
	case MascotAlert:
		art = mascotAlert
		fg = theme.Accent
	}

	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
