package home

import (
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/ui/theme"
)

// MascotVariant selects which mascot art to display.
type MascotVariant int

const (
	MascotIdle        MascotVariant = iota // Default purple
	MascotCelebrating                      // Gold, star eyes once stars are earned
)

const mascotIdle = `┌─────┐
│ ◉ ◉ │
│  ▽  │
│ ★●▲ │
└─────┘`

const mascotCelebrating = `┌─────┐
│ ★ ★ │
│  ▿  │
│ ★●▲ │
└─╥═╥─┘
  ╚═╝`

// RenderMascot returns the mascot art for the given variant.
func RenderMascot(v MascotVariant) string {
	art := mascotIdle
	fg := theme.Primary
	if v == MascotCelebrating {
		art = mascotCelebrating
		fg = theme.ArcadeYellow
	}
	return lipgloss.NewStyle().
		Foreground(fg).
		Render(art)
}
