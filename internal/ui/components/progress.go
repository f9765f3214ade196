package components

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/ui/theme"
)

// StreakMeter shows how many consecutive correct answers count toward the
// next level.
type StreakMeter struct {
	Streak    int
	Threshold int
	MaxLevel  bool
}

// NewStreakMeter creates a meter with the given fill.
func NewStreakMeter(streak, threshold int, maxLevel bool) StreakMeter {
	return StreakMeter{Streak: streak, Threshold: threshold, MaxLevel: maxLevel}
}

// View renders filled and empty pips.
func (s StreakMeter) View() string {
	if s.MaxLevel {
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("★ En üst seviye")
	}
	if s.Threshold <= 0 {
		return ""
	}

	filled := min(max(s.Streak, 0), s.Threshold)
	empty := s.Threshold - filled

	return lipgloss.NewStyle().Foreground(theme.TextDim).Render("Seri ") +
		lipgloss.NewStyle().Foreground(theme.Secondary).Render(strings.Repeat("● ", filled)) +
		lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("○ ", empty))
}
