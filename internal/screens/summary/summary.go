package summary

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screen"
	"github.com/abhisek/cipherplay/internal/session"
	"github.com/abhisek/cipherplay/internal/ui/layout"
	"github.com/abhisek/cipherplay/internal/ui/theme"
)

// SummaryScreen displays the session summary.
type SummaryScreen struct {
	summary *session.Summary
}

var _ screen.Screen = (*SummaryScreen)(nil)
var _ screen.KeyHintProvider = (*SummaryScreen)(nil)

// New creates a new SummaryScreen.
func New(summary *session.Summary) *SummaryScreen {
	return &SummaryScreen{summary: summary}
}

func (s *SummaryScreen) Init() tea.Cmd {
	return nil
}

func (s *SummaryScreen) Title() string {
	return "Oyun Özeti"
}

func (s *SummaryScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Devam"},
		{Key: "Esc", Description: "Ana menü"},
	}
}

func (s *SummaryScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyPressMsg); ok {
		switch kmsg.String() {
		case "enter", "esc":
			// The game screen was replaced by this one, so a single pop
			// returns home.
			return s, func() tea.Msg { return router.PopScreenMsg{} }
		}
	}
	return s, nil
}

func (s *SummaryScreen) View(width, height int) string {
	sum := s.summary
	if sum == nil {
		return ""
	}

	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)
	var b strings.Builder

	b.WriteString(center.Foreground(theme.Primary).Bold(true).Render("Oyun bitti!"))
	b.WriteString("\n\n")

	mins := int(sum.Duration.Minutes())
	secs := int(sum.Duration.Seconds()) % 60
	b.WriteString(center.Foreground(theme.TextDim).Render(fmt.Sprintf("Süre: %d:%02d", mins, secs)))
	b.WriteString("\n\n")

	accuracy := fmt.Sprintf("%.0f%%", sum.Accuracy*100)
	statsLine := fmt.Sprintf("Tur: %d      Doğru: %d      Başarı: %s",
		sum.Rounds, sum.Correct, accuracy)
	b.WriteString(center.Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	stars := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render(fmt.Sprintf("★ %d yıldız", sum.Stars))
	b.WriteString(center.Render(stars))
	b.WriteString("\n")
	if sum.HighestLevel > 0 {
		b.WriteString(center.Foreground(theme.Secondary).Render(
			fmt.Sprintf("En yüksek seviye: %d (%s)", sum.HighestLevel, sum.HighestLevel.Label())))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	if len(sum.Levels) == 0 {
		return b.String()
	}

	divider := lipgloss.NewStyle().Foreground(theme.Border).Render(
		strings.Repeat("─", max(min(width-8, 40), 0)))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		lipgloss.NewStyle().Foreground(theme.TextDim).Render("Seviyeler")))
	b.WriteString("\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, divider))
	b.WriteString("\n\n")

	for _, lr := range sum.Levels {
		line := fmt.Sprintf("Seviye %d  %-10s  %d/%d doğru", lr.Level, lr.Level.Label(), lr.Correct, lr.Rounds)
		style := lipgloss.NewStyle().Foreground(theme.Text)
		if lr.Rounds > 0 && lr.Correct == lr.Rounds {
			style = style.Foreground(theme.Success)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, style.Render(line)))
		b.WriteString("\n")
	}

	return b.String()
}
