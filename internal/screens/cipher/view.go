package cipher

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	gamecipher "github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/progression"
	"github.com/abhisek/cipherplay/internal/ui/components"
	"github.com/abhisek/cipherplay/internal/ui/layout"
	"github.com/abhisek/cipherplay/internal/ui/theme"
)

const (
	instruction  = "Kutulara bak. Hangi hayvan, hangi şekil? Şifreyi çöz."
	msgCorrect   = "Doğru bildin!"
	msgLevelUp   = "Harika! Zorlaşıyor!"
	msgTryAgain  = "Yanlış oldu. İpuçlarına dikkat et."
	questionMark = "?"
)

func (s *CipherScreen) View(width, height int) string {
	if s.errMsg != "" {
		return renderError(width, s.errMsg)
	}
	if s.round == nil {
		return renderLoading(width)
	}

	compact := layout.IsCompactHeight(height)
	center := lipgloss.NewStyle().Width(width).Align(lipgloss.Center)

	var b strings.Builder

	// Level line.
	badge := theme.Badge.Render(fmt.Sprintf("Seviye %d", s.level))
	label := lipgloss.NewStyle().Foreground(theme.TextDim).Render(s.level.Label())
	meter := components.NewStreakMeter(s.streak, s.threshold, s.level >= gamecipher.MaxLevel).View()
	b.WriteString(center.Render(badge + "  " + label + "    " + meter))
	b.WriteString("\n")
	if !compact {
		b.WriteString("\n")
	}

	if s.level == gamecipher.MinLevel && s.streak == 0 && s.feedback == nil {
		b.WriteString(center.Foreground(theme.TextDim).Italic(true).Render(instruction))
		b.WriteString("\n\n")
	}

	// Clues.
	clues := make([]string, 0, len(s.round.Clues))
	for _, row := range s.round.Clues {
		clues = append(clues, theme.Card.Render(renderClue(row)))
	}
	b.WriteString(center.Render(lipgloss.JoinHorizontal(lipgloss.Top, spaced(clues)...)))
	b.WriteString("\n")
	if !compact {
		b.WriteString("\n")
	}

	// Question.
	b.WriteString(center.Bold(true).Foreground(theme.Text).Render(s.renderQuestion()))
	b.WriteString("\n\n")

	// Options.
	b.WriteString(center.Render(s.options.View()))
	b.WriteString("\n\n")

	if s.feedback != nil {
		b.WriteString(center.Render(renderFeedback(*s.feedback)))
	}

	return b.String()
}

func renderClue(row gamecipher.ClueRow) string {
	pics := make([]string, len(row.Pictograms))
	for i, p := range row.Pictograms {
		pics[i] = p.Emoji()
	}
	glyphs := make([]string, len(row.Glyphs))
	for i, g := range row.Glyphs {
		glyphs[i] = theme.RenderGlyph(g)
	}
	arrow := lipgloss.NewStyle().Foreground(theme.TextDim).Render("→")
	return strings.Join(pics, " ") + "  " + arrow + "  " + strings.Join(glyphs, " ")
}

// renderQuestion shows the encoded sequence. Once the round is answered
// correctly the placeholders are replaced by the solution.
func (s *CipherScreen) renderQuestion() string {
	pics := make([]string, len(s.round.Question))
	for i, p := range s.round.Question {
		pics[i] = p.Emoji()
	}

	answer := make([]string, len(s.round.Question))
	solved := s.feedback != nil && s.feedback.Correct
	for i, p := range s.round.Question {
		if !solved {
			answer[i] = questionMark
			continue
		}
		g, _ := s.round.Mapping.Glyph(p)
		answer[i] = theme.RenderGlyph(g)
	}
	return strings.Join(pics, " ") + "  →  " + strings.Join(answer, " ")
}

func renderFeedback(f progression.Feedback) string {
	switch {
	case f.Outcome == progression.OutcomeLevelUp:
		return lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true).Render("★ " + msgLevelUp + " ★")
	case f.Correct:
		return theme.Correct.Render(msgCorrect)
	default:
		return theme.Incorrect.Render(msgTryAgain)
	}
}

func spaced(blocks []string) []string {
	out := make([]string, 0, 2*len(blocks))
	for i, blk := range blocks {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, blk)
	}
	return out
}

func renderLoading(width int) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.TextDim).
		Render("\n\n\n  Şifre hazırlanıyor...")
}

func renderError(width int, errMsg string) string {
	return lipgloss.NewStyle().
		Width(width).
		Align(lipgloss.Center).
		Foreground(theme.Error).
		Render(fmt.Sprintf("\n\n\n  Hata: %s\n\n  Geri dönmek için bir tuşa bas.", errMsg))
}
