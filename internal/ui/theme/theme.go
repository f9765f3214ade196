package theme

import (
	"image/color"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/catalog"
)

// Color palette: kid-friendly, bright but not garish
var (
	Primary   = lipgloss.Color("#8B5CF6") // Vivid Purple
	Secondary = lipgloss.Color("#14B8A6") // Teal
	Accent    = lipgloss.Color("#F97316") // Orange
	Success   = lipgloss.Color("#22C55E") // Green
	Error     = lipgloss.Color("#F43F5E") // Rose
	Text      = lipgloss.Color("#F8FAFC") // White
	TextDim   = lipgloss.Color("#94A3B8") // Slate
	BgDark    = lipgloss.Color("#0F172A") // Deep Navy
	BgCard    = lipgloss.Color("#1E293B") // Dark Slate
	Border    = lipgloss.Color("#334155") // Slate

	ArcadeYellow = lipgloss.Color("#FACC15")
	ArcadeCyan   = lipgloss.Color("#22D3EE")
)

// Layout
var (
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Border).
		Padding(0, 2)

	// Badge is the pill showing the current level.
	Badge = lipgloss.NewStyle().
		Background(Primary).
		Foreground(Text).
		Bold(true).
		Padding(0, 1)
)

// States
var (
	Correct = lipgloss.NewStyle().
		Foreground(Success).
		Bold(true)

	Incorrect = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)
)

// GlyphColor returns the display colour of a cipher glyph.
func GlyphColor(g catalog.Glyph) color.Color {
	if c := g.Color(); c != "" {
		return lipgloss.Color(c)
	}
	return Text
}

// RenderGlyph draws a glyph in its own colour.
func RenderGlyph(g catalog.Glyph) string {
	return lipgloss.NewStyle().
		Foreground(GlyphColor(g)).
		Bold(true).
		Render(g.Char())
}
