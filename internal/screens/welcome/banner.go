package welcome

import (
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/catalog"
	"github.com/abhisek/cipherplay/internal/ui/theme"
)

const (
	bannerText    = "Ş İ F R E   Ç Ö Z Ü C Ü"
	bannerCompact = "ŞİFRE ÇÖZÜCÜ"
)

// RenderBanner returns the game title in a double-bordered box. Narrow
// terminals get the unspaced title without a border.
func RenderBanner(width int) string {
	style := lipgloss.NewStyle().
		Foreground(theme.Primary).
		Bold(true)

	if width < 40 {
		return style.Render(bannerCompact)
	}
	return style.
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeYellow).
		Padding(0, 3).
		Render(bannerText)
}

// renderCipherStrip shows the first n pictograms next to their glyphs, one
// pair per step of the intro animation.
func renderCipherStrip(n int) string {
	pics := catalog.AllPictograms()
	glyphs := catalog.AllGlyphs()
	n = min(n, len(pics), len(glyphs))

	pairs := make([]string, 0, n)
	for i := range n {
		pairs = append(pairs, pics[i].Emoji()+" "+theme.RenderGlyph(glyphs[i]))
	}
	return strings.Join(pairs, "   ")
}
