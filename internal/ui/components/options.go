package components

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/catalog"
	"github.com/abhisek/cipherplay/internal/ui/theme"
)

// OptionMark is how an option row is highlighted after a selection.
type OptionMark int

const (
	MarkNone OptionMark = iota
	MarkCorrect
	MarkWrong
)

// OptionList renders the numbered answer choices of a cipher round.
type OptionList struct {
	Options  [][]catalog.Glyph
	Cursor   int
	Marks    map[int]OptionMark
	Disabled bool
}

// NewOptionList creates a list with the cursor on the first option.
func NewOptionList(options [][]catalog.Glyph) OptionList {
	return OptionList{
		Options: options,
		Marks:   make(map[int]OptionMark),
	}
}

// MoveUp moves the cursor one row up.
func (l *OptionList) MoveUp() {
	if l.Cursor > 0 {
		l.Cursor--
	}
}

// MoveDown moves the cursor one row down.
func (l *OptionList) MoveDown() {
	if l.Cursor < len(l.Options)-1 {
		l.Cursor++
	}
}

// Mark highlights option i.
func (l *OptionList) Mark(i int, m OptionMark) {
	l.Marks[i] = m
}

// ClearMarks removes every highlight.
func (l *OptionList) ClearMarks() {
	clear(l.Marks)
}

// View renders one boxed row per option.
func (l OptionList) View() string {
	rows := make([]string, 0, len(l.Options))
	for i, opt := range l.Options {
		glyphs := make([]string, len(opt))
		for j, g := range opt {
			glyphs[j] = theme.RenderGlyph(g)
		}
		label := fmt.Sprintf("%d)  %s", i+1, strings.Join(glyphs, "  "))

		border := theme.Border
		prefix := "  "
		switch {
		case l.Marks[i] == MarkCorrect:
			border = theme.Success
		case l.Marks[i] == MarkWrong:
			border = theme.Error
		case i == l.Cursor && !l.Disabled:
			border = theme.Primary
			prefix = "▸ "
		}

		rows = append(rows, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(border).
			Padding(0, 2).
			Render(prefix+label))
	}
	return strings.Join(rows, "\n")
}
