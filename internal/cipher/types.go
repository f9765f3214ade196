package cipher

import (
	"fmt"
	"strings"

	"github.com/abhisek/cipherplay/internal/catalog"
)

// Mapping is a bijection from the round's pictogram pool to an equally
// sized set of glyphs.
type Mapping struct {
	pictograms []catalog.Pictogram
	glyphs     []catalog.Glyph
	index      map[catalog.Pictogram]int
}

// NewMapping pairs pictograms[i] with glyphs[i]. Both sides must be the same
// length and free of duplicates.
func NewMapping(pictograms []catalog.Pictogram, glyphs []catalog.Glyph) (Mapping, error) {
	if len(pictograms) != len(glyphs) {
		return Mapping{}, fmt.Errorf("mapping: %d pictograms for %d glyphs", len(pictograms), len(glyphs))
	}
	index := make(map[catalog.Pictogram]int, len(pictograms))
	seenGlyph := make(map[catalog.Glyph]bool, len(glyphs))
	for i, p := range pictograms {
		if _, dup := index[p]; dup {
			return Mapping{}, fmt.Errorf("mapping: pictogram %q appears twice", p)
		}
		if seenGlyph[glyphs[i]] {
			return Mapping{}, fmt.Errorf("mapping: glyph %q appears twice", glyphs[i])
		}
		index[p] = i
		seenGlyph[glyphs[i]] = true
	}
	return Mapping{
		pictograms: append([]catalog.Pictogram(nil), pictograms...),
		glyphs:     append([]catalog.Glyph(nil), glyphs...),
		index:      index,
	}, nil
}

// Len returns the pool size.
func (m Mapping) Len() int { return len(m.pictograms) }

// Pool returns the pooled pictograms in mapping order.
func (m Mapping) Pool() []catalog.Pictogram {
	return append([]catalog.Pictogram(nil), m.pictograms...)
}

// Glyphs returns the pooled glyphs in mapping order.
func (m Mapping) Glyphs() []catalog.Glyph {
	return append([]catalog.Glyph(nil), m.glyphs...)
}

// Contains reports whether p is in the pool.
func (m Mapping) Contains(p catalog.Pictogram) bool {
	_, ok := m.index[p]
	return ok
}

// Glyph returns the glyph paired with p.
func (m Mapping) Glyph(p catalog.Pictogram) (catalog.Glyph, bool) {
	i, ok := m.index[p]
	if !ok {
		return "", false
	}
	return m.glyphs[i], true
}

// Encode maps a pictogram sequence element-wise, preserving order and
// repetition. ok is false if any pictogram is outside the pool.
func (m Mapping) Encode(seq []catalog.Pictogram) (opt Option, ok bool) {
	opt = make(Option, len(seq))
	for i, p := range seq {
		g, found := m.Glyph(p)
		if !found {
			return nil, false
		}
		opt[i] = g
	}
	return opt, true
}

// ClueRow reveals pictogram→glyph pairs. Glyphs[i] is always the mapping of
// Pictograms[i].
type ClueRow struct {
	Pictograms []catalog.Pictogram
	Glyphs     []catalog.Glyph
}

// Option is a candidate answer: an ordered glyph sequence.
type Option []catalog.Glyph

// Signature identifies the option by its ordered glyph IDs.
func (o Option) Signature() string {
	parts := make([]string, len(o))
	for i, g := range o {
		parts[i] = string(g)
	}
	return strings.Join(parts, ",")
}

// String renders the option with glyph characters.
func (o Option) String() string {
	parts := make([]string, len(o))
	for i, g := range o {
		parts[i] = g.Char()
	}
	return strings.Join(parts, " ")
}

// Round is one playable puzzle.
type Round struct {
	Level    Level
	Mapping  Mapping
	Clues    []ClueRow
	Question []catalog.Pictogram

	// Options in display order; Options[CorrectIndex] is the answer.
	Options      []Option
	CorrectIndex int

	// Degraded is true when the distractor search ran out of attempts and
	// the round carries fewer options than requested.
	Degraded bool
}

// Correct returns the correct option.
func (r *Round) Correct() Option {
	return r.Options[r.CorrectIndex]
}
