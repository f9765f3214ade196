package catalog

// Glyph identifies a decorative symbol.
type Glyph string

const (
	Star     Glyph = "star"
	Square   Glyph = "square"
	Circle   Glyph = "circle"
	Triangle Glyph = "triangle"
	Diamond  Glyph = "diamond"
	Heart    Glyph = "heart"
)

// AllGlyphs returns every glyph in catalog order.
// The returned slice is a fresh copy and may be modified by the caller.
func AllGlyphs() []Glyph {
	return []Glyph{Star, Square, Circle, Triangle, Diamond, Heart}
}

// Char returns the character drawn for the glyph.
func (g Glyph) Char() string {
	switch g {
	case Star:
		return "★"
	case Square:
		return "■"
	case Circle:
		return "●"
	case Triangle:
		return "▲"
	case Diamond:
		return "◆"
	case Heart:
		return "♥"
	default:
		return "?"
	}
}

// Color returns the hex colour used to draw the glyph.
func (g Glyph) Color() string {
	switch g {
	case Star:
		return "#EAB308" // Yellow
	case Square:
		return "#EF4444" // Red
	case Circle:
		return "#3B82F6" // Blue
	case Triangle:
		return "#22C55E" // Green
	case Diamond:
		return "#A855F7" // Purple
	case Heart:
		return "#EC4899" // Pink
	default:
		return "#94A3B8"
	}
}

// Valid reports whether g is part of the catalog.
func (g Glyph) Valid() bool {
	for _, c := range AllGlyphs() {
		if c == g {
			return true
		}
	}
	return false
}
