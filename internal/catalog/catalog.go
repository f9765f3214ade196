// Package catalog holds the static pictogram and glyph content used by the
// cipher game. Catalogs are immutable for the lifetime of the process.
package catalog

// Pictogram identifies an animal picture.
type Pictogram string

const (
	Lion   Pictogram = "lion"
	Frog   Pictogram = "frog"
	Cat    Pictogram = "cat"
	Panda  Pictogram = "panda"
	Fox    Pictogram = "fox"
	Koala  Pictogram = "koala"
	Pig    Pictogram = "pig"
	Monkey Pictogram = "monkey"
)

// AllPictograms returns every pictogram in catalog order.
// The returned slice is a fresh copy and may be modified by the caller.
func AllPictograms() []Pictogram {
	return []Pictogram{Lion, Frog, Cat, Panda, Fox, Koala, Pig, Monkey}
}

// Emoji returns the picture shown for the pictogram.
func (p Pictogram) Emoji() string {
	switch p {
	case Lion:
		return "🦁"
	case Frog:
		return "🐸"
	case Cat:
		return "🐱"
	case Panda:
		return "🐼"
	case Fox:
		return "🦊"
	case Koala:
		return "🐨"
	case Pig:
		return "🐷"
	case Monkey:
		return "🐵"
	default:
		return "?"
	}
}

// DisplayName returns the spoken name of the animal.
func (p Pictogram) DisplayName() string {
	switch p {
	case Lion:
		return "Aslan"
	case Frog:
		return "Kurbağa"
	case Cat:
		return "Kedi"
	case Panda:
		return "Panda"
	case Fox:
		return "Tilki"
	case Koala:
		return "Koala"
	case Pig:
		return "Domuz"
	case Monkey:
		return "Maymun"
	default:
		return string(p)
	}
}

// Valid reports whether p is part of the catalog.
func (p Pictogram) Valid() bool {
	for _, c := range AllPictograms() {
		if c == p {
			return true
		}
	}
	return false
}
