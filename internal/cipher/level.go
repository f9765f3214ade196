package cipher

import (
	"fmt"

	"github.com/abhisek/cipherplay/internal/catalog"
)

// Level is a difficulty level.
type Level int

const (
	LevelBeginner Level = 1 // Two animals, one clue row
	LevelNormal   Level = 2 // Three animals, two clue rows
	LevelHard     Level = 3 // Four animals, three clue rows

	// MinLevel and MaxLevel bound the playable levels.
	MinLevel = LevelBeginner
	MaxLevel = LevelHard
)

// ItemsPerRow is the number of reveal slots in a clue row.
const ItemsPerRow = 2

// AllLevels returns the playable levels in ascending order.
func AllLevels() []Level {
	return []Level{LevelBeginner, LevelNormal, LevelHard}
}

// Label returns the short difficulty name shown next to the level badge.
func (l Level) Label() string {
	switch l {
	case LevelBeginner:
		return "Başlangıç"
	case LevelNormal:
		return "Orta"
	case LevelHard:
		return "Zor"
	default:
		return fmt.Sprintf("Seviye %d", int(l))
	}
}

// LevelConfig holds the generation parameters for a level.
type LevelConfig struct {
	PoolSize    int // distinct pictogram/glyph pairs active in a round
	ClueRows    int // number of clue rows shown
	QuestionLen int // pictograms in the question and glyphs per option
}

// DefaultLevels returns the level table used by the game.
func DefaultLevels() map[Level]LevelConfig {
	return map[Level]LevelConfig{
		LevelBeginner: {PoolSize: 2, ClueRows: 1, QuestionLen: 2},
		LevelNormal:   {PoolSize: 3, ClueRows: 2, QuestionLen: 3},
		LevelHard:     {PoolSize: 4, ClueRows: 3, QuestionLen: 3},
	}
}

// Validate checks that a round generated with this config can teach the
// whole mapping: every pooled pictogram must fit in the clue rows.
func (c LevelConfig) Validate(level Level) error {
	switch {
	case c.PoolSize < 1:
		return &ConfigError{Level: level, Reason: "pool size must be positive"}
	case c.QuestionLen < 1:
		return &ConfigError{Level: level, Reason: "question length must be positive"}
	case c.ClueRows < 1:
		return &ConfigError{Level: level, Reason: "at least one clue row is required"}
	case c.PoolSize > len(catalog.AllPictograms()):
		return &ConfigError{Level: level, Reason: fmt.Sprintf("pool size %d exceeds %d pictograms", c.PoolSize, len(catalog.AllPictograms()))}
	case c.PoolSize > len(catalog.AllGlyphs()):
		return &ConfigError{Level: level, Reason: fmt.Sprintf("pool size %d exceeds %d glyphs", c.PoolSize, len(catalog.AllGlyphs()))}
	case c.ClueRows*ItemsPerRow < c.PoolSize:
		return &ConfigError{Level: level, Reason: fmt.Sprintf("%d clue rows cannot reveal %d pictograms", c.ClueRows, c.PoolSize)}
	}
	return nil
}
