package cipher

import (
	"fmt"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/catalog"
)

// Generator builds cipher rounds. It is not safe for concurrent use; the
// game drives it from a single event loop.
type Generator struct {
	rng    *rand.Rand
	cfg    Config
	logger *zap.Logger
}

// New creates a Generator drawing from rng. A nil logger disables logging.
func New(rng *rand.Rand, cfg Config, logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{rng: rng, cfg: cfg, logger: logger}
}

// LevelConfig returns the configuration for level, or ErrInvalidConfig if
// the level is unknown or cannot produce a solvable round.
func (g *Generator) LevelConfig(level Level) (LevelConfig, error) {
	lc, ok := g.cfg.Levels[level]
	if !ok {
		return LevelConfig{}, &ConfigError{Level: level, Reason: "unknown level"}
	}
	if err := lc.Validate(level); err != nil {
		return LevelConfig{}, err
	}
	return lc, nil
}

// GenerateRound produces a complete round for level.
func (g *Generator) GenerateRound(level Level) (*Round, error) {
	lc, err := g.LevelConfig(level)
	if err != nil {
		return nil, fmt.Errorf("generate round: %w", err)
	}
	return g.roundFromMapping(level, lc, g.selectPool(lc)), nil
}

// roundFromMapping runs every step after pool selection.
func (g *Generator) roundFromMapping(level Level, lc LevelConfig, m Mapping) *Round {
	clues := g.buildClues(m, lc)
	question := g.buildQuestion(m, lc)
	correct, _ := m.Encode(question)

	options, degraded := g.buildOptions(correct, m.Glyphs(), lc.QuestionLen)
	shuffle(g.rng, options)

	round := &Round{
		Level:    level,
		Mapping:  m,
		Clues:    clues,
		Question: question,
		Options:  options,
		Degraded: degraded,
	}

	// The shuffle moves values, so find the answer again by signature.
	sig := correct.Signature()
	for i, opt := range options {
		if opt.Signature() == sig {
			round.CorrectIndex = i
			break
		}
	}

	if degraded {
		g.logger.Warn("distractor search exhausted",
			zap.Int("level", int(level)),
			zap.Int("options", len(options)),
			zap.String("correct", sig),
		)
	}
	g.logger.Debug("round generated",
		zap.Int("level", int(level)),
		zap.Int("pool", m.Len()),
		zap.Int("clues", len(round.Clues)),
		zap.Int("options", len(options)),
		zap.Int("correctIndex", round.CorrectIndex),
	)
	return round
}

// selectPool shuffles both catalogs and zips their first PoolSize entries.
func (g *Generator) selectPool(lc LevelConfig) Mapping {
	pictograms := catalog.AllPictograms()
	glyphs := catalog.AllGlyphs()
	shuffle(g.rng, pictograms)
	shuffle(g.rng, glyphs)

	// Catalog entries are distinct and the sizes were validated, so this
	// cannot fail.
	m, _ := NewMapping(pictograms[:lc.PoolSize], glyphs[:lc.PoolSize])
	return m
}

// buildClues reveals every pooled pictogram at least once before filling the
// remaining slots with random pool members.
func (g *Generator) buildClues(m Mapping, lc LevelConfig) []ClueRow {
	pool := m.Pool()
	reveal := m.Pool()
	shuffle(g.rng, reveal)

	rows := make([]ClueRow, 0, lc.ClueRows)
	for range lc.ClueRows {
		row := ClueRow{
			Pictograms: make([]catalog.Pictogram, 0, ItemsPerRow),
			Glyphs:     make([]catalog.Glyph, 0, ItemsPerRow),
		}
		for range ItemsPerRow {
			var p catalog.Pictogram
			if n := len(reveal); n > 0 {
				p = reveal[n-1]
				reveal = reveal[:n-1]
			} else {
				p = pick(g.rng, pool)
			}
			glyph, _ := m.Glyph(p)
			row.Pictograms = append(row.Pictograms, p)
			row.Glyphs = append(row.Glyphs, glyph)
		}
		rows = append(rows, row)
	}
	return rows
}

// buildQuestion draws QuestionLen pool members with repetition.
func (g *Generator) buildQuestion(m Mapping, lc LevelConfig) []catalog.Pictogram {
	pool := m.Pool()
	q := make([]catalog.Pictogram, lc.QuestionLen)
	for i := range q {
		q[i] = pick(g.rng, pool)
	}
	return q
}

// buildOptions returns the correct option first followed by unique
// distractors. degraded reports that fewer than OptionCount were found.
func (g *Generator) buildOptions(correct Option, glyphPool []catalog.Glyph, length int) (options []Option, degraded bool) {
	want := g.cfg.OptionCount
	if want < 1 {
		want = 1
	}

	seen := map[string]bool{correct.Signature(): true}
	options = append(options, correct)

	permutationTries := 0
	for attempt := 0; len(options) < want && attempt < g.cfg.MaxDistractorAttempts; attempt++ {
		var candidate Option
		if len(options) == 1 && permutationTries < g.cfg.PermutationAttempts {
			// Same glyphs in another order.
			permutationTries++
			candidate = append(Option(nil), correct...)
			shuffle(g.rng, candidate)
		} else {
			candidate = make(Option, length)
			for i := range candidate {
				candidate[i] = pick(g.rng, glyphPool)
			}
		}

		sig := candidate.Signature()
		if seen[sig] {
			continue
		}
		seen[sig] = true
		options = append(options, candidate)
	}

	return options, len(options) < want
}
