package cipher

// Config controls the behaviour of the Generator.
type Config struct {
	// Levels maps each playable level to its generation parameters.
	Levels map[Level]LevelConfig

	// OptionCount is the number of options a round aims for, including
	// the correct one.
	OptionCount int

	// MaxDistractorAttempts bounds the rejection-sampling loop that hunts
	// for unique distractors. When it is exhausted the round keeps the
	// options found so far.
	MaxDistractorAttempts int

	// PermutationAttempts is how many shuffled copies of the correct option
	// are tried for the first distractor before falling back to random
	// glyph sequences.
	PermutationAttempts int
}

// DefaultConfig returns the game's level table and option policy.
func DefaultConfig() Config {
	return Config{
		Levels:                DefaultLevels(),
		OptionCount:           3,
		MaxDistractorAttempts: 100,
		PermutationAttempts:   10,
	}
}
