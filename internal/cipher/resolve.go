package cipher

import "fmt"

// Resolution is the outcome of selecting an option.
type Resolution struct {
	Correct bool
}

// ResolveSelection compares the selected option index against the round's
// correct index. It does not modify the round.
func ResolveSelection(r *Round, index int) (Resolution, error) {
	if index < 0 || index >= len(r.Options) {
		return Resolution{}, fmt.Errorf("option %d of %d: %w", index, len(r.Options), ErrSelectionOutOfRange)
	}
	return Resolution{Correct: index == r.CorrectIndex}, nil
}
