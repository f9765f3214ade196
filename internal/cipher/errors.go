package cipher

import (
	"errors"
	"fmt"
)

// ErrInvalidConfig indicates an unknown level or a level configuration that
// cannot produce a solvable round. It is never recoverable.
var ErrInvalidConfig = errors.New("invalid level configuration")

// ErrSelectionOutOfRange indicates a selection index outside the round's options.
var ErrSelectionOutOfRange = errors.New("selection out of range")

// ConfigError describes why a level cannot be generated.
type ConfigError struct {
	Level  Level
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("level %d: %s", int(e.Level), e.Reason)
}

// Is makes errors.Is(err, ErrInvalidConfig) match any ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrInvalidConfig
}
