package cipher

import "github.com/abhisek/cipherplay/internal/progression"

// taskDueMsg is sent when a deferred progression task's delay has elapsed.
type taskDueMsg struct {
	ID progression.TaskID
}
