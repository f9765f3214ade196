package store

import (
	"context"
	"time"
)

// RoundEventData captures one resolved selection.
type RoundEventData struct {
	SessionID    string
	Level        int
	Correct      bool
	Selected     int
	CorrectIndex int
	Options      int
	Streak       int // streak after the transition
	Degraded     bool
	Timestamp    time.Time
}

// LevelTally aggregates resolutions at one level.
type LevelTally struct {
	Level   int
	Rounds  int
	Correct int
}

// RoundRepo records round outcomes for the running session.
type RoundRepo interface {
	// AppendRound records a resolved selection.
	AppendRound(ctx context.Context, data RoundEventData) error

	// LevelTallies returns per-level totals for a session, ordered by level.
	LevelTallies(ctx context.Context, sessionID string) ([]LevelTally, error)

	// RecentRounds returns up to limit most recent events for a session,
	// newest first. A limit of 0 returns all events.
	RecentRounds(ctx context.Context, sessionID string, limit int) ([]RoundEventData, error)
}
