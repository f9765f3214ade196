package session

import (
	"context"
	"sort"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/cipher"
)

// LevelResult tracks performance at one level.
type LevelResult struct {
	Level   cipher.Level
	Rounds  int
	Correct int
}

// Summary holds the data displayed on the summary screen.
type Summary struct {
	SessionID    string
	Duration     time.Duration
	Rounds       int
	Correct      int
	Accuracy     float64
	Stars        int
	HighestLevel cipher.Level
	Levels       []LevelResult
}

// Summary builds the end-of-session report. Per-level results come from the
// round log when one is attached, falling back to the in-memory tally.
func (s *Session) Summary(ctx context.Context) *Summary {
	var accuracy float64
	if s.Rounds > 0 {
		accuracy = float64(s.Correct) / float64(s.Rounds)
	}

	return &Summary{
		SessionID:    s.ID,
		Duration:     s.Elapsed(),
		Rounds:       s.Rounds,
		Correct:      s.Correct,
		Accuracy:     accuracy,
		Stars:        s.Stars,
		HighestLevel: s.HighestLevel,
		Levels:       s.levelResults(ctx),
	}
}

func (s *Session) levelResults(ctx context.Context) []LevelResult {
	if s.repo != nil {
		tallies, err := s.repo.LevelTallies(ctx, s.ID)
		if err == nil {
			results := make([]LevelResult, 0, len(tallies))
			for _, t := range tallies {
				results = append(results, LevelResult{
					Level:   cipher.Level(t.Level),
					Rounds:  t.Rounds,
					Correct: t.Correct,
				})
			}
			return results
		}
		s.logger.Warn("load level tallies", zap.String("session", s.ID), zap.Error(err))
	}

	results := make([]LevelResult, 0, len(s.byLevel))
	for _, lr := range s.byLevel {
		results = append(results, *lr)
	}
	sort.Slice(results, func(i, j int) bool { return results[i].Level < results[j].Level })
	return results
}
