// Package session holds the per-play-session context: identity, the star
// counter, and the round tally read by the presentation layer.
package session

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/progression"
	"github.com/abhisek/cipherplay/internal/store"
)

// StarsPerWin is the reward credited for each correct answer.
const StarsPerWin = 2

// Outcome is a resolved selection as recorded in the session log.
type Outcome struct {
	Level        cipher.Level
	Correct      bool
	Selected     int
	CorrectIndex int
	Options      int
	Streak       int
	Degraded     bool
}

// Session is the explicit session context shared by the game screen, the
// progression controller (as its WinSink) and the summary screen.
type Session struct {
	// ID is the UUID for this session.
	ID string

	// StartedAt is when the session began.
	StartedAt time.Time

	// Stars is the reward counter.
	Stars int

	// Rounds and Correct count resolved selections.
	Rounds  int
	Correct int

	// HighestLevel is the highest level a round was played at.
	HighestLevel cipher.Level

	byLevel map[cipher.Level]*LevelResult
	repo    store.RoundRepo
	logger  *zap.Logger
	now     func() time.Time
}

var _ progression.WinSink = (*Session)(nil)

// New starts a session. repo and logger may be nil.
func New(repo store.RoundRepo, logger *zap.Logger) *Session {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Session{
		ID:      uuid.New().String(),
		byLevel: make(map[cipher.Level]*LevelResult),
		repo:    repo,
		logger:  logger,
		now:     time.Now,
	}
	s.StartedAt = s.now()
	return s
}

// AddWin credits the reward for one correct answer.
func (s *Session) AddWin() {
	s.Stars += StarsPerWin
}

// Record tallies a resolved selection and appends it to the round log.
// Log failures are reported but never interrupt play.
func (s *Session) Record(ctx context.Context, o Outcome) {
	s.Rounds++
	if o.Correct {
		s.Correct++
	}
	if o.Level > s.HighestLevel {
		s.HighestLevel = o.Level
	}

	lr := s.byLevel[o.Level]
	if lr == nil {
		lr = &LevelResult{Level: o.Level}
		s.byLevel[o.Level] = lr
	}
	lr.Rounds++
	if o.Correct {
		lr.Correct++
	}

	if s.repo == nil {
		return
	}
	err := s.repo.AppendRound(ctx, store.RoundEventData{
		SessionID:    s.ID,
		Level:        int(o.Level),
		Correct:      o.Correct,
		Selected:     o.Selected,
		CorrectIndex: o.CorrectIndex,
		Options:      o.Options,
		Streak:       o.Streak,
		Degraded:     o.Degraded,
		Timestamp:    s.now(),
	})
	if err != nil {
		s.logger.Warn("record round", zap.String("session", s.ID), zap.Error(err))
	}
}

// Elapsed returns the time since the session started.
func (s *Session) Elapsed() time.Duration {
	return s.now().Sub(s.StartedAt)
}
