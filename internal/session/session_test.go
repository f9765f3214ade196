package session

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/store"
)

// failingRepo rejects every write and read.
type failingRepo struct{ appends int }

func (f *failingRepo) AppendRound(context.Context, store.RoundEventData) error {
	f.appends++
	return errors.New("disk full")
}
func (f *failingRepo) LevelTallies(context.Context, string) ([]store.LevelTally, error) {
	return nil, errors.New("disk full")
}
func (f *failingRepo) RecentRounds(context.Context, string, int) ([]store.RoundEventData, error) {
	return nil, errors.New("disk full")
}

func TestAddWin(t *testing.T) {
	s := New(nil, nil)
	s.AddWin()
	s.AddWin()
	assert.Equal(t, 2*StarsPerWin, s.Stars)
}

func TestNew_UniqueIDs(t *testing.T) {
	a, b := New(nil, nil), New(nil, nil)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestRecord_WithStore(t *testing.T) {
	st, err := store.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { st.Close() })

	s := New(st.RoundRepo(), zaptest.NewLogger(t))
	ctx := context.Background()
	s.Record(ctx, Outcome{Level: cipher.LevelBeginner, Correct: true, Options: 3})
	s.Record(ctx, Outcome{Level: cipher.LevelBeginner, Correct: false, Options: 3})
	s.Record(ctx, Outcome{Level: cipher.LevelNormal, Correct: true, Options: 3})

	sum := s.Summary(ctx)
	assert.Equal(t, 3, sum.Rounds)
	assert.Equal(t, 2, sum.Correct)
	assert.InDelta(t, 2.0/3.0, sum.Accuracy, 1e-9)
	assert.Equal(t, cipher.LevelNormal, sum.HighestLevel)
	assert.Equal(t, []LevelResult{
		{Level: cipher.LevelBeginner, Rounds: 2, Correct: 1},
		{Level: cipher.LevelNormal, Rounds: 1, Correct: 1},
	}, sum.Levels)

	events, err := st.RoundRepo().RecentRounds(ctx, s.ID, 0)
	require.NoError(t, err)
	assert.Len(t, events, 3)
}

func TestRecord_StoreFailureFallsBack(t *testing.T) {
	repo := &failingRepo{}
	s := New(repo, zaptest.NewLogger(t))
	ctx := context.Background()
	s.Record(ctx, Outcome{Level: cipher.LevelHard, Correct: true})
	s.Record(ctx, Outcome{Level: cipher.LevelNormal, Correct: false})

	assert.Equal(t, 2, repo.appends)
	sum := s.Summary(ctx)
	assert.Equal(t, []LevelResult{
		{Level: cipher.LevelNormal, Rounds: 1, Correct: 0},
		{Level: cipher.LevelHard, Rounds: 1, Correct: 1},
	}, sum.Levels)
}

func TestSummary_Empty(t *testing.T) {
	s := New(nil, nil)
	sum := s.Summary(context.Background())
	assert.Zero(t, sum.Rounds)
	assert.Zero(t, sum.Accuracy)
	assert.Empty(t, sum.Levels)
}

func TestSummary_Duration(t *testing.T) {
	s := New(nil, nil)
	start := time.Date(2026, 1, 1, 10, 0, 0, 0, time.UTC)
	s.StartedAt = start
	s.now = func() time.Time { return start.Add(90 * time.Second) }
	assert.Equal(t, 90*time.Second, s.Summary(context.Background()).Duration)
}
