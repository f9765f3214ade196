package progression

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/abhisek/cipherplay/internal/cipher"
)

// recorder captures observer callbacks.
type recorder struct {
	rounds   []*cipher.Round
	feedback []Feedback
	cleared  int
	levels   []cipher.Level
	errs     []error
}

func (r *recorder) OnRoundReady(rd *cipher.Round)  { r.rounds = append(r.rounds, rd) }
func (r *recorder) OnFeedback(f Feedback)          { r.feedback = append(r.feedback, f) }
func (r *recorder) OnFeedbackCleared()             { r.cleared++ }
func (r *recorder) OnLevelChanged(l cipher.Level)  { r.levels = append(r.levels, l) }
func (r *recorder) OnError(err error)              { r.errs = append(r.errs, err) }
func (r *recorder) lastFeedback() Feedback         { return r.feedback[len(r.feedback)-1] }
func (r *recorder) lastRound() *cipher.Round       { return r.rounds[len(r.rounds)-1] }

type winCounter struct{ wins int }

func (w *winCounter) AddWin() { w.wins++ }

// failingGenerator fails for levels listed in fail.
type failingGenerator struct {
	inner RoundGenerator
	fail  map[cipher.Level]bool
}

func (g *failingGenerator) GenerateRound(level cipher.Level) (*cipher.Round, error) {
	if g.fail[level] {
		return nil, &cipher.ConfigError{Level: level, Reason: "test"}
	}
	return g.inner.GenerateRound(level)
}

type harness struct {
	c     *Controller
	obs   *recorder
	wins  *winCounter
	queue *TaskQueue
}

func newHarness(t *testing.T, gen RoundGenerator) *harness {
	t.Helper()
	if gen == nil {
		rng, _, err := cipher.NewRand(21)
		require.NoError(t, err)
		gen = cipher.New(rng, cipher.DefaultConfig(), nil)
	}
	h := &harness{obs: &recorder{}, wins: &winCounter{}, queue: NewTaskQueue()}
	opts := DefaultOptions()
	opts.Logger = zaptest.NewLogger(t)
	h.c = New(gen, h.obs, h.wins, h.queue, opts)
	require.NoError(t, h.c.Start())
	return h
}

// flush fires every task scheduled so far.
func (h *harness) flush() {
	for _, task := range h.queue.Drain() {
		h.queue.Fire(task.ID)
	}
}

func (h *harness) answer(t *testing.T, correct bool) {
	t.Helper()
	r := h.c.Round()
	idx := r.CorrectIndex
	if !correct {
		idx = (r.CorrectIndex + 1) % len(r.Options)
	}
	res, err := h.c.Select(idx)
	require.NoError(t, err)
	require.Equal(t, correct, res.Correct)
}

func TestStart_InitialState(t *testing.T) {
	h := newHarness(t, nil)
	assert.Equal(t, State{Level: 1, Streak: 0}, h.c.State())
	assert.Equal(t, []cipher.Level{1}, h.obs.levels)
	require.Len(t, h.obs.rounds, 1)
	assert.Equal(t, cipher.LevelBeginner, h.obs.rounds[0].Level)
	assert.False(t, h.c.Busy())
}

func TestCorrect_KeepPlaying(t *testing.T) {
	h := newHarness(t, nil)
	first := h.c.Round()

	h.answer(t, true)
	assert.Equal(t, State{Level: 1, Streak: 1}, h.c.State())
	assert.Equal(t, Feedback{Correct: true, Outcome: OutcomeKeepPlaying, State: State{Level: 1, Streak: 1}}, h.obs.lastFeedback())
	assert.True(t, h.c.Busy())
	assert.Equal(t, 1, h.wins.wins)

	tasks := h.queue.Drain()
	require.Len(t, tasks, 1)
	assert.Equal(t, 2500*time.Millisecond, tasks[0].Delay)
	h.queue.Fire(tasks[0].ID)

	assert.False(t, h.c.Busy())
	require.Len(t, h.obs.rounds, 2)
	assert.NotSame(t, first, h.c.Round())
	assert.Equal(t, cipher.LevelBeginner, h.c.Round().Level)
}

func TestTwoCorrect_LevelUp(t *testing.T) {
	h := newHarness(t, nil)

	h.answer(t, true)
	h.flush()
	h.answer(t, true)

	assert.Equal(t, State{Level: 2, Streak: 0}, h.c.State())
	assert.Equal(t, OutcomeLevelUp, h.obs.lastFeedback().Outcome)
	assert.Equal(t, 2, h.wins.wins)

	tasks := h.queue.Drain()
	require.Len(t, tasks, 1)
	assert.Equal(t, 1500*time.Millisecond, tasks[0].Delay)

	// The harder round only arrives after the pause.
	assert.Equal(t, cipher.LevelBeginner, h.c.Round().Level)
	h.queue.Fire(tasks[0].ID)

	assert.Equal(t, []cipher.Level{1, 2}, h.obs.levels)
	assert.Equal(t, cipher.LevelNormal, h.c.Round().Level)
	assert.False(t, h.c.Busy())
}

func TestMaxLevel_StreakResetsEveryWin(t *testing.T) {
	h := newHarness(t, nil)
	for range 4 {
		h.answer(t, true)
		h.flush()
	}
	require.Equal(t, State{Level: 3, Streak: 0}, h.c.State())

	h.answer(t, true)
	assert.Equal(t, State{Level: 3, Streak: 0}, h.c.State())
	assert.Equal(t, OutcomeKeepPlaying, h.obs.lastFeedback().Outcome)
	h.flush()
	assert.Equal(t, cipher.LevelHard, h.c.Round().Level)
	assert.Equal(t, []cipher.Level{1, 2, 3}, h.obs.levels)
	assert.Equal(t, 5, h.wins.wins)
}

func TestWrong_ResetsStreakKeepsRound(t *testing.T) {
	h := newHarness(t, nil)
	h.answer(t, true)
	h.flush()
	round := h.c.Round()
	roundsBefore := len(h.obs.rounds)

	h.answer(t, false)
	assert.Equal(t, State{Level: 1, Streak: 0}, h.c.State())
	assert.Equal(t, Feedback{Correct: false, Outcome: OutcomeRetry, State: State{Level: 1, Streak: 0}}, h.obs.lastFeedback())
	assert.True(t, h.c.Busy())
	assert.Equal(t, 1, h.wins.wins)

	h.flush()
	assert.False(t, h.c.Busy())
	assert.Equal(t, 1, h.obs.cleared)
	assert.Same(t, round, h.c.Round())
	assert.Len(t, h.obs.rounds, roundsBefore, "no new round after a miss")
}

func TestWrong_AtHigherLevelKeepsLevel(t *testing.T) {
	h := newHarness(t, nil)
	h.answer(t, true)
	h.flush()
	h.answer(t, true)
	h.flush()
	h.answer(t, true)
	h.flush()
	require.Equal(t, State{Level: 2, Streak: 1}, h.c.State())

	h.answer(t, false)
	assert.Equal(t, State{Level: 2, Streak: 0}, h.c.State())
}

func TestSelect_BusyGuard(t *testing.T) {
	h := newHarness(t, nil)
	h.answer(t, true)

	_, err := h.c.Select(h.c.Round().CorrectIndex)
	assert.ErrorIs(t, err, ErrBusy)
	assert.Equal(t, State{Level: 1, Streak: 1}, h.c.State())
	assert.Equal(t, 1, h.wins.wins)
	assert.Len(t, h.obs.feedback, 1)
}

func TestSelect_OutOfRangeRejected(t *testing.T) {
	h := newHarness(t, nil)
	h.answer(t, true)
	h.flush()

	_, err := h.c.Select(len(h.c.Round().Options))
	assert.ErrorIs(t, err, cipher.ErrSelectionOutOfRange)
	_, err = h.c.Select(-1)
	assert.ErrorIs(t, err, cipher.ErrSelectionOutOfRange)

	assert.Equal(t, State{Level: 1, Streak: 1}, h.c.State())
	assert.False(t, h.c.Busy())
	assert.Len(t, h.obs.feedback, 1)
}

func TestSelect_BeforeStart(t *testing.T) {
	c := New(nil, &recorder{}, nil, NewTaskQueue(), DefaultOptions())
	_, err := c.Select(0)
	assert.ErrorIs(t, err, ErrNoRound)
}

func TestClose_CancelsPendingTransition(t *testing.T) {
	h := newHarness(t, nil)
	h.answer(t, true)
	h.flush()
	h.answer(t, true)
	tasks := h.queue.Drain()
	require.Len(t, tasks, 1)

	h.c.Close()
	assert.Zero(t, h.queue.Pending())
	assert.False(t, h.queue.Fire(tasks[0].ID))

	assert.Equal(t, []cipher.Level{1}, h.obs.levels, "level change must not be announced after close")
	assert.Equal(t, cipher.LevelBeginner, h.c.Round().Level)

	_, err := h.c.Select(0)
	assert.ErrorIs(t, err, ErrClosed)
	assert.ErrorIs(t, h.c.Start(), ErrClosed)
}

func TestClose_CallbackFiredLateIsIgnored(t *testing.T) {
	// A scheduler that ignores cancellation still cannot mutate state.
	obs := &recorder{}
	sched := &leakyScheduler{}
	rng, _, err := cipher.NewRand(5)
	require.NoError(t, err)
	c := New(cipher.New(rng, cipher.DefaultConfig(), nil), obs, nil, sched, DefaultOptions())
	require.NoError(t, c.Start())

	_, err = c.Select(c.Round().CorrectIndex)
	require.NoError(t, err)
	c.Close()

	for _, f := range sched.fns {
		f()
	}
	assert.Len(t, obs.rounds, 1)
	assert.True(t, c.Busy())
}

type leakyScheduler struct{ fns []func() }

func (s *leakyScheduler) AfterFunc(_ time.Duration, f func()) func() {
	s.fns = append(s.fns, f)
	return func() {}
}

func TestDeferredGenerationFailure(t *testing.T) {
	rng, _, err := cipher.NewRand(8)
	require.NoError(t, err)
	gen := &failingGenerator{
		inner: cipher.New(rng, cipher.DefaultConfig(), nil),
		fail:  map[cipher.Level]bool{cipher.LevelNormal: true},
	}
	h := newHarness(t, gen)
	h.answer(t, true)
	h.flush()
	h.answer(t, true)
	h.flush()

	require.Len(t, h.obs.errs, 1)
	assert.True(t, errors.Is(h.obs.errs[0], cipher.ErrInvalidConfig))
	assert.True(t, h.c.Busy(), "stale round must not accept input")
}

func TestStart_InvalidLevelFails(t *testing.T) {
	rng, _, err := cipher.NewRand(8)
	require.NoError(t, err)
	gen := &failingGenerator{
		inner: cipher.New(rng, cipher.DefaultConfig(), nil),
		fail:  map[cipher.Level]bool{cipher.LevelBeginner: true},
	}
	c := New(gen, &recorder{}, nil, NewTaskQueue(), DefaultOptions())
	assert.ErrorIs(t, c.Start(), cipher.ErrInvalidConfig)
}

func TestNew_StartLevelOption(t *testing.T) {
	rng, _, err := cipher.NewRand(8)
	require.NoError(t, err)
	opts := DefaultOptions()
	opts.StartLevel = cipher.LevelNormal
	obs := &recorder{}
	c := New(cipher.New(rng, cipher.DefaultConfig(), nil), obs, nil, NewTaskQueue(), opts)
	require.NoError(t, c.Start())
	assert.Equal(t, cipher.LevelNormal, c.Round().Level)

	opts.StartLevel = 9
	c = New(nil, obs, nil, NewTaskQueue(), opts)
	assert.Equal(t, cipher.LevelBeginner, c.State().Level)
}
