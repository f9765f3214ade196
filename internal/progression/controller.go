// Package progression drives level and streak changes for the cipher game.
//
// The Controller consumes selection events, decides when to advance the
// level, and asks the round generator for new rounds. Timed pauses between
// feedback and the next round run through a Scheduler so they can be
// cancelled when the game is torn down.
package progression

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/cipher"
)

var (
	// ErrBusy is returned for selections made while feedback is showing.
	ErrBusy = errors.New("feedback in progress")

	// ErrClosed is returned for events delivered after Close.
	ErrClosed = errors.New("controller closed")

	// ErrNoRound is returned for selections made before Start.
	ErrNoRound = errors.New("no active round")
)

// DefaultAdvanceThreshold is the number of consecutive correct answers that
// moves the player up a level.
const DefaultAdvanceThreshold = 2

// RoundGenerator produces rounds for a level.
type RoundGenerator interface {
	GenerateRound(level cipher.Level) (*cipher.Round, error)
}

// WinSink is credited once per correct resolution. The reward amount is the
// sink's business.
type WinSink interface {
	AddWin()
}

// Observer receives progression events. Calls happen on the goroutine that
// delivers events to the Controller.
type Observer interface {
	// OnRoundReady is called when a new round is ready for input.
	OnRoundReady(r *cipher.Round)

	// OnFeedback is called right after a selection is resolved.
	OnFeedback(f Feedback)

	// OnFeedbackCleared is called when retry feedback ends and the same
	// round accepts input again.
	OnFeedbackCleared()

	// OnLevelChanged is called when play moves to a new level, including
	// the initial level on Start.
	OnLevelChanged(level cipher.Level)

	// OnError is called when a deferred round request fails.
	OnError(err error)
}

// Outcome tells the presentation layer what a resolution means.
type Outcome int

const (
	OutcomeKeepPlaying Outcome = iota // correct, next round at the same level
	OutcomeLevelUp                    // correct, next round one level higher
	OutcomeRetry                      // wrong, same round after feedback
)

func (o Outcome) String() string {
	switch o {
	case OutcomeKeepPlaying:
		return "keep-playing"
	case OutcomeLevelUp:
		return "level-up"
	case OutcomeRetry:
		return "retry"
	default:
		return fmt.Sprintf("outcome(%d)", int(o))
	}
}

// Feedback describes a resolved selection.
type Feedback struct {
	Correct bool
	Outcome Outcome

	// State after the transition.
	State State
}

// State is the progression state.
type State struct {
	Level  cipher.Level
	Streak int
}

// Options configures a Controller.
type Options struct {
	StartLevel       cipher.Level
	AdvanceThreshold int

	// SuccessDelay is the pause after a correct answer before the next round.
	SuccessDelay time.Duration

	// LevelUpDelay is the pause after a level-up before the harder round.
	LevelUpDelay time.Duration

	// RetryDelay is how long wrong-answer feedback stays up.
	RetryDelay time.Duration

	Logger *zap.Logger
}

// DefaultOptions returns the game's pacing.
func DefaultOptions() Options {
	return Options{
		StartLevel:       cipher.MinLevel,
		AdvanceThreshold: DefaultAdvanceThreshold,
		SuccessDelay:     2500 * time.Millisecond,
		LevelUpDelay:     1500 * time.Millisecond,
		RetryDelay:       1500 * time.Millisecond,
	}
}

// Controller is the level/streak state machine. It is not safe for
// concurrent use.
type Controller struct {
	gen    RoundGenerator
	obs    Observer
	sink   WinSink
	sched  Scheduler
	opts   Options
	logger *zap.Logger

	state  State
	round  *cipher.Round
	busy   bool
	closed bool
	cancel func()
}

// New creates a Controller. sink may be nil.
func New(gen RoundGenerator, obs Observer, sink WinSink, sched Scheduler, opts Options) *Controller {
	if opts.AdvanceThreshold < 1 {
		opts.AdvanceThreshold = DefaultAdvanceThreshold
	}
	if opts.StartLevel < cipher.MinLevel || opts.StartLevel > cipher.MaxLevel {
		opts.StartLevel = cipher.MinLevel
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		gen:    gen,
		obs:    obs,
		sink:   sink,
		sched:  sched,
		opts:   opts,
		logger: logger,
		state:  State{Level: opts.StartLevel},
	}
}

// State returns the current level and streak.
func (c *Controller) State() State { return c.state }

// Round returns the round on display, or nil before Start.
func (c *Controller) Round() *cipher.Round { return c.round }

// Busy reports whether selections are currently ignored.
func (c *Controller) Busy() bool { return c.busy }

// Start generates the first round.
func (c *Controller) Start() error {
	if c.closed {
		return ErrClosed
	}
	r, err := c.gen.GenerateRound(c.state.Level)
	if err != nil {
		return fmt.Errorf("start: %w", err)
	}
	c.round = r
	c.busy = false
	c.obs.OnLevelChanged(c.state.Level)
	c.obs.OnRoundReady(r)
	return nil
}

// Select resolves the player's choice on the current round and applies the
// resulting transition.
func (c *Controller) Select(index int) (cipher.Resolution, error) {
	switch {
	case c.closed:
		return cipher.Resolution{}, ErrClosed
	case c.round == nil:
		return cipher.Resolution{}, ErrNoRound
	case c.busy:
		return cipher.Resolution{}, ErrBusy
	}

	res, err := cipher.ResolveSelection(c.round, index)
	if err != nil {
		return res, err
	}

	c.busy = true
	if res.Correct {
		c.handleCorrect()
	} else {
		c.handleWrong()
	}
	return res, nil
}

// Close cancels any pending transition. Later events are rejected.
func (c *Controller) Close() {
	if c.closed {
		return
	}
	c.closed = true
	if c.cancel != nil {
		c.cancel()
		c.cancel = nil
	}
	c.logger.Debug("progression closed",
		zap.Int("level", int(c.state.Level)),
		zap.Int("streak", c.state.Streak),
	)
}

func (c *Controller) handleCorrect() {
	if c.sink != nil {
		c.sink.AddWin()
	}

	streak := c.state.Streak + 1
	switch {
	case c.state.Level >= cipher.MaxLevel:
		// Nothing left to unlock; every win starts a fresh streak.
		c.state.Streak = 0
		c.feedback(true, OutcomeKeepPlaying)
		c.schedule(c.opts.SuccessDelay, c.nextRound)

	case streak >= c.opts.AdvanceThreshold:
		c.state = State{Level: c.state.Level + 1, Streak: 0}
		c.feedback(true, OutcomeLevelUp)
		c.schedule(c.opts.LevelUpDelay, func() {
			c.obs.OnLevelChanged(c.state.Level)
			c.nextRound()
		})

	default:
		c.state.Streak = streak
		c.feedback(true, OutcomeKeepPlaying)
		c.schedule(c.opts.SuccessDelay, c.nextRound)
	}
}

func (c *Controller) handleWrong() {
	c.state.Streak = 0
	c.feedback(false, OutcomeRetry)
	c.schedule(c.opts.RetryDelay, func() {
		c.busy = false
		c.obs.OnFeedbackCleared()
	})
}

func (c *Controller) feedback(correct bool, outcome Outcome) {
	c.logger.Debug("selection resolved",
		zap.Bool("correct", correct),
		zap.Stringer("outcome", outcome),
		zap.Int("level", int(c.state.Level)),
		zap.Int("streak", c.state.Streak),
	)
	c.obs.OnFeedback(Feedback{Correct: correct, Outcome: outcome, State: c.state})
}

// nextRound replaces the displayed round. On failure the controller stays
// busy so the broken round cannot be resolved again.
func (c *Controller) nextRound() {
	r, err := c.gen.GenerateRound(c.state.Level)
	if err != nil {
		c.logger.Error("round generation failed", zap.Error(err), zap.Int("level", int(c.state.Level)))
		c.obs.OnError(err)
		return
	}
	c.round = r
	c.busy = false
	c.obs.OnRoundReady(r)
}

func (c *Controller) schedule(d time.Duration, f func()) {
	if c.cancel != nil {
		c.cancel()
	}
	c.cancel = c.sched.AfterFunc(d, func() {
		if c.closed {
			return
		}
		c.cancel = nil
		f()
	})
}
