// Package cipher is the symbol-cipher game screen. It presents rounds from
// the progression controller and turns the controller's deferred tasks into
// Bubble Tea ticks so every transition runs on the update loop.
package cipher

import (
	"context"
	"time"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/catalog"
	gamecipher "github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/progression"
	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screen"
	"github.com/abhisek/cipherplay/internal/screens/summary"
	"github.com/abhisek/cipherplay/internal/session"
	"github.com/abhisek/cipherplay/internal/ui/components"
	"github.com/abhisek/cipherplay/internal/ui/layout"
)

// Deps are the collaborators the game screen needs.
type Deps struct {
	Generator progression.RoundGenerator
	Session   *session.Session
	Options   progression.Options
	Logger    *zap.Logger
}

// CipherScreen implements screen.Screen for the cipher game and acts as the
// controller's presentation observer.
type CipherScreen struct {
	ctrl    *progression.Controller
	queue   *progression.TaskQueue
	session *session.Session
	logger  *zap.Logger
	keys    keyMap

	round     *gamecipher.Round
	options   components.OptionList
	level     gamecipher.Level
	streak    int
	threshold int
	feedback  *progression.Feedback
	selected  int
	errMsg    string
	finished  bool
}

var _ screen.Screen = (*CipherScreen)(nil)
var _ screen.KeyHintProvider = (*CipherScreen)(nil)
var _ progression.Observer = (*CipherScreen)(nil)

// New creates the game screen. The first round is generated in Init.
func New(deps Deps) *CipherScreen {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	opts := deps.Options
	if opts.Logger == nil {
		opts.Logger = logger
	}
	if opts.AdvanceThreshold < 1 {
		opts.AdvanceThreshold = progression.DefaultAdvanceThreshold
	}

	s := &CipherScreen{
		queue:     progression.NewTaskQueue(),
		session:   deps.Session,
		logger:    logger,
		keys:      defaultKeys(),
		threshold: opts.AdvanceThreshold,
		selected:  -1,
	}

	var sink progression.WinSink
	if deps.Session != nil {
		sink = deps.Session
	}
	s.ctrl = progression.New(deps.Generator, s, sink, s.queue, opts)
	return s
}

func (s *CipherScreen) Init() tea.Cmd {
	if err := s.ctrl.Start(); err != nil {
		s.logger.Error("start cipher game", zap.Error(err))
		s.errMsg = err.Error()
	}
	return s.drain()
}

func (s *CipherScreen) Title() string {
	return "Şifre Çöz"
}

func (s *CipherScreen) KeyHints() []layout.KeyHint {
	if s.errMsg != "" {
		return []layout.KeyHint{{Key: "any key", Description: "geri"}}
	}
	hints := []layout.KeyHint{
		{Key: s.keys.Pick.Help().Key, Description: s.keys.Pick.Help().Desc},
		{Key: s.keys.Up.Help().Key, Description: s.keys.Up.Help().Desc},
		{Key: s.keys.Submit.Help().Key, Description: s.keys.Submit.Help().Desc},
		{Key: s.keys.Quit.Help().Key, Description: s.keys.Quit.Help().Desc},
	}
	return hints
}

func (s *CipherScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case taskDueMsg:
		if s.finished {
			return s, nil
		}
		s.queue.Fire(msg.ID)
		return s, s.drain()

	case tea.KeyPressMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *CipherScreen) handleKey(msg tea.KeyPressMsg) (screen.Screen, tea.Cmd) {
	if s.finished {
		return s, nil
	}
	if s.errMsg != "" || key.Matches(msg, s.keys.Quit) {
		return s, s.finish()
	}

	switch {
	case key.Matches(msg, s.keys.Pick):
		return s, s.choose(int(msg.String()[0] - '1'))
	case key.Matches(msg, s.keys.Up):
		s.options.MoveUp()
	case key.Matches(msg, s.keys.Down):
		s.options.MoveDown()
	case key.Matches(msg, s.keys.Submit):
		return s, s.choose(s.options.Cursor)
	}
	return s, nil
}

// choose forwards a selection to the controller. Busy and out-of-range
// selections are ignored.
func (s *CipherScreen) choose(index int) tea.Cmd {
	if s.round == nil || s.ctrl.Busy() || index < 0 || index >= len(s.round.Options) {
		return nil
	}
	s.selected = index
	if _, err := s.ctrl.Select(index); err != nil {
		s.logger.Debug("selection rejected", zap.Int("index", index), zap.Error(err))
		return nil
	}
	return s.drain()
}

// finish tears the game down and shows the summary in place of this screen.
func (s *CipherScreen) finish() tea.Cmd {
	s.finished = true
	s.ctrl.Close()
	s.queue.CancelAll()

	var sum *session.Summary
	if s.session != nil {
		sum = s.session.Summary(context.Background())
	}
	next := summary.New(sum)
	return func() tea.Msg {
		return router.ReplaceScreenMsg{Screen: next}
	}
}

// drain converts newly scheduled controller tasks into tick commands.
func (s *CipherScreen) drain() tea.Cmd {
	tasks := s.queue.Drain()
	if len(tasks) == 0 {
		return nil
	}
	cmds := make([]tea.Cmd, 0, len(tasks))
	for _, t := range tasks {
		id := t.ID
		cmds = append(cmds, tea.Tick(t.Delay, func(time.Time) tea.Msg {
			return taskDueMsg{ID: id}
		}))
	}
	if len(cmds) == 1 {
		return cmds[0]
	}
	return tea.Batch(cmds...)
}

// OnRoundReady shows a fresh round.
func (s *CipherScreen) OnRoundReady(r *gamecipher.Round) {
	s.round = r
	s.feedback = nil
	s.selected = -1

	opts := make([][]catalog.Glyph, len(r.Options))
	for i, o := range r.Options {
		opts[i] = o
	}
	s.options = components.NewOptionList(opts)
}

// OnFeedback marks the chosen option and records the outcome.
func (s *CipherScreen) OnFeedback(f progression.Feedback) {
	s.feedback = &f
	s.streak = f.State.Streak
	s.options.Disabled = true
	if f.Correct {
		s.options.Mark(s.selected, components.MarkCorrect)
	} else {
		s.options.Mark(s.selected, components.MarkWrong)
	}

	if s.session == nil || s.round == nil {
		return
	}
	s.session.Record(context.Background(), session.Outcome{
		Level:        s.round.Level,
		Correct:      f.Correct,
		Selected:     s.selected,
		CorrectIndex: s.round.CorrectIndex,
		Options:      len(s.round.Options),
		Streak:       f.State.Streak,
		Degraded:     s.round.Degraded,
	})
}

// OnFeedbackCleared re-enables input on the same round.
func (s *CipherScreen) OnFeedbackCleared() {
	s.feedback = nil
	s.selected = -1
	s.options.ClearMarks()
	s.options.Disabled = false
}

// OnLevelChanged updates the level badge.
func (s *CipherScreen) OnLevelChanged(level gamecipher.Level) {
	s.level = level
}

// OnError shows a generation failure. Any key leaves the game.
func (s *CipherScreen) OnError(err error) {
	s.errMsg = err.Error()
}
