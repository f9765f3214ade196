package cipher

import (
	"errors"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	gamecipher "github.com/abhisek/cipherplay/internal/cipher"
	"github.com/abhisek/cipherplay/internal/progression"
	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screens/summary"
	"github.com/abhisek/cipherplay/internal/session"
)

// brokenGenerator fails every request.
type brokenGenerator struct{}

func (brokenGenerator) GenerateRound(gamecipher.Level) (*gamecipher.Round, error) {
	return nil, errors.New("no pictograms left")
}

func newTestScreen(t *testing.T, gen progression.RoundGenerator) (*CipherScreen, *session.Session) {
	t.Helper()
	if gen == nil {
		rng, _, err := gamecipher.NewRand(11)
		require.NoError(t, err)
		gen = gamecipher.New(rng, gamecipher.DefaultConfig(), zaptest.NewLogger(t))
	}

	opts := progression.DefaultOptions()
	opts.SuccessDelay = 0
	opts.LevelUpDelay = 0
	opts.RetryDelay = 0

	sess := session.New(nil, zaptest.NewLogger(t))
	s := New(Deps{Generator: gen, Session: sess, Options: opts, Logger: zaptest.NewLogger(t)})
	s.Init()
	return s, sess
}

func digit(i int) tea.KeyPressMsg {
	r := rune('1' + i)
	return tea.KeyPressMsg{Code: r, Text: string(r)}
}

// press sends a key and returns the resulting command.
func press(t *testing.T, s *CipherScreen, msg tea.KeyPressMsg) tea.Cmd {
	t.Helper()
	_, cmd := s.Update(msg)
	return cmd
}

// settle runs a tick command and feeds its message back to the screen.
func settle(t *testing.T, s *CipherScreen, cmd tea.Cmd) {
	t.Helper()
	require.NotNil(t, cmd, "expected a scheduled transition")
	msg := cmd()
	due, ok := msg.(taskDueMsg)
	require.True(t, ok, "expected taskDueMsg, got %T", msg)
	s.Update(due)
}

func wrongIndex(r *gamecipher.Round) int {
	for i := range r.Options {
		if i != r.CorrectIndex {
			return i
		}
	}
	return -1
}

func TestInit_ShowsFirstRound(t *testing.T) {
	s, _ := newTestScreen(t, nil)
	require.NotNil(t, s.round)
	assert.Equal(t, gamecipher.LevelBeginner, s.level)

	view := s.View(100, 40)
	assert.Contains(t, view, "Seviye 1")
	assert.Contains(t, view, instruction)
	assert.Contains(t, view, "1)")
}

func TestCorrectAnswer_CreditsAndAdvances(t *testing.T) {
	s, sess := newTestScreen(t, nil)
	first := s.round

	cmd := press(t, s, digit(first.CorrectIndex))
	require.NotNil(t, s.feedback)
	assert.True(t, s.feedback.Correct)
	assert.Equal(t, progression.OutcomeKeepPlaying, s.feedback.Outcome)
	assert.Equal(t, session.StarsPerWin, sess.Stars)
	assert.Equal(t, 1, sess.Rounds)
	assert.Contains(t, s.View(100, 40), msgCorrect)

	settle(t, s, cmd)
	assert.Nil(t, s.feedback)
	assert.NotSame(t, first, s.round)
	assert.Equal(t, 1, s.streak)
}

func TestTwoCorrect_LevelUp(t *testing.T) {
	s, sess := newTestScreen(t, nil)

	settle(t, s, press(t, s, digit(s.round.CorrectIndex)))
	cmd := press(t, s, digit(s.round.CorrectIndex))
	assert.Equal(t, progression.OutcomeLevelUp, s.feedback.Outcome)
	assert.Contains(t, s.View(100, 40), msgLevelUp)
	assert.Equal(t, gamecipher.LevelBeginner, s.level, "badge changes after the pause")

	settle(t, s, cmd)
	assert.Equal(t, gamecipher.LevelNormal, s.level)
	assert.Equal(t, gamecipher.LevelNormal, s.round.Level)
	assert.Equal(t, 2*session.StarsPerWin, sess.Stars)
	assert.Contains(t, s.View(100, 40), "Seviye 2")
}

func TestWrongAnswer_RetrySameRound(t *testing.T) {
	s, sess := newTestScreen(t, nil)
	round := s.round

	cmd := press(t, s, digit(wrongIndex(round)))
	require.NotNil(t, s.feedback)
	assert.False(t, s.feedback.Correct)
	assert.Contains(t, s.View(100, 40), msgTryAgain)
	assert.Zero(t, sess.Stars)

	// Input is ignored while feedback shows.
	assert.Nil(t, press(t, s, digit(round.CorrectIndex)))
	assert.Equal(t, 1, sess.Rounds)

	settle(t, s, cmd)
	assert.Nil(t, s.feedback)
	assert.Same(t, round, s.round)
	assert.Empty(t, s.options.Marks)
}

func TestArrowsAndEnter(t *testing.T) {
	s, sess := newTestScreen(t, nil)
	for range s.round.CorrectIndex {
		press(t, s, tea.KeyPressMsg{Code: tea.KeyDown})
	}
	assert.Equal(t, s.round.CorrectIndex, s.options.Cursor)

	press(t, s, tea.KeyPressMsg{Code: tea.KeyEnter})
	assert.Equal(t, session.StarsPerWin, sess.Stars)
}

func TestOutOfRangeDigitIgnored(t *testing.T) {
	s, sess := newTestScreen(t, nil)
	assert.Nil(t, press(t, s, digit(3)))
	assert.Nil(t, s.feedback)
	assert.Zero(t, sess.Rounds)
}

func TestEsc_ClosesAndShowsSummary(t *testing.T) {
	s, sess := newTestScreen(t, nil)
	pending := press(t, s, digit(s.round.CorrectIndex))

	cmd := press(t, s, tea.KeyPressMsg{Code: tea.KeyEscape})
	require.NotNil(t, cmd)
	msg, ok := cmd().(router.ReplaceScreenMsg)
	require.True(t, ok)
	_, ok = msg.Screen.(*summary.SummaryScreen)
	assert.True(t, ok)

	// The transition scheduled before Esc must not produce a new round.
	round := s.round
	settle(t, s, pending)
	assert.Same(t, round, s.round)
	assert.Equal(t, 1, sess.Rounds)
}

func TestGeneratorFailure(t *testing.T) {
	s, _ := newTestScreen(t, brokenGenerator{})
	assert.NotEmpty(t, s.errMsg)
	assert.True(t, strings.Contains(s.View(80, 24), "Hata"))

	cmd := press(t, s, digit(0))
	require.NotNil(t, cmd)
	_, ok := cmd().(router.ReplaceScreenMsg)
	assert.True(t, ok)
}

func TestKeyHints(t *testing.T) {
	s, _ := newTestScreen(t, nil)
	assert.Len(t, s.KeyHints(), 4)
}
