package home

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screen"
	"github.com/abhisek/cipherplay/internal/session"
)

type stubScreen struct{}

func (s *stubScreen) Init() tea.Cmd                          { return nil }
func (s *stubScreen) Update(tea.Msg) (screen.Screen, tea.Cmd) { return s, nil }
func (s *stubScreen) View(int, int) string                   { return "game" }
func (s *stubScreen) Title() string                          { return "Game" }

func TestHome_StartPushesGame(t *testing.T) {
	built := 0
	h := New(func() screen.Screen { built++; return &stubScreen{} }, nil)

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected command on Enter")
	}
	if _, ok := cmd().(router.PushScreenMsg); !ok {
		t.Error("expected PushScreenMsg")
	}
	if built != 1 {
		t.Errorf("game factory called %d times, want 1", built)
	}
}

func TestHome_ExitQuits(t *testing.T) {
	h := New(func() screen.Screen { return &stubScreen{} }, nil)
	h.Update(tea.KeyPressMsg{Code: tea.KeyDown})

	_, cmd := h.Update(tea.KeyPressMsg{Code: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected QuitMsg")
	}
}

func TestHome_ViewShowsStars(t *testing.T) {
	sess := session.New(nil, nil)
	sess.AddWin()
	h := New(func() screen.Screen { return &stubScreen{} }, sess)

	view := h.View(100, 34)
	for _, want := range []string{"★ 2 YILDIZ", labelPlay, labelExit} {
		if !strings.Contains(view, want) {
			t.Errorf("home view missing %q", want)
		}
	}
}
