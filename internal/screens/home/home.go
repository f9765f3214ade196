package home

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screen"
	"github.com/abhisek/cipherplay/internal/session"
	"github.com/abhisek/cipherplay/internal/ui/components"
	"github.com/abhisek/cipherplay/internal/ui/layout"
	"github.com/abhisek/cipherplay/internal/ui/theme"
)

const (
	labelPlay = "ŞİFRE ÇÖZ"
	labelExit = "ÇIKIŞ"
)

// HomeScreen is the main menu.
type HomeScreen struct {
	menu    components.Menu
	session *session.Session
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates a HomeScreen. newGame builds a fresh game screen each time
// the player starts one.
func New(newGame func() screen.Screen, sess *session.Session) *HomeScreen {
	items := []components.MenuItem{
		{Label: labelPlay, Action: func() tea.Cmd {
			game := newGame()
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: game}
			}
		}},
		{Label: labelExit, Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{
		menu:    components.NewMenu(items),
		session: sess,
	}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	compact := layout.IsCompactWidth(width) || layout.IsCompactHeight(height+6)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Foreground(theme.ArcadeYellow).
		Bold(true).
		Render("Ş İ F R E   Ç Ö Z Ü C Ü"))

	stars := h.stars()
	if !compact {
		variant := MascotIdle
		if stars > 0 {
			variant = MascotCelebrating
		}
		sections = append(sections, lipgloss.NewStyle().
			Width(cw).
			Align(lipgloss.Center).
			Render(RenderMascot(variant)))
	}

	sections = append(sections, renderStatsBar(stars, h.rounds(), cw))
	sections = append(sections, components.ArcadeMenu(h.menu.Labels(), h.menu.Selected, cw, compact))

	return components.CabinetFrame(strings.Join(sections, "\n\n"), width, height)
}

func (h *HomeScreen) Title() string {
	return "Ana Menü"
}

func (h *HomeScreen) stars() int {
	if h.session == nil {
		return 0
	}
	return h.session.Stars
}

func (h *HomeScreen) rounds() int {
	if h.session == nil {
		return 0
	}
	return h.session.Rounds
}

// renderStatsBar renders the star and round counters in a bordered box
// matching content width.
func renderStatsBar(stars, rounds, cw int) string {
	starStyle := lipgloss.NewStyle().Foreground(theme.ArcadeYellow).Bold(true)
	roundStyle := lipgloss.NewStyle().Foreground(theme.ArcadeCyan).Bold(true)

	stats := fmt.Sprintf("%s   %s",
		starStyle.Render(fmt.Sprintf("★ %d YILDIZ", stars)),
		roundStyle.Render(fmt.Sprintf("◆ %d TUR", rounds)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}
