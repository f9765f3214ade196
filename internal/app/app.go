package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/cipherplay/internal/progression"
	"github.com/abhisek/cipherplay/internal/router"
	"github.com/abhisek/cipherplay/internal/screen"
	cipherscreen "github.com/abhisek/cipherplay/internal/screens/cipher"
	"github.com/abhisek/cipherplay/internal/screens/home"
	"github.com/abhisek/cipherplay/internal/screens/welcome"
	"github.com/abhisek/cipherplay/internal/session"
	"github.com/abhisek/cipherplay/internal/ui/layout"
)

// Options holds the dependencies the screens need.
type Options struct {
	Generator   progression.RoundGenerator
	Session     *session.Session
	Progression progression.Options
	Logger      *zap.Logger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	session *session.Session
	width   int
	height  int
}

// newAppModel creates a new AppModel starting on the welcome screen.
func newAppModel(opts Options) AppModel {
	newGame := func() screen.Screen {
		return cipherscreen.New(cipherscreen.Deps{
			Generator: opts.Generator,
			Session:   opts.Session,
			Options:   opts.Progression,
			Logger:    opts.Logger,
		})
	}
	homeFactory := func() screen.Screen {
		return home.New(newGame, opts.Session)
	}
	return AppModel{
		router:  router.New(welcome.New(homeFactory)),
		session: opts.Session,
	}
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render composes header, active screen and footer for the current size.
func (m AppModel) render() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	active := m.router.Active()
	title := ""
	if active != nil {
		title = active.Title()
	}

	stars := 0
	if m.session != nil {
		stars = m.session.Stars
	}
	header := layout.RenderHeader(title, stars, m.width)

	footerHints := []layout.KeyHint{
		{Key: "↑↓", Description: "Gezin"},
		{Key: "Enter", Description: "Seç"},
		{Key: "Ctrl+C", Description: "Çık"},
	}
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(newAppModel(opts))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
