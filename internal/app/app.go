package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/router"
	"github.com/abhisek/retomath/internal/screen"
	"github.com/abhisek/retomath/internal/screens/home"
	"github.com/abhisek/retomath/internal/ui/layout"
)

// Options holds the dependencies the TUI is built from.
type Options struct {
	Profile *profile.Store
	Source  problemgen.Source
	Offline bool
	Log     *zap.SugaredLogger
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	router  *router.Router
	profile *profile.Store
	width   int
	height  int
}

// newAppModel creates a new AppModel with the home screen.
func newAppModel(opts Options) AppModel {
	homeScreen := home.New(home.Deps{
		Profile: opts.Profile,
		Source:  opts.Source,
		Log:     logging.OrNop(opts.Log),
		Offline: opts.Offline,
	})
	return AppModel{
		router:  router.New(homeScreen),
		profile: opts.Profile,
	}
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.router.CloseAll()
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, nil
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) headerInfo() layout.HeaderInfo {
	p := m.profile.Snapshot()
	glyph := "?"
	if it, ok := m.profile.Catalog().Lookup(p.SelectedAvatar); ok {
		glyph = it.Glyph()
	}
	return layout.HeaderInfo{
		Name:   p.Name,
		Avatar: glyph,
		Coins:  p.Coins,
		Streak: p.Streak,
	}
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.render())
	v.AltScreen = true
	return v
}

// render draws the full frame as a string.
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

	header := layout.RenderHeader(title, m.headerInfo(), m.width)

	var footerHints []layout.KeyHint
	if hp, ok := active.(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	} else {
		footerHints = []layout.KeyHint{
			{Key: "Esc", Description: "Back"},
			{Key: "Ctrl+C", Description: "Quit"},
		}
	}

	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(opts Options) error {
	if opts.Profile == nil || opts.Source == nil {
		return fmt.Errorf("app: profile and source are required")
	}
	p := tea.NewProgram(newAppModel(opts))
	_, err := p.Run()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
