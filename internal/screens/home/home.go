package home

import (
	"context"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/router"
	"github.com/abhisek/retomath/internal/screen"
	"github.com/abhisek/retomath/internal/screens/help"
	sessionscreen "github.com/abhisek/retomath/internal/screens/session"
	"github.com/abhisek/retomath/internal/screens/shop"
	"github.com/abhisek/retomath/internal/session"
	"github.com/abhisek/retomath/internal/ui/components"
	"github.com/abhisek/retomath/internal/ui/layout"
)

// Deps are the collaborators the home screen hands to the screens it opens.
type Deps struct {
	Profile *profile.Store
	Source  problemgen.Source
	Log     *zap.SugaredLogger

	// Offline is true when no generator is configured.
	Offline bool

	// Now defaults to time.Now.
	Now func() time.Time
}

// HomeScreen is the main menu: one entry per grade, then Shop,
// Language and Exit.
type HomeScreen struct {
	deps Deps
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)
var _ screen.KeyHintProvider = (*HomeScreen)(nil)

// New creates a new HomeScreen.
func New(deps Deps) *HomeScreen {
	deps.Log = logging.OrNop(deps.Log)
	if deps.Now == nil {
		deps.Now = time.Now
	}
	h := &HomeScreen{deps: deps}

	var items []components.MenuItem
	for _, g := range problemgen.Grades() {
		items = append(items, components.MenuItem{Action: func() tea.Cmd { return h.startSession(g) }})
	}
	items = append(items,
		components.MenuItem{Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: shop.New(deps.Profile, deps.Log)}
			}
		}},
		components.MenuItem{Action: h.toggleLanguage},
		components.MenuItem{Action: func() tea.Cmd { return tea.Quit }},
	)
	h.menu = components.NewMenu(items).Relabel(menuLabels(h.lang()))
	return h
}

func (h *HomeScreen) lang() locale.Language {
	return h.deps.Profile.Snapshot().Language
}

// menuLabels returns the localized labels in menu order.
func menuLabels(lang locale.Language) []string {
	labels := make([]string, 0, len(problemgen.Grades())+3)
	for _, g := range problemgen.Grades() {
		labels = append(labels, g.Label())
	}
	return append(labels,
		lang.Pick("🛒 Tienda", "🛒 Shop"),
		lang.Pick("🌐 Idioma: Español", "🌐 Language: English"),
		lang.Pick("Salir", "Exit"),
	)
}

func (h *HomeScreen) startSession(g problemgen.Grade) tea.Cmd {
	ctrl, err := session.New(h.deps.Source, h.deps.Profile, g, h.lang(),
		session.WithLogger(h.deps.Log))
	if err != nil {
		h.deps.Log.Errorw("Failed to create session", "grade", g.Label(), "error", err)
		return nil
	}
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: sessionscreen.New(ctrl)}
	}
}

func (h *HomeScreen) toggleLanguage() tea.Cmd {
	if _, err := h.deps.Profile.ToggleLanguage(context.Background()); err != nil {
		h.deps.Log.Errorw("Failed to save language", "error", err)
	}
	return nil
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && k.String() == "?" {
		lang := h.lang()
		return h, func() tea.Msg { return router.PushScreenMsg{Screen: help.New(lang)} }
	}

	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	h.menu = h.menu.Relabel(menuLabels(h.lang()))
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	p := h.deps.Profile.Snapshot()
	// height excludes header and footer; add them back
	compact := layout.IsCompactHeight(height + layout.HeaderHeight + layout.FooterHeight)
	cw := components.ContentWidth(width)

	var sections []string
	sections = append(sections, renderTitle(cw, compact))
	if !compact {
		sections = append(sections, renderMascotBox(mascotFor(p, h.deps.Now()), cw))
	}
	sections = append(sections, renderStatsBar(p, h.deps.Profile.Catalog(), cw))
	if h.deps.Offline {
		sections = append(sections, renderOfflineNote(p.Language, cw))
	}
	sections = append(sections, renderPrompt(p.Language, cw))

	sections = append(sections, components.ArcadeMenu(h.menu, cw, buttonWidth, height < 48))

	sep := "\n\n"
	if compact {
		sep = "\n"
	}
	return components.CabinetFrame(strings.Join(sections, sep), width, height)
}

func (h *HomeScreen) Title() string {
	return h.lang().Pick("Inicio", "Home")
}

func (h *HomeScreen) KeyHints() []layout.KeyHint {
	lang := h.lang()
	return []layout.KeyHint{
		{Key: "↑↓", Description: lang.Pick("Mover", "Navigate")},
		{Key: "Enter", Description: lang.Pick("Elegir", "Select")},
		{Key: "?", Description: lang.Pick("Cómo jugar", "How to play")},
		{Key: "Ctrl+C", Description: lang.Pick("Salir", "Quit")},
	}
}
