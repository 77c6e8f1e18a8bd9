// Package help is the "how to play" screen opened from the home menu.
package help

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/router"
	"github.com/abhisek/retomath/internal/screen"
	"github.com/abhisek/retomath/internal/ui/components"
	"github.com/abhisek/retomath/internal/ui/layout"
	"github.com/abhisek/retomath/internal/ui/theme"
)

// HelpScreen lists the four steps of the game. Enter or Esc closes it.
type HelpScreen struct {
	lang locale.Language
}

var _ screen.Screen = (*HelpScreen)(nil)
var _ screen.KeyHintProvider = (*HelpScreen)(nil)

// New creates a HelpScreen in lang.
func New(lang locale.Language) *HelpScreen {
	return &HelpScreen{lang: lang}
}

// Steps returns the numbered instructions in lang.
func Steps(lang locale.Language) []string {
	return []string{
		lang.Pick("Elige tu grado escolar.", "Choose your grade level."),
		lang.Pick("Responde preguntas generadas por IA.", "Answer AI-generated questions."),
		lang.Pick("Gana monedas y mantén tu racha diaria.", "Earn coins and keep your daily streak."),
		lang.Pick("¡Visita la tienda para comprar nuevos personajes!", "Visit the shop to unlock new characters!"),
	}
}

func (h *HelpScreen) Init() tea.Cmd { return nil }

func (h *HelpScreen) Title() string {
	return h.lang.Pick("¿Cómo jugar?", "How to play?")
}

func (h *HelpScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: h.lang.Pick("¡Entendido!", "Got it!")},
		{Key: "Esc", Description: h.lang.Pick("Volver", "Back")},
	}
}

func (h *HelpScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return h, nil
	}
	switch kmsg.String() {
	case "enter", "space", " ", "?", "q":
		return h, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return h, nil
}

func (h *HelpScreen) View(width, height int) string {
	lines := []string{theme.Title.Render(h.Title()), ""}
	for i, step := range Steps(h.lang) {
		num := theme.Coins.Render(fmt.Sprintf(" %d ", i+1))
		lines = append(lines, num+"  "+theme.Body.Render(step))
	}
	lines = append(lines, "", theme.Hint.Render(h.lang.Pick("Pulsa Enter para volver", "Press Enter to go back")))

	block := lipgloss.NewStyle().Align(lipgloss.Left).Render(strings.Join(lines, "\n"))
	return components.CabinetFrame(block, width, height)
}
