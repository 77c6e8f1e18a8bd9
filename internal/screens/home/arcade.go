package home

import (
	"fmt"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/ui/theme"
)

const titleFull = `╦═╗╔═╗╔╦╗╔═╗  ╔╦╗╔═╗╔╦╗╦ ╦
╠╦╝║╣  ║ ║ ║  ║║║╠═╣ ║ ╠═╣
╩╚═╚═╝ ╩ ╚═╝  ╩ ╩╩ ╩ ╩ ╩ ╩`

const titleCompact = "R · E · T · O   M · A · T · H"

// buttonWidth is the fixed width for menu buttons.
const buttonWidth = 24

// renderTitle returns the styled title block or compact fallback.
func renderTitle(cw int, compact bool) string {
	style := lipgloss.NewStyle().
		Foreground(theme.ArcadeYellow).
		Bold(true)

	art := titleFull
	if compact {
		art = titleCompact
	}
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(style.Render(art))
}

// renderStatsBar renders name, avatar, coins and streak in a double
// border box.
func renderStatsBar(p profile.Profile, cat *catalog.Catalog, cw int) string {
	glyph := "?"
	if it, ok := cat.Lookup(p.SelectedAvatar); ok {
		glyph = it.Glyph()
	}
	days := p.Language.Pick("días", "days")
	if p.Streak == 1 {
		days = p.Language.Pick("día", "day")
	}

	stats := fmt.Sprintf("%s  %s  %s",
		lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(glyph+" "+p.Name),
		theme.Coins.Render(fmt.Sprintf("🪙 %d", p.Coins)),
		theme.Streak.Render(fmt.Sprintf("🔥 %d %s", p.Streak, days)),
	)

	return lipgloss.NewStyle().
		Border(lipgloss.DoubleBorder()).
		BorderForeground(theme.ArcadeCyan).
		Width(cw - 2).
		Align(lipgloss.Center).
		Padding(0, 1).
		Render(stats)
}

func renderPrompt(lang locale.Language, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.TextDim).
		Width(cw).
		Align(lipgloss.Center).
		Render(lang.Pick("¿Qué reto quieres hoy?", "Which challenge today?"))
}

// renderOfflineNote warns that questions come from the offline bank.
func renderOfflineNote(lang locale.Language, cw int) string {
	return lipgloss.NewStyle().
		Foreground(theme.Accent).
		Width(cw).
		Align(lipgloss.Center).
		Render(lang.Pick(
			"⚠ Sin clave de IA: se usarán preguntas sin conexión",
			"⚠ No AI key set: offline questions will be used"))
}

// renderMascotBox renders the mascot centered at content width.
func renderMascotBox(variant MascotVariant, cw int) string {
	return lipgloss.NewStyle().
		Width(cw).
		Align(lipgloss.Center).
		Render(RenderMascot(variant))
}
