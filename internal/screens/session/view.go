package session

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/retomath/internal/locale"
	sess "github.com/abhisek/retomath/internal/session"
	"github.com/abhisek/retomath/internal/ui/components"
	"github.com/abhisek/retomath/internal/ui/theme"
)

func (s *SessionScreen) View(width, height int) string {
	lang := s.ctrl.Language()
	if s.errMsg != "" {
		return renderError(width, s.errMsg, lang)
	}
	switch s.ctrl.Phase() {
	case sess.PhaseNew, sess.PhaseLoading:
		return s.renderLoading(width, lang)
	case sess.PhaseEmpty:
		return renderEmpty(width, lang)
	case sess.PhasePresenting, sess.PhaseChecking:
		return s.renderQuestionView(width, lang)
	}
	return ""
}

func centered(width int, style lipgloss.Style, text string) string {
	return style.Width(width).Align(lipgloss.Center).Render(text)
}

// renderQuestionView renders the info line, the question, its options
// and, once answered, the feedback block.
func (s *SessionScreen) renderQuestionView(width int, lang locale.Language) string {
	v, ok := s.ctrl.Current()
	if !ok {
		return ""
	}

	var b strings.Builder

	infoLeft := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Render(fmt.Sprintf("  %s %d", lang.Pick("Pregunta", "Question"), v.Number))

	infoRight := theme.Coins.Render(fmt.Sprintf("⭐ %d", s.ctrl.Score()))
	if v.Difficulty != "" {
		infoRight = theme.Muted.Render(difficultyLabel(string(v.Difficulty), lang)+"  ") + infoRight
	}

	infoLine := infoLeft
	if pad := width - lipgloss.Width(infoLeft) - lipgloss.Width(infoRight) - 4; pad > 0 {
		infoLine += strings.Repeat(" ", pad) + infoRight
	}
	b.WriteString(infoLine)
	b.WriteString("\n")
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Border).Render(strings.Repeat("─", max(width-4, 0))))
	b.WriteString("\n\n")

	cw := components.ContentWidth(width)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center,
		components.ArcadeCard(theme.Body.Bold(true).Render(v.Text), cw)))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, s.choice.View()))
	b.WriteString("\n")

	if s.feedback != nil {
		b.WriteString(s.renderFeedback(width, lang))
	}
	return b.String()
}

// renderFeedback renders the verdict, reward and explanation.
func (s *SessionScreen) renderFeedback(width int, lang locale.Language) string {
	fb := s.feedback
	var b strings.Builder

	if fb.Correct {
		verdict := lang.Pick("¡Correcto!", "Correct!")
		if s.celebrating {
			verdict = "🎉 " + verdict + " 🎉"
		}
		b.WriteString(centered(width, theme.Correct, verdict))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Coins,
			fmt.Sprintf(lang.Pick("+%d monedas", "+%d coins"), fb.Reward)))
		if fb.Streak.Credited {
			b.WriteString("\n")
			b.WriteString(centered(width, theme.Streak,
				fmt.Sprintf(lang.Pick("🔥 Racha: %d", "🔥 Streak: %d"), fb.Streak.Streak)))
		}
	} else {
		b.WriteString(centered(width, theme.Incorrect, lang.Pick("Casi...", "Not quite")))
		b.WriteString("\n")
		b.WriteString(centered(width, theme.Muted,
			fmt.Sprintf(lang.Pick("La respuesta correcta era %s", "The correct answer was %s"),
				components.OptionLabels[fb.CorrectIndex])))
	}
	b.WriteString("\n\n")

	if fb.Explanation != "" {
		exp := lipgloss.NewStyle().
			Width(min(width-8, 70)).
			Foreground(theme.Text).
			Render("💡 " + fb.Explanation)
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, exp))
		b.WriteString("\n\n")
	}

	b.WriteString(centered(width, theme.Hint, lang.Pick("Enter para continuar", "Press Enter to continue")))
	return b.String()
}

func difficultyLabel(d string, lang locale.Language) string {
	switch d {
	case "easy":
		return lang.Pick("fácil", "easy")
	case "medium":
		return lang.Pick("media", "medium")
	case "hard":
		return lang.Pick("difícil", "hard")
	}
	return d
}

func (s *SessionScreen) renderLoading(width int, lang locale.Language) string {
	return centered(width, theme.Muted,
		"\n\n\n"+s.spinner.View()+" "+lang.Pick("Preparando preguntas...", "Preparing questions..."))
}

func renderEmpty(width int, lang locale.Language) string {
	return centered(width, theme.Muted, "\n\n\n"+lang.Pick(
		"No hay preguntas disponibles ahora.\n\nPulsa Enter para volver.",
		"No questions available right now.\n\nPress Enter to go back."))
}

func renderError(width int, errMsg string, lang locale.Language) string {
	return centered(width, lipgloss.NewStyle().Foreground(theme.Error),
		fmt.Sprintf("\n\n\n  Error: %s\n\n  %s", errMsg,
			lang.Pick("Pulsa Enter para volver.", "Press Enter to go back.")))
}
