// Package shop is the cosmetic shop screen: avatars and stickers bought
// with coins, and equipping of owned avatars.
package shop

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/screen"
	"github.com/abhisek/retomath/internal/ui/layout"
	"github.com/abhisek/retomath/internal/ui/theme"
)

// ShopScreen lists the catalog grouped by kind. Enter buys an item, or
// equips it when it is an owned avatar.
type ShopScreen struct {
	prof *profile.Store
	log  *zap.SugaredLogger

	items  []catalog.Item
	cursor int

	status   string
	statusOK bool
}

var _ screen.Screen = (*ShopScreen)(nil)
var _ screen.KeyHintProvider = (*ShopScreen)(nil)

// New creates a ShopScreen over the profile's catalog.
func New(prof *profile.Store, log *zap.SugaredLogger) *ShopScreen {
	cat := prof.Catalog()
	items := append(cat.ByKind(catalog.KindAvatar), cat.ByKind(catalog.KindSticker)...)
	return &ShopScreen{
		prof:  prof,
		log:   logging.OrNop(log),
		items: items,
	}
}

func (s *ShopScreen) Init() tea.Cmd { return nil }

func (s *ShopScreen) Title() string {
	return s.prof.Snapshot().Language.Pick("Tienda", "Shop")
}

func (s *ShopScreen) KeyHints() []layout.KeyHint {
	lang := s.prof.Snapshot().Language
	return []layout.KeyHint{
		{Key: "↑↓", Description: lang.Pick("Mover", "Navigate")},
		{Key: "Enter", Description: lang.Pick("Comprar / Equipar", "Buy / Equip")},
		{Key: "Esc", Description: lang.Pick("Volver", "Back")},
	}
}

func (s *ShopScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok || len(s.items) == 0 {
		return s, nil
	}
	switch kmsg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.items)-1 {
			s.cursor++
		}
	case "enter", "space", " ":
		s.act(s.items[s.cursor])
	}
	return s, nil
}

// act buys the item, or equips it when it is an owned avatar.
func (s *ShopScreen) act(item catalog.Item) {
	ctx := context.Background()
	p := s.prof.Snapshot()
	lang := p.Language

	if p.Owns(item.ID) {
		switch {
		case item.Kind != catalog.KindAvatar:
			s.setStatus(false, lang.Pick("Ya tienes este sticker", "You already have this sticker"))
		case p.SelectedAvatar == item.ID:
			s.setStatus(false, lang.Pick("Ya llevas este avatar", "You are already wearing this avatar"))
		default:
			err := s.prof.Equip(ctx, item.ID)
			s.report(err, lang.Pick("¡Avatar equipado! ", "Avatar equipped! ")+item.Glyph())
		}
		return
	}

	_, err := s.prof.Purchase(ctx, item.ID)
	switch {
	case errors.Is(err, profile.ErrInsufficientFunds):
		s.setStatus(false, fmt.Sprintf(lang.Pick("Te faltan %d monedas", "You need %d more coins"), item.Price-p.Coins))
		return
	case errors.Is(err, profile.ErrAlreadyOwned), errors.Is(err, profile.ErrUnknownItem):
		s.setStatus(false, err.Error())
		return
	}
	msg := fmt.Sprintf(lang.Pick("¡Compraste %s %s!", "You bought %s %s!"), item.Glyph(), item.Name)
	if item.Kind == catalog.KindAvatar {
		msg += lang.Pick(" Pulsa Enter para equiparlo.", " Press Enter to equip it.")
	}
	s.report(err, msg)
}

// report shows ok unless err is a rejection. Save failures keep the
// in-memory change, so they are logged and still shown as success.
func (s *ShopScreen) report(err error, ok string) {
	switch {
	case errors.Is(err, profile.ErrNotOwned), errors.Is(err, profile.ErrNotAvatar), errors.Is(err, profile.ErrUnknownItem):
		s.setStatus(false, err.Error())
		return
	case err != nil:
		s.log.Errorw("Shop change not saved", "error", err)
	}
	s.setStatus(true, ok)
}

func (s *ShopScreen) setStatus(ok bool, msg string) {
	s.status = msg
	s.statusOK = ok
}

func (s *ShopScreen) View(width, height int) string {
	p := s.prof.Snapshot()
	lang := p.Language

	lines, cursorLine := s.renderLines(p, lang)
	lines = window(lines, cursorLine, max(height-6, 5))

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(lang.Pick("🛒 Tienda", "🛒 Shop")))
	b.WriteString("\n")
	b.WriteString(theme.Subtitle.Width(width).Render(
		theme.Coins.Render(fmt.Sprintf(lang.Pick("Tienes 🪙 %d", "You have 🪙 %d"), p.Coins))))
	b.WriteString("\n\n")
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, strings.Join(lines, "\n")))
	b.WriteString("\n\n")
	if s.status != "" {
		style := theme.Incorrect
		if s.statusOK {
			style = theme.Correct
		}
		b.WriteString(style.Width(width).Align(lipgloss.Center).Render(s.status))
	}
	return b.String()
}

// renderLines returns one line per item plus section headings, and the
// index of the cursor's line.
func (s *ShopScreen) renderLines(p profile.Profile, lang locale.Language) ([]string, int) {
	var lines []string
	cursorLine := 0
	var kind catalog.Kind
	for i, it := range s.items {
		if it.Kind != kind {
			kind = it.Kind
			if len(lines) > 0 {
				lines = append(lines, "")
			}
			lines = append(lines, theme.Hint.Render(sectionTitle(kind, lang)))
		}

		prefix := "  "
		nameStyle := theme.Unselected
		if i == s.cursor {
			prefix = "▸ "
			nameStyle = theme.Selected
			cursorLine = len(lines)
		}
		name := fmt.Sprintf("%-16s", it.Name)
		lines = append(lines, prefix+it.Glyph()+"  "+nameStyle.Render(name)+"  "+badge(it, p, lang))
	}
	return lines, cursorLine
}

func sectionTitle(k catalog.Kind, lang locale.Language) string {
	if k == catalog.KindAvatar {
		return lang.Pick("── Avatares ──", "── Avatars ──")
	}
	return "── Stickers ──"
}

func badge(it catalog.Item, p profile.Profile, lang locale.Language) string {
	switch {
	case p.SelectedAvatar == it.ID:
		return theme.Equipped.Render(lang.Pick("✓ Equipado", "✓ Equipped"))
	case p.Owns(it.ID):
		return theme.Owned.Render(lang.Pick("Tuyo", "Owned"))
	case p.Coins < it.Price:
		return theme.Muted.Render(fmt.Sprintf("🪙 %d", it.Price))
	}
	return theme.Price.Render(fmt.Sprintf("🪙 %d", it.Price))
}

// window returns at most n lines around line c.
func window(lines []string, c, n int) []string {
	if len(lines) <= n {
		return lines
	}
	start := c - n/2
	if start < 0 {
		start = 0
	}
	if start+n > len(lines) {
		start = len(lines) - n
	}
	return lines[start : start+n]
}
