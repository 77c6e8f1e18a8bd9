package shop

import (
	"context"
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/store"
)

func specialKey(code rune) tea.KeyPressMsg {
	return tea.KeyPressMsg{Code: code}
}

func testShop(t *testing.T, coins int) (*ShopScreen, *profile.Store) {
	t.Helper()
	ctx := context.Background()
	prof, err := profile.Open(ctx, store.NewMemoryKV(), catalog.Default())
	if err != nil {
		t.Fatalf("open profile: %v", err)
	}
	if coins > 0 {
		if err := prof.AwardCoins(ctx, coins); err != nil {
			t.Fatalf("award: %v", err)
		}
	}
	return New(prof, nil), prof
}

// moveTo puts the cursor on id.
func moveTo(t *testing.T, s *ShopScreen, id string) {
	t.Helper()
	for i, it := range s.items {
		if it.ID == id {
			s.cursor = i
			return
		}
	}
	t.Fatalf("item %s not listed", id)
}

func TestShopListsAvatarsFirst(t *testing.T) {
	s, _ := testShop(t, 0)
	if len(s.items) != catalog.Default().Len() {
		t.Fatalf("items = %d, want %d", len(s.items), catalog.Default().Len())
	}
	seenSticker := false
	for _, it := range s.items {
		if it.Kind == catalog.KindSticker {
			seenSticker = true
		} else if seenSticker {
			t.Fatalf("avatar %s listed after stickers", it.ID)
		}
	}
}

func TestShopBuyThenEquip(t *testing.T) {
	s, prof := testShop(t, 200)
	moveTo(t, s, "av_wolf")

	s.Update(specialKey(tea.KeyEnter))
	p := prof.Snapshot()
	if !p.Owns("av_wolf") || p.Coins != 60 {
		t.Fatalf("after buy: owns=%v coins=%d", p.Owns("av_wolf"), p.Coins)
	}
	if !s.statusOK {
		t.Errorf("status = %q, want success", s.status)
	}

	s.Update(specialKey(tea.KeyEnter))
	if got := prof.Snapshot().SelectedAvatar; got != "av_wolf" {
		t.Errorf("selected = %s, want av_wolf", got)
	}
	if !strings.Contains(s.View(100, 40), "Equipado") {
		t.Error("expected equipped badge in view")
	}
}

func TestShopInsufficientFunds(t *testing.T) {
	s, prof := testShop(t, 30)
	moveTo(t, s, "st_dragon")

	s.Update(specialKey(tea.KeyEnter))
	if s.statusOK {
		t.Error("expected rejection")
	}
	if !strings.Contains(s.status, "70") {
		t.Errorf("status = %q, want missing amount", s.status)
	}
	if prof.Snapshot().Coins != 30 {
		t.Error("coins changed on rejected purchase")
	}
}

func TestShopOwnedStickerNotEquipped(t *testing.T) {
	s, prof := testShop(t, 50)
	moveTo(t, s, "st_star_eyes")

	s.Update(specialKey(tea.KeyEnter))
	s.Update(specialKey(tea.KeyEnter))

	p := prof.Snapshot()
	if p.SelectedAvatar != catalog.DefaultAvatarID {
		t.Errorf("selected = %s, want default avatar", p.SelectedAvatar)
	}
	if p.Coins != 30 {
		t.Errorf("coins = %d, want 30", p.Coins)
	}
	if s.statusOK {
		t.Error("second press on owned sticker should not succeed")
	}
}

func TestShopCursorBounds(t *testing.T) {
	s, _ := testShop(t, 0)
	s.Update(specialKey(tea.KeyUp))
	if s.cursor != 0 {
		t.Errorf("cursor = %d, want 0", s.cursor)
	}
	for range len(s.items) + 3 {
		s.Update(specialKey(tea.KeyDown))
	}
	if s.cursor != len(s.items)-1 {
		t.Errorf("cursor = %d, want %d", s.cursor, len(s.items)-1)
	}
}

func TestWindow(t *testing.T) {
	lines := []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}
	tests := []struct {
		c, n      int
		wantFirst string
	}{
		{0, 4, "0"},
		{5, 4, "3"},
		{9, 4, "6"},
		{3, 20, "0"},
	}
	for _, tt := range tests {
		got := window(lines, tt.c, tt.n)
		if got[0] != tt.wantFirst {
			t.Errorf("window(c=%d, n=%d) starts at %s, want %s", tt.c, tt.n, got[0], tt.wantFirst)
		}
	}
}
