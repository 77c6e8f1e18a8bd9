package cmd

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/store"
)

func execute(t *testing.T, args ...string) error {
	t.Helper()
	t.Setenv("RETOMATH_REDIS_URL", "")
	t.Setenv("RETOMATH_LLM_PROVIDER", "")
	rootCmd.SetArgs(args)
	return rootCmd.Execute()
}

func loadProfile(t *testing.T, dbPath string) profile.Profile {
	t.Helper()
	st, err := store.Open(dbPath)
	require.NoError(t, err)
	defer st.Close()
	p, err := profile.Open(context.Background(), st.KV(), catalog.Default())
	require.NoError(t, err)
	return p.Snapshot()
}

func TestProfileNameAndLang(t *testing.T) {
	db := filepath.Join(t.TempDir(), "data", "retomath.db")

	require.NoError(t, execute(t, "--db", db, "profile", "name", "Ana", "Sofía"))
	require.NoError(t, execute(t, "--db", db, "lang"))

	p := loadProfile(t, db)
	assert.Equal(t, "Ana Sofía", p.Name)
	assert.Equal(t, locale.English, p.Language)

	require.NoError(t, execute(t, "--db", db, "lang", "es-MX"))
	assert.Equal(t, locale.Spanish, loadProfile(t, db).Language)

	assert.Error(t, execute(t, "--db", db, "lang", "fr"))
}

func TestShopBuyWithoutCoins(t *testing.T) {
	db := filepath.Join(t.TempDir(), "retomath.db")

	err := execute(t, "--db", db, "shop", "buy", "av_rhino")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "you have 0")

	assert.Error(t, execute(t, "--db", db, "shop", "equip", "no_such_item"))
	assert.Equal(t, []string{catalog.DefaultAvatarID}, loadProfile(t, db).Inventory)
}

func TestItemStatus(t *testing.T) {
	p := profile.Default()
	p.Coins = 40
	p.Inventory = append(p.Inventory, "st_star")

	tests := []struct {
		item catalog.Item
		want string
	}{
		{catalog.Item{ID: catalog.DefaultAvatarID, Price: 0}, "equipped"},
		{catalog.Item{ID: "st_star", Price: 20}, "owned"},
		{catalog.Item{ID: "st_cheap", Price: 30}, "30 coins"},
		{catalog.Item{ID: "av_big", Price: 150}, "150 coins (need 110 more)"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, itemStatus(p, tt.item), tt.item.ID)
	}
}

func TestPlayLogsStartupFailure(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "retomath.db")
	// A directory where the database file should be makes the open fail.
	require.NoError(t, os.Mkdir(db, 0o755))

	err := execute(t, "--db", db, "play")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open store")

	logged, err := os.ReadFile(filepath.Join(dir, "retomath.log"))
	require.NoError(t, err)
	assert.Contains(t, string(logged), "Startup failed")
	assert.Contains(t, string(logged), "open store")
}
