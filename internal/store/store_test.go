package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open("file:" + filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.db

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestOpen_Reopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reopen.db")
	ctx := context.Background()

	s, err := Open("file:" + path)
	require.NoError(t, err)
	require.NoError(t, s.KV().Put(ctx, "k", []byte("v")))
	require.NoError(t, s.Close())

	s, err = Open("file:" + path)
	require.NoError(t, err, "migration must be idempotent")
	defer s.Close()

	got, err := s.KV().Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "v", string(got))
}

func testKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "missing")
	assert.True(t, errors.Is(err, ErrNotFound), "got %v", err)

	require.NoError(t, kv.Put(ctx, "retomath_user_data", []byte(`{"coins":5}`)))
	got, err := kv.Get(ctx, "retomath_user_data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"coins":5}`, string(got))

	require.NoError(t, kv.Put(ctx, "retomath_user_data", []byte(`{"coins":15}`)))
	got, err = kv.Get(ctx, "retomath_user_data")
	require.NoError(t, err)
	assert.JSONEq(t, `{"coins":15}`, string(got))

	require.NoError(t, kv.Delete(ctx, "retomath_user_data"))
	_, err = kv.Get(ctx, "retomath_user_data")
	assert.True(t, errors.Is(err, ErrNotFound))

	require.NoError(t, kv.Delete(ctx, "never-existed"))
}

func TestSQLKV(t *testing.T) {
	testKV(t, openTestStore(t).KV())
}

func TestMemoryKV(t *testing.T) {
	testKV(t, NewMemoryKV())
}

func TestMemoryKV_CopiesValues(t *testing.T) {
	kv := NewMemoryKV()
	ctx := context.Background()
	buf := []byte("abc")
	require.NoError(t, kv.Put(ctx, "k", buf))
	buf[0] = 'x'

	got, err := kv.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "abc", string(got))
}

func TestMemoryKV_FailPuts(t *testing.T) {
	kv := NewMemoryKV()
	kv.FailPuts = true
	assert.Error(t, kv.Put(context.Background(), "k", []byte("v")))
}

func TestDefaultDBPath(t *testing.T) {
	p, err := DefaultDBPath("/data")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/data", "retomath", "retomath.db"), p)
}
