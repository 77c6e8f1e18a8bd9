package store

import (
	"os"
	"testing"
)

func TestParseRedisURL(t *testing.T) {
	tests := []struct {
		name    string
		url     string
		wantErr bool
	}{
		{"valid-redis", "redis://localhost:6379", false},
		{"valid-with-db", "redis://localhost:6379/2", false},
		{"empty", "", true},
		{"bad-scheme", "http://localhost:6379", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRedisURL(tt.url)
			if (err != nil) != tt.wantErr {
				t.Errorf("ParseRedisURL() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestOpenRedisKV_UnreachableHost(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping unreachable host test in short mode")
	}

	_, err := OpenRedisKV(t.Context(), "redis://localhost:59999", "test:")
	if err == nil {
		t.Fatal("OpenRedisKV() should return error for unreachable host")
	}
}

func TestRedisKV_Live(t *testing.T) {
	url := os.Getenv("RETOMATH_TEST_REDIS_URL")
	if url == "" {
		t.Skip("RETOMATH_TEST_REDIS_URL not set")
	}

	kv, err := OpenRedisKV(t.Context(), url, "retomath-test:")
	if err != nil {
		t.Fatalf("open redis: %v", err)
	}
	t.Cleanup(func() { kv.Close() })

	testKV(t, kv)
}
