// Package config is the single place RetoMath reads its environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"

	"github.com/abhisek/retomath/internal/llm"
	"github.com/abhisek/retomath/internal/store"
)

// Config is everything the commands need to wire the app.
type Config struct {
	// DBPath is the SQLite file holding the profile and the LLM log.
	DBPath string

	// RedisURL, when set, stores the profile in Redis instead of SQLite.
	RedisURL string

	// LogMode is "dev" (default) or "prod".
	LogMode string

	LLM llm.Config
}

// Load reads an optional .env file from the working directory and then the
// process environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}
	return FromEnv(os.Getenv)
}

// FromEnv builds a Config from getenv.
func FromEnv(getenv func(string) string) (Config, error) {
	cfg := Config{
		DBPath:   getenv("RETOMATH_DB"),
		RedisURL: getenv("RETOMATH_REDIS_URL"),
		LogMode:  getenv("RETOMATH_LOG"),
	}

	if cfg.DBPath == "" {
		p, err := store.DefaultDBPath(getenv("XDG_DATA_HOME"))
		if err != nil {
			return Config{}, err
		}
		cfg.DBPath = p
	}

	llmCfg, err := llmFromEnv(getenv)
	if err != nil {
		return Config{}, err
	}
	cfg.LLM = llmCfg
	return cfg, nil
}

// LogPath is where the TUI writes its log while it owns the terminal.
func (c Config) LogPath() string {
	return filepath.Join(filepath.Dir(c.DBPath), "retomath.log")
}

// llmFromEnv applies RETOMATH_* settings over the defaults. Without an
// explicit provider the standard vendor key variables are probed in order
// Gemini, OpenAI, Anthropic, OpenRouter. Nothing found means offline.
func llmFromEnv(getenv func(string) string) (llm.Config, error) {
	cfg := llm.DefaultConfig()

	set := func(dst *string, key string) {
		if v := getenv(key); v != "" {
			*dst = v
		}
	}
	set(&cfg.Gemini.APIKey, "RETOMATH_GEMINI_API_KEY")
	set(&cfg.Gemini.Model, "RETOMATH_GEMINI_MODEL")
	set(&cfg.OpenAI.APIKey, "RETOMATH_OPENAI_API_KEY")
	set(&cfg.OpenAI.Model, "RETOMATH_OPENAI_MODEL")
	set(&cfg.OpenAI.BaseURL, "RETOMATH_OPENAI_BASE_URL")
	set(&cfg.Anthropic.APIKey, "RETOMATH_ANTHROPIC_API_KEY")
	set(&cfg.Anthropic.Model, "RETOMATH_ANTHROPIC_MODEL")
	set(&cfg.OpenRouter.APIKey, "RETOMATH_OPENROUTER_API_KEY")
	set(&cfg.OpenRouter.Model, "RETOMATH_OPENROUTER_MODEL")

	if v := getenv("RETOMATH_LLM_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return cfg, fmt.Errorf("RETOMATH_LLM_TIMEOUT: %w", err)
		}
		cfg.Timeout = d
	}

	if p := getenv("RETOMATH_LLM_PROVIDER"); p != "" {
		cfg.Provider = p
		return cfg, nil
	}

	discover := []struct {
		provider string
		env      string
		key      *string
	}{
		{llm.ProviderGemini, "GEMINI_API_KEY", &cfg.Gemini.APIKey},
		{llm.ProviderOpenAI, "OPENAI_API_KEY", &cfg.OpenAI.APIKey},
		{llm.ProviderAnthropic, "ANTHROPIC_API_KEY", &cfg.Anthropic.APIKey},
		{llm.ProviderOpenRouter, "OPENROUTER_API_KEY", &cfg.OpenRouter.APIKey},
	}
	// A RETOMATH_* key alone is enough to select its provider.
	for _, d := range discover {
		if *d.key != "" {
			cfg.Provider = d.provider
			return cfg, nil
		}
	}
	for _, d := range discover {
		if k := getenv(d.env); k != "" {
			cfg.Provider = d.provider
			*d.key = k
			return cfg, nil
		}
	}
	return cfg, nil
}
