package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/config"
	"github.com/abhisek/retomath/internal/llm"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/problemgen"
	"github.com/abhisek/retomath/internal/profile"
	"github.com/abhisek/retomath/internal/store"
)

// redisPrefix namespaces RetoMath keys on a shared Redis server.
const redisPrefix = "retomath:"

// env is what a command works with once flags and config are resolved.
type env struct {
	cfg     config.Config
	log     *zap.SugaredLogger
	store   *store.Store
	profile *profile.Store

	closers []func() error
}

// loadConfig reads the environment, then applies --db and --redis, which
// take priority.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		cfg.DBPath = p
	}
	if u, _ := cmd.Flags().GetString("redis"); u != "" {
		cfg.RedisURL = u
	}
	return cfg, nil
}

// openStore resolves config and opens the SQLite database only. Logs go to
// stderr.
func openStore(cmd *cobra.Command) (*env, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	log, err := logging.New(cfg.LogMode, "")
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	e := &env{cfg: cfg, log: log}

	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, e.fail(fmt.Errorf("resolve DB path: %w", err))
	}
	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, e.fail(fmt.Errorf("open store: %w", err))
	}
	e.store = st
	e.closers = append(e.closers, st.Close)
	return e, nil
}

// openEnv opens the store and the learner profile. With tui set the log
// goes to a file next to the database so it doesn't draw over the screen.
func openEnv(cmd *cobra.Command, tui bool) (*env, error) {
	ctx := cmd.Context()

	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if err := store.EnsureDir(cfg.DBPath); err != nil {
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}

	logPath := ""
	if tui {
		logPath = cfg.LogPath()
	}
	log, err := logging.New(cfg.LogMode, logPath)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	e := &env{cfg: cfg, log: log}

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, e.fail(fmt.Errorf("open store: %w", err))
	}
	e.store = st
	e.closers = append(e.closers, st.Close)

	kv := st.KV()
	if cfg.RedisURL != "" {
		rkv, err := store.OpenRedisKV(ctx, cfg.RedisURL, redisPrefix)
		if err != nil {
			return nil, e.fail(fmt.Errorf("open redis: %w", err))
		}
		e.closers = append(e.closers, rkv.Close)
		kv = rkv
	}

	prof, err := profile.Open(ctx, kv, catalog.Default(), profile.WithLogger(log))
	if err != nil {
		return nil, e.fail(fmt.Errorf("open profile: %w", err))
	}
	e.profile = prof
	return e, nil
}

// source builds the question source. Without a usable provider it returns
// an offline source and offline=true.
func (e *env) source(ctx context.Context) (src *problemgen.LLMSource, offline bool) {
	var events store.EventRepo
	if e.store != nil {
		events = e.store.EventRepo()
	}

	provider, err := llm.NewProvider(ctx, e.cfg.LLM, events, e.log)
	if err != nil {
		if errors.Is(err, llm.ErrNotConfigured) {
			e.log.Warnw("LLM provider not configured, questions will come from the offline bank", "error", err)
		} else {
			e.log.Errorw("LLM provider unavailable, questions will come from the offline bank", "error", err)
		}
		return problemgen.NewSource(nil, nil, problemgen.DefaultConfig(), e.log), true
	}
	e.log.Infow("LLM provider ready", "provider", e.cfg.LLM.Provider, "model", provider.ModelID())
	return problemgen.NewSource(provider, nil, problemgen.DefaultConfig(), e.log), false
}

// fail logs err, releases what was opened so far and returns err.
func (e *env) fail(err error) error {
	e.log.Errorw("Startup failed", "error", err)
	e.Close()
	return err
}

// Close releases everything in reverse order of opening.
func (e *env) Close() {
	for i := len(e.closers) - 1; i >= 0; i-- {
		if err := e.closers[i](); err != nil {
			e.log.Warnw("close failed", "error", err)
		}
	}
	e.closers = nil
	_ = e.log.Sync()
}
