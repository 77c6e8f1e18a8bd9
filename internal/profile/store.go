package profile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
	"github.com/abhisek/retomath/internal/logging"
	"github.com/abhisek/retomath/internal/store"
)

// Store owns the in-memory profile and writes it through to a KV medium
// after every mutation. It is safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	kv  store.KV
	cat *catalog.Catalog
	log *zap.SugaredLogger
	now func() time.Time

	p Profile
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the wall clock used for streaks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithLogger sets the logger.
func WithLogger(log *zap.SugaredLogger) Option {
	return func(s *Store) { s.log = logging.OrNop(log) }
}

// Open loads the profile from kv. A missing or unreadable record yields
// the default profile; only nil arguments are an error.
func Open(ctx context.Context, kv store.KV, cat *catalog.Catalog, opts ...Option) (*Store, error) {
	if kv == nil {
		return nil, errors.New("profile: nil kv")
	}
	if cat == nil {
		return nil, errors.New("profile: nil catalog")
	}
	s := &Store{
		kv:  kv,
		cat: cat,
		log: logging.Nop(),
		now: time.Now,
	}
	for _, o := range opts {
		o(s)
	}
	s.p = s.load(ctx)
	return s, nil
}

func (s *Store) load(ctx context.Context) Profile {
	data, err := s.kv.Get(ctx, StorageKey)
	if errors.Is(err, store.ErrNotFound) {
		return Default()
	}
	if err != nil {
		s.log.Errorw("Failed to read profile, using defaults", "error", err)
		return Default()
	}

	p := Default()
	if err := json.Unmarshal(data, &p); err != nil {
		s.log.Errorw("Failed to parse profile, using defaults", "error", err)
		return Default()
	}
	if p.repair(s.cat) {
		s.log.Warnw("Repaired persisted profile",
			"coins", p.Coins,
			"streak", p.Streak,
			"selected_avatar", p.SelectedAvatar)
	}
	return p
}

// Snapshot returns a deep copy of the current profile.
func (s *Store) Snapshot() Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.p.Clone()
}

// Catalog returns the catalog the store validates against.
func (s *Store) Catalog() *catalog.Catalog { return s.cat }

// Save writes the current profile.
func (s *Store) Save(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(ctx)
}

// save must be called with mu held. The in-memory profile is kept even
// when the write fails.
func (s *Store) save(ctx context.Context) error {
	data, err := json.Marshal(s.p)
	if err != nil {
		return fmt.Errorf("encode profile: %w", err)
	}
	if err := s.kv.Put(ctx, StorageKey, data); err != nil {
		s.log.Errorw("Failed to save profile", "error", err)
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// AwardCoins adds amount coins.
func (s *Store) AwardCoins(ctx context.Context, amount int) error {
	if amount <= 0 {
		return ErrInvalidAmount
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Coins += amount
	return s.save(ctx)
}

// Purchase buys the item with the given id. Rejections leave the profile
// untouched.
func (s *Store) Purchase(ctx context.Context, id string) (catalog.Item, error) {
	item, ok := s.cat.Lookup(id)
	if !ok {
		return catalog.Item{}, fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.p.Owns(id) {
		return item, ErrAlreadyOwned
	}
	if s.p.Coins < item.Price {
		return item, ErrInsufficientFunds
	}
	s.p.Coins -= item.Price
	s.p.Inventory = append(s.p.Inventory, id)
	return item, s.save(ctx)
}

// Equip selects an owned avatar.
func (s *Store) Equip(ctx context.Context, id string) error {
	item, ok := s.cat.Lookup(id)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownItem, id)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.p.Owns(id) {
		return ErrNotOwned
	}
	if item.Kind != catalog.KindAvatar {
		return ErrNotAvatar
	}
	if s.p.SelectedAvatar == id {
		return nil
	}
	s.p.SelectedAvatar = id
	return s.save(ctx)
}

// SetLanguage stores lang. Unsupported values are rejected.
func (s *Store) SetLanguage(ctx context.Context, lang locale.Language) error {
	if !lang.Valid() {
		return fmt.Errorf("unsupported language %q", lang)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Language = lang
	return s.save(ctx)
}

// ToggleLanguage switches between Spanish and English and returns the
// new language.
func (s *Store) ToggleLanguage(ctx context.Context) (locale.Language, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Language = s.p.Language.Toggle()
	return s.p.Language, s.save(ctx)
}

// SetName sets the display name.
func (s *Store) SetName(ctx context.Context, name string) error {
	name, err := normalizeName(name)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p.Name = name
	return s.save(ctx)
}

// RegisterPlayToday credits today's play towards the streak. Calling it
// again on the same local date changes nothing and skips the save.
func (s *Store) RegisterPlayToday(ctx context.Context) (StreakUpdate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	up, date := nextStreak(s.p.LastPlayedDate, s.p.Streak, s.now())
	if !up.Credited {
		return up, nil
	}
	s.p.Streak = up.Streak
	s.p.LastPlayedDate = date
	return up, s.save(ctx)
}

// Reset deletes the stored record and restores the default profile, the
// same state as a fresh install.
func (s *Store) Reset(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.p = Default()
	if err := s.kv.Delete(ctx, StorageKey); err != nil {
		s.log.Errorw("Failed to delete profile", "error", err)
		return fmt.Errorf("reset profile: %w", err)
	}
	return nil
}
