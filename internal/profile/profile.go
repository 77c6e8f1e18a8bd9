// Package profile owns the learner's persisted profile: coins, owned
// items, equipped avatar, daily streak and language.
package profile

import (
	"slices"

	"github.com/abhisek/retomath/internal/catalog"
	"github.com/abhisek/retomath/internal/locale"
)

// StorageKey is the fixed key the profile is persisted under.
const StorageKey = "retomath_user_data"

// DefaultName is shown until the learner picks a name.
const DefaultName = "Estudiante"

// MaxNameLen is the longest accepted name, in runes.
const MaxNameLen = 24

// Profile is the persisted user record. Field names are the wire format.
type Profile struct {
	Name           string          `json:"name"`
	Coins          int             `json:"coins"`
	Inventory      []string        `json:"inventory"`
	SelectedAvatar string          `json:"selectedAvatar"`
	Streak         int             `json:"streak"`
	LastPlayedDate string          `json:"lastPlayedDate"`
	Language       locale.Language `json:"language"`
}

// Default is the profile of a first run.
func Default() Profile {
	return Profile{
		Name:           DefaultName,
		Coins:          0,
		Inventory:      []string{catalog.DefaultAvatarID},
		SelectedAvatar: catalog.DefaultAvatarID,
		Streak:         0,
		LastPlayedDate: "",
		Language:       locale.Default,
	}
}

// Owns reports whether id is in the inventory.
func (p Profile) Owns(id string) bool {
	return slices.Contains(p.Inventory, id)
}

// Clone returns a copy that shares no slices with p.
func (p Profile) Clone() Profile {
	p.Inventory = slices.Clone(p.Inventory)
	return p
}

// repair enforces the load-time invariants against cat and reports
// whether anything changed.
func (p *Profile) repair(cat *catalog.Catalog) bool {
	before := p.Clone()

	if p.Coins < 0 {
		p.Coins = 0
	}
	if p.Streak < 0 {
		p.Streak = 0
	}
	if name, err := normalizeName(p.Name); err == nil {
		p.Name = name
	} else {
		p.Name = DefaultName
	}
	p.Language, _ = locale.Parse(string(p.Language))
	if !validDate(p.LastPlayedDate) {
		p.LastPlayedDate = ""
	}

	inv := make([]string, 0, len(p.Inventory)+1)
	if !slices.Contains(p.Inventory, catalog.DefaultAvatarID) {
		inv = append(inv, catalog.DefaultAvatarID)
	}
	for _, id := range p.Inventory {
		if _, ok := cat.Lookup(id); !ok || slices.Contains(inv, id) {
			continue
		}
		inv = append(inv, id)
	}
	p.Inventory = inv

	if !cat.IsAvatar(p.SelectedAvatar) || !p.Owns(p.SelectedAvatar) {
		p.SelectedAvatar = catalog.DefaultAvatarID
	}

	return !equal(before, *p)
}

func equal(a, b Profile) bool {
	return a.Name == b.Name &&
		a.Coins == b.Coins &&
		slices.Equal(a.Inventory, b.Inventory) &&
		a.SelectedAvatar == b.SelectedAvatar &&
		a.Streak == b.Streak &&
		a.LastPlayedDate == b.LastPlayedDate &&
		a.Language == b.Language
}
