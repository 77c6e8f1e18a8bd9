// Package catalog holds the read-only shop catalog: avatars and stickers
// that can be bought with coins. The data is embedded in the binary and
// parsed once at startup.
package catalog

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

// DefaultAvatarID is the avatar every profile owns from the start.
const DefaultAvatarID = "av_robot_pro"

// Kind classifies a catalog item.
type Kind string

const (
	KindAvatar  Kind = "avatar"
	KindSticker Kind = "sticker"
)

// Item is a purchasable cosmetic.
type Item struct {
	ID       string `yaml:"id" json:"id"`
	Name     string `yaml:"name" json:"name"`
	Price    int    `yaml:"price" json:"price"`
	Kind     Kind   `yaml:"kind" json:"kind"`
	Emoji    string `yaml:"emoji,omitempty" json:"emoji,omitempty"`
	ImageURL string `yaml:"image_url,omitempty" json:"imageUrl,omitempty"`
}

// Glyph returns the emoji to show for the item, or a placeholder.
func (it Item) Glyph() string {
	if it.Emoji != "" {
		return it.Emoji
	}
	return "?"
}

// Catalog is an ordered, immutable set of items.
type Catalog struct {
	items []Item
	byID  map[string]int
}

//go:embed data/items.yaml
var itemsYAML []byte

var defaultCatalog = mustParse(itemsYAML)

// Default returns the catalog compiled into the binary.
func Default() *Catalog {
	return defaultCatalog
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("catalog: embedded items: %v", err))
	}
	return c
}

// Parse builds a Catalog from YAML and checks ids, kinds and prices.
func Parse(data []byte) (*Catalog, error) {
	var items []Item
	if err := yaml.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("parse catalog: %w", err)
	}
	return New(items)
}

// New builds a Catalog from items, preserving their order.
func New(items []Item) (*Catalog, error) {
	c := &Catalog{
		items: make([]Item, 0, len(items)),
		byID:  make(map[string]int, len(items)),
	}
	for _, it := range items {
		if it.ID == "" {
			return nil, fmt.Errorf("item %q: empty id", it.Name)
		}
		if _, dup := c.byID[it.ID]; dup {
			return nil, fmt.Errorf("item %q: duplicate id", it.ID)
		}
		if it.Kind != KindAvatar && it.Kind != KindSticker {
			return nil, fmt.Errorf("item %q: unknown kind %q", it.ID, it.Kind)
		}
		if it.Price < 0 {
			return nil, fmt.Errorf("item %q: negative price", it.ID)
		}
		c.byID[it.ID] = len(c.items)
		c.items = append(c.items, it)
	}
	return c, nil
}

// Items returns all items in catalog order.
func (c *Catalog) Items() []Item {
	out := make([]Item, len(c.items))
	copy(out, c.items)
	return out
}

// Lookup returns the item with the given id.
func (c *Catalog) Lookup(id string) (Item, bool) {
	i, ok := c.byID[id]
	if !ok {
		return Item{}, false
	}
	return c.items[i], true
}

// ByKind returns the items of one kind, in catalog order.
func (c *Catalog) ByKind(kind Kind) []Item {
	var out []Item
	for _, it := range c.items {
		if it.Kind == kind {
			out = append(out, it)
		}
	}
	return out
}

// IsAvatar reports whether id names an avatar in the catalog.
func (c *Catalog) IsAvatar(id string) bool {
	it, ok := c.Lookup(id)
	return ok && it.Kind == KindAvatar
}

// Len returns the number of items.
func (c *Catalog) Len() int { return len(c.items) }
