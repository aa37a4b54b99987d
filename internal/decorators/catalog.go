package decorators

const (
	// DefaultRewardGlyph is shown for item rewards missing from the catalog
	DefaultRewardGlyph = "🎁"
	// DefaultInventoryGlyph is shown for inventory entries missing from the catalog
	DefaultInventoryGlyph = "🎒"
)

// CatalogItem is an item that can be granted by an item_reward decorator
type CatalogItem struct {
	Name  string
	Glyph string
}

// Catalog is the fixed, ordered set of grantable items
type Catalog struct {
	items  []CatalogItem
	glyphs map[string]string
}

// NewCatalog builds a catalog preserving the given order
func NewCatalog(items ...CatalogItem) *Catalog {
	c := &Catalog{
		items:  make([]CatalogItem, 0, len(items)),
		glyphs: make(map[string]string, len(items)),
	}
	for _, item := range items {
		if _, dup := c.glyphs[item.Name]; dup {
			continue
		}
		c.items = append(c.items, item)
		c.glyphs[item.Name] = item.Glyph
	}
	return c
}

// DefaultCatalog returns the items the Quest API knows about
func DefaultCatalog() *Catalog {
	return NewCatalog(
		CatalogItem{Name: "Sword", Glyph: "⚔️"},
		CatalogItem{Name: "Shield", Glyph: "🛡️"},
		CatalogItem{Name: "Potion", Glyph: "🧪"},
		CatalogItem{Name: "Scroll", Glyph: "📜"},
		CatalogItem{Name: "Trophy", Glyph: "🏆"},
	)
}

// Items returns the catalog entries in display order
func (c *Catalog) Items() []CatalogItem {
	out := make([]CatalogItem, len(c.items))
	copy(out, c.items)
	return out
}

// Contains reports whether name is a catalog item
func (c *Catalog) Contains(name string) bool {
	_, ok := c.glyphs[name]
	return ok
}

// Glyph returns the glyph of name, or fallback when it is not in the catalog
func (c *Catalog) Glyph(name, fallback string) string {
	if glyph, ok := c.glyphs[name]; ok {
		return glyph
	}
	return fallback
}
