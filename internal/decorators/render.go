package decorators

import (
	"fmt"
)

// Style selects how labels are rendered
type Style string

const (
	StyleEmoji Style = "emoji"
	StylePlain Style = "plain"
)

// ParseStyle falls back to StyleEmoji for unknown names
func ParseStyle(s string) Style {
	if Style(s) == StylePlain {
		return StylePlain
	}
	return StyleEmoji
}

// EmptyPlaceholder is rendered instead of an empty decorator list
const EmptyPlaceholder = "No decorators configured"

const (
	kindCondition = "Condition"
	kindReward    = "Reward"
)

// Line is one rendered decorator. Index addresses the decorator for removal.
type Line struct {
	Index int
	Kind  string
	Label string
}

// Renderer projects decorators to display text
type Renderer struct {
	style   Style
	catalog *Catalog
}

// NewRenderer creates a renderer for the given style
func NewRenderer(style Style, catalog *Catalog) *Renderer {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &Renderer{style: style, catalog: catalog}
}

// Style returns the configured display style
func (r *Renderer) Style() Style {
	return r.style
}

// Lines renders every decorator in insertion order
func (r *Renderer) Lines(items []Decorator) []Line {
	lines := make([]Line, 0, len(items))
	for i, d := range items {
		kind := kindReward
		if d.Tag.IsCondition() {
			kind = kindCondition
		}
		lines = append(lines, Line{Index: i, Kind: kind, Label: r.Label(d)})
	}
	return lines
}

// Label renders a single decorator
func (r *Renderer) Label(d Decorator) string {
	switch d.Tag {
	case TagLevelReq:
		return fmt.Sprintf("Level %d required", d.Number)
	case TagNPCReq:
		return fmt.Sprintf("NPC required: %s", d.Text)
	case TagMoneyReward:
		return fmt.Sprintf("+%d coins", d.Number)
	case TagItemReward:
		if r.style == StylePlain {
			return fmt.Sprintf("Item: %s", d.Text)
		}
		return fmt.Sprintf("Item: %s %s", r.catalog.Glyph(d.Text, DefaultRewardGlyph), d.Text)
	}
	return fmt.Sprintf("%s: %s", d.Tag, d.RawValue())
}

// RewardBadges renders the rewards shown on a player quest card
func (r *Renderer) RewardBadges(items []Decorator) []string {
	var badges []string
	for _, d := range items {
		switch d.Tag {
		case TagMoneyReward:
			if r.style == StylePlain {
				badges = append(badges, fmt.Sprintf("%d coins", d.Number))
			} else {
				badges = append(badges, fmt.Sprintf("💰 %d coins", d.Number))
			}
		case TagItemReward:
			badges = append(badges, r.ItemLabel(d.Text, DefaultRewardGlyph))
		}
	}
	return badges
}

// InventoryLabel renders an inventory entry
func (r *Renderer) InventoryLabel(name string) string {
	return r.ItemLabel(name, DefaultInventoryGlyph)
}

// ItemLabel renders an item name with its glyph, or fallback when unknown
func (r *Renderer) ItemLabel(name, fallback string) string {
	if r.style == StylePlain {
		return name
	}
	return r.catalog.Glyph(name, fallback) + " " + name
}
