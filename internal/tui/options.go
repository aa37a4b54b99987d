// Package tui contains the bubbletea programs for the admin dashboard,
// the player dashboard and the login screen.
package tui

import (
	"encoding/json"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
)

const defaultWidth = 100

// Options carries the presentation settings shared by every program
type Options struct {
	Theme   string
	Style   decorators.Style
	Catalog *decorators.Catalog
	// Notifications feeds toasts; nil disables them
	Notifications Subscriber
	// MarkdownStyle is a glamour standard style name, "dark" when empty
	MarkdownStyle string
}

func (o Options) withDefaults() Options {
	if o.Theme == "" {
		o.Theme = DefaultTheme
	}
	if o.Style == "" {
		o.Style = decorators.StyleEmoji
	}
	if o.Catalog == nil {
		o.Catalog = decorators.DefaultCatalog()
	}
	if o.MarkdownStyle == "" {
		o.MarkdownStyle = "dark"
	}
	return o
}

// decodeList hydrates the encoded decorators of a quest
func decodeList(raw json.RawMessage, catalog *decorators.Catalog) []decorators.Decorator {
	return decorators.Decode(string(raw), catalog).Items()
}
