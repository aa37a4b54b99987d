package tui

import (
	"log/slog"
	"strconv"
	"strings"

	"github.com/charmbracelet/glamour"
	lru "github.com/hashicorp/golang-lru"
)

const descriptionCacheSize = 128

// markdownRenderer renders quest descriptions and caches the output per width
type markdownRenderer struct {
	style string
	cache *lru.Cache
}

func newMarkdownRenderer(style string) *markdownRenderer {
	cache, _ := lru.New(descriptionCacheSize)
	return &markdownRenderer{style: style, cache: cache}
}

// Render returns the description as styled terminal text. It falls back to
// the raw text when glamour fails.
func (r *markdownRenderer) Render(md string, width int) string {
	md = strings.TrimSpace(md)
	if md == "" {
		return ""
	}
	if width < 20 {
		width = 20
	}

	key := strconv.Itoa(width) + "\x00" + md
	if v, ok := r.cache.Get(key); ok {
		return v.(string)
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(r.style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		slog.Debug("Failed to create markdown renderer", "error", err)
		return md
	}
	out, err := renderer.Render(md)
	if err != nil {
		slog.Debug("Failed to render description", "error", err)
		return md
	}

	out = strings.Trim(out, "\n")
	r.cache.Add(key, out)
	return out
}

// Len reports how many renderings are cached
func (r *markdownRenderer) Len() int {
	return r.cache.Len()
}
