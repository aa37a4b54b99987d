package decorators

import (
	"encoding/json"
	"log/slog"
	"strconv"
	"strings"

	"github.com/KirkDiggler/quest-dash/internal/errors"
)

// List is the ordered set of decorators edited in one form session
type List struct {
	items   []Decorator
	catalog *Catalog
}

// NewList returns an empty list validating item rewards against catalog
func NewList(catalog *Catalog) *List {
	if catalog == nil {
		catalog = DefaultCatalog()
	}
	return &List{catalog: catalog}
}

// Add validates raw against the constraint of tag and appends the decorator
func (l *List) Add(tag Tag, raw string) (Decorator, error) {
	d, err := l.parse(tag, raw)
	if err != nil {
		return Decorator{}, err
	}
	l.items = append(l.items, d)
	return d, nil
}

func (l *List) parse(tag Tag, raw string) (Decorator, error) {
	if !tag.Valid() {
		return Decorator{}, errors.InvalidArgumentf("unknown decorator type: %q", tag)
	}

	value := strings.TrimSpace(raw)
	if value == "" {
		return Decorator{}, errors.InvalidArgument("please fill in the value").
			WithMeta("type", string(tag))
	}

	switch tag {
	case TagLevelReq, TagMoneyReward:
		n, err := strconv.Atoi(value)
		if err != nil {
			return Decorator{}, errors.InvalidArgument("value must be a number").
				WithMeta("type", string(tag)).
				WithMeta("value", value)
		}
		return Decorator{Tag: tag, Number: n}, nil
	case TagItemReward:
		if !l.catalog.Contains(value) {
			return Decorator{}, errors.InvalidArgumentf("unknown item: %q", value).
				WithMeta("type", string(tag))
		}
		return Decorator{Tag: tag, Text: value}, nil
	default:
		return Decorator{Tag: tag, Text: value}, nil
	}
}

// RemoveAt removes the decorator at index. Out of range indexes are ignored.
func (l *List) RemoveAt(index int) {
	if index < 0 || index >= len(l.items) {
		return
	}
	l.items = append(l.items[:index], l.items[index+1:]...)
}

// Len returns the number of decorators
func (l *List) Len() int {
	return len(l.items)
}

// Items returns a copy of the decorators in insertion order
func (l *List) Items() []Decorator {
	out := make([]Decorator, len(l.items))
	copy(out, l.items)
	return out
}

// Encode serializes the list in the Quest API format
func (l *List) Encode() string {
	items := l.items
	if items == nil {
		items = []Decorator{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		// Decorator values are ints and strings; marshaling cannot fail.
		return "[]"
	}
	return string(data)
}

// Decode rebuilds a list from its encoded form.
// Empty or malformed input yields an empty list; entries that cannot be
// decoded are dropped. Decode never fails so an editing session stays usable.
func Decode(encoded string, catalog *Catalog) *List {
	l := NewList(catalog)

	encoded = strings.TrimSpace(encoded)
	if encoded == "" || encoded == "null" {
		return l
	}

	var raw []json.RawMessage
	if err := json.Unmarshal([]byte(encoded), &raw); err != nil {
		slog.Debug("Discarding malformed decorator list", "error", err)
		return l
	}

	for i, entry := range raw {
		var d Decorator
		if err := json.Unmarshal(entry, &d); err != nil {
			slog.Debug("Dropping undecodable decorator", "index", i, "error", err)
			continue
		}
		l.items = append(l.items, d)
	}
	return l
}
