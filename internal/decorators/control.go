package decorators

import (
	"strconv"
	"strings"
)

// ControlKind is the shape of the value input
type ControlKind string

const (
	ControlText   ControlKind = "text"
	ControlNumber ControlKind = "number"
	ControlSelect ControlKind = "select"
)

// ChooseItemPrompt is the empty first option of the item selector
const ChooseItemPrompt = "-- Choose an item --"

// Option is one entry of a select control. The first option has an empty Value.
type Option struct {
	Value string
	Label string
}

// Control describes the value input to show for a tag.
// The UI materializes it; the descriptor carries no widget state.
type Control struct {
	Kind        ControlKind
	Label       string
	Placeholder string
	Options     []Option
}

// ControlFor computes the value input for tag. Each call is independent of
// the previously shown control.
func ControlFor(tag Tag, catalog *Catalog) Control {
	if catalog == nil {
		catalog = DefaultCatalog()
	}

	switch tag {
	case TagItemReward:
		options := []Option{{Value: "", Label: ChooseItemPrompt}}
		for _, item := range catalog.Items() {
			options = append(options, Option{Value: item.Name, Label: item.Glyph + " " + item.Name})
		}
		return Control{
			Kind:    ControlSelect,
			Label:   "Item to grant",
			Options: options,
		}
	case TagNPCReq:
		return Control{
			Kind:        ControlText,
			Label:       "NPC name",
			Placeholder: "NPC name (e.g. Village elder)",
		}
	default:
		return Control{
			Kind:        ControlNumber,
			Label:       "Value",
			Placeholder: "Enter a number",
		}
	}
}

// Accepts reports whether raw may be typed into the control.
// Number controls accept partial input such as a lone minus sign.
func (c Control) Accepts(raw string) bool {
	switch c.Kind {
	case ControlNumber:
		trimmed := strings.TrimPrefix(raw, "-")
		if trimmed == "" {
			return true
		}
		_, err := strconv.Atoi(trimmed)
		return err == nil && trimmed[0] >= '0' && trimmed[0] <= '9'
	case ControlSelect:
		for _, opt := range c.Options {
			if opt.Value == raw {
				return true
			}
		}
		return false
	default:
		return true
	}
}
