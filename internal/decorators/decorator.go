// Package decorators models the conditions and rewards attached to a quest
// and the form widgets used to edit them.
package decorators

import (
	"encoding/json"
	"strconv"
	"strings"

	"github.com/KirkDiggler/quest-dash/internal/errors"
)

// Tag identifies the kind of a decorator
type Tag string

const (
	TagLevelReq    Tag = "level_req"
	TagNPCReq      Tag = "npc_req"
	TagMoneyReward Tag = "money_reward"
	TagItemReward  Tag = "item_reward"
)

// Tags lists every tag in the order offered by the editor
var Tags = []Tag{TagLevelReq, TagNPCReq, TagMoneyReward, TagItemReward}

// ParseTag validates a tag received from user input
func ParseTag(s string) (Tag, error) {
	tag := Tag(strings.TrimSpace(s))
	if !tag.Valid() {
		return "", errors.InvalidArgumentf("unknown decorator type: %q", s)
	}
	return tag, nil
}

// Valid reports whether the tag belongs to the closed set
func (t Tag) Valid() bool {
	switch t {
	case TagLevelReq, TagNPCReq, TagMoneyReward, TagItemReward:
		return true
	}
	return false
}

// IsNumeric reports whether values of this tag are integers
func (t Tag) IsNumeric() bool {
	return t == TagLevelReq || t == TagMoneyReward
}

// IsCondition reports whether the tag gates a quest rather than rewarding it
func (t Tag) IsCondition() bool {
	return t == TagLevelReq || t == TagNPCReq
}

// Title is the name shown in the tag selector
func (t Tag) Title() string {
	switch t {
	case TagLevelReq:
		return "Required level"
	case TagNPCReq:
		return "Required NPC"
	case TagMoneyReward:
		return "Money reward"
	case TagItemReward:
		return "Item reward"
	}
	return string(t)
}

// Decorator is a tagged condition or reward.
// Number holds the value of numeric tags, Text the value of the others.
type Decorator struct {
	Tag    Tag
	Number int
	Text   string
}

// Value returns the typed value: an int for numeric tags, a string otherwise
func (d Decorator) Value() any {
	if d.Tag.IsNumeric() {
		return d.Number
	}
	return d.Text
}

// RawValue returns the value as typed in the editor
func (d Decorator) RawValue() string {
	if d.Tag.IsNumeric() {
		return strconv.Itoa(d.Number)
	}
	return d.Text
}

type wireDecorator struct {
	Type  Tag             `json:"type"`
	Value json.RawMessage `json:"value"`
}

// MarshalJSON encodes the decorator in the Quest API format
func (d Decorator) MarshalJSON() ([]byte, error) {
	value, err := json.Marshal(d.Value())
	if err != nil {
		return nil, err
	}
	return json.Marshal(wireDecorator{Type: d.Tag, Value: value})
}

// UnmarshalJSON decodes the Quest API format.
// Numeric tags accept both JSON numbers and numeric strings.
func (d *Decorator) UnmarshalJSON(data []byte) error {
	var wire wireDecorator
	if err := json.Unmarshal(data, &wire); err != nil {
		return errors.DataLossf("malformed decorator: %v", err)
	}
	if !wire.Type.Valid() {
		return errors.DataLossf("unknown decorator type: %q", wire.Type)
	}

	decoded := Decorator{Tag: wire.Type}
	if wire.Type.IsNumeric() {
		n, err := decodeNumber(wire.Value)
		if err != nil {
			return err
		}
		decoded.Number = n
	} else {
		var text string
		if err := json.Unmarshal(wire.Value, &text); err != nil || strings.TrimSpace(text) == "" {
			return errors.DataLossf("decorator %s requires a non-empty string value", wire.Type)
		}
		decoded.Text = text
	}

	*d = decoded
	return nil
}

func decodeNumber(raw json.RawMessage) (int, error) {
	var n int
	if err := json.Unmarshal(raw, &n); err == nil {
		return n, nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		if n, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
			return n, nil
		}
	}
	return 0, errors.DataLossf("expected an integer value, got %s", string(raw))
}
