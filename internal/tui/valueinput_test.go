package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
)

func typeInto(v valueInput, text string) valueInput {
	for _, r := range text {
		v, _ = v.Update(key(string(r)))
	}
	return v
}

func TestValueInputNumberRejectsLetters(t *testing.T) {
	v := newValueInput(decorators.ControlFor(decorators.TagLevelReq, nil))
	v.Focus()

	v = typeInto(v, "1x2")
	assert.Equal(t, "12", v.Value())
	assert.Equal(t, decorators.ControlNumber, v.Kind())
}

func TestValueInputTextAcceptsAnything(t *testing.T) {
	v := newValueInput(decorators.ControlFor(decorators.TagNPCReq, nil))
	v.Focus()

	v = typeInto(v, "Elder 2")
	assert.Equal(t, "Elder 2", v.Value())
}

func TestValueInputSelectCycles(t *testing.T) {
	v := newValueInput(decorators.ControlFor(decorators.TagItemReward, nil))
	v.Focus()
	assert.Equal(t, "", v.Value())

	v, _ = v.Update(key("right"))
	assert.Equal(t, "Sword", v.Value())

	v, _ = v.Update(key("left"))
	v, _ = v.Update(key("left"))
	assert.Equal(t, "Trophy", v.Value())

	assert.Contains(t, v.View(newStyles(DefaultTheme)), "Trophy")
}

func TestValueInputFreshOnSwitch(t *testing.T) {
	v := newValueInput(decorators.ControlFor(decorators.TagNPCReq, nil))
	v.Focus()
	v = typeInto(v, "Elder")

	v = newValueInput(decorators.ControlFor(decorators.TagMoneyReward, nil))
	assert.Equal(t, "", v.Value())
}
