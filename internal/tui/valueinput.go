package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/KirkDiggler/quest-dash/internal/decorators"
)

// valueInput materializes a decorators.Control as a widget.
// Text and number controls use a textinput; select controls cycle options.
type valueInput struct {
	control decorators.Control
	text    textinput.Model
	option  int
	focused bool
}

// newValueInput builds a fresh widget; nothing carries over from the
// previously shown control
func newValueInput(control decorators.Control) valueInput {
	ti := textinput.New()
	ti.Prompt = ""
	ti.Placeholder = control.Placeholder
	ti.CharLimit = 64
	return valueInput{control: control, text: ti}
}

func (v valueInput) Kind() decorators.ControlKind {
	return v.control.Kind
}

// Value returns the raw value handed to the decorator list
func (v valueInput) Value() string {
	if v.control.Kind == decorators.ControlSelect {
		if v.option < 0 || v.option >= len(v.control.Options) {
			return ""
		}
		return v.control.Options[v.option].Value
	}
	return v.text.Value()
}

func (v *valueInput) Focus() tea.Cmd {
	v.focused = true
	if v.control.Kind == decorators.ControlSelect {
		return nil
	}
	return v.text.Focus()
}

func (v *valueInput) Blur() {
	v.focused = false
	v.text.Blur()
}

func (v valueInput) Update(msg tea.Msg) (valueInput, tea.Cmd) {
	if v.control.Kind == decorators.ControlSelect {
		if key, ok := msg.(tea.KeyMsg); ok && len(v.control.Options) > 0 {
			switch key.String() {
			case "left", "h":
				v.option = (v.option - 1 + len(v.control.Options)) % len(v.control.Options)
			case "right", "l", " ":
				v.option = (v.option + 1) % len(v.control.Options)
			}
		}
		return v, nil
	}

	before := v.text.Value()
	var cmd tea.Cmd
	v.text, cmd = v.text.Update(msg)
	if !v.control.Accepts(v.text.Value()) {
		v.text.SetValue(before)
	}
	return v, cmd
}

func (v valueInput) View(st styles) string {
	label := st.muted.Render(v.control.Label + ": ")
	if v.control.Kind != decorators.ControlSelect {
		return label + v.text.View()
	}

	labels := make([]string, 0, len(v.control.Options))
	for i, opt := range v.control.Options {
		if i == v.option {
			labels = append(labels, st.selected.Render("["+opt.Label+"]"))
			continue
		}
		if v.focused {
			labels = append(labels, st.muted.Render(opt.Label))
		}
	}
	return label + strings.Join(labels, " ")
}
