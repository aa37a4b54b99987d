package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

var namedKeys = map[string]tea.KeyType{
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"shift+tab": tea.KeyShiftTab,
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"ctrl+c":    tea.KeyCtrlC,
	"ctrl+r":    tea.KeyCtrlR,
	"ctrl+s":    tea.KeyCtrlS,
}

func key(s string) tea.KeyMsg {
	if t, ok := namedKeys[s]; ok {
		return tea.KeyMsg{Type: t}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

// send applies msg and returns the updated model with its command
func send[M tea.Model](m M, msg tea.Msg) (M, tea.Cmd) {
	updated, cmd := m.Update(msg)
	return updated.(M), cmd
}

// typeText sends one key per rune
func typeText[M tea.Model](m M, text string) M {
	for _, r := range text {
		m, _ = send(m, key(string(r)))
	}
	return m
}

func press[M tea.Model](m M, keys ...string) M {
	for _, k := range keys {
		m, _ = send(m, key(k))
	}
	return m
}
