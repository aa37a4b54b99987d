package tui

import (
	"sort"

	"github.com/charmbracelet/lipgloss"
)

// DefaultTheme is used for unknown theme names
const DefaultTheme = "catppuccin"

type palette struct {
	Text      lipgloss.Color
	Muted     lipgloss.Color
	Accent    lipgloss.Color
	AccentAlt lipgloss.Color
	Border    lipgloss.Color
	Success   lipgloss.Color
	Warning   lipgloss.Color
	Error     lipgloss.Color
	Info      lipgloss.Color
}

var palettes = map[string]palette{
	"catppuccin": {
		Text:      lipgloss.Color("#cdd6f4"),
		Muted:     lipgloss.Color("#a6adc8"),
		Accent:    lipgloss.Color("#cba6f7"),
		AccentAlt: lipgloss.Color("#f38ba8"),
		Border:    lipgloss.Color("#585b70"),
		Success:   lipgloss.Color("#a6e3a1"),
		Warning:   lipgloss.Color("#f9e2af"),
		Error:     lipgloss.Color("#f38ba8"),
		Info:      lipgloss.Color("#89b4fa"),
	},
	"dracula": {
		Text:      lipgloss.Color("#f8f8f2"),
		Muted:     lipgloss.Color("#6272a4"),
		Accent:    lipgloss.Color("#ff79c6"),
		AccentAlt: lipgloss.Color("#bd93f9"),
		Border:    lipgloss.Color("#44475a"),
		Success:   lipgloss.Color("#50fa7b"),
		Warning:   lipgloss.Color("#f1fa8c"),
		Error:     lipgloss.Color("#ff5555"),
		Info:      lipgloss.Color("#8be9fd"),
	},
	"gruvbox": {
		Text:      lipgloss.Color("#ebdbb2"),
		Muted:     lipgloss.Color("#a89984"),
		Accent:    lipgloss.Color("#fabd2f"),
		AccentAlt: lipgloss.Color("#d3869b"),
		Border:    lipgloss.Color("#665c54"),
		Success:   lipgloss.Color("#b8bb26"),
		Warning:   lipgloss.Color("#fe8019"),
		Error:     lipgloss.Color("#fb4934"),
		Info:      lipgloss.Color("#83a598"),
	},
	"solarized_dark": {
		Text:      lipgloss.Color("#fdf6e3"),
		Muted:     lipgloss.Color("#93a1a1"),
		Accent:    lipgloss.Color("#b58900"),
		AccentAlt: lipgloss.Color("#268bd2"),
		Border:    lipgloss.Color("#586e75"),
		Success:   lipgloss.Color("#859900"),
		Warning:   lipgloss.Color("#cb4b16"),
		Error:     lipgloss.Color("#dc322f"),
		Info:      lipgloss.Color("#2aa198"),
	},
}

func paletteFor(name string) palette {
	if p, ok := palettes[name]; ok {
		return p
	}
	return palettes[DefaultTheme]
}

// ThemeNames lists the available color themes
func ThemeNames() []string {
	names := make([]string, 0, len(palettes))
	for k := range palettes {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

func nextThemeName(current string, step int) string {
	names := ThemeNames()
	if len(names) == 0 {
		return current
	}
	idx := 0
	for i, name := range names {
		if name == current {
			idx = i
			break
		}
	}
	idx = (idx + step) % len(names)
	if idx < 0 {
		idx += len(names)
	}
	return names[idx]
}

type styles struct {
	theme    string
	title    lipgloss.Style
	subtitle lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	selected lipgloss.Style
	panel    lipgloss.Style
	focused  lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	error    lipgloss.Style
	info     lipgloss.Style
	help     lipgloss.Style
}

func newStyles(theme string) styles {
	p := paletteFor(theme)
	if _, ok := palettes[theme]; !ok {
		theme = DefaultTheme
	}
	return styles{
		theme:    theme,
		title:    lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		subtitle: lipgloss.NewStyle().Bold(true).Foreground(p.AccentAlt),
		text:     lipgloss.NewStyle().Foreground(p.Text),
		muted:    lipgloss.NewStyle().Foreground(p.Muted),
		selected: lipgloss.NewStyle().Bold(true).Foreground(p.Accent),
		panel:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Border).Padding(0, 1),
		focused:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(p.Accent).Padding(0, 1),
		success:  lipgloss.NewStyle().Foreground(p.Success),
		warning:  lipgloss.NewStyle().Foreground(p.Warning),
		error:    lipgloss.NewStyle().Foreground(p.Error),
		info:     lipgloss.NewStyle().Foreground(p.Info),
		help:     lipgloss.NewStyle().Foreground(p.Muted),
	}
}
