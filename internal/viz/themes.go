package viz

import "github.com/charmbracelet/lipgloss"

// Theme is the colour scheme of the animation view.
type Theme struct {
	Name    string
	Primary lipgloss.Color // ball, ground and title
	Text    lipgloss.Color
	Muted   lipgloss.Color
}

var (
	ThemeAqua = Theme{
		Name:    "aqua",
		Primary: lipgloss.Color("86"),
		Text:    lipgloss.Color("252"),
		Muted:   lipgloss.Color("245"),
	}

	ThemeRetro = Theme{
		Name:    "retro",
		Primary: lipgloss.Color("#00ff00"), // green phosphor
		Text:    lipgloss.Color("#88ff88"),
		Muted:   lipgloss.Color("#005500"),
	}

	ThemeSunset = Theme{
		Name:    "sunset",
		Primary: lipgloss.Color("#ff6b6b"),
		Text:    lipgloss.Color("#fff5f5"),
		Muted:   lipgloss.Color("#8b6b8c"),
	}

	ThemeMinimal = Theme{
		Name:    "minimal",
		Primary: lipgloss.Color("#ffffff"),
		Text:    lipgloss.Color("#cccccc"),
		Muted:   lipgloss.Color("#888888"),
	}

	Themes = []Theme{
		ThemeAqua,
		ThemeRetro,
		ThemeSunset,
		ThemeMinimal,
	}
)

// GetTheme returns the theme called name, falling back to the first one.
func GetTheme(name string) Theme {
	return Themes[themeIndex(name)]
}

func themeIndex(name string) int {
	for i, t := range Themes {
		if t.Name == name {
			return i
		}
	}
	return 0
}

// ThemeNames returns list of available theme names
func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}

func (t Theme) canvas() lipgloss.Style {
	return canvasStyle.Foreground(t.Primary)
}

func (t Theme) header() lipgloss.Style {
	return headerStyle.Foreground(t.Primary)
}

func (t Theme) label() lipgloss.Style {
	return labelStyle.Foreground(t.Muted)
}

func (t Theme) value() lipgloss.Style {
	return valueStyle.Foreground(t.Text)
}
