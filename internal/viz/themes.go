package viz

import "github.com/charmbracelet/lipgloss"

// Theme is a layer palette plus the status bar colors.
type Theme struct {
	Name       string
	Circle     string
	Background string
	Text       lipgloss.Color
	Muted      lipgloss.Color
	Accent     lipgloss.Color
}

var (
	ThemeMidnight = Theme{
		Name:       "midnight",
		Circle:     "#005A8D",
		Background: "#0B0B39",
		Text:       lipgloss.Color("#e0f0ff"),
		Muted:      lipgloss.Color("#4488aa"),
		Accent:     lipgloss.Color("#00a8cc"),
	}

	ThemeEmber = Theme{
		Name:       "ember",
		Circle:     "#F5B041",
		Background: "#1B1B1B",
		Text:       lipgloss.Color("#fff5f5"),
		Muted:      lipgloss.Color("#8b6b8c"),
		Accent:     lipgloss.Color("#ff6b6b"),
	}

	ThemeMint = Theme{
		Name:       "mint",
		Circle:     "#3EB489",
		Background: "#0D1F1A",
		Text:       lipgloss.Color("#e8fff5"),
		Muted:      lipgloss.Color("#4f7d6d"),
		Accent:     lipgloss.Color("#88ff88"),
	}

	ThemeMono = Theme{
		Name:       "mono",
		Circle:     "#FFFFFF",
		Background: "#000000",
		Text:       lipgloss.Color("#ffffff"),
		Muted:      lipgloss.Color("#888888"),
		Accent:     lipgloss.Color("#cccccc"),
	}

	Themes = []Theme{
		ThemeMidnight,
		ThemeEmber,
		ThemeMint,
		ThemeMono,
	}
)

// GetTheme returns a theme by name
func GetTheme(name string) Theme {
	for _, t := range Themes {
		if t.Name == name {
			return t
		}
	}
	return ThemeMidnight
}

// NextTheme returns the theme after the named one, wrapping around.
func NextTheme(name string) Theme {
	for i, t := range Themes {
		if t.Name == name {
			return Themes[(i+1)%len(Themes)]
		}
	}
	return Themes[0]
}

func ThemeNames() []string {
	names := make([]string, len(Themes))
	for i, t := range Themes {
		names[i] = t.Name
	}
	return names
}
