package viz

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
)

func statusStyles(t Theme) (bar, label, value, hint lipgloss.Style) {
	bg := lipgloss.Color(t.Background)
	bar = lipgloss.NewStyle().Background(bg).Foreground(t.Text)
	label = lipgloss.NewStyle().Background(bg).Foreground(t.Muted)
	value = lipgloss.NewStyle().Background(bg).Foreground(t.Accent).Bold(true)
	hint = lipgloss.NewStyle().Background(bg).Foreground(t.Muted).Italic(true)
	return
}

// ParseColor parses a hex color, falling back when s is not valid.
func ParseColor(s, fallback string) colorful.Color {
	if c, err := colorful.Hex(s); err == nil {
		return c
	}
	c, _ := colorful.Hex(fallback)
	return c
}
