package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/theme"
)

// DisplayHeight is the fixed number of lines a Display occupies.
const DisplayHeight = 4

// Display is the two-line readout: pending expression above the current value.
type Display struct {
	Preview string
	Value   string
}

// Render draws the display right-aligned in a block of the given width.
func (d Display) Render(p theme.Palette, width int) string {
	if width <= 0 {
		return ""
	}
	surface := lipgloss.NewStyle().
		Width(width).
		Padding(1, 1).
		Align(lipgloss.Right).
		Background(p.Color(theme.BackgroundGray)).
		Foreground(p.Color(theme.Black))
	inner := width - surface.GetHorizontalPadding()
	preview := lipgloss.NewStyle().Faint(true).Render(fitTail(d.Preview, inner))
	value := lipgloss.NewStyle().Bold(true).Render(fitTail(d.Value, inner))
	return surface.Render(preview + "\n" + value)
}

// fitTail keeps the end of s when it is wider than width.
func fitTail(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return "…" + string(runes[len(runes)-width+1:])
}
