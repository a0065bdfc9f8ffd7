package widgets

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/theme"
)

// Button is a labeled pressable cell. It holds no state of its own; the owner
// supplies OnPress.
type Button struct {
	Label   string
	Variant theme.Variant
	OnPress func()
}

// Press notifies the owner. A nil handler is a no-op.
func (b Button) Press() {
	if b.OnPress != nil {
		b.OnPress()
	}
}

// Render draws the button as a width x height block with a centered label.
func (b Button) Render(p theme.Palette, width, height int, focused bool) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	bg, fg := p.Swatch(b.Variant)
	style := lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Background(bg).
		Foreground(fg)
	if focused {
		style = style.Bold(true).Underline(true)
	}
	return style.Render(b.Label)
}
