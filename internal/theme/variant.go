package theme

import "github.com/charmbracelet/lipgloss"

// Variant is the visual category of a keypad button. It changes color only.
type Variant int

const (
	Primary Variant = iota
	Operator
	Digit
)

func (v Variant) String() string {
	switch v {
	case Primary:
		return "primary"
	case Operator:
		return "operator"
	case Digit:
		return "digit"
	default:
		return "unknown"
	}
}

type swatch struct {
	background string
	foreground string
}

var variantSwatches = map[Variant]swatch{
	Primary:  {background: DarkButton, foreground: White},
	Operator: {background: OperatorButton, foreground: White},
	Digit:    {background: LightButton, foreground: Black},
}

// VariantColors returns the background and foreground color names of v.
// Unknown variants use the digit colors.
func VariantColors(v Variant) (background, foreground string) {
	s, ok := variantSwatches[v]
	if !ok {
		s = variantSwatches[Digit]
	}
	return s.background, s.foreground
}

// Swatch resolves the colors of v against p.
func (p Palette) Swatch(v Variant) (background, foreground lipgloss.Color) {
	bg, fg := VariantColors(v)
	return p.Color(bg), p.Color(fg)
}
