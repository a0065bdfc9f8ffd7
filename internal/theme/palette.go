// Package theme provides the named color palette and the variant color table
// used by keypad buttons.
package theme

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/charmbracelet/lipgloss"
)

// Color names understood by the palette.
const (
	DarkButton      = "dark-button"
	LightButton     = "light-button"
	OperatorButton  = "operator-button"
	Black           = "black"
	White           = "white"
	BackgroundLight = "background-light"
	BackgroundGray  = "background-gray"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

var defaultColors = map[string]lipgloss.Color{
	DarkButton:      "#505765",
	LightButton:     "#e0e2e6",
	OperatorButton:  "#ff9f0a",
	Black:           "#000000",
	White:           "#ffffff",
	BackgroundLight: "#f5f6f8",
	BackgroundGray:  "#c7cbd1",
}

// Palette maps color names to terminal colors.
type Palette struct {
	colors map[string]lipgloss.Color
}

// Default returns the built-in palette.
func Default() Palette {
	colors := make(map[string]lipgloss.Color, len(defaultColors))
	for name, c := range defaultColors {
		colors[name] = c
	}
	return Palette{colors: colors}
}

// Names lists every known color name in sorted order.
func Names() []string {
	names := make([]string, 0, len(defaultColors))
	for name := range defaultColors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Color returns the named color. Unknown names fall back to no color.
func (p Palette) Color(name string) lipgloss.Color {
	return p.colors[name]
}

// WithOverrides returns a copy of p with the given name -> "#rrggbb" entries
// replaced. Names are matched case-insensitively.
func (p Palette) WithOverrides(overrides map[string]string) (Palette, error) {
	out := Palette{colors: make(map[string]lipgloss.Color, len(p.colors))}
	for name, c := range p.colors {
		out.colors[name] = c
	}

	keys := make([]string, 0, len(overrides))
	for k := range overrides {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, raw := range keys {
		name := strings.ToLower(strings.TrimSpace(raw))
		if _, ok := defaultColors[name]; !ok {
			return p, unknownColorError(name)
		}
		value := strings.TrimSpace(overrides[raw])
		if !hexColor.MatchString(value) {
			return p, fmt.Errorf("palette %s: invalid color %q (want #rrggbb)", name, value)
		}
		out.colors[name] = lipgloss.Color(value)
	}
	return out, nil
}

func unknownColorError(name string) error {
	if s := suggest(name); s != "" {
		return fmt.Errorf("unknown palette color %q (did you mean %q?)", name, s)
	}
	return fmt.Errorf("unknown palette color %q", name)
}

// suggest returns the closest known name within a small edit distance.
func suggest(name string) string {
	best, bestDist := "", 4
	for _, known := range Names() {
		if d := levenshtein.ComputeDistance(name, known); d < bestDist {
			best, bestDist = known, d
		}
	}
	return best
}
