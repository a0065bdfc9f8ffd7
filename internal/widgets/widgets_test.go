package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/jask/jaskcalc/internal/theme"
)

var testLayout = Layout{ButtonWidth: 7, ButtonHeight: 3, ColumnGap: 1, RowGap: 1}

func testKeypad() Keypad {
	row := func(labels ...string) []Button {
		out := make([]Button, 0, len(labels))
		for _, l := range labels {
			out = append(out, Button{Label: l, Variant: theme.Digit})
		}
		return out
	}
	return Keypad{
		Rows:   [][]Button{row("1", "2", "3"), row("4", "5", "6")},
		Layout: testLayout,
	}
}

func TestButtonPressInvokesHandler(t *testing.T) {
	calls := 0
	b := Button{Label: "7", Variant: theme.Digit, OnPress: func() { calls++ }}
	b.Press()
	b.Press()
	require.Equal(t, 2, calls)

	require.NotPanics(t, func() { Button{Label: "x"}.Press() })
}

func TestButtonRenderSize(t *testing.T) {
	for _, v := range []theme.Variant{theme.Primary, theme.Operator, theme.Digit} {
		out := Button{Label: "00", Variant: v}.Render(theme.Default(), 7, 3, false)
		require.Equal(t, 7, lipgloss.Width(out), v.String())
		require.Equal(t, 3, lipgloss.Height(out), v.String())
		require.Contains(t, out, "00")
	}
	require.Empty(t, Button{Label: "1"}.Render(theme.Default(), 0, 3, false))
}

func TestKeypadSize(t *testing.T) {
	k := testKeypad()
	require.Equal(t, 3*7+2*1, k.Width())
	require.Equal(t, 2*3+1*1, k.Height())
	require.Zero(t, Keypad{Layout: testLayout}.Width())
	require.Zero(t, Keypad{Layout: testLayout}.Height())
}

func TestKeypadRenderMatchesGeometry(t *testing.T) {
	k := testKeypad()
	out := k.Render(theme.Default(), Cell{Row: 1, Col: 2})
	require.Equal(t, k.Width(), lipgloss.Width(out))
	require.Equal(t, k.Height(), lipgloss.Height(out))
	for _, label := range []string{"1", "2", "3", "4", "5", "6"} {
		require.Contains(t, out, label)
	}
}

func TestKeypadHitTest(t *testing.T) {
	k := testKeypad()
	tests := []struct {
		name string
		x, y int
		want Cell
		ok   bool
	}{
		{"top left", 0, 0, Cell{0, 0}, true},
		{"inside first", 6, 2, Cell{0, 0}, true},
		{"column gap", 7, 1, Cell{}, false},
		{"second column", 8, 0, Cell{0, 1}, true},
		{"row gap", 3, 3, Cell{}, false},
		{"second row", 3, 4, Cell{1, 0}, true},
		{"last cell", 22, 6, Cell{1, 2}, true},
		{"past right edge", 24, 0, Cell{}, false},
		{"past bottom", 0, 8, Cell{}, false},
		{"negative", -1, 0, Cell{}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := k.HitTest(tt.x, tt.y)
			require.Equal(t, tt.ok, ok)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKeypadAt(t *testing.T) {
	k := testKeypad()
	b, ok := k.At(Cell{Row: 1, Col: 1})
	require.True(t, ok)
	require.Equal(t, "5", b.Label)

	_, ok = k.At(Cell{Row: 2, Col: 0})
	require.False(t, ok)
	_, ok = k.At(Cell{Row: 0, Col: -1})
	require.False(t, ok)
}

func TestDisplayRender(t *testing.T) {
	out := Display{Preview: "12+", Value: "8"}.Render(theme.Default(), 30)
	require.Equal(t, DisplayHeight, lipgloss.Height(out))
	require.Equal(t, 30, lipgloss.Width(out))

	lines := strings.Split(out, "\n")
	require.True(t, strings.HasSuffix(strings.TrimRight(lines[1], " "), "12+"))
	require.True(t, strings.HasSuffix(strings.TrimRight(lines[2], " "), "8"))
}

func TestDisplayRenderEmptyPreviewKeepsHeight(t *testing.T) {
	out := Display{Value: "0"}.Render(theme.Default(), 12)
	require.Equal(t, DisplayHeight, lipgloss.Height(out))
}

func TestFitTail(t *testing.T) {
	require.Equal(t, "123", fitTail("123", 5))
	require.Equal(t, "…456", fitTail("123456", 4))
	require.Equal(t, "…", fitTail("123456", 1))
	require.Equal(t, "", fitTail("123456", 0))
}
