package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/theme"
)

// Layout fixes the size of every keypad cell and the gaps between them.
type Layout struct {
	ButtonWidth  int
	ButtonHeight int
	ColumnGap    int
	RowGap       int
}

// Cell addresses a button in the grid.
type Cell struct {
	Row int
	Col int
}

// Keypad is a grid of buttons drawn on the background-light surface.
type Keypad struct {
	Rows   [][]Button
	Layout Layout
}

func (k Keypad) columns() int {
	cols := 0
	for _, row := range k.Rows {
		cols = max(cols, len(row))
	}
	return cols
}

// Width is the rendered width in cells.
func (k Keypad) Width() int {
	cols := k.columns()
	if cols == 0 {
		return 0
	}
	return cols*k.Layout.ButtonWidth + (cols-1)*k.Layout.ColumnGap
}

// Height is the rendered height in lines.
func (k Keypad) Height() int {
	rows := len(k.Rows)
	if rows == 0 {
		return 0
	}
	return rows*k.Layout.ButtonHeight + (rows-1)*k.Layout.RowGap
}

// At returns the button at c.
func (k Keypad) At(c Cell) (Button, bool) {
	if c.Row < 0 || c.Row >= len(k.Rows) {
		return Button{}, false
	}
	row := k.Rows[c.Row]
	if c.Col < 0 || c.Col >= len(row) {
		return Button{}, false
	}
	return row[c.Col], true
}

// HitTest maps a position relative to the keypad's top-left corner to the
// button under it. Gaps between buttons miss.
func (k Keypad) HitTest(x, y int) (Cell, bool) {
	l := k.Layout
	if x < 0 || y < 0 || l.ButtonWidth <= 0 || l.ButtonHeight <= 0 {
		return Cell{}, false
	}
	stepX := l.ButtonWidth + l.ColumnGap
	stepY := l.ButtonHeight + l.RowGap
	if x%stepX >= l.ButtonWidth || y%stepY >= l.ButtonHeight {
		return Cell{}, false
	}
	c := Cell{Row: y / stepY, Col: x / stepX}
	if _, ok := k.At(c); !ok {
		return Cell{}, false
	}
	return c, true
}

// Render draws the grid, highlighting the focused cell.
func (k Keypad) Render(p theme.Palette, focus Cell) string {
	l := k.Layout
	surface := lipgloss.NewStyle().Background(p.Color(theme.BackgroundLight))
	colGap := surface.Width(l.ColumnGap).Height(l.ButtonHeight).Render("")
	rowGap := ""
	if l.RowGap > 0 {
		line := surface.Render(strings.Repeat(" ", k.Width()))
		rowGap = strings.TrimSuffix(strings.Repeat(line+"\n", l.RowGap), "\n")
	}

	rows := make([]string, 0, 2*len(k.Rows))
	for r, row := range k.Rows {
		cells := make([]string, 0, 2*len(row))
		for c, b := range row {
			if c > 0 && l.ColumnGap > 0 {
				cells = append(cells, colGap)
			}
			focused := focus == Cell{Row: r, Col: c}
			cells = append(cells, b.Render(p, l.ButtonWidth, l.ButtonHeight, focused))
		}
		if r > 0 && rowGap != "" {
			rows = append(rows, rowGap)
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, cells...))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
