package tui

import (
	"io"
	"log/slog"
	"math"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/config"
	"github.com/jask/jaskcalc/internal/theme"
	"github.com/jask/jaskcalc/internal/widgets"
)

// displayGap is the number of lines between the display and the keypad.
const displayGap = 1

// App is the calculator screen: a display over a keypad whose buttons feed
// the calc state machine.
type App struct {
	state     calc.State
	palette   theme.Palette
	keypad    widgets.Keypad
	shortcuts []shortcut
	keys      keyMap
	help      help.Model
	focus     widgets.Cell
	width     int
	height    int
	log       *slog.Logger
}

type shortcut struct {
	binding key.Binding
	cell    widgets.Cell
}

// New builds the screen. A nil logger discards.
func New(ui config.UIConfig, palette theme.Palette, log *slog.Logger) *App {
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	a := &App{
		state:   calc.New(),
		palette: palette,
		keys:    newKeyMap(),
		help:    help.New(),
		log:     log,
	}
	a.keypad = widgets.Keypad{
		Layout: widgets.Layout{
			ButtonWidth:  ui.ButtonWidth,
			ButtonHeight: ui.ButtonHeight,
			ColumnGap:    ui.ColumnGap,
			RowGap:       ui.RowGap,
		},
	}
	for r, defs := range keypadRows {
		row := make([]widgets.Button, 0, len(defs))
		for c, def := range defs {
			def := def
			row = append(row, widgets.Button{
				Label:   def.label,
				Variant: def.variant,
				OnPress: func() { a.apply(def.label, def.input) },
			})
			if len(def.keys) > 0 {
				a.shortcuts = append(a.shortcuts, shortcut{
					binding: key.NewBinding(key.WithKeys(def.keys...)),
					cell:    widgets.Cell{Row: r, Col: c},
				})
			}
		}
		a.keypad.Rows = append(a.keypad.Rows, row)
	}
	return a
}

// State returns the current calculator state.
func (a *App) State() calc.State { return a.state }

// Focus returns the keypad cell under the focus cursor.
func (a *App) Focus() widgets.Cell { return a.focus }

func (a *App) Init() tea.Cmd { return nil }

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = m.Width
		a.height = m.Height
		a.help.Width = m.Width
	case tea.KeyMsg:
		return a.handleKey(m)
	case tea.MouseMsg:
		if m.Action != tea.MouseActionPress || m.Button != tea.MouseButtonLeft {
			return a, nil
		}
		if cell, ok := a.keypad.HitTest(m.X-a.offsetX(), m.Y-a.keypadTop()); ok {
			a.pressCell(cell)
		}
	}
	return a, nil
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, a.keys.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keys.Help):
		a.help.ShowAll = !a.help.ShowAll
		return a, nil
	case key.Matches(msg, a.keys.Up):
		a.moveFocus(-1, 0)
		return a, nil
	case key.Matches(msg, a.keys.Down):
		a.moveFocus(1, 0)
		return a, nil
	case key.Matches(msg, a.keys.Left):
		a.moveFocus(0, -1)
		return a, nil
	case key.Matches(msg, a.keys.Right):
		a.moveFocus(0, 1)
		return a, nil
	case key.Matches(msg, a.keys.Press):
		a.pressCell(a.focus)
		return a, nil
	}
	for _, s := range a.shortcuts {
		if key.Matches(msg, s.binding) {
			a.pressCell(s.cell)
			break
		}
	}
	return a, nil
}

// pressCell presses the button at c and moves the focus cursor onto it.
func (a *App) pressCell(c widgets.Cell) {
	b, ok := a.keypad.At(c)
	if !ok {
		return
	}
	a.focus = c
	b.Press()
}

func (a *App) apply(label string, in calc.Input) {
	before := a.state
	a.state = a.state.Apply(in)
	a.log.Debug("press",
		"label", label,
		"input", in.String(),
		"preview", a.state.Preview(),
		"display", a.state.DisplayValue,
	)
	if in.Kind != calc.InputEquals {
		return
	}
	if v := calc.ParseNumber(a.state.DisplayValue); math.IsNaN(v) || math.IsInf(v, 0) {
		a.log.Debug("non-finite result",
			"operand", before.PendingOperand,
			"operator", before.PendingOperator.String(),
			"second", before.DisplayValue,
			"result", a.state.DisplayValue,
		)
	}
}

func (a *App) moveFocus(dr, dc int) {
	rows := a.keypad.Rows
	if len(rows) == 0 {
		return
	}
	r := clamp(a.focus.Row+dr, 0, len(rows)-1)
	c := clamp(a.focus.Col+dc, 0, len(rows[r])-1)
	a.focus = widgets.Cell{Row: r, Col: c}
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// offsetX is the left margin that centers the calculator horizontally.
func (a *App) offsetX() int {
	if a.width == 0 {
		return 0
	}
	return max(0, (a.width-a.keypad.Width())/2)
}

func (a *App) keypadTop() int {
	return widgets.DisplayHeight + displayGap
}

func (a *App) View() string {
	width := a.keypad.Width()
	display := widgets.Display{
		Preview: a.state.Preview(),
		Value:   a.state.DisplayValue,
	}.Render(a.palette, width)

	parts := []string{display}
	spacer := lipgloss.NewStyle().Width(width).Background(a.palette.Color(theme.BackgroundLight)).Render("")
	for i := 0; i < displayGap; i++ {
		parts = append(parts, spacer)
	}
	parts = append(parts, a.keypad.Render(a.palette, a.focus))
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)
	if off := a.offsetX(); off > 0 {
		body = lipgloss.NewStyle().MarginLeft(off).Render(body)
	}
	return a.placeWithFooter(body, a.help.View(a.keys))
}

func (a *App) placeWithFooter(body, footer string) string {
	if a.height == 0 {
		return body + "\n" + footer
	}
	contentHeight := a.height - lipgloss.Height(footer)
	if contentHeight < 1 || lipgloss.Height(body) >= contentHeight {
		return body + "\n" + footer
	}
	main := lipgloss.Place(a.width, contentHeight, lipgloss.Left, lipgloss.Top, body)
	return main + "\n" + footer
}
