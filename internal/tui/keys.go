package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Digits   key.Binding
	Operator key.Binding
	Equals   key.Binding
	Delete   key.Binding
	Clear    key.Binding
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	Press    key.Binding
	Help     key.Binding
	Quit     key.Binding
}

// Digits, Operator, Equals, Delete and Clear exist for the help view only;
// the keypad shortcuts themselves come from keypadRows.
func newKeyMap() keyMap {
	return keyMap{
		Digits:   key.NewBinding(key.WithKeys("0", "1", "2", "3", "4", "5", "6", "7", "8", "9", "."), key.WithHelp("0-9 .", "enter")),
		Operator: key.NewBinding(key.WithKeys("+", "-", "*", "x", "/", "%"), key.WithHelp("+ - * / %", "operator")),
		Equals:   key.NewBinding(key.WithKeys("=", "enter"), key.WithHelp("=/enter", "evaluate")),
		Delete:   key.NewBinding(key.WithKeys("backspace"), key.WithHelp("⌫", "delete")),
		Clear:    key.NewBinding(key.WithKeys("c", "esc", "delete"), key.WithHelp("c/esc", "clear")),
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:     key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Press:    key.NewBinding(key.WithKeys(" ", "space"), key.WithHelp("space", "press focused")),
		Help:     key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Equals, k.Clear, k.Press, k.Help, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Digits, k.Operator, k.Equals},
		{k.Delete, k.Clear, k.Press},
		{k.Up, k.Down, k.Left, k.Right},
		{k.Help, k.Quit},
	}
}
