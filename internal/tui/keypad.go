package tui

import (
	"github.com/jask/jaskcalc/internal/calc"
	"github.com/jask/jaskcalc/internal/theme"
)

type keyDef struct {
	label   string
	variant theme.Variant
	input   calc.Input
	keys    []string
}

// keypadRows is the fixed 5x4 layout. keys are the keyboard shortcuts that
// press the same button.
var keypadRows = [][]keyDef{
	{
		{"C", theme.Primary, calc.ClearAll(), []string{"c", "esc", "delete"}},
		{"⌫", theme.Primary, calc.Delete(), []string{"backspace"}},
		{"%", theme.Primary, calc.Op(calc.Modulo), []string{"%"}},
		{"÷", theme.Operator, calc.Op(calc.Divide), []string{"/"}},
	},
	{
		{"7", theme.Digit, calc.Digit("7"), []string{"7"}},
		{"8", theme.Digit, calc.Digit("8"), []string{"8"}},
		{"9", theme.Digit, calc.Digit("9"), []string{"9"}},
		{"×", theme.Operator, calc.Op(calc.Multiply), []string{"*", "x"}},
	},
	{
		{"4", theme.Digit, calc.Digit("4"), []string{"4"}},
		{"5", theme.Digit, calc.Digit("5"), []string{"5"}},
		{"6", theme.Digit, calc.Digit("6"), []string{"6"}},
		{"−", theme.Operator, calc.Op(calc.Subtract), []string{"-"}},
	},
	{
		{"1", theme.Digit, calc.Digit("1"), []string{"1"}},
		{"2", theme.Digit, calc.Digit("2"), []string{"2"}},
		{"3", theme.Digit, calc.Digit("3"), []string{"3"}},
		{"+", theme.Operator, calc.Op(calc.Add), []string{"+"}},
	},
	{
		{"0", theme.Digit, calc.Digit("0"), []string{"0"}},
		{"00", theme.Digit, calc.Digit("00"), nil},
		{".", theme.Digit, calc.Digit("."), []string{"."}},
		{"=", theme.Operator, calc.Equals(), []string{"=", "enter"}},
	},
}
