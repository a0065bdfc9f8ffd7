package calc

import (
	"math"
	"unicode/utf8"
)

// Operator is the binary operation waiting for its second operand.
type Operator int

const (
	None Operator = iota
	Add
	Subtract
	Multiply
	Divide
	Modulo
)

// Symbol is the operator as shown in the expression preview.
func (o Operator) Symbol() string {
	switch o {
	case Add:
		return "+"
	case Subtract:
		return "-"
	case Multiply:
		return "*"
	case Divide:
		return "/"
	case Modulo:
		return "%"
	default:
		return ""
	}
}

func (o Operator) String() string {
	switch o {
	case Add:
		return "add"
	case Subtract:
		return "subtract"
	case Multiply:
		return "multiply"
	case Divide:
		return "divide"
	case Modulo:
		return "modulo"
	default:
		return "none"
	}
}

func (o Operator) apply(a, b float64) float64 {
	switch o {
	case Add:
		return a + b
	case Subtract:
		return a - b
	case Multiply:
		return a * b
	case Divide:
		return a / b
	case Modulo:
		return math.Mod(a, b)
	default:
		return 0
	}
}

const initialDisplay = "0"

// State is the whole calculator. Transitions never mutate the receiver.
type State struct {
	PendingOperand  string
	DisplayValue    string
	PendingOperator Operator
}

// New returns the state of a freshly mounted calculator.
func New() State {
	return State{DisplayValue: initialDisplay}
}

// Preview is the first display line: the captured operand and its operator.
func (s State) Preview() string {
	return s.PendingOperand + s.PendingOperator.Symbol()
}

// EnterDigit appends token to the display, replacing a lone "0".
// Tokens are not validated, so "1.2.3" is reachable.
func (s State) EnterDigit(token string) State {
	if s.DisplayValue == initialDisplay {
		s.DisplayValue = token
	} else {
		s.DisplayValue += token
	}
	return s
}

// SelectOperator captures the display as the first operand. Selecting again
// before evaluating overwrites both the operand and the operator.
func (s State) SelectOperator(op Operator) State {
	s.PendingOperand = s.DisplayValue
	s.PendingOperator = op
	s.DisplayValue = initialDisplay
	return s
}

// Evaluate applies the pending operator. Without one the result is 0.
func (s State) Evaluate() State {
	a := ParseNumber(s.PendingOperand)
	b := ParseNumber(s.DisplayValue)
	return State{DisplayValue: FormatNumber(s.PendingOperator.apply(a, b))}
}

// Clear resets every field.
func (s State) Clear() State {
	return New()
}

// DeleteLast drops the last character of the display, never leaving it empty.
func (s State) DeleteLast() State {
	if utf8.RuneCountInString(s.DisplayValue) <= 1 {
		s.DisplayValue = initialDisplay
		return s
	}
	_, size := utf8.DecodeLastRuneInString(s.DisplayValue)
	s.DisplayValue = s.DisplayValue[:len(s.DisplayValue)-size]
	return s
}
