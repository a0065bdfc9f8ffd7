package calc

import "fmt"

// InputKind selects which transition an Input drives.
type InputKind int

const (
	InputDigit InputKind = iota
	InputOperator
	InputEquals
	InputClear
	InputDelete
)

// Input is one keypad press.
type Input struct {
	Kind     InputKind
	Token    string
	Operator Operator
}

func Digit(token string) Input { return Input{Kind: InputDigit, Token: token} }

func Op(op Operator) Input { return Input{Kind: InputOperator, Operator: op} }

func Equals() Input { return Input{Kind: InputEquals} }

func ClearAll() Input { return Input{Kind: InputClear} }

func Delete() Input { return Input{Kind: InputDelete} }

func (in Input) String() string {
	switch in.Kind {
	case InputDigit:
		return fmt.Sprintf("digit(%s)", in.Token)
	case InputOperator:
		return fmt.Sprintf("operator(%s)", in.Operator)
	case InputEquals:
		return "equals"
	case InputClear:
		return "clear"
	case InputDelete:
		return "delete"
	default:
		return fmt.Sprintf("input(%d)", int(in.Kind))
	}
}

// Apply runs the transition for in. Unknown kinds leave s unchanged.
func (s State) Apply(in Input) State {
	switch in.Kind {
	case InputDigit:
		return s.EnterDigit(in.Token)
	case InputOperator:
		return s.SelectOperator(in.Operator)
	case InputEquals:
		return s.Evaluate()
	case InputClear:
		return s.Clear()
	case InputDelete:
		return s.DeleteLast()
	}
	return s
}
