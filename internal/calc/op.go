package calc

import (
	"fmt"
	"math/rand/v2"
)

const (
	Add Operator = iota
	Subtract
	Multiply
	Divide
)

// Operator is an arithmetic operator button.
type Operator int

var operators = [...]Operator{Add, Subtract, Multiply, Divide}

func (op Operator) String() string {
	switch op {
	case Add:
		return "+"
	case Subtract:
		return "−"
	case Multiply:
		return "×"
	case Divide:
		return "÷"
	default:
		return fmt.Sprintf("Operator(%d)", int(op))
	}
}

// apply computes the operation.
func (op Operator) apply(x, y float64) float64 {
	switch op {
	case Add:
		return x + y
	case Subtract:
		return x - y
	case Multiply:
		return x * y
	case Divide:
		return x / y
	default:
		panic(fmt.Errorf("unknown operator %d", int(op)))
	}
}

const (
	Clear ControlButton = iota
	Sign
	Percent
	AddButton
	SubtractButton
	MultiplyButton
	DivideButton
	Equals
)

// ControlButton is any keypad button that is not a digit or the decimal point.
type ControlButton int

func (b ControlButton) String() string {
	switch b {
	case Clear:
		return "clear"
	case Sign:
		return "±"
	case Percent:
		return "%"
	case Equals:
		return "="
	}
	if op, ok := b.Operator(); ok {
		return op.String()
	}
	return fmt.Sprintf("ControlButton(%d)", int(b))
}

// Operator returns the operator of an operator button.
func (b ControlButton) Operator() (Operator, bool) {
	switch b {
	case AddButton:
		return Add, true
	case SubtractButton:
		return Subtract, true
	case MultiplyButton:
		return Multiply, true
	case DivideButton:
		return Divide, true
	default:
		return 0, false
	}
}

// Rand is the source of randomness used to pick operators.
type Rand interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// RandomCalculate applies one of the four operators, chosen uniformly at random,
// to x and y. The operator the user actually pressed plays no part in this.
func RandomCalculate(r Rand, x, y float64) float64 {
	if r == nil {
		r = globalRand{}
	}
	return operators[r.IntN(len(operators))].apply(x, y)
}
