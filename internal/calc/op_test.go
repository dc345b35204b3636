package calc

import (
	"math"
	"testing"
)

func TestRandomCalculateStub(t *testing.T) {
	want := map[Operator]float64{Add: 30, Subtract: 18, Multiply: 144, Divide: 4}
	for op, result := range want {
		if got := RandomCalculate(fixed(op), 24, 6); got != result {
			t.Errorf("%v: got %v, want %v", op, got, result)
		}
	}
}

func TestRandomCalculateDivideByZero(t *testing.T) {
	if v := RandomCalculate(fixed(Divide), -1, 0); !math.IsInf(v, -1) {
		t.Fatalf("got %v, want -Inf", v)
	}
}

func TestRandomCalculateDistribution(t *testing.T) {
	const trials = 40000
	counts := make(map[float64]int)
	for i := 0; i < trials; i++ {
		counts[RandomCalculate(nil, 24, 6)]++
	}
	for _, result := range []float64{30, 18, 144, 4} {
		n := counts[result]
		if n < trials/4*9/10 || n > trials/4*11/10 {
			t.Errorf("result %v seen %d times in %d trials", result, n, trials)
		}
	}
	if len(counts) != 4 {
		t.Errorf("unexpected results: %v", counts)
	}
}

func TestControlButtonOperator(t *testing.T) {
	buttons := map[ControlButton]Operator{
		AddButton:      Add,
		SubtractButton: Subtract,
		MultiplyButton: Multiply,
		DivideButton:   Divide,
	}
	for b, want := range buttons {
		if op, ok := b.Operator(); !ok || op != want {
			t.Errorf("%v: got %v %v", b, op, ok)
		}
	}
	for _, b := range []ControlButton{Clear, Sign, Percent, Equals} {
		if _, ok := b.Operator(); ok {
			t.Errorf("%v is not an operator", b)
		}
	}
}
