package main

import (
	"image"
	"testing"

	"github.com/fjl/badcalc/internal/calc"
)

type fixedRand int

func (r fixedRand) IntN(n int) int { return int(r) % n }

func TestPaste(t *testing.T) {
	ui := newUI(nil, calc.New(calc.WithRand(fixedRand(calc.Add))))
	ui.paste("12+3=")
	if d := ui.calc.Display(); d != "15" {
		t.Fatalf("wrong display %q", d)
	}
	// letters are skipped, "c" does not clear and "x" does not multiply
	ui.paste("x abc?")
	if d := ui.calc.Display(); d != "15" {
		t.Fatalf("wrong display %q", d)
	}
	if op, ok := ui.calc.Pending(); !ok || op != calc.Add {
		t.Fatalf("pending operator changed to %v %v", op, ok)
	}
	ui.paste(" 7")
	if d := ui.calc.Display(); d != "7" {
		t.Fatalf("wrong display %q", d)
	}
}

func TestActiveOperator(t *testing.T) {
	ui := newUI(nil, calc.New())
	plus := ui.buttons[3][3]
	minus := ui.buttons[2][3]
	if ui.isActive(plus) {
		t.Fatal("+ active before it was pressed")
	}
	ui.calc.Digit(4)
	plus.action()
	if !ui.isActive(plus) || ui.isActive(minus) {
		t.Fatal("+ not active after press")
	}
	ui.calc.Digit(2)
	if ui.isActive(plus) {
		t.Fatal("+ still active during number entry")
	}
}

func TestButtons(t *testing.T) {
	ui := newUI(nil, calc.New())
	for _, b := range []*button{ui.buttons[1][0], ui.buttons[1][1], ui.buttons[4][2]} {
		b.action()
	}
	if d := ui.calc.Display(); d != "78." {
		t.Fatalf("wrong display %q", d)
	}
	if ui.buttons[4][1] != nil {
		t.Fatal("cell next to the zero button should be empty")
	}
	if ui.buttons[0][0] != ui.clear {
		t.Fatal("clear button not in top left corner")
	}
}

func TestGridCell(t *testing.T) {
	g := grid{rows: 5, cols: 4, spacing: 10}
	size := image.Pt(430, 540)
	if r := g.cell(size, 0, 0); r != image.Rect(0, 0, 100, 100) {
		t.Fatalf("wrong first cell %v", r)
	}
	if r := g.cell(size, 4, 3); r != image.Rect(330, 440, 430, 540) {
		t.Fatalf("wrong last cell %v", r)
	}
}
