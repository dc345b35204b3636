package main

import (
	"flag"
	"image"
	"image/color"
	"log"
	"os"
	"unicode"

	"gioui.org/app"
	"gioui.org/font/gofont"
	"gioui.org/io/clipboard"
	"gioui.org/io/key"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/op/clip"
	"gioui.org/op/paint"
	"gioui.org/text"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"golang.org/x/text/language"

	"github.com/fjl/badcalc/internal/calc"
)

var (
	digitColor       = color.NRGBA{51, 51, 51, 255}
	specialColor     = color.NRGBA{165, 165, 165, 255}
	specialText      = color.NRGBA{0, 0, 0, 255}
	opColor          = color.NRGBA{255, 149, 0, 255}
	activeOpColor    = color.NRGBA{255, 200, 120, 255}
	backgroundColor  = color.NRGBA{0, 0, 0, 255}
	resultColor      = color.NRGBA{255, 255, 255, 255}
	resultBackground = color.NRGBA{0, 0, 0, 255}
	buttonText       = color.NRGBA{255, 255, 255, 255}

	designWidth  = unit.Dp(270)
	designHeight = unit.Dp(345)
	controlInset = unit.Dp(6)
)

// calcUI is the user interface of the calculator.
type calcUI struct {
	calc    *calc.Calculator
	theme   *material.Theme
	clear   *button
	buttons [5][4]*button

	gridSpacing int
}

func newUI(theme *material.Theme, c *calc.Calculator) *calcUI {
	ui := &calcUI{calc: c, theme: theme}
	ui.clear = ui.special(string(c.ClearLabel()), calc.Clear)
	sign := ui.special("±", calc.Sign)
	percent := ui.special("%", calc.Percent)
	decimal := ui.digit(".", c.DecimalPoint)
	ui.buttons = [5][4]*button{
		{ui.clear, sign, percent, ui.op(calc.DivideButton)},
		{ui.num(7), ui.num(8), ui.num(9), ui.op(calc.MultiplyButton)},
		{ui.num(4), ui.num(5), ui.num(6), ui.op(calc.SubtractButton)},
		{ui.num(1), ui.num(2), ui.num(3), ui.op(calc.AddButton)},
		{ui.num(0), nil, decimal, ui.op(calc.Equals)},
	}
	return ui
}

// num creates a digit button.
func (ui *calcUI) num(d int) *button {
	return ui.digit(string(rune('0'+d)), func() { ui.calc.Digit(d) })
}

func (ui *calcUI) digit(label string, fn func()) *button {
	b := newButton(label, digitColor, buttonText)
	b.action = fn
	return b
}

// op creates an operation button.
func (ui *calcUI) op(cb calc.ControlButton) *button {
	b := newButton(cb.String(), opColor, buttonText)
	b.action = func() { ui.calc.Press(cb) }
	if op, ok := cb.Operator(); ok {
		b.op, b.isOp = op, true
	}
	return b
}

// special creates a special operation button.
func (ui *calcUI) special(label string, cb calc.ControlButton) *button {
	b := newButton(label, specialColor, specialText)
	b.action = func() { ui.calc.Press(cb) }
	return b
}

// Layout draws the UI.
func (ui *calcUI) Layout(gtx layout.Context) layout.Dimensions {
	// Adapt design for screen size.
	scaleFactor := float32(gtx.Constraints.Max.X) / float32(gtx.Dp(designWidth))
	ui.gridSpacing = gtx.Dp(controlInset * unit.Dp(scaleFactor))

	// Handle key events.
	ui.layoutInput(gtx)

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		flex := layout.Flex{Axis: layout.Vertical, Spacing: layout.SpaceStart}
		return flex.Layout(gtx,
			layout.Flexed(20, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutResult)
			}),
			layout.Flexed(70, func(gtx layout.Context) layout.Dimensions {
				return inset.Layout(gtx, ui.layoutButtons)
			}),
		)
	})
}

func (ui *calcUI) layoutResult(gtx layout.Context) layout.Dimensions {
	rect := image.Rectangle{Max: gtx.Constraints.Max}
	paint.FillShape(gtx.Ops, resultBackground, clip.Rect(rect).Op())

	inset := layout.UniformInset(controlInset)
	return inset.Layout(gtx, ui.layoutResultText)
}

func (ui *calcUI) layoutResultText(gtx layout.Context) layout.Dimensions {
	// Scale font based on height.
	fontSizePx := float32(gtx.Constraints.Max.Y) / 1.1
	fontSizeSp := unit.Sp(fontSizePx / gtx.Metric.PxPerSp)

	l := material.Label(ui.theme, fontSizeSp, ui.calc.Display())
	l.Color = resultColor
	l.Alignment = text.End
	l.MaxLines = 1
	return shrinkToFit(gtx, l.Layout)
}

func (ui *calcUI) layoutButtons(gtx layout.Context) layout.Dimensions {
	g := grid{
		rows:    len(ui.buttons),
		cols:    len(ui.buttons[0]),
		spacing: ui.gridSpacing,
	}
	return g.layout(gtx, func(row, col int, gtx layout.Context) layout.Dimensions {
		if b := ui.buttons[row][col]; b != nil {
			return ui.layoutButton(gtx, b)
		}
		return layout.Dimensions{}
	})
}

func (ui *calcUI) layoutButton(gtx layout.Context, b *button) layout.Dimensions {
	if b.clicker.Clicked(gtx) && b.action != nil {
		b.action()
		ui.clear.text = string(ui.calc.ClearLabel())
	}

	return b.clicker.Layout(gtx, func(gtx layout.Context) layout.Dimensions {
		textSizePx := float32(gtx.Constraints.Max.Y) / 2.2
		textSizeSp := unit.Sp(textSizePx / gtx.Metric.PxPerSp)

		// Buttons are round.
		radius := gtx.Constraints.Max.Y / 2

		style := material.Button(ui.theme, &b.clicker, b.text)
		style.Background = b.color
		style.Color = b.textColor
		style.Inset = layout.Inset{}
		style.TextSize = textSizeSp
		style.CornerRadius = unit.Dp(float32(radius) / gtx.Metric.PxPerDp)
		if ui.isActive(b) {
			style.Background = activeOpColor
		}
		return style.Layout(gtx)
	})
}

// isActive tells whether b is the pending operator. The button is shown as active
// until the next number is being entered.
func (ui *calcUI) isActive(b *button) bool {
	if !b.isOp || ui.calc.Entering() {
		return false
	}
	op, ok := ui.calc.Pending()
	return ok && op == b.op
}

// layoutInput registers the global key handler.
func (ui *calcUI) layoutInput(gtx layout.Context) {
	// Register handler for key events.
	input := key.InputOp{
		Tag:  ui,
		Hint: key.HintNumeric,
		Keys: "Short-[C,V]|(Shift)-[0,1,2,3,4,5,6,7,8,9,.,+,*,/,%,=,⌤,⏎,⎋]|(Alt)-(Shift)-[-]",
	}
	input.Add(gtx.Ops)

	// Request keyboard focus. This is required to make the Return key work.
	key.FocusOp{Tag: ui}.Add(gtx.Ops)

	for _, ev := range gtx.Queue.Events(ui) {
		switch ev := ev.(type) {
		case key.Event:
			switch {
			case isCopy(ev):
				op := clipboard.WriteOp{Text: ui.calc.Display()}
				op.Add(gtx.Ops)
			case isPaste(ev):
				op := clipboard.ReadOp{Tag: ui}
				op.Add(gtx.Ops)
			default:
				ui.handleKey(ev)
			}

		case clipboard.Event:
			ui.paste(ev.Text)
		}
	}
	ui.clear.text = string(ui.calc.ClearLabel())
}

func isCopy(e key.Event) bool {
	return e.Name == "C" && e.Modifiers.Contain(key.ModShortcut)
}

func isPaste(e key.Event) bool {
	return e.Name == "V" && e.Modifiers.Contain(key.ModShortcut)
}

// handleKey handles a key event.
func (ui *calcUI) handleKey(e key.Event) {
	if e.State == key.Release {
		return
	}

	switch e.Name {
	case key.NameEnter, key.NameReturn:
		ui.calc.Equals()
	case key.NameEscape:
		ui.calc.Clear()
	case "-":
		if e.Modifiers.Contain(key.ModAlt) {
			ui.calc.Sign()
		} else {
			ui.calc.Operator(calc.Subtract)
		}
	default:
		if err := ui.calc.PressKey(e.Name); err != nil {
			log.Printf("key %q: %v", e.Name, err)
		}
	}
}

// paste presses the digits and symbols of the pasted text. Letters are
// skipped, even those that name a key like "c" or "x", and so is anything
// else that isn't a key.
func (ui *calcUI) paste(s string) {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			continue
		}
		if err := ui.calc.PressKey(string(r)); err != nil {
			log.Printf("paste: %v", err)
		}
	}
}

// button is a clickable button.
type button struct {
	op     calc.Operator
	isOp   bool
	text   string
	action func()

	color     color.NRGBA
	textColor color.NRGBA
	clicker   widget.Clickable
}

func newButton(text string, bg, fg color.NRGBA) *button {
	return &button{text: text, color: bg, textColor: fg}
}

func main() {
	lang := flag.String("lang", "en", "language of the display's number format")
	flag.Parse()

	tag, err := language.Parse(*lang)
	if err != nil {
		log.Fatalf("invalid -lang %q: %v", *lang, err)
	}

	var (
		size     = app.Size(designWidth, designHeight)
		statusBg = app.StatusColor(backgroundColor)
		sysBg    = app.NavigationColor(backgroundColor)
		title    = app.Title("BadCalc")
		portrait = app.PortraitOrientation.Option()
	)
	go func() {
		w := app.NewWindow(statusBg, sysBg, size, title, portrait)
		w.Option(app.MinSize(designWidth, designHeight))

		if err := loop(w, calc.New(calc.WithLanguage(tag))); err != nil {
			log.Println(err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	app.Main()
}

// loop is the main loop of the app.
func loop(w *app.Window, c *calc.Calculator) error {
	var (
		th  = material.NewTheme()
		ui  = newUI(th, c)
		ops op.Ops
	)
	th.Shaper = text.NewShaper(text.WithCollection(gofont.Collection()))

	for {
		switch e := w.NextEvent().(type) {
		case system.DestroyEvent:
			return e.Err
		case system.FrameEvent:
			gtx := layout.NewContext(&ops, e)
			paint.Fill(gtx.Ops, backgroundColor)
			ui.Layout(gtx)
			e.Frame(gtx.Ops)
		}
	}
}
