// Package calc implements the state machine of a calculator whose operator
// buttons pick a random operation every time they are applied.
package calc

import (
	"strconv"
	"strings"

	"golang.org/x/text/language"
)

const maxDigits = 9

// ClearLabel is the caption of the clear button.
type ClearLabel string

const (
	ClearEntry ClearLabel = "C"
	ClearAll   ClearLabel = "AC"
)

// Calculator holds the calculator state. It consumes button events and keeps
// the display text up to date after every event.
//
// A Calculator is not safe for concurrent use.
type Calculator struct {
	entering   bool
	text       string
	previous   float64
	current    float64
	pending    Operator
	hasPending bool
	clearLabel ClearLabel

	rand    Rand
	numfmt  formatter
	display string
}

// Option configures a Calculator.
type Option func(*Calculator)

// WithRand sets the source used to pick operators.
func WithRand(r Rand) Option {
	return func(c *Calculator) { c.rand = r }
}

// WithLanguage sets the language used for grouping separators.
func WithLanguage(tag language.Tag) Option {
	return func(c *Calculator) { c.numfmt = newFormatter(tag) }
}

// New creates a calculator showing zero.
func New(opts ...Option) *Calculator {
	c := &Calculator{
		clearLabel: ClearAll,
		rand:       globalRand{},
		numfmt:     newFormatter(language.English),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.update()
	return c
}

// Digit processes a digit button. It returns false if the digit was not accepted.
func (c *Calculator) Digit(d int) bool {
	if d < 0 || d > 9 {
		return false
	}
	defer c.update()

	if c.entering {
		if countDigits(c.text) >= maxDigits {
			return false
		}
		c.setText(c.text + strconv.Itoa(d))
	} else {
		c.setEntering(true)
		c.setText(strconv.Itoa(d))
	}
	return true
}

// DecimalPoint processes the decimal point button.
func (c *Calculator) DecimalPoint() {
	defer c.update()

	switch {
	case c.entering && strings.Contains(c.text, "."):
		return
	case c.entering:
		c.setText(c.text + ".")
	default:
		c.setEntering(true)
		c.setText("0.")
	}
}

// Clear wipes the current entry. Pressed as "AC" it also drops the
// pending operator and the previous operand.
func (c *Calculator) Clear() {
	defer c.update()

	c.entering = false
	c.setText("0")
	c.current = 0
	if c.clearLabel == ClearEntry {
		c.clearLabel = ClearAll
	} else {
		c.hasPending = false
		c.previous = 0
	}
}

// Sign toggles the sign of the number being entered. Outside of number entry
// the value is multiplied by one.
func (c *Calculator) Sign() {
	defer c.update()

	if !c.entering {
		c.current *= 1
		return
	}
	if strings.HasPrefix(c.text, "-") {
		c.setText(strings.TrimPrefix(c.text, "-"))
	} else {
		c.setText("-" + c.text)
	}
}

// Percent divides the value by 100.
func (c *Calculator) Percent() {
	defer c.update()

	if c.entering {
		c.entering = false
		c.current = parseNumber(c.text)
	}
	c.current /= 100
}

// Operator processes an operator button. The operator replaces any operator
// that is already pending.
func (c *Calculator) Operator(op Operator) {
	defer c.update()

	if c.entering {
		c.entering = false
		if c.hasPending {
			result := RandomCalculate(c.rand, c.previous, c.current)
			c.previous = c.current
			c.current = result
		} else {
			c.previous = parseNumber(c.text)
		}
	}
	c.pending = op
	c.hasPending = true
}

// Equals applies the pending operator, or rather a random one. The pending
// operator stays set, so pressing equals again calculates again.
func (c *Calculator) Equals() {
	if !c.hasPending {
		return
	}
	defer c.update()

	result := RandomCalculate(c.rand, c.previous, c.current)
	if c.entering {
		c.previous = c.current
		c.entering = false
	}
	c.current = result
}

// Press processes a control button.
func (c *Calculator) Press(b ControlButton) {
	switch b {
	case Clear:
		c.Clear()
	case Sign:
		c.Sign()
	case Percent:
		c.Percent()
	case Equals:
		c.Equals()
	default:
		if op, ok := b.Operator(); ok {
			c.Operator(op)
		}
	}
}

// Display returns the text shown on the display.
func (c *Calculator) Display() string {
	return c.display
}

// ClearLabel returns the caption of the clear button.
func (c *Calculator) ClearLabel() ClearLabel {
	return c.clearLabel
}

// Text returns the number being entered.
func (c *Calculator) Text() string { return c.text }

// Value returns the current value.
func (c *Calculator) Value() float64 { return c.current }

// Previous returns the operand captured before the pending operator.
func (c *Calculator) Previous() float64 { return c.previous }

// Entering tells whether a number is being typed.
func (c *Calculator) Entering() bool { return c.entering }

// Pending returns the pending operator.
func (c *Calculator) Pending() (Operator, bool) {
	return c.pending, c.hasPending
}

// setEntering switches number entry on or off. Starting a new number turns
// the clear button into "C".
func (c *Calculator) setEntering(entering bool) {
	if !c.entering && entering {
		c.clearLabel = ClearEntry
	}
	c.entering = entering
}

// setText sets the entry text and keeps the current value in sync with it.
func (c *Calculator) setText(text string) {
	c.text = text
	if v, err := strconv.ParseFloat(text, 64); err == nil {
		c.current = v
	}
}

// update renders the display. It runs after every state change.
func (c *Calculator) update() {
	value := c.current
	if c.entering {
		if v, err := strconv.ParseFloat(c.text, 64); err == nil {
			value = v
		}
	}
	s := c.numfmt.format(value)
	if c.entering && strings.HasSuffix(c.text, ".") {
		s += "."
	}
	c.display = s
}

// parseNumber parses entry text. Entry text is always numeric, so the
// fallback to zero is never taken for input produced by the handlers.
func parseNumber(text string) float64 {
	v, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return 0
	}
	return v
}

// countDigits counts the decimal digits in s.
func countDigits(s string) int {
	n := 0
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			n++
		}
	}
	return n
}
