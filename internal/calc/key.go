package calc

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"
)

// ErrUnknownKey is returned for key names that are not on the keypad.
var ErrUnknownKey = errors.New("unknown key")

// Key is a single keypad button.
type Key struct {
	digit   int // -1 unless the key is a digit
	decimal bool
	button  ControlButton
}

var keyNames = map[string]Key{
	".":     {digit: -1, decimal: true},
	",":     {digit: -1, decimal: true},
	"c":     {digit: -1, button: Clear},
	"ac":    {digit: -1, button: Clear},
	"clear": {digit: -1, button: Clear},
	"esc":   {digit: -1, button: Clear},
	"±":     {digit: -1, button: Sign},
	"sign":  {digit: -1, button: Sign},
	"neg":   {digit: -1, button: Sign},
	"%":     {digit: -1, button: Percent},
	"+":     {digit: -1, button: AddButton},
	"-":     {digit: -1, button: SubtractButton},
	"−":     {digit: -1, button: SubtractButton},
	"*":     {digit: -1, button: MultiplyButton},
	"x":     {digit: -1, button: MultiplyButton},
	"×":     {digit: -1, button: MultiplyButton},
	"/":     {digit: -1, button: DivideButton},
	"÷":     {digit: -1, button: DivideButton},
	"=":     {digit: -1, button: Equals},
	"enter": {digit: -1, button: Equals},
}

// ParseKey resolves a key name such as "7", ".", "AC", "±" or "÷".
// Names are case-insensitive.
func ParseKey(name string) (Key, error) {
	if len(name) == 1 && name[0] >= '0' && name[0] <= '9' {
		return Key{digit: int(name[0] - '0')}, nil
	}
	if k, ok := keyNames[strings.ToLower(name)]; ok {
		return k, nil
	}
	return Key{}, fmt.Errorf("%w %q", ErrUnknownKey, name)
}

func (k Key) String() string {
	switch {
	case k.digit >= 0:
		return fmt.Sprint(k.digit)
	case k.decimal:
		return "."
	default:
		return k.button.String()
	}
}

// Apply presses the key on c.
func (k Key) Apply(c *Calculator) {
	switch {
	case k.digit >= 0:
		c.Digit(k.digit)
	case k.decimal:
		c.DecimalPoint()
	default:
		c.Press(k.button)
	}
}

// PressKey presses the named key.
func (c *Calculator) PressKey(name string) error {
	k, err := ParseKey(name)
	if err != nil {
		return err
	}
	k.Apply(c)
	return nil
}

// SplitKeys splits a line of input into key names. Words that name a key are
// kept whole, any other word is split into its characters, so "24+6=" and
// "2 4 + 6 =" give the same keys.
func SplitKeys(line string) []string {
	var keys []string
	for _, word := range strings.Fields(line) {
		if _, err := ParseKey(word); err == nil {
			keys = append(keys, word)
			continue
		}
		for len(word) > 0 {
			_, size := utf8.DecodeRuneInString(word)
			keys = append(keys, word[:size])
			word = word[size:]
		}
	}
	return keys
}
