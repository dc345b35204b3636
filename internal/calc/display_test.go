package calc

import (
	"math"
	"strconv"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "-0"},
		{7, "7"},
		{-42.5, "-42.5"},
		{0.1 + 0.2, "0.3"},
		{1234567.25, "1,234,567.25"},
		{999999999, "999,999,999"},
		{0.00000001, "0.00000001"},
		{0.000000001, "1e-9"},
		{1000000000, "1e9"},
		{-1000000000, "-1e9"},
		{1234567890, "1.23456789e9"},
		{0.0000000015, "1.5e-9"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "∞"},
		{math.Inf(-1), "-∞"},
	}
	for _, test := range tests {
		if got := FormatNumber(test.in); got != test.want {
			t.Errorf("FormatNumber(%v) = %q, want %q", test.in, got, test.want)
		}
	}
}

func TestScientificThresholds(t *testing.T) {
	if !scientific(0.000000001) {
		t.Error("1e-9 should be scientific")
	}
	if scientific(999999999) {
		t.Error("999999999 should be decimal")
	}
	if !scientific(1000000000) {
		t.Error("1e9 should be scientific")
	}
	if scientific(0) {
		t.Error("0 should be decimal")
	}
}

// Display output parses back to the entered number.
func TestDisplayRoundTrip(t *testing.T) {
	for _, in := range []string{"1", "12", "305", "4096", "77777", "123456789", "100000000"} {
		c := New()
		digits(c, in)
		if c.Text() != in {
			t.Fatalf("text %q, want %q", c.Text(), in)
		}
		v, err := strconv.ParseFloat(strings.ReplaceAll(c.Display(), ",", ""), 64)
		if err != nil {
			t.Fatalf("display %q does not parse: %v", c.Display(), err)
		}
		want, _ := strconv.ParseFloat(in, 64)
		if v != want {
			t.Fatalf("display %q parses to %v, want %v", c.Display(), v, want)
		}
	}
}

func TestDisplayNegativeZero(t *testing.T) {
	c := New()
	c.Digit(0)
	c.Sign()
	check(t, c, "-0")
	c.DecimalPoint()
	check(t, c, "-0.")
	c.Sign()
	check(t, c, "0.")
}

func TestDisplayLanguage(t *testing.T) {
	c := New(WithLanguage(language.German))
	digits(c, "1234")
	check(t, c, "1.234")
}
