package calc

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

const (
	maxFractionDigits = 8
	scientificBelow   = 1e-8
	scientificAbove   = 1e9
)

// formatter renders numbers for the display.
type formatter struct {
	printer *message.Printer
}

func newFormatter(tag language.Tag) formatter {
	return formatter{printer: message.NewPrinter(tag)}
}

// FormatNumber renders v the way the display shows it, using English
// grouping separators.
func FormatNumber(v float64) string {
	return newFormatter(language.English).format(v)
}

// scientific reports whether v is displayed in scientific notation.
func scientific(v float64) bool {
	abs := math.Abs(v)
	return v != 0 && (abs < scientificBelow || abs >= scientificAbove)
}

func (f formatter) format(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "∞"
	case math.IsInf(v, -1):
		return "-∞"
	case scientific(v):
		return formatScientific(v)
	case v == 0 && math.Signbit(v):
		return "-0"
	default:
		return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(maxFractionDigits)))
	}
}

// formatScientific renders v as mantissa, 'e' and exponent, e.g. 1.5e-9.
func formatScientific(v float64) string {
	s := strconv.FormatFloat(v, 'e', maxFractionDigits, 64)
	mant, exp, _ := strings.Cut(s, "e")
	if strings.Contains(mant, ".") {
		mant = strings.TrimRight(mant, "0")
		mant = strings.TrimSuffix(mant, ".")
	}
	e, err := strconv.Atoi(exp)
	if err != nil {
		return s
	}
	return mant + "e" + strconv.Itoa(e)
}
