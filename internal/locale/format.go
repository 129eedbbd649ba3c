package locale

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Missing is shown for absent or non-finite values.
const Missing = "-"

// Formatter renders numbers with locale grouping.
type Formatter struct {
	printer *message.Printer
}

// NewFormatter returns a formatter for tag.
func NewFormatter(tag language.Tag) Formatter {
	return Formatter{printer: message.NewPrinter(tag)}
}

// Num0 formats with no fraction digits.
func (f Formatter) Num0(x any) string {
	v, ok := Float(x)
	if !ok {
		return Missing
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(0)))
}

// Num2 formats with up to two fraction digits.
func (f Formatter) Num2(x any) string {
	v, ok := Float(x)
	if !ok {
		return Missing
	}
	return f.printer.Sprint(number.Decimal(v, number.MaxFractionDigits(2)))
}

// Fixed2 formats with exactly two fraction digits.
func (f Formatter) Fixed2(x any) string {
	v, ok := Float(x)
	if !ok {
		return Missing
	}
	return f.printer.Sprint(number.Decimal(v, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
}

// Text renders x as a string, or Missing when empty.
func (f Formatter) Text(x any) string {
	return Text(x)
}

// Text renders x as a string, or Missing when empty.
func Text(x any) string {
	switch v := x.(type) {
	case nil:
		return Missing
	case string:
		if strings.TrimSpace(v) == "" {
			return Missing
		}
		return v
	case fmt.Stringer:
		s := v.String()
		if strings.TrimSpace(s) == "" {
			return Missing
		}
		return s
	default:
		return fmt.Sprint(v)
	}
}

type floatPtr interface {
	Ptr() *float64
}

// Float converts a number-like value. It reports false for nil, empty,
// unparsable and non-finite values.
func Float(x any) (float64, bool) {
	var v float64
	switch n := x.(type) {
	case nil:
		return 0, false
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int:
		v = float64(n)
	case int64:
		v = float64(n)
	case *float64:
		if n == nil {
			return 0, false
		}
		v = *n
	case floatPtr:
		p := n.Ptr()
		if p == nil {
			return 0, false
		}
		v = *p
	case string:
		s := strings.TrimSpace(n)
		if s == "" {
			return 0, false
		}
		parsed, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return 0, false
		}
		v = parsed
	default:
		return 0, false
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
