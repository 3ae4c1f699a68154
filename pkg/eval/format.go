package eval

import (
	"strconv"
	"strings"
)

// Precision is the number of fractional digits answers are rounded to.
const Precision = 3

// Round rounds v to Precision decimal places. The exact binary value of v
// is rounded; exact ties go to the even digit.
func Round(v float64) float64 {
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(v, 'f', Precision, 64), 64)
	if err != nil {
		return v
	}
	return rounded
}

// Format renders v rounded to Precision decimals with trailing zeros and a
// trailing decimal point removed. Negative zero renders as "0".
func Format(v float64) string {
	s := strconv.FormatFloat(Round(v), 'f', Precision, 64)
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	if s == "-0" {
		return "0"
	}
	return s
}
