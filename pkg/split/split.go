// Package split decides which part of a math span is evaluated and which
// part holds a stale answer to overwrite.
package split

import (
	"errors"
	"strconv"
	"strings"

	"github.com/yaklabco/texcalc/pkg/region"
)

// Result holds the spans produced by Split.
// Eval.End == Answer.Begin and Answer.End equals the math span's end.
type Result struct {
	// Eval is the expression to translate and evaluate.
	Eval region.Span
	// Answer is replaced with the new answer. It is empty for pure insertion.
	Answer region.Span
}

// Split divides the math span of text into eval and answer spans.
//
// Without an '=' the whole span is evaluated. When the text after the last
// '=' is empty or a plain number it is treated as a previous answer, and
// the expression is the text between the previous '=' (or the span start)
// and the last one. Otherwise the text after the last '=' is a new
// expression and the answer is appended at the end.
func Split(text string, math region.Span) Result {
	mathText := math.Text(text)

	lastEq := strings.LastIndexByte(mathText, '=')
	if lastEq < 0 {
		return Result{Eval: math, Answer: region.Point(math.End)}
	}

	after := strings.TrimSpace(mathText[lastEq+1:])
	if after != "" && !IsNumber(after) {
		return Result{
			Eval:   region.Span{Begin: math.Begin + lastEq + 1, End: math.End},
			Answer: region.Point(math.End),
		}
	}

	prevEq := strings.LastIndexByte(mathText[:lastEq], '=')
	eval := region.Span{Begin: math.Begin + prevEq + 1, End: math.Begin + lastEq}

	return Result{Eval: eval, Answer: region.Span{Begin: eval.End, End: math.End}}
}

// IsNumber reports whether s is a single base-10 floating point literal:
// optional sign, digits with at most one decimal point, optional exponent.
// The special values inf, infinity and nan are accepted in any case, with
// an optional sign. Surrounding whitespace, hex literals and digit
// separators are rejected.
func IsNumber(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	if strings.ContainsAny(s, "xX_pP") {
		return false
	}

	// ParseFloat rejects a signed NaN.
	unsigned := s
	if s[0] == '+' || s[0] == '-' {
		unsigned = s[1:]
	}
	if strings.EqualFold(unsigned, "nan") {
		return true
	}

	_, err := strconv.ParseFloat(s, 64)
	return err == nil || errors.Is(err, strconv.ErrRange)
}

// EqualSign returns the text spliced in before the answer: "= " when the
// byte just before the eval span's end is a space or tab, " = " otherwise.
func EqualSign(text string, eval region.Span) string {
	idx := eval.End - 1
	if idx >= 0 && idx < len(text) && (text[idx] == ' ' || text[idx] == '\t') {
		return "= "
	}
	return " = "
}
