package translate_test

import (
	"testing"

	"github.com/yaklabco/texcalc/pkg/translate"
)

func TestTranslate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "plain arithmetic", src: "1 + 2", want: "1 + 2"},
		{name: "brackets collapse to parens", src: "[(1 + 2) * 3]", want: "((1 + 2) * 3)"},
		{name: "caret with brace group", src: "16^{0.25}", want: "16**(0.25)"},
		{name: "caret without group", src: "2^3", want: "2**3"},
		{name: "times", src: "42 \\times 8", want: "42 * 8"},
		{name: "cdot", src: "42 \\cdot 8", want: "42 * 8"},
		{name: "div", src: "42 \\div 8", want: "42 / 8"},
		{name: "escaped braces", src: "\\{42 \\times 8\\}", want: "(42 * 8)"},
		{name: "functions and constants", src: "\\sin(\\pi)", want: "sin(pi)"},
		{name: "reciprocal trig", src: "\\cot{1} + \\sec{1} - \\csc{1}", want: "cot(1) + sec(1) - csc(1)"},
		{name: "macro at end of input", src: "2\\pi", want: "2pi"},
		{name: "macro followed by macro", src: "\\pi\\times2", want: "pi*2"},
		{name: "macro followed by digit", src: "\\cos0", want: "cos0"},
		{name: "unknown macro passes through", src: "\\frac{1}{2}", want: "\\frac(1)*(2)"},
		{name: "macro names are case sensitive", src: "\\Pi", want: "\\Pi"},
		{name: "trailing backslash", src: "1 + \\", want: "1 + \\"},
		{name: "backslash before symbol", src: "1 \\, 2", want: "1 \\, 2"},
		{name: "double backslash", src: "1 \\\\ 2", want: "1 \\\\ 2"},
		{name: "newlines become spaces", src: "1 +\r\n2", want: "1 +  2"},
		{name: "implicit multiplication", src: "(2)(3)", want: "(2)*(3)"},
		{name: "bracket groups multiply", src: "[2][3]", want: "(2)*(3)"},
		{name: "number before group is not multiplied", src: "2(3)", want: "2(3)"},
		{name: "empty", src: "", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := translate.Translate(tt.src); got != tt.want {
				t.Errorf("Translate(%q) = %q, want %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestInsertMultiplication(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want string
	}{
		{"(2.56)(34)", "(2.56)*(34)"},
		{"(2.56) (34)", "(2.56) *(34)"},
		{"(2.56)\t(34)", "(2.56)\t*(34)"},
		{"(2.56)(34)(1 - 2)(35.2/16)", "(2.56)*(34)*(1 - 2)*(35.2/16)"},
		{"(2.56)(34 - (2)(8.1))", "(2.56)*(34 - (2)*(8.1))"},
		{"(2.56)*(34)", "(2.56)*(34)"},
		{"(2.56)+(34)", "(2.56)+(34)"},
		{"(2.56) + (34)", "(2.56) + (34)"},
		{"((1))(2)", "((1))*(2)"},
		{"", ""},
	}

	for _, tt := range tests {
		got := translate.InsertMultiplication(tt.in)
		if got != tt.want {
			t.Errorf("InsertMultiplication(%q) = %q, want %q", tt.in, got, tt.want)
		}
		if again := translate.InsertMultiplication(got); again != got {
			t.Errorf("InsertMultiplication not idempotent on %q: %q", got, again)
		}
	}
}

func TestResolve(t *testing.T) {
	t.Parallel()

	if got := translate.Resolve("times"); got != "*" {
		t.Errorf("Resolve(times) = %q", got)
	}
	if got := translate.Resolve("sqrt"); got != "\\sqrt" {
		t.Errorf("Resolve(sqrt) = %q", got)
	}

	names := translate.Macros()
	if len(names) != 12 {
		t.Fatalf("Macros() returned %d names, want 12", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Macros() not sorted at %d: %q >= %q", i, names[i-1], names[i])
		}
	}
}
