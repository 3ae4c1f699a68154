// Package translate rewrites LaTeX-flavored math into the infix expression
// syntax understood by package eval.
package translate

import (
	"maps"
	"slices"
	"strings"
)

// macros maps backslash macro names to expression text.
//
//nolint:gochecknoglobals // Read-only lookup table.
var macros = map[string]string{
	"times": "*",
	"cdot":  "*",
	"div":   "/",
	"pi":    "pi",
	"sin":   "sin",
	"cos":   "cos",
	"tan":   "tan",
	"cot":   "cot",
	"sec":   "sec",
	"csc":   "csc",
	"{":     "(",
	"}":     ")",
}

// Macros returns the recognized macro names in sorted order.
func Macros() []string {
	return slices.Sorted(maps.Keys(macros))
}

// Resolve returns the expression text for a macro name.
// Unknown names are returned as a literal backslash followed by the name so
// that evaluation fails instead of guessing.
func Resolve(name string) string {
	if repl, ok := macros[name]; ok {
		return repl
	}
	return `\` + name
}

type state int

const (
	stateNormal state = iota
	stateMacro
)

// translator is a two-state scanner. In stateMacro it accumulates the
// letters of a macro name; the first non-letter ends the name and is then
// handled in stateNormal.
type translator struct {
	src   string
	out   strings.Builder
	state state
	name  int // offset of the first macro name byte
}

// Translate converts src into an arithmetic expression and inserts implicit
// multiplication between adjacent parenthesized groups.
func Translate(src string) string {
	tr := &translator{src: src}
	tr.out.Grow(len(src) + len(src)/4)

	for idx := 0; idx < len(src); idx++ {
		idx = tr.step(idx)
	}
	if tr.state == stateMacro {
		tr.out.WriteString(Resolve(src[tr.name:]))
	}

	return InsertMultiplication(tr.out.String())
}

// step consumes the byte at idx and returns the index of the last byte it
// consumed.
func (t *translator) step(idx int) int {
	ch := t.src[idx]

	if t.state == stateMacro {
		if isLetter(ch) {
			return idx
		}
		t.out.WriteString(Resolve(t.src[t.name:idx]))
		t.state = stateNormal
	}

	switch ch {
	case '^':
		t.out.WriteString("**")
	case '[', '{':
		t.out.WriteByte('(')
	case ']', '}':
		t.out.WriteByte(')')
	case '\n', '\r':
		t.out.WriteByte(' ')
	case '\\':
		next := idx + 1
		if next >= len(t.src) {
			t.out.WriteByte('\\')
			return idx
		}
		if isLetter(t.src[next]) {
			t.state = stateMacro
			t.name = next
			return next
		}
		t.out.WriteString(Resolve(t.src[next : next+1]))
		return next
	default:
		t.out.WriteByte(ch)
	}

	return idx
}

func isLetter(ch byte) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}

// InsertMultiplication adds '*' before a '(' that follows a ')' with only
// spaces or tabs between them. A bare number followed by a group, as in
// 2(3), is left untouched.
func InsertMultiplication(expr string) string {
	var out strings.Builder
	out.Grow(len(expr) + 4)

	closed := false
	for idx := 0; idx < len(expr); idx++ {
		ch := expr[idx]
		switch {
		case ch == ')':
			closed = true
		case ch == '(' && closed:
			out.WriteByte('*')
			closed = false
		case ch != ' ' && ch != '\t':
			closed = false
		}
		out.WriteByte(ch)
	}

	return out.String()
}
