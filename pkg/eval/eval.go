// Package eval is a restricted arithmetic evaluator for translated math
// expressions. It understands numbers, + - * / // % **, parentheses, the
// constant pi and the functions sin, cos, tan, cot, sec and csc. Nothing
// else is executed.
package eval

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned (wrapped) by Evaluate.
var (
	ErrSyntax         = errors.New("syntax error")
	ErrDivisionByZero = errors.New("division by zero")
	ErrDomain         = errors.New("math domain error")
	ErrUnknownName    = errors.New("unknown name")
)

//nolint:gochecknoglobals // Read-only lookup table.
var constants = map[string]float64{
	"pi": math.Pi,
}

//nolint:gochecknoglobals // Read-only lookup table.
var functions = map[string]func(float64) (float64, error){
	"sin": trig(math.Sin),
	"cos": trig(math.Cos),
	"tan": trig(math.Tan),
	"cot": reciprocal(math.Tan),
	"sec": reciprocal(math.Cos),
	"csc": reciprocal(math.Sin),
}

func trig(fn func(float64) float64) func(float64) (float64, error) {
	return func(x float64) (float64, error) {
		if math.IsInf(x, 0) || math.IsNaN(x) {
			return 0, ErrDomain
		}
		return fn(x), nil
	}
}

func reciprocal(fn func(float64) float64) func(float64) (float64, error) {
	inner := trig(fn)
	return func(x float64) (float64, error) {
		v, err := inner(x)
		if err != nil {
			return 0, err
		}
		if v == 0 {
			return 0, ErrDivisionByZero
		}
		return 1 / v, nil
	}
}

// Evaluate parses and evaluates expr. Results that are not finite are
// reported as ErrDomain.
func Evaluate(expr string) (float64, error) {
	node, err := Parse(expr)
	if err != nil {
		return 0, err
	}

	v, err := node.Eval()
	if err != nil {
		return 0, err
	}
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("%w: result is %g", ErrDomain, v)
	}

	return v, nil
}

