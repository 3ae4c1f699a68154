package eval

import (
	"fmt"
	"math"
)

// Node is an evaluable expression tree node.
type Node interface {
	Eval() (float64, error)
}

// Number is a numeric literal.
type Number struct {
	Value float64
}

// Eval implements Node.
func (n *Number) Eval() (float64, error) {
	return n.Value, nil
}

// Constant is a named constant such as pi.
type Constant struct {
	Name  string
	Value float64
}

// Eval implements Node.
func (c *Constant) Eval() (float64, error) {
	return c.Value, nil
}

// Unary is a prefix sign applied to an operand.
type Unary struct {
	Op      TokenKind
	Operand Node
}

// Eval implements Node.
func (u *Unary) Eval() (float64, error) {
	v, err := u.Operand.Eval()
	if err != nil {
		return 0, err
	}
	if u.Op == TokenMinus {
		return -v, nil
	}
	return v, nil
}

// Binary is an infix operation.
type Binary struct {
	Op    TokenKind
	Left  Node
	Right Node
}

// Eval implements Node.
func (b *Binary) Eval() (float64, error) {
	lhs, err := b.Left.Eval()
	if err != nil {
		return 0, err
	}
	rhs, err := b.Right.Eval()
	if err != nil {
		return 0, err
	}

	switch b.Op {
	case TokenPlus:
		return lhs + rhs, nil
	case TokenMinus:
		return lhs - rhs, nil
	case TokenStar:
		return lhs * rhs, nil
	case TokenSlash:
		if rhs == 0 {
			return 0, fmt.Errorf("%w: %g / 0", ErrDivisionByZero, lhs)
		}
		return lhs / rhs, nil
	case TokenFloorDiv:
		if rhs == 0 {
			return 0, fmt.Errorf("%w: %g // 0", ErrDivisionByZero, lhs)
		}
		return math.Floor(lhs / rhs), nil
	case TokenPercent:
		if rhs == 0 {
			return 0, fmt.Errorf("%w: %g %% 0", ErrDivisionByZero, lhs)
		}
		return floorMod(lhs, rhs), nil
	case TokenPow:
		return power(lhs, rhs)
	default:
		return 0, fmt.Errorf("%w: unsupported operator %v", ErrSyntax, b.Op)
	}
}

// Call applies a one-argument function.
type Call struct {
	Name string
	Fn   func(float64) (float64, error)
	Arg  Node
}

// Eval implements Node.
func (c *Call) Eval() (float64, error) {
	arg, err := c.Arg.Eval()
	if err != nil {
		return 0, err
	}
	v, err := c.Fn(arg)
	if err != nil {
		return 0, fmt.Errorf("%s(%g): %w", c.Name, arg, err)
	}
	return v, nil
}

// floorMod returns lhs mod rhs with the sign of rhs.
func floorMod(lhs, rhs float64) float64 {
	r := math.Mod(lhs, rhs)
	if r != 0 && (r < 0) != (rhs < 0) {
		r += rhs
	}
	return r
}

func power(base, exp float64) (float64, error) {
	if base == 0 && exp < 0 {
		return 0, fmt.Errorf("%w: 0 raised to negative power", ErrDivisionByZero)
	}
	if base < 0 && exp != math.Trunc(exp) {
		return 0, fmt.Errorf("%w: negative base %g with fractional exponent %g", ErrDomain, base, exp)
	}

	v := math.Pow(base, exp)
	if math.IsInf(v, 0) && !math.IsInf(base, 0) && !math.IsInf(exp, 0) {
		return 0, fmt.Errorf("%w: %g ** %g overflows", ErrDomain, base, exp)
	}
	return v, nil
}
