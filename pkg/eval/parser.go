package eval

import (
	"errors"
	"fmt"
	"strconv"
)

// parser is a recursive descent parser over the grammar
//
//	expr   = term { ("+" | "-") term }
//	term   = factor { ("*" | "/" | "//" | "%") factor }
//	factor = ("+" | "-") factor | power
//	power  = primary [ "**" factor ]
//	primary = number | constant | function "(" expr ")" | "(" expr ")"
//
// so "**" is right associative and binds tighter than a sign on its left:
// -2**2 is -4 and 2**-1 is 0.5.
type parser struct {
	tokens []Token
	pos    int
}

// Parse builds the expression tree for expr.
func Parse(expr string) (Node, error) {
	tokens, err := Tokenize(expr)
	if err != nil {
		return nil, err
	}

	p := &parser{tokens: tokens}
	node, err := p.expr()
	if err != nil {
		return nil, err
	}
	if tok := p.peek(); tok.Kind != TokenEOF {
		return nil, p.unexpected(tok)
	}

	return node, nil
}

func (p *parser) peek() Token {
	return p.tokens[p.pos]
}

func (p *parser) next() Token {
	tok := p.tokens[p.pos]
	if tok.Kind != TokenEOF {
		p.pos++
	}
	return tok
}

func (p *parser) expect(kind TokenKind) error {
	if tok := p.next(); tok.Kind != kind {
		return fmt.Errorf("%w: expected %v, found %v at offset %d", ErrSyntax, kind, tok.Kind, tok.Pos)
	}
	return nil
}

func (p *parser) unexpected(tok Token) error {
	return fmt.Errorf("%w: unexpected %v at offset %d", ErrSyntax, tok.Kind, tok.Pos)
}

func (p *parser) expr() (Node, error) {
	left, err := p.term()
	if err != nil {
		return nil, err
	}

	for kind := p.peek().Kind; kind == TokenPlus || kind == TokenMinus; kind = p.peek().Kind {
		p.next()
		right, err := p.term()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: kind, Left: left, Right: right}
	}

	return left, nil
}

func (p *parser) term() (Node, error) {
	left, err := p.factor()
	if err != nil {
		return nil, err
	}

	for {
		kind := p.peek().Kind
		if kind != TokenStar && kind != TokenSlash && kind != TokenFloorDiv && kind != TokenPercent {
			return left, nil
		}
		p.next()
		right, err := p.factor()
		if err != nil {
			return nil, err
		}
		left = &Binary{Op: kind, Left: left, Right: right}
	}
}

func (p *parser) factor() (Node, error) {
	if kind := p.peek().Kind; kind == TokenPlus || kind == TokenMinus {
		p.next()
		operand, err := p.factor()
		if err != nil {
			return nil, err
		}
		return &Unary{Op: kind, Operand: operand}, nil
	}
	return p.power()
}

func (p *parser) power() (Node, error) {
	base, err := p.primary()
	if err != nil {
		return nil, err
	}
	if p.peek().Kind != TokenPow {
		return base, nil
	}

	p.next()
	exp, err := p.factor()
	if err != nil {
		return nil, err
	}
	return &Binary{Op: TokenPow, Left: base, Right: exp}, nil
}

func (p *parser) primary() (Node, error) {
	tok := p.next()

	switch tok.Kind {
	case TokenNumber:
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return nil, fmt.Errorf("%w: bad number %q at offset %d", ErrSyntax, tok.Text, tok.Pos)
		}
		return &Number{Value: v}, nil
	case TokenLParen:
		inner, err := p.expr()
		if err != nil {
			return nil, err
		}
		if err := p.expect(TokenRParen); err != nil {
			return nil, err
		}
		return inner, nil
	case TokenIdent:
		return p.identifier(tok)
	default:
		return nil, p.unexpected(tok)
	}
}

func (p *parser) identifier(tok Token) (Node, error) {
	if v, ok := constants[tok.Text]; ok {
		return &Constant{Name: tok.Text, Value: v}, nil
	}

	fn, ok := functions[tok.Text]
	if !ok {
		return nil, fmt.Errorf("%w: %q at offset %d", ErrUnknownName, tok.Text, tok.Pos)
	}

	if err := p.expect(TokenLParen); err != nil {
		return nil, fmt.Errorf("call %s: %w", tok.Text, err)
	}
	arg, err := p.expr()
	if err != nil {
		return nil, err
	}
	if err := p.expect(TokenRParen); err != nil {
		return nil, fmt.Errorf("call %s: %w", tok.Text, err)
	}

	return &Call{Name: tok.Text, Fn: fn, Arg: arg}, nil
}
