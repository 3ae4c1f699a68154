package eval

import "fmt"

// TokenKind classifies a lexical token.
type TokenKind int

// Token kinds produced by the lexer.
const (
	TokenEOF TokenKind = iota
	TokenNumber
	TokenIdent
	TokenPlus
	TokenMinus
	TokenStar
	TokenSlash
	TokenFloorDiv
	TokenPercent
	TokenPow
	TokenLParen
	TokenRParen
)

//nolint:gochecknoglobals // Read-only lookup table.
var tokenNames = map[TokenKind]string{
	TokenEOF:      "end of input",
	TokenNumber:   "number",
	TokenIdent:    "identifier",
	TokenPlus:     "'+'",
	TokenMinus:    "'-'",
	TokenStar:     "'*'",
	TokenSlash:    "'/'",
	TokenFloorDiv: "'//'",
	TokenPercent:  "'%'",
	TokenPow:      "'**'",
	TokenLParen:   "'('",
	TokenRParen:   "')'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return fmt.Sprintf("TokenKind(%d)", int(k))
}

// Token is a lexeme with its byte offset in the expression.
type Token struct {
	Kind TokenKind
	Text string
	Pos  int
}

// Tokenize splits expr into tokens terminated by a TokenEOF.
func Tokenize(expr string) ([]Token, error) {
	var tokens []Token

	pos := 0
	for pos < len(expr) {
		ch := expr[pos]

		switch {
		case ch == ' ' || ch == '\t' || ch == '\f':
			pos++
			continue
		case isDigit(ch) || (ch == '.' && pos+1 < len(expr) && isDigit(expr[pos+1])):
			end := scanNumber(expr, pos)
			tokens = append(tokens, Token{Kind: TokenNumber, Text: expr[pos:end], Pos: pos})
			pos = end
			continue
		case isIdentStart(ch):
			end := pos + 1
			for end < len(expr) && (isIdentStart(expr[end]) || isDigit(expr[end])) {
				end++
			}
			tokens = append(tokens, Token{Kind: TokenIdent, Text: expr[pos:end], Pos: pos})
			pos = end
			continue
		}

		kind, width := operator(expr[pos:])
		if width == 0 {
			return nil, fmt.Errorf("%w: unexpected character %q at offset %d", ErrSyntax, rune(ch), pos)
		}
		tokens = append(tokens, Token{Kind: kind, Text: expr[pos : pos+width], Pos: pos})
		pos += width
	}

	return append(tokens, Token{Kind: TokenEOF, Pos: len(expr)}), nil
}

// scanNumber returns the end of the decimal literal starting at pos:
// digits, an optional fraction and an optional exponent.
func scanNumber(expr string, pos int) int {
	end := pos
	for end < len(expr) && isDigit(expr[end]) {
		end++
	}
	if end < len(expr) && expr[end] == '.' {
		end++
		for end < len(expr) && isDigit(expr[end]) {
			end++
		}
	}

	if end < len(expr) && (expr[end] == 'e' || expr[end] == 'E') {
		exp := end + 1
		if exp < len(expr) && (expr[exp] == '+' || expr[exp] == '-') {
			exp++
		}
		if exp < len(expr) && isDigit(expr[exp]) {
			for exp < len(expr) && isDigit(expr[exp]) {
				exp++
			}
			end = exp
		}
	}

	return end
}

func operator(s string) (TokenKind, int) {
	switch s[0] {
	case '+':
		return TokenPlus, 1
	case '-':
		return TokenMinus, 1
	case '*':
		if len(s) > 1 && s[1] == '*' {
			return TokenPow, 2
		}
		return TokenStar, 1
	case '/':
		if len(s) > 1 && s[1] == '/' {
			return TokenFloorDiv, 2
		}
		return TokenSlash, 1
	case '%':
		return TokenPercent, 1
	case '(':
		return TokenLParen, 1
	case ')':
		return TokenRParen, 1
	default:
		return TokenEOF, 0
	}
}

func isDigit(ch byte) bool {
	return '0' <= ch && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return ch == '_' || ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z')
}
