package region

import "strings"

// Delimiter opens and closes inline math.
const Delimiter = '$'

// Locate returns the math span around offset.
//
// Begin is one past the last delimiter before offset, or 0 when there is
// none. End is the first delimiter at or after offset on the same line, or
// the end of that line. The scan does not check delimiter parity and does
// not skip escaped (\$) or commented delimiters.
func Locate(text string, offset int) Span {
	offset = clamp(offset, len(text))

	begin := strings.LastIndexByte(text[:offset], Delimiter) + 1

	rest := text[offset:]
	if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
		rest = rest[:nl]
	}

	end := offset + len(rest)
	if idx := strings.IndexByte(rest, Delimiter); idx >= 0 {
		end = offset + idx
	}

	return Span{Begin: begin, End: end}
}

// CountDelimiters returns the number of delimiters in text[0:offset).
// An even count suggests offset is outside math mode; Locate does not act
// on it.
func CountDelimiters(text string, offset int) int {
	return strings.Count(text[:clamp(offset, len(text))], string(Delimiter))
}
