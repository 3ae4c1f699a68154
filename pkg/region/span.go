// Package region locates inline math spans in a text buffer.
package region

import "fmt"

// Span is a half-open byte range [Begin, End) into a text snapshot.
// An empty span (Begin == End) marks an insertion point.
type Span struct {
	Begin int
	End   int
}

// NewSpan returns the span between a and b, normalized so Begin <= End.
func NewSpan(a, b int) Span {
	if b < a {
		a, b = b, a
	}
	return Span{Begin: a, End: b}
}

// Point returns the empty span at offset.
func Point(offset int) Span {
	return Span{Begin: offset, End: offset}
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Begin
}

// Empty reports whether the span covers no bytes.
func (s Span) Empty() bool {
	return s.Begin == s.End
}

// Text returns the substring of buf addressed by the span.
// Out of range endpoints are clamped to the buffer.
func (s Span) Text(buf string) string {
	begin := clamp(s.Begin, len(buf))
	end := clamp(s.End, len(buf))
	if end < begin {
		return ""
	}
	return buf[begin:end]
}

func (s Span) String() string {
	return fmt.Sprintf("(%d, %d)", s.Begin, s.End)
}

func clamp(offset, n int) int {
	return max(0, min(offset, n))
}
