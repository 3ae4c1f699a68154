package region

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// ErrInvalidPosition is returned when a line:column position cannot be
// resolved against a buffer.
var ErrInvalidPosition = errors.New("invalid position")

// Line describes one line of a buffer.
type Line struct {
	// Start is the offset of the first byte of the line.
	Start int
	// NewlineStart is the offset of the line ending, or the buffer length
	// for a final line without one. For CRLF it points at the \r.
	NewlineStart int
	// End is the offset just past the line ending.
	End int
}

// Lines indexes a buffer by line.
type Lines []Line

// BuildLines constructs line metadata for text.
// It handles both LF (\n) and CRLF (\r\n) line endings.
func BuildLines(text string) Lines {
	lines := Lines{}
	lineStart := 0

	for idx := 0; idx < len(text); idx++ {
		if text[idx] != '\n' {
			continue
		}
		newlineStart := idx
		if idx > 0 && text[idx-1] == '\r' {
			newlineStart = idx - 1
		}
		lines = append(lines, Line{Start: lineStart, NewlineStart: newlineStart, End: idx + 1})
		lineStart = idx + 1
	}

	lines = append(lines, Line{Start: lineStart, NewlineStart: len(text), End: len(text)})

	return lines
}

// Offset converts 1-based line and column numbers to a byte offset.
// Column len+1 addresses the position just before the line ending.
func (l Lines) Offset(line, col int) (int, error) {
	if line < 1 || line > len(l) {
		return 0, fmt.Errorf("%w: line %d out of range 1..%d", ErrInvalidPosition, line, len(l))
	}

	info := l[line-1]
	offset := info.Start + col - 1
	if col < 1 || offset > info.NewlineStart {
		return 0, fmt.Errorf("%w: column %d out of range on line %d", ErrInvalidPosition, col, line)
	}

	return offset, nil
}

// Position converts a byte offset to 1-based line and column numbers.
// Column counts bytes, not runes. Returns (0, 0) for negative offsets.
func (l Lines) Position(offset int) (int, int) {
	if offset < 0 || len(l) == 0 {
		return 0, 0
	}

	idx := sort.Search(len(l), func(i int) bool {
		return l[i].End > offset
	})
	if idx >= len(l) {
		idx = len(l) - 1
	}

	return idx + 1, offset - l[idx].Start + 1
}

// ParsePosition parses a "LINE:COL" caret position.
func ParsePosition(s string) (int, int, error) {
	lineStr, colStr, ok := strings.Cut(s, ":")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q is not LINE:COL", ErrInvalidPosition, s)
	}

	line, err := strconv.Atoi(lineStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: line %q: %w", ErrInvalidPosition, lineStr, err)
	}

	col, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: column %q: %w", ErrInvalidPosition, colStr, err)
	}

	return line, col, nil
}
