package region_test

import (
	"errors"
	"testing"

	"github.com/yaklabco/texcalc/pkg/region"
)

func TestBuildLines(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		text string
		want region.Lines
	}{
		{
			name: "empty",
			text: "",
			want: region.Lines{{Start: 0, NewlineStart: 0, End: 0}},
		},
		{
			name: "single line no newline",
			text: "abc",
			want: region.Lines{{Start: 0, NewlineStart: 3, End: 3}},
		},
		{
			name: "LF",
			text: "ab\ncd",
			want: region.Lines{
				{Start: 0, NewlineStart: 2, End: 3},
				{Start: 3, NewlineStart: 5, End: 5},
			},
		},
		{
			name: "CRLF with trailing newline",
			text: "ab\r\n",
			want: region.Lines{
				{Start: 0, NewlineStart: 2, End: 4},
				{Start: 4, NewlineStart: 4, End: 4},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := region.BuildLines(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("BuildLines(%q) returned %d lines, want %d", tt.text, len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("line %d = %+v, want %+v", i+1, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestLinesOffsetAndPosition(t *testing.T) {
	t.Parallel()

	lines := region.BuildLines("$1 + 2$\n$3 * 4$")

	offset, err := lines.Offset(2, 3)
	if err != nil {
		t.Fatalf("Offset(2, 3): %v", err)
	}
	if offset != 10 {
		t.Errorf("Offset(2, 3) = %d, want 10", offset)
	}

	line, col := lines.Position(offset)
	if line != 2 || col != 3 {
		t.Errorf("Position(%d) = %d:%d, want 2:3", offset, line, col)
	}

	// End of line is addressable, the newline itself is not.
	if _, err := lines.Offset(1, 8); err != nil {
		t.Errorf("Offset(1, 8) should address end of line: %v", err)
	}
	if _, err := lines.Offset(1, 9); !errors.Is(err, region.ErrInvalidPosition) {
		t.Errorf("Offset(1, 9) error = %v, want ErrInvalidPosition", err)
	}
	if _, err := lines.Offset(3, 1); !errors.Is(err, region.ErrInvalidPosition) {
		t.Errorf("Offset(3, 1) error = %v, want ErrInvalidPosition", err)
	}
	if _, err := lines.Offset(1, 0); !errors.Is(err, region.ErrInvalidPosition) {
		t.Errorf("Offset(1, 0) error = %v, want ErrInvalidPosition", err)
	}
}

func TestParsePosition(t *testing.T) {
	t.Parallel()

	line, col, err := region.ParsePosition("12:7")
	if err != nil || line != 12 || col != 7 {
		t.Errorf("ParsePosition(12:7) = %d, %d, %v", line, col, err)
	}

	for _, bad := range []string{"", "12", "a:1", "1:b"} {
		if _, _, err := region.ParsePosition(bad); !errors.Is(err, region.ErrInvalidPosition) {
			t.Errorf("ParsePosition(%q) error = %v, want ErrInvalidPosition", bad, err)
		}
	}
}
