package reporter

import (
	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/region"
)

// Result holds the replacements computed for a set of documents.
type Result struct {
	Files []FileResult
}

// FileResult holds the outcome for one document.
type FileResult struct {
	// Path is the display path; "-" for standard input.
	Path string

	// Original is the document text the replacements were computed on.
	Original string

	// Updated is the document with the replacements applied.
	Updated string

	// Replacements are the pipeline outcomes in caret order.
	Replacements []calc.Replacement

	// Written reports whether Updated was written back.
	Written bool

	// Error is set when the document could not be processed.
	Error error
}

// Stats counts replacement outcomes.
type Stats struct {
	Answered int
	Failed   int
	Skipped  int
}

// Stats counts the outcomes across all files.
func (r *Result) Stats() Stats {
	var stats Stats
	if r == nil {
		return stats
	}
	for _, file := range r.Files {
		for _, rep := range file.Replacements {
			switch {
			case rep.Skipped:
				stats.Skipped++
			case rep.Err != nil:
				stats.Failed++
			default:
				stats.Answered++
			}
		}
	}
	return stats
}

// Failures is the number of replacements that produced no answer or were skipped.
func (s Stats) Failures() int {
	return s.Failed + s.Skipped
}

// position maps the replacement's caret to a 1-based line and column.
func position(lines region.Lines, rep *calc.Replacement) (int, int) {
	return lines.Position(rep.Offset)
}

// lineText returns line n (1-based) of text without its line ending.
func lineText(text string, lines region.Lines, n int) string {
	if n < 1 || n > len(lines) {
		return ""
	}
	info := lines[n-1]
	return text[info.Start:info.NewlineStart]
}
