package pretty

import (
	"fmt"
	"strings"

	"github.com/yaklabco/texcalc/pkg/calc"
)

// FormatReplacement formats one pipeline outcome for terminal output.
// The location prefix is omitted when path is empty.
func (s *Styles) FormatReplacement(path string, line, col int, rep *calc.Replacement, showExpr bool) string {
	var builder strings.Builder

	builder.WriteString("  ")
	if path != "" {
		builder.WriteString(fmt.Sprintf("%s:%d:%d  ", s.FilePath.Render(path), line, col))
	}

	builder.WriteString(s.Source.Render(strings.TrimSpace(rep.Source)))
	builder.WriteString("  ")
	builder.WriteString(s.FormatOutcome(rep))
	builder.WriteString("\n")

	if showExpr {
		builder.WriteString("    " + s.Dim.Render("Expression:") + " " +
			s.Expression.Render(rep.Expression) + "\n")
	}

	return builder.String()
}

// FormatOutcome returns the styled answer, or a failure or skip marker.
func (s *Styles) FormatOutcome(rep *calc.Replacement) string {
	switch {
	case rep.Skipped:
		return s.Skipped.Render("skipped (overlaps another selection)")
	case rep.Err != nil:
		return s.Failure.Render("no answer")
	default:
		return s.Dim.Render("=") + " " + s.Answer.Render(rep.Result)
	}
}

// FormatSourceContext formats the source line with a caret marker.
func (s *Styles) FormatSourceContext(line string, column int) string {
	var builder strings.Builder

	const indent = "        "

	builder.WriteString(indent + s.SourceLine.Render(line) + "\n")

	if column > 0 {
		padding := indent + strings.Repeat(" ", column-1)
		builder.WriteString(padding + s.Caret.Render("^") + "\n")
	}

	return builder.String()
}

// FormatFileHeader formats a file header for grouped output.
func (s *Styles) FormatFileHeader(path string, count int) string {
	header := s.FilePath.Render(path)
	if count > 0 {
		header += s.Dim.Render(fmt.Sprintf(" (%d %s)", count, plural(count, "caret", "carets")))
	}
	return header
}

// FormatSummaryOneLine formats outcome counts as a single line.
// Example: "3 answers, 1 failed, 1 skipped".
func (s *Styles) FormatSummaryOneLine(answered, failed, skipped int) string {
	if failed == 0 && skipped == 0 {
		if answered == 0 {
			return s.Dim.Render("Nothing to evaluate") + "\n"
		}
		return s.Success.Render(fmt.Sprintf("%d %s", answered, plural(answered, "answer", "answers"))) + "\n"
	}

	parts := []string{fmt.Sprintf("%d %s", answered, plural(answered, "answer", "answers"))}
	if failed > 0 {
		parts = append(parts, s.Failure.Render(fmt.Sprintf("%d failed", failed)))
	}
	if skipped > 0 {
		parts = append(parts, s.Skipped.Render(fmt.Sprintf("%d skipped", skipped)))
	}

	return strings.Join(parts, ", ") + "\n"
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
