package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/texcalc/internal/ui/pretty"
	"github.com/yaklabco/texcalc/pkg/region"
)

// TextReporter formats results as styled terminal output.
type TextReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewTextReporter creates a new text reporter.
func NewTextReporter(opts Options) *TextReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &TextReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *TextReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	stats := result.Stats()

	if result != nil {
		for i := range result.Files {
			r.reportFile(&result.Files[i])
		}
	}

	if r.opts.ShowSummary {
		fmt.Fprint(r.bw, r.styles.FormatSummaryOneLine(stats.Answered, stats.Failed, stats.Skipped))
	}

	return stats.Failures(), nil
}

func (r *TextReporter) reportFile(file *FileResult) {
	if file.Error != nil {
		fmt.Fprintf(r.bw, "%s: %s\n",
			r.styles.FilePath.Render(file.Path),
			r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
		)
		return
	}
	if len(file.Replacements) == 0 {
		return
	}

	lines := region.BuildLines(file.Original)
	for i := range file.Replacements {
		rep := &file.Replacements[i]
		line, col := position(lines, rep)
		fmt.Fprint(r.bw, r.styles.FormatReplacement(file.Path, line, col, rep, r.opts.ShowExpr))
		if r.opts.ShowContext {
			fmt.Fprint(r.bw, r.styles.FormatSourceContext(lineText(file.Original, lines, line), col))
		}
	}
}
