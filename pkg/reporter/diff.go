package reporter

import (
	"bufio"
	"context"
	"fmt"

	"github.com/yaklabco/texcalc/internal/ui/pretty"
	"github.com/yaklabco/texcalc/pkg/region"
)

// DiffReporter writes the lines each document would change as a
// unified-style line diff. Replacements never add or remove line breaks, so
// lines of the original and updated documents correspond one to one.
type DiffReporter struct {
	opts   Options
	styles *pretty.Styles
	bw     *bufio.Writer
}

// NewDiffReporter creates a new diff reporter.
func NewDiffReporter(opts Options) *DiffReporter {
	colorEnabled := pretty.IsColorEnabled(opts.Color, opts.Writer)
	return &DiffReporter{
		opts:   opts,
		styles: pretty.NewStyles(colorEnabled),
		bw:     bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *DiffReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	stats := result.Stats()
	if result == nil {
		return 0, nil
	}

	var filesChanged, linesChanged int
	for i := range result.Files {
		file := &result.Files[i]
		if file.Error != nil {
			fmt.Fprintf(r.bw, "%s: %s\n",
				r.styles.FilePath.Render(file.Path),
				r.styles.Failure.Render(fmt.Sprintf("error: %v", file.Error)),
			)
			continue
		}
		if n := r.writeDiff(file); n > 0 {
			filesChanged++
			linesChanged += n
		}
	}

	if filesChanged > 0 && r.opts.ShowSummary {
		fmt.Fprintf(r.bw, "%d %s changed, %d %s\n",
			filesChanged, plural(filesChanged, "file", "files"),
			linesChanged, plural(linesChanged, "line", "lines"),
		)
	}

	return stats.Failures(), nil
}

// writeDiff writes one hunk per changed line and returns the number of
// changed lines.
func (r *DiffReporter) writeDiff(file *FileResult) int {
	if file.Original == file.Updated {
		return 0
	}

	before := region.BuildLines(file.Original)
	after := region.BuildLines(file.Updated)
	if len(before) != len(after) {
		return 0
	}

	var changed int
	for n := 1; n <= len(before); n++ {
		oldLine := lineText(file.Original, before, n)
		newLine := lineText(file.Updated, after, n)
		if oldLine == newLine {
			continue
		}
		if changed == 0 {
			fmt.Fprintln(r.bw, r.styles.DiffHeader.Render("--- a/"+file.Path))
			fmt.Fprintln(r.bw, r.styles.DiffHeader.Render("+++ b/"+file.Path))
		}
		changed++
		fmt.Fprintf(r.bw, "@@ -%d +%d @@\n", n, n)
		fmt.Fprintln(r.bw, r.styles.DiffRemove.Render("-"+oldLine))
		fmt.Fprintln(r.bw, r.styles.DiffAdd.Render("+"+newLine))
	}

	if changed > 0 {
		fmt.Fprintln(r.bw)
	}
	return changed
}

func plural(n int, one, many string) string {
	if n == 1 {
		return one
	}
	return many
}
