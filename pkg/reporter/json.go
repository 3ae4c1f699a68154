package reporter

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"

	"github.com/yaklabco/texcalc/pkg/region"
)

// JSONOutput is the top-level JSON structure.
type JSONOutput struct {
	Version string           `json:"version"`
	Files   []JSONFileResult `json:"files"`
	Summary JSONSummary      `json:"summary"`
}

// JSONFileResult represents a single file's results.
type JSONFileResult struct {
	Path         string            `json:"path"`
	Replacements []JSONReplacement `json:"replacements"`
	Written      bool              `json:"written,omitempty"`
	Error        string            `json:"error,omitempty"`
}

// JSONReplacement represents one pipeline outcome.
type JSONReplacement struct {
	Line        int      `json:"line"`
	Column      int      `json:"column"`
	Offset      int      `json:"offset"`
	Math        JSONSpan `json:"math"`
	Answer      JSONSpan `json:"answer"`
	Source      string   `json:"source"`
	Expression  string   `json:"expression"`
	Result      string   `json:"result"`
	Replacement string   `json:"replacement"`
	Error       string   `json:"error,omitempty"`
	Skipped     bool     `json:"skipped,omitempty"`
}

// JSONSpan is a half-open byte range.
type JSONSpan struct {
	Begin int `json:"begin"`
	End   int `json:"end"`
}

// JSONSummary contains aggregate counts.
type JSONSummary struct {
	Files    int `json:"files"`
	Answered int `json:"answered"`
	Failed   int `json:"failed"`
	Skipped  int `json:"skipped"`
}

// JSONReporter formats results as JSON.
type JSONReporter struct {
	opts Options
	bw   *bufio.Writer
}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter(opts Options) *JSONReporter {
	return &JSONReporter{
		opts: opts,
		bw:   bufio.NewWriterSize(opts.Writer, bufWriterSize),
	}
}

// Report implements Reporter.
func (r *JSONReporter) Report(_ context.Context, result *Result) (_ int, err error) {
	defer func() {
		if flushErr := r.bw.Flush(); err == nil {
			err = flushErr
		}
	}()

	output := buildOutput(result)

	encoder := json.NewEncoder(r.bw)
	if !r.opts.Compact {
		encoder.SetIndent("", "  ")
	}

	if err := encoder.Encode(output); err != nil {
		return 0, fmt.Errorf("encode JSON: %w", err)
	}

	return output.Summary.Failed + output.Summary.Skipped, nil
}

func buildOutput(result *Result) *JSONOutput {
	stats := result.Stats()
	output := &JSONOutput{
		Version: "1.0.0",
		Files:   make([]JSONFileResult, 0),
		Summary: JSONSummary{
			Answered: stats.Answered,
			Failed:   stats.Failed,
			Skipped:  stats.Skipped,
		},
	}

	if result == nil {
		return output
	}

	for _, file := range result.Files {
		fileResult := JSONFileResult{
			Path:         file.Path,
			Replacements: make([]JSONReplacement, 0, len(file.Replacements)),
			Written:      file.Written,
		}
		if file.Error != nil {
			fileResult.Error = file.Error.Error()
		}

		lines := region.BuildLines(file.Original)
		for i := range file.Replacements {
			rep := &file.Replacements[i]
			line, col := position(lines, rep)
			entry := JSONReplacement{
				Line:        line,
				Column:      col,
				Offset:      rep.Offset,
				Math:        JSONSpan{Begin: rep.Math.Begin, End: rep.Math.End},
				Answer:      JSONSpan{Begin: rep.Answer.Begin, End: rep.Answer.End},
				Source:      rep.Source,
				Expression:  rep.Expression,
				Result:      rep.Result,
				Replacement: rep.Text,
				Skipped:     rep.Skipped,
			}
			if rep.Err != nil {
				entry.Error = rep.Err.Error()
			}
			fileResult.Replacements = append(fileResult.Replacements, entry)
		}

		output.Files = append(output.Files, fileResult)
		output.Summary.Files++
	}

	return output
}
