// Package reporter writes pipeline outcomes as styled text, JSON or line diffs.
package reporter

import (
	"context"
	"fmt"
)

// Reporter formats and writes calculation results.
type Reporter interface {
	// Report writes formatted output for the given result.
	// It returns the number of failed or skipped replacements and any
	// write errors.
	Report(ctx context.Context, result *Result) (int, error)
}

// New creates a Reporter for the specified options.
func New(opts Options) (Reporter, error) {
	if opts.Writer == nil {
		opts.Writer = DefaultOptions().Writer
	}

	format := opts.Format
	if format == "" {
		format = FormatText
	}

	switch format {
	case FormatJSON:
		return NewJSONReporter(opts), nil
	case FormatDiff:
		return NewDiffReporter(opts), nil
	case FormatText:
		return NewTextReporter(opts), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}
}
