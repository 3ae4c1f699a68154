package calc

import (
	"context"
	"fmt"
	"slices"

	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/pkg/region"
	"github.com/yaklabco/texcalc/pkg/splice"
)

// Host is the editing environment the pipeline runs against.
type Host interface {
	// Snapshot returns the full buffer text.
	Snapshot() string

	// Substr returns the text addressed by span.
	Substr(span region.Span) string

	// Selections returns the carets or selections to process.
	Selections() []region.Span

	// Replace splices text over span.
	Replace(span region.Span, text string) error
}

// Run computes a replacement for every selection against one snapshot of
// host, then applies them from the end of the buffer backwards so earlier
// offsets stay valid. Replacements that overlap an earlier one are marked
// Skipped. Identical replacements from carets in the same math span are
// applied once.
func Run(ctx context.Context, host Host) ([]Replacement, error) {
	logger := logging.FromContext(ctx)

	text := host.Snapshot()
	selections := host.Selections()

	offsets := make([]int, len(selections))
	for i, sel := range selections {
		offsets[i] = sel.Begin
	}
	reps := ComputeAll(ctx, text, offsets)

	splices := make([]splice.Splice, len(reps))
	for i, rep := range reps {
		splices[i] = splice.Splice{Span: rep.Answer, Text: rep.Text}
	}
	if err := splice.Validate(splices, len(text)); err != nil {
		return reps, fmt.Errorf("validate replacements: %w", err)
	}

	sorted := slices.Clone(splices)
	splice.Sort(sorted)
	accepted, skipped := splice.FilterConflicts(splice.Dedupe(sorted))

	for i, rep := range reps {
		if slices.Contains(skipped, splices[i]) && !slices.Contains(accepted, splices[i]) {
			reps[i].Skipped = true
			logger.Warn("skipping overlapping replacement",
				logging.FieldOffset, rep.Offset,
				logging.FieldAnswer, rep.Answer.String(),
			)
		}
	}

	for i := len(accepted) - 1; i >= 0; i-- {
		s := accepted[i]
		logger.Debug("replacing",
			logging.FieldAnswer, host.Substr(s.Span),
			logging.FieldResult, s.Text,
		)
		if err := host.Replace(s.Span, s.Text); err != nil {
			return reps, fmt.Errorf("replace %v: %w", s.Span, err)
		}
	}

	return reps, nil
}
