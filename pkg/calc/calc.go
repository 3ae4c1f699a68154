// Package calc ties the region locator, splitter, translator and evaluator
// into one pipeline that turns a caret position into a text replacement.
package calc

import (
	"context"
	"errors"
	"fmt"

	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/pkg/eval"
	"github.com/yaklabco/texcalc/pkg/region"
	"github.com/yaklabco/texcalc/pkg/split"
	"github.com/yaklabco/texcalc/pkg/translate"
)

// ErrNoAnswer marks a replacement whose expression could not be evaluated.
var ErrNoAnswer = errors.New("no answer")

// Replacement is the outcome of running the pipeline for one caret.
type Replacement struct {
	// Offset is the caret the replacement was computed for.
	Offset int

	// Math is the located math span.
	Math region.Span

	// Eval is the span whose text was evaluated.
	Eval region.Span

	// Answer is the span replaced by Text.
	Answer region.Span

	// Source is the LaTeX text of the eval span.
	Source string

	// Expression is Source after translation.
	Expression string

	// Result is the formatted answer, empty when evaluation failed.
	Result string

	// Text is the equal sign followed by Result.
	Text string

	// Err wraps ErrNoAnswer and the evaluation error when Result is empty.
	Err error

	// Skipped is set by Run when the replacement overlapped another
	// selection's replacement and was not applied.
	Skipped bool
}

// Compute runs the pipeline on text for the caret at offset.
// It never fails; evaluation errors are recorded on the replacement and
// logged at debug level.
func Compute(ctx context.Context, text string, offset int) Replacement {
	logger := logging.FromContext(ctx)

	math := region.Locate(text, offset)
	if n := region.CountDelimiters(text, math.Begin); n%2 == 0 {
		logger.Debug("caret may be outside math mode",
			logging.FieldOffset, offset,
			logging.FieldDelimiters, n,
		)
	}

	parts := split.Split(text, math)
	source := parts.Eval.Text(text)
	expr := translate.Translate(source)

	rep := Replacement{
		Offset:     offset,
		Math:       math,
		Eval:       parts.Eval,
		Answer:     parts.Answer,
		Source:     source,
		Expression: expr,
	}

	value, err := eval.Evaluate(expr)
	if err != nil {
		rep.Err = fmt.Errorf("%w: %w", ErrNoAnswer, err)
		logger.Debug("evaluation failed",
			logging.FieldOffset, offset,
			logging.FieldExpression, expr,
			logging.FieldError, err,
		)
	} else {
		rep.Result = eval.Format(value)
	}

	rep.Text = split.EqualSign(text, parts.Eval) + rep.Result

	logger.Debug("computed replacement",
		logging.FieldOffset, offset,
		logging.FieldMath, math.String(),
		logging.FieldEval, source,
		logging.FieldAnswer, parts.Answer.Text(text),
		logging.FieldResult, rep.Result,
	)

	return rep
}

// ComputeAll runs Compute for every offset against the same text.
func ComputeAll(ctx context.Context, text string, offsets []int) []Replacement {
	reps := make([]Replacement, 0, len(offsets))
	for _, offset := range offsets {
		reps = append(reps, Compute(ctx, text, offset))
	}
	return reps
}

// ExpressionAnswer translates a bare LaTeX expression and evaluates it,
// returning the translated expression and the formatted answer.
func ExpressionAnswer(latex string) (string, string, error) {
	expr := translate.Translate(latex)
	value, err := eval.Evaluate(expr)
	if err != nil {
		return expr, "", fmt.Errorf("%w: %w", ErrNoAnswer, err)
	}
	return expr, eval.Format(value), nil
}
