package calc_test

import (
	"context"
	"errors"
	"testing"

	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/eval"
	"github.com/yaklabco/texcalc/pkg/region"
)

func TestCompute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		text       string
		offset     int
		wantMath   region.Span
		wantEval   region.Span
		wantAnswer region.Span
		wantText   string
	}{
		{
			name:       "insert new answer",
			text:       "$1 + 2$",
			offset:     3,
			wantMath:   region.Span{Begin: 1, End: 6},
			wantEval:   region.Span{Begin: 1, End: 6},
			wantAnswer: region.Span{Begin: 6, End: 6},
			wantText:   " = 3",
		},
		{
			name:       "re-evaluate after stale equal sign",
			text:       "$1 + 2 = 4 - 1$",
			offset:     2,
			wantMath:   region.Span{Begin: 1, End: 14},
			wantEval:   region.Span{Begin: 8, End: 14},
			wantAnswer: region.Span{Begin: 14, End: 14},
			wantText:   " = 3",
		},
		{
			name:       "overwrite stale numeric answer",
			text:       "$1 + 2 = 4 $",
			offset:     2,
			wantMath:   region.Span{Begin: 1, End: 11},
			wantEval:   region.Span{Begin: 1, End: 7},
			wantAnswer: region.Span{Begin: 7, End: 11},
			wantText:   "= 3",
		},
		{
			name:       "latex macros",
			text:       "see $\\sin(\\pi) + 16^{0.5}$.",
			offset:     8,
			wantMath:   region.Span{Begin: 5, End: 25},
			wantEval:   region.Span{Begin: 5, End: 25},
			wantAnswer: region.Span{Begin: 25, End: 25},
			wantText:   " = 4",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rep := calc.Compute(context.Background(), tt.text, tt.offset)

			if rep.Math != tt.wantMath {
				t.Errorf("Math = %v, want %v", rep.Math, tt.wantMath)
			}
			if rep.Eval != tt.wantEval {
				t.Errorf("Eval = %v, want %v", rep.Eval, tt.wantEval)
			}
			if rep.Answer != tt.wantAnswer {
				t.Errorf("Answer = %v, want %v", rep.Answer, tt.wantAnswer)
			}
			if rep.Text != tt.wantText {
				t.Errorf("Text = %q, want %q", rep.Text, tt.wantText)
			}
			if rep.Err != nil {
				t.Errorf("Err = %v, want nil", rep.Err)
			}
		})
	}
}

func TestCompute_EvaluationFailure(t *testing.T) {
	t.Parallel()

	rep := calc.Compute(context.Background(), "$(1 + 2 * 3$", 2)

	if rep.Result != "" {
		t.Errorf("Result = %q, want empty", rep.Result)
	}
	if rep.Text != " = " {
		t.Errorf("Text = %q, want %q", rep.Text, " = ")
	}
	if !errors.Is(rep.Err, calc.ErrNoAnswer) || !errors.Is(rep.Err, eval.ErrSyntax) {
		t.Errorf("Err = %v, want ErrNoAnswer wrapping ErrSyntax", rep.Err)
	}
}

func TestComputeAll(t *testing.T) {
	t.Parallel()

	text := "$1 + 1$ and $2 * 3$"
	reps := calc.ComputeAll(context.Background(), text, []int{2, 14})

	if len(reps) != 2 {
		t.Fatalf("got %d replacements, want 2", len(reps))
	}
	if reps[0].Result != "2" || reps[1].Result != "6" {
		t.Errorf("results = %q, %q", reps[0].Result, reps[1].Result)
	}
}

func TestExpressionAnswer(t *testing.T) {
	t.Parallel()

	expr, answer, err := calc.ExpressionAnswer("(2.56)(34)")
	if err != nil {
		t.Fatalf("ExpressionAnswer error: %v", err)
	}
	if expr != "(2.56)*(34)" || answer != "87.04" {
		t.Errorf("ExpressionAnswer = %q, %q", expr, answer)
	}

	_, answer, err = calc.ExpressionAnswer("\\sqrt{2}")
	if !errors.Is(err, calc.ErrNoAnswer) || answer != "" {
		t.Errorf("ExpressionAnswer(\\sqrt{2}) = %q, %v", answer, err)
	}
}
