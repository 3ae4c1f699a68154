package cli

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/internal/ui/pretty"
	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/config"
)

type evalFlags struct {
	showExpr bool
	strict   bool
}

func newEvalCommand() *cobra.Command {
	flags := &evalFlags{}

	cmd := &cobra.Command{
		Use:   "eval [latex...]",
		Short: "Evaluate LaTeX expressions",
		Long: `Translate and evaluate each argument as a LaTeX expression and print
its answer rounded to three decimals. With no arguments, expressions are
read one per line from piped standard input.

Inputs that cannot be evaluated print an empty line.

Examples:
  texcalc eval '2 \times 3'              # 6
  texcalc eval '{1+1}{2}' '\sin{\pi}'    # 4, 0
  echo '2^{10}' | texcalc eval --show-expr`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(cmd, args, flags)
		},
	}

	cmd.Flags().BoolVar(&flags.showExpr, "show-expr", false, "print the translated expression before the answer")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when an expression has no answer")

	return cmd
}

func runEval(cmd *cobra.Command, args []string, flags *evalFlags) error {
	ctx, cfg, err := loadConfig(cmd, &config.Config{
		ShowExpr: flags.showExpr,
		Strict:   flags.strict,
	})
	if err != nil {
		return err
	}
	logger := logging.FromContext(ctx)

	inputs := args
	if len(inputs) == 0 {
		if isTerminal(cmd.InOrStdin()) {
			return fmt.Errorf("%w: no expressions given", ErrUsage)
		}
		inputs, err = readLines(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
	}

	out := cmd.OutOrStdout()
	styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
	bw := bufio.NewWriter(out)

	var failed int
	for _, input := range inputs {
		expr, answer, err := calc.ExpressionAnswer(input)
		if err != nil {
			failed++
			logger.Debug("evaluation failed",
				logging.FieldInput, input,
				logging.FieldExpression, expr,
				logging.FieldError, err,
			)
		}

		if cfg.ShowExpr {
			fmt.Fprintf(bw, "%s %s ", styles.Expression.Render(expr), styles.Dim.Render("="))
		}
		fmt.Fprintln(bw, styles.Answer.Render(answer))
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if cfg.Strict && failed > 0 {
		return fmt.Errorf("%w: %d of %d", ErrNoAnswers, failed, len(inputs))
	}

	return nil
}

// isTerminal reports whether r is an interactive terminal.
func isTerminal(r io.Reader) bool {
	f, ok := r.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

// maxLineSize bounds a single piped input line.
const maxLineSize = 16 * 1024 * 1024

// readLines returns the non-blank lines of r with line endings removed.
func readLines(r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines, scanner.Err()
}
