package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/yaklabco/texcalc/internal/logging"
	"github.com/yaklabco/texcalc/pkg/buffer"
	"github.com/yaklabco/texcalc/pkg/calc"
	"github.com/yaklabco/texcalc/pkg/config"
	"github.com/yaklabco/texcalc/pkg/fsutil"
	"github.com/yaklabco/texcalc/pkg/region"
	"github.com/yaklabco/texcalc/pkg/reporter"
)

// stdinPath names standard input as the document.
const stdinPath = "-"

type applyFlags struct {
	at        []string
	offsets   []int
	format    string
	write     bool
	backup    bool
	showExpr  bool
	noContext bool
	compact   bool
	strict    bool
}

func newApplyCommand() *cobra.Command {
	flags := &applyFlags{}

	cmd := &cobra.Command{
		Use:   "apply <file|->",
		Short: "Compute answers at caret positions in a document",
		Long:  applyLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApply(cmd, args[0], flags)
		},
	}

	cmd.Flags().StringArrayVar(&flags.at, "at", nil, "caret position as LINE:COL (1-based, repeatable)")
	cmd.Flags().IntSliceVar(&flags.offsets, "offset", nil, "caret position as a byte offset (repeatable)")
	cmd.Flags().StringVar(&flags.format, "format", "text", "output format: text, json, diff")
	cmd.Flags().BoolVarP(&flags.write, "write", "w", false, "write the result back to the file (stdout for -)")
	cmd.Flags().BoolVar(&flags.backup, "backup", false, "keep a "+fsutil.BackupSuffix+" copy before writing")
	cmd.Flags().BoolVar(&flags.showExpr, "show-expr", false, "show the translated expression for each caret")
	cmd.Flags().BoolVar(&flags.noContext, "no-context", false, "hide source line context in output")
	cmd.Flags().BoolVar(&flags.compact, "compact", false, "use compact output format")
	cmd.Flags().BoolVar(&flags.strict, "strict", false, "exit non-zero when a caret has no answer")

	return cmd
}

const applyLongDescription = `Compute the answer for every caret against one snapshot of a document
and splice the answers into the math spans around the carets.

Carets are given as --at LINE:COL or --offset N and may be repeated. All
answers are computed before any text changes. Carets inside the same math
span produce a single replacement.

Without --write the replacements are only reported. With --write the file
is rewritten atomically; for - the document is read from standard input
and the updated document is written to standard output, with the report
on standard error.

Examples:
  texcalc apply notes.tex --at 12:8              # Report the answer
  texcalc apply notes.tex --at 12:8 --at 14:3 -w # Rewrite the file
  texcalc apply notes.tex --offset 240 --format json
  cat notes.tex | texcalc apply - --at 3:5 -w > out.tex`

func runApply(cmd *cobra.Command, path string, flags *applyFlags) error {
	cliCfg := &config.Config{
		Write:    flags.write,
		Backup:   flags.backup,
		ShowExpr: flags.showExpr,
		Strict:   flags.strict,
	}
	if cmd.Flags().Changed("format") {
		cliCfg.Format = config.OutputFormat(flags.format)
	}

	ctx, cfg, err := loadConfig(cmd, cliCfg)
	if err != nil {
		return err
	}
	ctx = logging.WithFields(ctx, logging.FieldPath, path)
	logger := logging.FromContext(ctx)

	format, err := reporter.ParseFormat(string(cfg.Format))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrUsage, err)
	}

	if len(flags.at) == 0 && len(flags.offsets) == 0 {
		return fmt.Errorf("%w: at least one --at or --offset caret is required", ErrUsage)
	}

	content, info, err := readDocument(ctx, cmd.InOrStdin(), path)
	if err != nil {
		return err
	}
	text := string(content)

	offsets, err := caretOffsets(text, flags.at, flags.offsets)
	if err != nil {
		return err
	}
	logger.Debug("resolved carets", logging.FieldSelections, offsets)

	buf := buffer.WithCarets(text, offsets...)
	reps, err := calc.Run(ctx, buf)
	if err != nil {
		return fmt.Errorf("apply replacements: %w", err)
	}

	file := reporter.FileResult{
		Path:         path,
		Original:     text,
		Updated:      buf.Text(),
		Replacements: reps,
	}

	reportOut := cmd.OutOrStdout()
	if cfg.Write {
		if path == stdinPath {
			reportOut = cmd.ErrOrStderr()
			if _, err := io.WriteString(cmd.OutOrStdout(), file.Updated); err != nil {
				return fmt.Errorf("write stdout: %w", err)
			}
			file.Written = true
		} else if file.Updated != file.Original {
			if err := writeDocument(ctx, info, file.Updated, cfg.Backup); err != nil {
				return err
			}
			file.Written = true
		}
	}

	rep, err := reporter.New(reporter.Options{
		Writer:      reportOut,
		Format:      format,
		Color:       string(cfg.Color),
		ShowExpr:    cfg.ShowExpr,
		ShowContext: !flags.noContext,
		ShowSummary: true,
		Compact:     flags.compact,
	})
	if err != nil {
		return fmt.Errorf("create reporter: %w", err)
	}

	failures, err := rep.Report(ctx, &reporter.Result{Files: []reporter.FileResult{file}})
	if err != nil {
		return fmt.Errorf("report results: %w", err)
	}

	if cfg.Strict && failures > 0 {
		return fmt.Errorf("%w: %d of %d", ErrNoAnswers, failures, len(reps))
	}

	return nil
}

// readDocument reads the document at path, or standard input for "-".
// The returned FileInfo is nil for standard input.
func readDocument(ctx context.Context, stdin io.Reader, path string) ([]byte, *fsutil.FileInfo, error) {
	if path == stdinPath {
		var buf bytes.Buffer
		if _, err := buf.ReadFrom(stdin); err != nil {
			return nil, nil, fmt.Errorf("read stdin: %w", err)
		}
		return buf.Bytes(), nil, nil
	}

	content, info, err := fsutil.ReadFile(ctx, path)
	if err != nil {
		return nil, nil, err
	}
	return content, info, nil
}

// caretOffsets converts LINE:COL positions and raw offsets into byte
// offsets of text. Positions come first, in flag order.
func caretOffsets(text string, positions []string, offsets []int) ([]int, error) {
	lines := region.BuildLines(text)
	result := make([]int, 0, len(positions)+len(offsets))

	for _, pos := range positions {
		line, col, err := region.ParsePosition(pos)
		if err != nil {
			return nil, err
		}
		offset, err := lines.Offset(line, col)
		if err != nil {
			return nil, err
		}
		result = append(result, offset)
	}

	for _, offset := range offsets {
		if offset < 0 || offset > len(text) {
			return nil, fmt.Errorf("%w: offset %d out of range 0..%d", region.ErrInvalidPosition, offset, len(text))
		}
		result = append(result, offset)
	}

	return result, nil
}

// writeDocument rewrites the file described by info, refusing when it
// changed since it was read.
func writeDocument(ctx context.Context, info *fsutil.FileInfo, updated string, backup bool) error {
	logger := logging.FromContext(ctx)

	if backup {
		backupPath, err := fsutil.CreateBackup(ctx, info.Path)
		if err != nil {
			return fmt.Errorf("create backup: %w", err)
		}
		logger.Debug("created backup", logging.FieldBackup, backupPath)
	}

	if err := fsutil.WriteSnapshot(ctx, info, []byte(updated)); err != nil {
		if backup {
			if _, rmErr := fsutil.RemoveBackup(info.Path); rmErr != nil {
				logger.Warn("could not remove backup", logging.FieldError, rmErr)
			}
		}
		return fmt.Errorf("write %s: %w", info.Path, err)
	}
	logger.Info("updated file")

	return nil
}
