package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/yaklabco/texcalc/internal/ui/pretty"
	"github.com/yaklabco/texcalc/pkg/config"
	"github.com/yaklabco/texcalc/pkg/translate"
)

func newMacrosCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "macros",
		Short: "List the LaTeX macros texcalc understands",
		Long: `List every backslash macro the translator rewrites and the arithmetic
it becomes. Outside of macros, ^ becomes ** and brackets and braces become
parentheses. Any other macro is kept as written and fails to evaluate.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, cfg, err := loadConfig(cmd, &config.Config{})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			styles := pretty.NewStyles(pretty.IsColorEnabled(string(cfg.Color), out))
			bw := bufio.NewWriter(out)
			for _, name := range translate.Macros() {
				fmt.Fprintf(bw, "  %-8s %s\n", `\`+name, styles.Expression.Render(translate.Resolve(name)))
			}
			if err := bw.Flush(); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			return nil
		},
	}
}
