package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkoosis/checkup/pkg/engine"
	"github.com/dkoosis/checkup/pkg/report"
	"github.com/dkoosis/checkup/pkg/rules"
	"github.com/dkoosis/checkup/pkg/scan"
)

func init() {
	rootCmd.AddCommand(newLintCmd())
}

func newLintCmd() *cobra.Command {
	var threshold float64
	var format string

	cmd := &cobra.Command{
		Use:   "lint [root]",
		Short: "Run the continuous compliance rule catalogue",
		Long: `Scan the tree and apply naming, documentation, style, coverage, and
include-guard rules. The run passes when there are no error-severity
issues and test coverage meets the threshold.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runLint(cmd.Context(), root, threshold, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().Float64Var(&threshold, "threshold", 70, "minimum test coverage percentage")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or sarif")
	return cmd
}

func runLint(ctx context.Context, root string, threshold float64, format string, w io.Writer) error {
	opts := rules.Options{CoverageThreshold: threshold}

	eng := engine.New(rules.Catalogue(opts))
	project, issues, err := eng.Run(ctx, scan.New(root))
	if err != nil {
		return err
	}

	rep := report.Lint(issues, rules.MeasureCoverage(project, opts))
	if err := emit(rep, format, "checkup-lint", w); err != nil {
		return err
	}
	if !rep.Pass {
		return errVerdictFailed
	}
	return nil
}
