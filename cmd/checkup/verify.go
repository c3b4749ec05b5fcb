package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"

	"github.com/dkoosis/checkup/pkg/verify"
)

func init() {
	rootCmd.AddCommand(newVerifyCmd())
}

func newVerifyCmd() *cobra.Command {
	var configPath string
	var format string

	cmd := &cobra.Command{
		Use:   "verify [root]",
		Short: "Verify a migrated tree against the structural manifest",
		Long: `Check that every expected path exists and that no deprecated include
patterns remain. Verify passes only when zero issues are found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}
			return runVerify(cmd.Context(), root, configPath, format, cmd.OutOrStdout())
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML file overriding the manifest and pattern set")
	cmd.Flags().StringVar(&format, "format", "text", "output format: text or sarif")
	return cmd
}

func runVerify(ctx context.Context, root, configPath, format string, w io.Writer) error {
	cfg := verify.DefaultConfig()
	if configPath != "" {
		loaded, err := verify.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	rep, err := verify.Run(ctx, root, cfg)
	if err != nil {
		return err
	}

	if err := emit(rep, format, "checkup-verify", w); err != nil {
		return err
	}
	if !rep.Pass {
		return errVerdictFailed
	}
	return nil
}
