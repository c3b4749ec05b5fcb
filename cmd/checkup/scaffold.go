package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dkoosis/checkup/pkg/scaffold"
)

func init() {
	rootCmd.AddCommand(newScaffoldCmd())
}

func newScaffoldCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "scaffold <name> [root]",
		Short: "Generate the skeleton for a new source module",
		Long: `Create src/<name>/ with a guarded header, source stub, and CMake
fragment, plus a matching unit test under tests/unit/<name>/.`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			root := "."
			if len(args) == 2 {
				root = args[1]
			}

			created, err := scaffold.Create(root, args[0])
			if err != nil {
				return err
			}
			for _, path := range created {
				fmt.Fprintln(cmd.OutOrStdout(), "created", path)
			}
			return nil
		},
	}
}
