// Command checkup runs rule-based compliance checks over a source tree.
//
// Two report modes share the same engine: "lint" applies the continuous
// rule catalogue, "verify" runs the stricter one-time migration checks.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/dkoosis/checkup/pkg/report"
	"github.com/dkoosis/checkup/pkg/sarif"
)

// errVerdictFailed signals a failing verdict after a report was already
// rendered; main exits nonzero without printing a second message.
var errVerdictFailed = errors.New("compliance checks failed")

var rootCmd = &cobra.Command{
	Use:           "checkup",
	Short:         "Rule-based source tree compliance checker",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errVerdictFailed) {
			fmt.Fprintln(os.Stderr, "checkup:", err)
		}
		os.Exit(1)
	}
}

func emit(rep report.Report, format, tool string, w io.Writer) error {
	switch format {
	case "text":
		rep.Render(w)
		return nil
	case "sarif":
		return sarif.NewEncoder(w).Encode(rep.ToSARIF(tool))
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
