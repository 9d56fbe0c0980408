package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"credential-keeper/internal/harness"
)

// checksFailedError carries the failure count out of the selftest command so
// main can exit non-zero without printing anything beyond the FAIL lines.
type checksFailedError struct {
	failures int
}

func (e checksFailedError) Error() string {
	return fmt.Sprintf("%d check(s) failed", e.failures)
}

var selftestCmd = &cobra.Command{
	Use:   "selftest",
	Short: "Run the built-in credential and utility checks",
	Long: `Runs the fixed comparator, list combiner and credential store scenarios.
Each failing check prints one FAIL line; passing checks print nothing.
The exit status is non-zero when any check fails.`,
	Args: cobra.NoArgs,
	RunE: runSelftest,
}

func runSelftest(cmd *cobra.Command, _ []string) error {
	if n := harness.RunAll(cmd.OutOrStdout()); n > 0 {
		return checksFailedError{failures: n}
	}
	return nil
}
