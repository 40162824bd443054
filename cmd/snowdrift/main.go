package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "snowdrift",
		Short: "Snowdrift game sweeps on small graphs",
		Long: `snowdrift runs best-response snowdrift dynamics on a small graph,
one run per benefit-cost ratio r, and reports whether the converged
cooperator set forms a minimal node cover. Each run can export the
final configuration as a Graphviz DOT figure (cooperators red,
defectors blue).`,
	}

	rootCmd.AddCommand(
		newRunCmd(),
		newVersionCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
