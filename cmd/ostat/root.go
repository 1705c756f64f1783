package main

import "github.com/spf13/cobra"

// rootCmd is the root of the ostat CLI. Subcommands register themselves
// in their file's init function.
var rootCmd = &cobra.Command{
	Use:   "ostat",
	Short: "Order-statistic B-tree engine",
	Long: `ostat builds an in-memory order-statistic B-tree from key files and
answers rank, selection, range, and prime-range queries against it.`,
	SilenceUsage: true,
}
