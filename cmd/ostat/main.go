// Package main provides the entry point for the ostat CLI.
package main

import "os"

func main() {
	os.Exit(run())
}

// run executes the CLI and returns an exit code. Separated from main()
// to facilitate testing.
func run() int {
	if err := rootCmd.Execute(); err != nil {
		return 1
	}
	return 0
}
