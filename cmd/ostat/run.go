package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/KilimcininKorOglu/ostat/internal/config"
	"github.com/KilimcininKorOglu/ostat/internal/driver"
	"github.com/KilimcininKorOglu/ostat/internal/logging"
)

var (
	runOutputFile string
	runLogLevel   string
)

// runCmd executes one batch job: build the tree from the insert and
// delete files, then answer the commands file into the output file.
var runCmd = &cobra.Command{
	Use:   "run <min-degree> <insert-file> <delete-file> <commands-file>",
	Short: "Build a tree from key files and execute a command file",
	Args:  cobra.ExactArgs(4),
	RunE: func(cmd *cobra.Command, args []string) error {
		minDegree, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("min-degree must be an integer: %q", args[0])
		}

		cfg := config.RunConfig{
			MinDegree:    minDegree,
			InsertFile:   args[1],
			DeleteFile:   args[2],
			CommandsFile: args[3],
			OutputFile:   runOutputFile,
		}
		cfg.ApplyDefaults()
		if err := cfg.Validate(); err != nil {
			return err
		}

		opts := logging.FromEnv()
		if runLogLevel != "" {
			opts.Level = runLogLevel
		}
		log := logging.New(opts)

		return driver.Run(cfg, log)
	},
}

func init() {
	runCmd.Flags().StringVarP(&runOutputFile, "output", "o",
		config.DefaultOutputFile, "file the command results are written to")
	runCmd.Flags().StringVar(&runLogLevel, "log-level", "",
		"log level: trace, debug, info, warn, error")
	rootCmd.AddCommand(runCmd)
}
