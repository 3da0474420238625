// Copyright (C) 2021 Michael J. Fromberger. All Rights Reserved.

// Program jstream replays JSON objects through an incremental parser and
// prints the partial object visible after each chunk of input.
package main

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
)

var log = commonlog.GetLogger("jstream")

func main() {
	_ = godotenv.Load()
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var verbose int

	rootCmd := &cobra.Command{
		Use:          "jstream",
		Short:        "Incrementally parse streamed JSON objects",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			commonlog.Configure(verbose, nil)
		},
	}
	rootCmd.PersistentFlags().CountVarP(&verbose, "verbose", "v", "increase log verbosity")
	if v := envInt("JSTREAM_VERBOSE", 0); v > 0 {
		verbose = v
	}

	rootCmd.AddCommand(newReplayCmd())
	rootCmd.AddCommand(newParseCmd())
	return rootCmd
}
