package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/zdcount/zdcount/cliutil"
)

var (
	verbose bool
	logger  cliutil.Logger
)

// rootCmd is the zdcount base command.
var rootCmd = &cobra.Command{
	Use:   "zdcount",
	Short: "Count spanning trees, unfoldings, and non-isomorphic unfoldings of a polyhedron's 1-skeleton",
	Long: `zdcount builds a zero-suppressed decision diagram (ZDD) over the edges
of a polyhedron's 1-skeleton graph and counts spanning trees, optionally
filtering out overlapping unfoldings and aggregating symmetric duplicates
via Burnside's lemma.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := cliutil.LevelInfo
		if verbose {
			level = cliutil.LevelDebug
		}
		logger = cliutil.NewDefaultLogger(level, os.Stdout)

		return nil
	},
}

// Execute runs the root command, exiting the process with status 1 when
// the command returns an error. An indivisible Burnside sum is only
// logged as a warning by count, so it does not change the exit status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose (debug-level) output")
}

// GetLogger returns the logger configured by PersistentPreRunE.
func GetLogger() cliutil.Logger {
	return logger
}

// RootForTest returns the root command with its flags reset to defaults,
// for tests that drive the CLI end-to-end via SetArgs/Execute.
func RootForTest() *cobra.Command {
	verbose = false
	automorphismsFile = ""
	splitDepth = 0

	return rootCmd
}
