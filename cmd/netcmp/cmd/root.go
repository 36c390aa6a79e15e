package cmd

import (
	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "netcmp",
	Short: "Structural equivalence checker for hierarchical netlists",
	Long: `netcmp compares two hierarchical netlists bottom-up, circuit by
circuit, deriving a net-to-net bijection between them and reporting every
mismatch it finds.

Examples:
  netcmp compare a.net b.net
  netcmp compare --infer-circuit-pairs a.net b.net
  netcmp bench --widths 2,4,8,16`,
	Version: "0.1.0",
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}
