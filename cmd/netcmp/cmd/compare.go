package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"netcompare"
	"netcompare/netlist"
	"netcompare/netlistfmt"
	"netcompare/netlog"
)

var (
	classesPath        string
	inferCircuitPairs   bool
	excludeResistorsGeq float64
	excludeCapsLeq      float64
)

var compareCmd = &cobra.Command{
	Use:   "compare <a.net> <b.net>",
	Short: "Compare two netlists for structural equivalence",
	Args:  cobra.ExactArgs(2),
	RunE:  runCompare,
}

func init() {
	rootCmd.AddCommand(compareCmd)
	compareCmd.Flags().StringVar(&classesPath, "classes", "classes.yaml", "device class registry (YAML)")
	compareCmd.Flags().BoolVar(&inferCircuitPairs, "infer-circuit-pairs", false, "also pair circuits whose device-class signatures match")
	compareCmd.Flags().Float64Var(&excludeResistorsGeq, "exclude-resistors-above", 0, "exclude resistors above this resistance (0 disables)")
	compareCmd.Flags().Float64Var(&excludeCapsLeq, "exclude-caps-below", 0, "exclude capacitors below this capacitance (0 disables)")
}

func runCompare(cmd *cobra.Command, args []string) error {
	classes, err := loadClasses(classesPath)
	if err != nil {
		return err
	}

	parser, err := netlistfmt.NewParser()
	if err != nil {
		return fmt.Errorf("netcmp: %w", err)
	}

	a, err := loadNetlist(parser, args[0], classes)
	if err != nil {
		return err
	}
	b, err := loadNetlist(parser, args[1], classes)
	if err != nil {
		return err
	}

	comparator := netcompare.New()
	comparator.InferCircuitPairs(inferCircuitPairs)
	if excludeResistorsGeq > 0 {
		comparator.ExcludeResistors(excludeResistorsGeq)
	}
	if excludeCapsLeq > 0 {
		comparator.ExcludeCaps(excludeCapsLeq)
	}

	good := comparator.Compare(context.Background(), a, b, netlog.NewStderr())
	if !good {
		return fmt.Errorf("netcmp: %s and %s are not structurally equivalent", args[0], args[1])
	}
	fmt.Printf("%s and %s are structurally equivalent\n", args[0], args[1])
	return nil
}

func loadNetlist(parser *netlistfmt.Parser, path string, classes map[string]netlistfmt.ClassSpec) (netlist.Netlist, error) {
	f, err := parser.ParseFile(path)
	if err != nil {
		return nil, fmt.Errorf("netcmp: %w", err)
	}
	nl, err := netlistfmt.Build(f, classes)
	if err != nil {
		return nil, fmt.Errorf("netcmp: %w", err)
	}
	return nl, nil
}
