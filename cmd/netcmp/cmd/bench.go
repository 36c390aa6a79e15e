package cmd

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"netcompare/bench"
	"netcompare/netlist"
	"netcompare/netlist/memnet"
)

var (
	benchWidths string
	benchListen string
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Benchmark pairing engine complexity on scaled ambiguous bridges",
	Long: `bench runs Comparator.Compare over a family of scaled ambiguous
bridge fixtures from package gen, printing how long each comparison took
and how many times the pairing engine's complexity bounds were hit.

With --listen, the results are kept available as Prometheus metrics on
that address's /metrics endpoint instead of exiting immediately.`,
	RunE: runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchWidths, "widths", "2,4,8,16,32", "comma-separated bridge branch counts to benchmark")
	benchCmd.Flags().StringVar(&benchListen, "listen", "", "if set, serve /metrics on this address instead of exiting")
}

func runBench(cmd *cobra.Command, args []string) error {
	widths, err := parseIntList(benchWidths)
	if err != nil {
		return fmt.Errorf("netcmp: --widths: %w", err)
	}

	class := memnet.NewDeviceClass("RES", []netlist.TerminalID{1, 2}, netlist.ParamR)
	m := bench.NewMetrics()
	runs := bench.BridgeSuite(context.Background(), class, widths, 1000, m)

	for _, r := range runs {
		fmt.Printf("%-16s good=%-5v duration=%-12s max_depth_exhaustions=%d max_n_branch_exhaustions=%d\n",
			r.Fixture, r.Good, r.Duration, r.Stats.DepthExhaustions, r.Stats.BranchExhaustions)
	}

	if benchListen == "" {
		return nil
	}
	http.Handle("/metrics", promhttp.HandlerFor(m.Registry(), promhttp.HandlerOpts{}))
	fmt.Printf("serving metrics on %s/metrics\n", benchListen)
	return http.ListenAndServe(benchListen, nil)
}

func parseIntList(s string) ([]int, error) {
	parts := strings.Split(s, ",")
	out := make([]int, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		n, err := strconv.Atoi(p)
		if err != nil {
			return nil, fmt.Errorf("%q: %w", p, err)
		}
		out = append(out, n)
	}
	return out, nil
}
