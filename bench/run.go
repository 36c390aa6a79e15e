package bench

import (
	"context"
	"time"

	"github.com/google/uuid"

	"netcompare"
	"netcompare/netlist"
)

// Run records one Comparator.Compare call's outcome: enough to export as
// metrics and enough to correlate a particular scraped sample back to the
// fixture and configuration that produced it.
type Run struct {
	ID       string
	Fixture  string
	Good     bool
	Duration time.Duration
	Stats    netcompare.Stats
	Counts   Counts
}

// Compare runs comparator.Compare(a, b) under a CountingLogger, times it,
// and returns a Run tagged with fixture (used as the Prometheus label and
// as the run's correlation key alongside its generated UUID). If m is
// non-nil, the run's results are folded into it.
func Compare(ctx context.Context, comparator *netcompare.Comparator, fixture string, a, b netlist.Netlist, m *Metrics) Run {
	cl := NewCountingLogger(nil)
	before := comparator.Stats()
	start := time.Now()
	good := comparator.Compare(ctx, a, b, cl)
	elapsed := time.Since(start)
	after := comparator.Stats()

	r := Run{
		ID:      uuid.NewString(),
		Fixture: fixture,
		Good:    good,
		Duration: elapsed,
		Stats: netcompare.Stats{
			DepthExhaustions:  after.DepthExhaustions - before.DepthExhaustions,
			BranchExhaustions: after.BranchExhaustions - before.BranchExhaustions,
		},
		Counts: cl.Counts(),
	}
	if m != nil {
		m.observe(r)
	}
	return r
}
