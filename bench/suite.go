package bench

import (
	"context"
	"fmt"

	"netcompare"
	"netcompare/gen"
	"netcompare/netlist/memnet"
)

func wrap(c *memnet.Circuit) *memnet.Netlist {
	nl := memnet.NewNetlist()
	nl.AddCircuit(c)
	return nl
}

// BridgeSuite runs one Compare per width in widths, each over a fresh pair
// of width-branch ambiguous bridges from package gen: as width grows, the
// number of structurally-identical branches the pairing engine must
// disambiguate grows with it, which is exactly the shape
// pairing.DefaultMaxNBranch exists to bound. Every comparison uses its own
// Comparator so Stats() reports only that width's exhaustion counts.
func BridgeSuite(ctx context.Context, class *memnet.DeviceClass, widths []int, r float64, m *Metrics) []Run {
	runs := make([]Run, len(widths))
	for i, w := range widths {
		a := wrap(gen.Bridge(class, w, r))
		b := wrap(gen.Bridge(class, w, r))
		comparator := netcompare.New()
		runs[i] = Compare(ctx, comparator, fmt.Sprintf("bridge-%d", w), a, b, m)
	}
	return runs
}

// HierarchySuite runs one Compare per depth in depths, each over a fresh
// pair of identically-seeded bottom-up hierarchies: growing depth grows
// the number of circuit pairs compareCircuitPair must verify before the
// top-level pair is even attempted, exercising the callees-verified gate
// rather than the ambiguous-group search BridgeSuite targets.
func HierarchySuite(ctx context.Context, class *memnet.DeviceClass, depths []int, fanout, chainLen int, minR, maxR float64, seed int64, m *Metrics) []Run {
	runs := make([]Run, len(depths))
	for i, d := range depths {
		gen.Seed(seed)
		a := gen.Hierarchy(class, d, fanout, chainLen, minR, maxR)
		gen.Seed(seed)
		b := gen.Hierarchy(class, d, fanout, chainLen, minR, maxR)
		comparator := netcompare.New()
		runs[i] = Compare(ctx, comparator, fmt.Sprintf("hierarchy-%d", d), a, b, m)
	}
	return runs
}
