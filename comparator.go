// Package netcompare is the public surface of the netlist comparison
// engine: configure a Comparator, then call Compare to decide structural
// equivalence of two hierarchical netlists and obtain a full net, device,
// subcircuit and pin bijection via a Logger. Comparator wraps
// internal/pairing, category, netgraph, circuitmap and devicefilter —
// none of which a caller needs to touch directly.
package netcompare

import (
	"context"

	"netcompare/category"
	"netcompare/cerr"
	"netcompare/circuitmap"
	"netcompare/devicefilter"
	"netcompare/internal/pairing"
	"netcompare/netgraph"
	"netcompare/netlist"
	"netcompare/refid"
)

// MaxAnalysisSet bounds the combined size of the unmatched-subcircuit set
// the local-swap alignment heuristic runs over; beyond this many
// subcircuits the quadratic optimizer is skipped and every remaining
// subcircuit is reported individually against null.
const MaxAnalysisSet = 1000

type circuitPair struct {
	a, b netlist.Circuit
}

type netPair struct {
	a, b netlist.Net
}

// Comparator holds persistent, user-configured comparison settings.
// Configuration is read-only during Compare: every call makes independent
// working copies of the categorizers and pin mapper so that repeated
// Compare calls are idempotent.
type Comparator struct {
	filter   *devicefilter.Filter
	devCat   *category.Categorizer[netlist.DeviceClass]
	circCat  *category.Categorizer[netlist.Circuit]
	pins     *category.PinMapper
	sameNets map[circuitPair][]netPair

	inferCircuitPairs bool

	depthExhaustions  int
	branchExhaustions int
}

// Stats summarizes complexity-bound behavior accumulated across every
// circuit pair a Comparator has run through Compare, for callers (bench)
// that want to know how often the pairing engine's depth/branch bounds,
// rather than a genuine mismatch, decided an outcome.
type Stats struct {
	DepthExhaustions  int
	BranchExhaustions int
}

// Stats returns the complexity-bound counters accumulated over every
// Compare call made on c since it was created; they are never reset.
func (c *Comparator) Stats() Stats {
	return Stats{DepthExhaustions: c.depthExhaustions, BranchExhaustions: c.branchExhaustions}
}

// New creates an empty Comparator with no configuration.
func New() *Comparator {
	return &Comparator{
		filter:   devicefilter.New(),
		devCat:   category.New[netlist.DeviceClass](),
		circCat:  category.New[netlist.Circuit](),
		pins:     category.NewPinMapper(),
		sameNets: make(map[circuitPair][]netPair),
	}
}

// ExcludeCaps sets the capacitance floor device-graph construction admits
// capacitors above. A negative threshold disables the rule.
func (c *Comparator) ExcludeCaps(threshold float64) { c.filter.ExcludeCaps(threshold) }

// ExcludeResistors sets the resistance ceiling device-graph construction
// admits resistors below. A negative threshold disables the rule.
func (c *Comparator) ExcludeResistors(threshold float64) { c.filter.ExcludeResistors(threshold) }

// SameNets records a hard, user-provided equivalence between netA (of
// circuit a) and netB (of circuit b), honored as soon as a and b are
// compared against each other.
func (c *Comparator) SameNets(a, b netlist.Circuit, netA, netB netlist.Net) error {
	if a == nil || b == nil || netA == nil || netB == nil {
		return cerr.ConfigError{Msg: "same_nets given a nil circuit or net"}
	}
	key := circuitPair{a, b}
	c.sameNets[key] = append(c.sameNets[key], netPair{netA, netB})
	return nil
}

// EquivalentPins declares pins of circuit as a swappable set.
func (c *Comparator) EquivalentPins(circuit netlist.Circuit, pins ...netlist.PinID) error {
	return c.pins.DeclareEquivalent(circuit, pins...)
}

// SameDeviceClasses unifies the categories of a and b.
func (c *Comparator) SameDeviceClasses(a, b netlist.DeviceClass) error {
	return c.devCat.DeclareSame(a, b)
}

// SameCircuits unifies the categories of a and b.
func (c *Comparator) SameCircuits(a, b netlist.Circuit) error {
	return c.circCat.DeclareSame(a, b)
}

// InferCircuitPairs opts into the supplemental device-class-signature
// circuit pairing pass (category.InferCircuitPairsByDeviceClassSignature),
// off by default.
func (c *Comparator) InferCircuitPairs(enabled bool) { c.inferCircuitPairs = enabled }

// circuitMapperRegistries is the pair of per-side CircuitMapper registries
// threaded through one Compare call: registryA is keyed by a's circuits,
// registryB by b's, and a verified pair (ac,bc) gets one Mapper entry in
// each, populated in lockstep as pins are cross-referenced.
type circuitMapperRegistries struct {
	a, b *circuitmap.Registry
}

func newCircuitMapperRegistries() *circuitMapperRegistries {
	return &circuitMapperRegistries{a: circuitmap.NewRegistry(), b: circuitmap.NewRegistry()}
}

func (r *circuitMapperRegistries) declarePair(ac, bc netlist.Circuit) {
	r.a.GetOrCreate(ac).SetOther(bc)
	r.b.GetOrCreate(bc).SetOther(ac)
}

func (r *circuitMapperRegistries) recordPin(ac, bc netlist.Circuit, pa, pb netlist.PinID) {
	r.a.GetOrCreate(ac).Map(pa, pb)
	r.b.GetOrCreate(bc).Map(pb, pa)
}

// Compare runs the bottom-up comparison driver over a and b, emitting
// every match/mismatch event to logger (a nil logger is replaced with a
// no-op sink) and returning whether the two netlists are fully equivalent.
// Compare is idempotent: it never mutates c's configuration, working
// against independent copies of every piece of it; the only state of c it
// changes is the exhaustion counters reported by Stats.
func (c *Comparator) Compare(ctx context.Context, a, b netlist.Netlist, logger Logger) bool {
	if logger == nil {
		logger = noopLogger{}
	}
	devCat := c.devCat.Copy()
	circCat := c.circCat.Copy()
	pins := c.pins.Copy()
	filter := c.filter.Copy()
	regs := newCircuitMapperRegistries()

	logger.BeginNetlist(a, b)
	good := true

	if scanDeviceClassMismatches(collectDeviceClasses(a), collectDeviceClasses(b), devCat, logger) > 0 {
		good = false
	}

	if c.inferCircuitPairs {
		all := append(append([]netlist.Circuit(nil), a.Circuits()...), b.Circuits()...)
		category.InferCircuitPairsByDeviceClassSignature(circCat, devCat, all)
	}

	byCategory := make(map[refid.CategoryID][]netlist.Circuit)
	for _, bc := range b.Circuits() {
		cat := circCat.CategoryFor(bc)
		byCategory[cat] = append(byCategory[cat], bc)
	}
	consumedB := make(map[netlist.Circuit]bool)
	verifiedA := make(map[netlist.Circuit]bool)
	verifiedB := make(map[netlist.Circuit]bool)

	for _, ac := range a.Circuits() {
		if ctx.Err() != nil {
			break
		}

		cat := circCat.CategoryFor(ac)
		queue := byCategory[cat]
		var bc netlist.Circuit
		if len(queue) > 0 {
			bc = queue[0]
			byCategory[cat] = queue[1:]
			consumedB[bc] = true
		}

		if bc == nil {
			logger.CircuitMismatch(ac, nil)
			good = false
			continue
		}
		if !calleesVerified(ac, verifiedA) || !calleesVerified(bc, verifiedB) {
			logger.CircuitSkipped(ac, bc)
			good = false
			continue
		}

		verified, pairGood := c.compareCircuitPair(ctx, ac, bc, devCat, circCat, pins, filter, regs, logger)
		if verified {
			verifiedA[ac] = true
			verifiedB[bc] = true
		}
		if !pairGood {
			good = false
		}
	}

	for _, bc := range b.Circuits() {
		if !consumedB[bc] {
			logger.CircuitMismatch(nil, bc)
			good = false
		}
	}

	logger.EndNetlist(a, b)
	return good
}

// calleesVerified reports whether every non-via (more than one pin)
// subcircuit callee of circuit already appears in verified — the gate
// required before a circuit pair is even attempted.
func calleesVerified(circuit netlist.Circuit, verified map[netlist.Circuit]bool) bool {
	for _, sc := range circuit.SubCircuits() {
		callee := sc.Callee()
		if len(callee.Pins()) <= 1 {
			continue
		}
		if !verified[callee] {
			return false
		}
	}
	return true
}

// compareCircuitPair runs the full per-circuit-pair comparison procedure
// for one already-gated (ac, bc) pair. It returns whether the
// pair ends up verified (no pin mismatch) and whether it is "good" (no
// mismatch of any kind was reported for it).
func (c *Comparator) compareCircuitPair(ctx context.Context, ac, bc netlist.Circuit, devCat *category.Categorizer[netlist.DeviceClass], circCat *category.Categorizer[netlist.Circuit], pins *category.PinMapper, filter *devicefilter.Filter, regs *circuitMapperRegistries, logger Logger) (verified, good bool) {
	logger.BeginCircuit(ac, bc)
	good = true

	g1 := netgraph.Build(ac, devCat, circCat, filter, regs.a, pins)
	g2 := netgraph.Build(bc, devCat, circCat, filter, regs.b, pins)

	events := &graphEvents{g1: g1, g2: g2, logger: logger}
	engine := pairing.New(g1, g2, events)
	engine.Pair(refid.NodeIndexDummy, refid.NodeIndexDummy)
	for _, np := range c.sameNets[circuitPair{ac, bc}] {
		i1, ok1 := g1.IndexOf(np.a)
		i2, ok2 := g2.IndexOf(np.b)
		if ok1 && ok2 {
			engine.Pair(i1, i2)
		}
	}
	engine.Run(ctx)
	c.depthExhaustions += engine.DepthExhaustions()
	c.branchExhaustions += engine.BranchExhaustions()
	if events.netMismatches > 0 {
		good = false
	}

	pinMismatch, matches := crossReferencePins(ac, bc, g1, g2, logger)
	if pinMismatch {
		good = false
	}

	if n := crossReferenceDevices(ac, bc, g1, g2, devCat, filter, logger); n > 0 {
		good = false
	}
	unmatchedA, unmatchedB := crossReferenceSubCircuits(ac, bc, g1, g2, pins, logger)
	if n := alignUnmatchedSubCircuits(unmatchedA, unmatchedB, g1, g2, pins, logger); n > 0 {
		good = false
	}

	verified = !pinMismatch
	if verified {
		regs.declarePair(ac, bc)
		for _, m := range matches {
			regs.recordPin(ac, bc, m.a, m.b)
		}
	}

	deriveFloatingPinEquivalence(ac, pins)
	deriveFloatingPinEquivalence(bc, pins)

	logger.EndCircuit(ac, bc, good)
	return verified, good
}
