package netcompare

import (
	"sort"

	"netcompare/category"
	"netcompare/netgraph"
	"netcompare/netlist"
	"netcompare/refid"
)

// pinMatch is one discovered (c1-pin, c2-pin) correspondence, recorded into
// the CircuitMapper registries by the caller once the circuit pair as a
// whole is known to be pin-clean.
type pinMatch struct {
	a, b netlist.PinID
}

// pinNetIndex maps every pin id of circuit to the net it is attached to,
// needed because netlist.Circuit exposes the relation only in the
// net-to-pins direction.
func pinNetIndex(circuit netlist.Circuit) map[netlist.PinID]netlist.Net {
	out := make(map[netlist.PinID]netlist.Net)
	for _, net := range circuit.Nets() {
		for _, pid := range net.Pins() {
			out[pid] = net
		}
	}
	return out
}

// crossReferencePins matches c1's pins to c2's pins via their net-graph
// nodes' other-side index, reporting floating/unconnected pins and
// leftovers as mismatches.
func crossReferencePins(c1, c2 netlist.Circuit, g1, g2 *netgraph.Graph, logger Logger) (pinMismatch bool, matches []pinMatch) {
	p1, p2 := c1.Pins(), c2.Pins()
	if len(p1) == 0 || len(p2) == 0 {
		for _, p := range p1 {
			logger.MatchPins(p, nil)
		}
		for _, p := range p2 {
			logger.MatchPins(nil, p)
		}
		return len(p1) != len(p2), nil
	}

	net1, net2 := pinNetIndex(c1), pinNetIndex(c2)

	byNode2 := make(map[refid.NodeIndex][]netlist.Pin)
	var floatingB []netlist.Pin
	for _, p := range p2 {
		n := net2[p.ID()]
		if n == nil || netlist.IsFloating(n) {
			floatingB = append(floatingB, p)
			continue
		}
		idx, ok := g2.IndexOf(n)
		if !ok {
			idx = refid.NodeIndexDummy
		}
		byNode2[idx] = append(byNode2[idx], p)
	}

	for _, p := range p1 {
		n := net1[p.ID()]
		if n == nil || netlist.IsFloating(n) {
			if len(floatingB) == 0 {
				logger.PinMismatch(p, nil)
				pinMismatch = true
				continue
			}
			q := floatingB[0]
			floatingB = floatingB[1:]
			logger.MatchPins(p, q)
			matches = append(matches, pinMatch{p.ID(), q.ID()})
			continue
		}

		idx1, ok := g1.IndexOf(n)
		if !ok {
			logger.PinMismatch(p, nil)
			pinMismatch = true
			continue
		}
		other := g1.At(idx1).Other
		if !other.IsSet() {
			logger.PinMismatch(p, nil)
			pinMismatch = true
			continue
		}
		bucket := byNode2[other]
		if len(bucket) == 0 {
			logger.PinMismatch(p, nil)
			pinMismatch = true
			continue
		}
		q := bucket[0]
		byNode2[other] = bucket[1:]
		logger.MatchPins(p, q)
		matches = append(matches, pinMatch{p.ID(), q.ID()})
	}

	for _, q := range floatingB {
		logger.PinMismatch(nil, q)
		pinMismatch = true
	}
	var leftoverIdx []refid.NodeIndex
	for idx, bucket := range byNode2 {
		if len(bucket) > 0 {
			leftoverIdx = append(leftoverIdx, idx)
		}
	}
	sort.Slice(leftoverIdx, func(i, j int) bool { return leftoverIdx[i] < leftoverIdx[j] })
	for _, idx := range leftoverIdx {
		for _, q := range byNode2[idx] {
			logger.PinMismatch(nil, q)
			pinMismatch = true
		}
	}
	return pinMismatch, matches
}

// deriveFloatingPinEquivalence makes every pin of circuit whose net is
// floating (or altogether unconnected) and not
// already in a declared cluster becomes mutually equivalent in the
// working pin mapper, so an abstracted callee's floating pins can be
// swapped freely by parent-level matching.
func deriveFloatingPinEquivalence(circuit netlist.Circuit, pins *category.PinMapper) {
	net := pinNetIndex(circuit)
	var floating []netlist.PinID
	for _, p := range circuit.Pins() {
		if pins.IsInAnyCluster(circuit, p.ID()) {
			continue
		}
		n := net[p.ID()]
		if n == nil || netlist.IsFloating(n) {
			floating = append(floating, p.ID())
		}
	}
	if len(floating) >= 2 {
		pins.DeclareEquivalent(circuit, floating...)
	}
}
