package netcompare

import (
	"sort"

	"netcompare/category"
	"netcompare/netgraph"
	"netcompare/netlist"
	"netcompare/refid"
)

// crossReferenceSubCircuits keys c1's subcircuits by
// (normalized-pin-on-callee, far-node-index), translates c2's subcircuits
// into g1-space via other_index, and matches on hit. Leftovers on both
// sides are returned for a later best-effort alignment pass rather than
// reported here.
func crossReferenceSubCircuits(c1, c2 netlist.Circuit, g1, g2 *netgraph.Graph, pins *category.PinMapper, logger Logger) (unmatchedA, unmatchedB []netlist.SubCircuit) {
	index := make(map[string][]netlist.SubCircuit)
	for _, sc := range c1.SubCircuits() {
		key := sortedKey(subCircuitKey(sc, g1, pins))
		index[key] = append(index[key], sc)
	}

	for _, sc2 := range c2.SubCircuits() {
		pairs, ok := translateSubCircuitKey(sc2, g2, g1, pins)
		if !ok {
			unmatchedB = append(unmatchedB, sc2)
			continue
		}
		key := sortedKey(pairs)
		bucket := index[key]
		if len(bucket) == 0 {
			unmatchedB = append(unmatchedB, sc2)
			continue
		}
		sc1 := bucket[0]
		index[key] = bucket[1:]
		logger.MatchSubCircuits(sc1, sc2)
	}

	var keys []string
	for k := range index {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		unmatchedA = append(unmatchedA, index[k]...)
	}
	return unmatchedA, unmatchedB
}

func subCircuitKey(sc netlist.SubCircuit, g *netgraph.Graph, pins *category.PinMapper) []idIndexPair {
	callee := sc.Callee()
	calleePins := callee.Pins()
	out := make([]idIndexPair, 0, len(calleePins))
	for _, p := range calleePins {
		out = append(out, idIndexPair{
			ID:    int(pins.Normalize(callee, p.ID())),
			Index: netIndexOrDummy(g, sc.NetAt(p.ID())),
		})
	}
	return out
}

func translateSubCircuitKey(sc netlist.SubCircuit, g2, g1 *netgraph.Graph, pins *category.PinMapper) ([]idIndexPair, bool) {
	callee := sc.Callee()
	calleePins := callee.Pins()
	out := make([]idIndexPair, 0, len(calleePins))
	for _, p := range calleePins {
		idx2 := netIndexOrDummy(g2, sc.NetAt(p.ID()))
		var idx1 refid.NodeIndex
		if idx2.IsDummy() {
			idx1 = refid.NodeIndexDummy
		} else {
			other := g2.At(idx2).Other
			if !other.IsSet() {
				return nil, false
			}
			idx1 = other
		}
		out = append(out, idIndexPair{ID: int(pins.Normalize(callee, p.ID())), Index: idx1})
	}
	return out, true
}

// alignUnmatchedSubCircuits improves the reported correspondence for
// leftover subcircuits: when the combined leftover set is small enough, it
// groups by pin count and runs a bounded local swap-improvement over a
// squared-difference distance between flattened keys before reporting a
// best-effort subcircuit_mismatch correspondence; otherwise every leftover
// is reported against null. Every subcircuit to survive to this pass is,
// by definition, a mismatch — this only improves *which* null-less pairing
// is reported, never promotes one to a match.
func alignUnmatchedSubCircuits(unmatchedA, unmatchedB []netlist.SubCircuit, g1, g2 *netgraph.Graph, pins *category.PinMapper, logger Logger) int {
	if len(unmatchedA)+len(unmatchedB) > MaxAnalysisSet {
		for _, a := range unmatchedA {
			logger.SubCircuitMismatch(a, nil)
		}
		for _, b := range unmatchedB {
			logger.SubCircuitMismatch(nil, b)
		}
		return len(unmatchedA) + len(unmatchedB)
	}

	groupsA := make(map[int][]netlist.SubCircuit)
	for _, sc := range unmatchedA {
		n := len(sc.Callee().Pins())
		groupsA[n] = append(groupsA[n], sc)
	}
	groupsB := make(map[int][]netlist.SubCircuit)
	for _, sc := range unmatchedB {
		n := len(sc.Callee().Pins())
		groupsB[n] = append(groupsB[n], sc)
	}

	lengths := make(map[int]bool)
	for n := range groupsA {
		lengths[n] = true
	}
	for n := range groupsB {
		lengths[n] = true
	}
	var sortedLengths []int
	for n := range lengths {
		sortedLengths = append(sortedLengths, n)
	}
	sort.Ints(sortedLengths)

	total := 0
	for _, n := range sortedLengths {
		listA, listB := groupsA[n], groupsB[n]
		total += alignGroup(listA, listB, g1, g2, pins, logger)
	}
	return total
}

func alignGroup(listA, listB []netlist.SubCircuit, g1, g2 *netgraph.Graph, pins *category.PinMapper, logger Logger) int {
	k := len(listA)
	if len(listB) < k {
		k = len(listB)
	}
	if k == 0 {
		for _, a := range listA {
			logger.SubCircuitMismatch(a, nil)
		}
		for _, b := range listB {
			logger.SubCircuitMismatch(nil, b)
		}
		return len(listA) + len(listB)
	}

	keysA := make([][]int, k)
	for i := 0; i < k; i++ {
		keysA[i] = flattenKey(subCircuitKey(listA[i], g1, pins))
	}
	keysB := make([][]int, len(listB))
	for j := range listB {
		keysB[j] = flattenKey(subCircuitKey(listB[j], g2, pins))
	}

	perm := make([]int, k)
	for i := range perm {
		perm[i] = i
	}
	for pass := 0; pass < k; pass++ {
		improved := false
		for i := 0; i+1 < k; i++ {
			cur := squaredDistance(keysA[i], keysB[perm[i]]) + squaredDistance(keysA[i+1], keysB[perm[i+1]])
			swapped := squaredDistance(keysA[i], keysB[perm[i+1]]) + squaredDistance(keysA[i+1], keysB[perm[i]])
			if swapped < cur {
				perm[i], perm[i+1] = perm[i+1], perm[i]
				improved = true
			}
		}
		if !improved {
			break
		}
	}

	for i := 0; i < k; i++ {
		logger.SubCircuitMismatch(listA[i], listB[perm[i]])
	}
	for _, a := range listA[k:] {
		logger.SubCircuitMismatch(a, nil)
	}
	for _, b := range listB[k:] {
		logger.SubCircuitMismatch(nil, b)
	}
	return len(listA) + len(listB)
}

func flattenKey(pairs []idIndexPair) []int {
	out := make([]int, 0, 2*len(pairs))
	for _, p := range pairs {
		out = append(out, p.ID, int(p.Index))
	}
	return out
}

func squaredDistance(a, b []int) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	sum := 0
	for i := 0; i < n; i++ {
		d := a[i] - b[i]
		sum += d * d
	}
	return sum
}
