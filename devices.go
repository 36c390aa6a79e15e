package netcompare

import (
	"netcompare/category"
	"netcompare/devicefilter"
	"netcompare/netgraph"
	"netcompare/netlist"
	"netcompare/refid"
)

// crossReferenceDevices keys every filter-admitted device of c1 by its
// sorted (normalized-terminal-id,
// g1-node-index) list, translate every device of c2 into g1-space via the
// nodes' other_index and look it up, then classify each hit with
// DeviceCompare. Returns how many devices were reported as anything other
// than a clean match_devices (parameter/class differences and outright
// mismatches all count, since they all represent a structural difference
// worth failing the circuit pair over).
func crossReferenceDevices(c1, c2 netlist.Circuit, g1, g2 *netgraph.Graph, devCat *category.Categorizer[netlist.DeviceClass], filter *devicefilter.Filter, logger Logger) int {
	index := make(map[string][]netlist.Device)
	for _, d := range c1.Devices() {
		if !filter.Admits(d) {
			continue
		}
		key := sortedKey(deviceKey(d, g1))
		index[key] = append(index[key], d)
	}

	diffs := 0
	var unmatchedB []netlist.Device
	for _, d2 := range c2.Devices() {
		if !filter.Admits(d2) {
			continue
		}
		pairs, ok := translateDeviceKey(d2, g2, g1)
		if !ok {
			unmatchedB = append(unmatchedB, d2)
			continue
		}
		key := sortedKey(pairs)
		bucket := index[key]
		if len(bucket) == 0 {
			unmatchedB = append(unmatchedB, d2)
			continue
		}
		d1 := bucket[0]
		index[key] = bucket[1:]

		cat1 := devCat.CategoryFor(d1.Class())
		cat2 := devCat.CategoryFor(d2.Class())
		switch {
		case cat1 != cat2:
			logger.MatchDevicesWithDifferentDeviceClasses(d1, d2)
			diffs++
		case !d1.Class().Equal(d1, d2):
			logger.MatchDevicesWithDifferentParameters(d1, d2)
			diffs++
		default:
			logger.MatchDevices(d1, d2)
		}
	}

	for _, bucket := range index {
		for _, d1 := range bucket {
			logger.DeviceMismatch(d1, nil)
			diffs++
		}
	}
	for _, d2 := range unmatchedB {
		logger.DeviceMismatch(nil, d2)
		diffs++
	}
	return diffs
}

func deviceKey(d netlist.Device, g *netgraph.Graph) []idIndexPair {
	cls := d.Class()
	terms := d.Terminals()
	pairs := make([]idIndexPair, 0, len(terms))
	for _, t := range terms {
		pairs = append(pairs, idIndexPair{
			ID:    int(cls.NormalizeTerminalID(t)),
			Index: netIndexOrDummy(g, d.NetAt(t)),
		})
	}
	return pairs
}

// translateDeviceKey builds d2's key in g2-space and translates every
// node index into g1-space via other_index. A terminal whose far node has
// no counterpart yet makes the whole device untranslatable: reported
// directly as a mismatch rather than risking a false key collision.
func translateDeviceKey(d netlist.Device, g2, g1 *netgraph.Graph) ([]idIndexPair, bool) {
	cls := d.Class()
	terms := d.Terminals()
	pairs := make([]idIndexPair, 0, len(terms))
	for _, t := range terms {
		idx2 := netIndexOrDummy(g2, d.NetAt(t))
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
		pairs = append(pairs, idIndexPair{ID: int(cls.NormalizeTerminalID(t)), Index: idx1})
	}
	return pairs, true
}

func netIndexOrDummy(g *netgraph.Graph, n netlist.Net) refid.NodeIndex {
	if n == nil {
		return refid.NodeIndexDummy
	}
	if idx, ok := g.IndexOf(n); ok {
		return idx
	}
	return refid.NodeIndexDummy
}
