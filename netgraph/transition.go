package netgraph

import (
	"sort"

	"netcompare/netlist"
	"netcompare/refid"
)

// Kind distinguishes the two sources of a Transition.
type Kind uint8

const (
	// KindDevice marks a transition across two terminals of the same
	// device.
	KindDevice Kind = iota
	// KindSubCircuit marks a transition across two pins of the same
	// subcircuit instance, reached through its callee's CircuitMapper.
	KindSubCircuit
)

// Transition is one hop of an Edge: "net -> (via this device or
// subcircuit, at these two normalized terminal/pin ids) -> far net". Two
// transitions compare equal when they agree on kind, category, the
// normalized id pair and, for devices, parameter value under the device
// class's ordering; the Device and SubCircuit identities themselves are
// not compared. Device is carried so that the parameter comparison can
// reach the device's class.
type Transition struct {
	Kind       Kind
	Category   refid.CategoryID
	ID1, ID2   int
	Device     netlist.Device
	SubCircuit netlist.SubCircuit
}

// compare orders two transitions: kind, then category, then (for devices)
// parameter value via the owning DeviceClass, then the normalized id pair.
// This is the total order edges and transitions must sort under for the
// comparison to be deterministic.
func compare(a, b Transition) int {
	if a.Kind != b.Kind {
		return cmpInt(int(a.Kind), int(b.Kind))
	}
	if a.Category != b.Category {
		return cmpInt(int(a.Category), int(b.Category))
	}
	if a.Kind == KindDevice {
		if c := compareDeviceParams(a.Device, b.Device); c != 0 {
			return c
		}
	}
	if a.ID1 != b.ID1 {
		return cmpInt(a.ID1, b.ID1)
	}
	return cmpInt(a.ID2, b.ID2)
}

func compareDeviceParams(a, b netlist.Device) int {
	if a == nil || b == nil || a.Class() == nil {
		return 0
	}
	cls := a.Class()
	if cls.Less(a, b) {
		return -1
	}
	if cls.Less(b, a) {
		return 1
	}
	return 0
}

func cmpInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// compareSlices is the lexicographic extension of compare to a transition
// list, used to order the transition bundles carried by two edges.
func compareSlices(a, b []Transition) int {
	n := len(a)
	if len(b) < n {
		n = len(b)
	}
	for i := 0; i < n; i++ {
		if c := compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmpInt(len(a), len(b))
}

// SameTransitions reports whether a and b are the same transition bundle,
// the equality the pairing engine groups a node's edges by when it forms a
// maximal run of n1-edges sharing the same transition sequence.
func SameTransitions(a, b []Transition) bool {
	return compareSlices(a, b) == 0
}

func sortTransitions(ts []Transition) {
	sort.SliceStable(ts, func(i, j int) bool { return compare(ts[i], ts[j]) < 0 })
}
