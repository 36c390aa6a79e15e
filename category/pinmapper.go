package category

import (
	"netcompare/cerr"
	"netcompare/netlist"
)

var configNilCircuit = cerr.ConfigError{Msg: "equivalent_pins given a nil circuit"}

// PinMapper maintains, per circuit, a union-find over the circuit's pin
// ids that have been declared swappable. NormalizePinID quotients a pin id
// to the smallest member of its cluster; unregistered pins normalize to
// themselves.
type PinMapper struct {
	circuits map[netlist.Circuit]*pinClusters
}

type pinClusters struct {
	parent map[netlist.PinID]netlist.PinID
}

func newPinClusters() *pinClusters {
	return &pinClusters{parent: make(map[netlist.PinID]netlist.PinID)}
}

func (pc *pinClusters) copy() *pinClusters {
	out := newPinClusters()
	for k, v := range pc.parent {
		out.parent[k] = v
	}
	return out
}

func (pc *pinClusters) find(p netlist.PinID) netlist.PinID {
	root, ok := pc.parent[p]
	if !ok {
		return p
	}
	if root == p {
		return p
	}
	r := pc.find(root)
	pc.parent[p] = r // path compression
	return r
}

// union merges the clusters of a and b, keeping the smaller pin id as the
// representative of the merged cluster.
func (pc *pinClusters) union(a, b netlist.PinID) {
	if _, ok := pc.parent[a]; !ok {
		pc.parent[a] = a
	}
	if _, ok := pc.parent[b]; !ok {
		pc.parent[b] = b
	}
	ra, rb := pc.find(a), pc.find(b)
	if ra == rb {
		return
	}
	if ra < rb {
		pc.parent[rb] = ra
	} else {
		pc.parent[ra] = rb
	}
}

// NewPinMapper creates an empty PinMapper.
func NewPinMapper() *PinMapper {
	return &PinMapper{circuits: make(map[netlist.Circuit]*pinClusters)}
}

// Copy returns an independent deep copy.
func (m *PinMapper) Copy() *PinMapper {
	out := NewPinMapper()
	for c, pc := range m.circuits {
		out.circuits[c] = pc.copy()
	}
	return out
}

// DeclareEquivalent unions all given pin ids of circuit into one cluster.
// Fewer than two pins is a no-op. A nil circuit is a configuration error.
func (m *PinMapper) DeclareEquivalent(circuit netlist.Circuit, pins ...netlist.PinID) error {
	if circuit == nil {
		return configNilCircuit
	}
	if len(pins) < 2 {
		return nil
	}
	pc, ok := m.circuits[circuit]
	if !ok {
		pc = newPinClusters()
		m.circuits[circuit] = pc
	}
	for _, p := range pins[1:] {
		pc.union(pins[0], p)
	}
	return nil
}

// Normalize returns the representative pin id of p's cluster in circuit,
// or p itself if it participates in no cluster.
func (m *PinMapper) Normalize(circuit netlist.Circuit, p netlist.PinID) netlist.PinID {
	pc, ok := m.circuits[circuit]
	if !ok {
		return p
	}
	return pc.find(p)
}

// IsInAnyCluster reports whether p participates in any declared
// equivalence within circuit.
func (m *PinMapper) IsInAnyCluster(circuit netlist.Circuit, p netlist.PinID) bool {
	pc, ok := m.circuits[circuit]
	if !ok {
		return false
	}
	_, ok = pc.parent[p]
	return ok
}
