package memnet

import "netcompare/netlist"

// Netlist is a concrete netlist.Netlist: an ordered collection of
// circuits. The caller is responsible for calling AddCircuit in bottom-up
// order (every callee before its first caller), exactly as netlist.Netlist
// requires; memnet does not itself validate or reorder the sequence.
type Netlist struct {
	circuits []netlist.Circuit
}

// NewNetlist creates an empty Netlist.
func NewNetlist() *Netlist {
	return &Netlist{}
}

// AddCircuit appends c to the netlist.
func (n *Netlist) AddCircuit(c netlist.Circuit) {
	n.circuits = append(n.circuits, c)
}

func (n *Netlist) Circuits() []netlist.Circuit { return n.circuits }
