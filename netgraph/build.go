package netgraph

import (
	"netcompare/category"
	"netcompare/circuitmap"
	"netcompare/devicefilter"
	"netcompare/netlist"
	"netcompare/refid"
)

// Build constructs and canonically orders the net-graph of c. devCat and
// circCat must already carry every category declared for
// this comparison; registry holds the CircuitMapper, if any, for every
// callee c instantiates that has already been paired on the other side of
// the comparison.
func Build(c netlist.Circuit, devCat *category.Categorizer[netlist.DeviceClass], circCat *category.Categorizer[netlist.Circuit], filter *devicefilter.Filter, registry *circuitmap.Registry, pins *category.PinMapper) *Graph {
	pinNames := make(map[netlist.PinID]string)
	for _, p := range c.Pins() {
		pinNames[p.ID()] = p.Name()
	}

	g := &Graph{Circuit: c}
	nodes := make([]*Node, 1, len(c.Nets())+1)
	nodes[0] = &Node{Other: refid.NodeIndexUnset}
	for _, net := range c.Nets() {
		n := buildNode(net, pinNames, devCat, circCat, filter, registry, pins)
		if len(n.Edges) > 0 || n.pinCount > 0 {
			nodes = append(nodes, n)
		}
	}
	g.Nodes = nodes
	sortAndIndex(g)
	return g
}

func buildNode(net netlist.Net, pinNames map[netlist.PinID]string, devCat *category.Categorizer[netlist.DeviceClass], circCat *category.Categorizer[netlist.Circuit], filter *devicefilter.Filter, registry *circuitmap.Registry, pins *category.PinMapper) *Node {
	node := &Node{Net: net, Other: refid.NodeIndexUnset}
	ownPins := net.Pins()
	node.pinCount = len(ownPins)
	if node.pinCount > 0 {
		node.firstPinName = pinNames[ownPins[0]]
	}

	slots := make(map[netlist.Net]int)
	emit := func(far netlist.Net, t Transition) {
		i, ok := slots[far]
		if !ok {
			i = len(node.Edges)
			node.Edges = append(node.Edges, Edge{FarNet: far})
			slots[far] = i
		}
		node.Edges[i].Transitions = append(node.Edges[i].Transitions, t)
	}

	for _, scp := range net.SubCircuitPins() {
		addSubCircuitTransitions(emit, scp, circCat, registry, pins)
	}
	for _, dt := range net.DeviceTerminals() {
		addDeviceTransitions(emit, dt, devCat, filter)
	}

	for i := range node.Edges {
		sortTransitions(node.Edges[i].Transitions)
	}
	return node
}

func addDeviceTransitions(emit func(netlist.Net, Transition), dt netlist.DeviceTerminal, devCat *category.Categorizer[netlist.DeviceClass], filter *devicefilter.Filter) {
	d := dt.Device
	if !filter.Admits(d) {
		return
	}
	cls := d.Class()
	cat := devCat.CategoryFor(cls)
	t := cls.NormalizeTerminalID(dt.Terminal)
	for _, tp := range d.Terminals() {
		if tp == dt.Terminal {
			continue
		}
		tpNorm := cls.NormalizeTerminalID(tp)
		emit(d.NetAt(tp), Transition{
			Kind:     KindDevice,
			Category: cat,
			ID1:      int(t),
			ID2:      int(tpNorm),
			Device:   d,
		})
	}
}

func addSubCircuitTransitions(emit func(netlist.Net, Transition), scp netlist.SubCircuitPin, circCat *category.Categorizer[netlist.Circuit], registry *circuitmap.Registry, pins *category.PinMapper) {
	sc := scp.SubCircuit
	callee := sc.Callee()
	cat := circCat.CategoryFor(callee)

	mapper, ok := registry.Get(callee)
	if !ok {
		// No counterpart paired yet for this callee. A single-pin
		// (via-like) callee still contributes a trivial self-transition
		// so it is not silently dropped from the graph.
		if len(callee.Pins()) == 1 {
			emit(nil, Transition{
				Kind:       KindSubCircuit,
				Category:   cat,
				ID1:        int(scp.Pin),
				ID2:        int(scp.Pin),
				SubCircuit: sc,
			})
		}
		return
	}

	peerRaw, ok := mapper.OtherForThis(scp.Pin)
	if !ok {
		return
	}
	peer := mapper.Other()
	peerP := pins.Normalize(peer, peerRaw)
	peerPins := peer.Pins()
	startIdx := pinIndex(peerPins, peerP)
	if startIdx < 0 {
		return
	}

	collected := 0
	for n := 0; n < len(peerPins)-1 && collected < FanOutCap; n++ {
		q := peerPins[(startIdx+n+1)%len(peerPins)].ID()
		thisQ, ok := mapper.ThisForOther(q)
		if !ok {
			continue
		}
		if thisQ == scp.Pin {
			continue
		}
		qNorm := pins.Normalize(peer, q)
		if qNorm == peerP {
			continue
		}
		emit(sc.NetAt(thisQ), Transition{
			Kind:       KindSubCircuit,
			Category:   cat,
			ID1:        int(peerP),
			ID2:        int(qNorm),
			SubCircuit: sc,
		})
		collected++
	}
}

func pinIndex(pins []netlist.Pin, id netlist.PinID) int {
	for i, p := range pins {
		if p.ID() == id {
			return i
		}
	}
	return -1
}
