package netgraph

import (
	"fmt"
	"sort"

	"netcompare/netlist"
	"netcompare/refid"
)

// FanOutCap bounds how many additional peer-circuit pins a single
// subcircuit-pin transition emission considers when cycling past the
// mapped pin itself (see DESIGN.md for why 5 was chosen).
const FanOutCap = 5

// Graph is the canonically ordered net-graph of one circuit: one Node per
// non-trivial net plus the reserved dummy node at index 0.
type Graph struct {
	Circuit netlist.Circuit
	Nodes   []*Node

	index map[netlist.Net]refid.NodeIndex
}

// Len returns the number of nodes, including the dummy node.
func (g *Graph) Len() int {
	return len(g.Nodes)
}

// At returns the node at i.
func (g *Graph) At(i refid.NodeIndex) *Node {
	return g.Nodes[i]
}

// Dummy returns the reserved null-net node, always at index 0.
func (g *Graph) Dummy() *Node {
	return g.Nodes[refid.NodeIndexDummy]
}

// IndexOf returns the index of the node for net n, or NodeIndexDummy if n
// is nil, or false if n is attached to this graph's circuit but was
// dropped (e.g. a floating net with no pins and no edges).
func (g *Graph) IndexOf(n netlist.Net) (refid.NodeIndex, bool) {
	i, ok := g.index[n]
	return i, ok
}

// sortAndIndex sorts the node slice into its canonical order, asserts the
// dummy node landed at index 0, then rewrites every edge's FarNet pointer
// into a FarIndex and re-sorts each node's edges by their now-final far
// index.
func sortAndIndex(g *Graph) {
	sort.SliceStable(g.Nodes, func(i, j int) bool { return CompareNodes(g.Nodes[i], g.Nodes[j]) < 0 })
	if len(g.Nodes) == 0 || !g.Nodes[0].IsDummy() {
		panic("netgraph: dummy node did not sort to index 0")
	}
	g.index = make(map[netlist.Net]refid.NodeIndex, len(g.Nodes))
	g.index[nil] = refid.NodeIndexDummy
	for i, n := range g.Nodes {
		if n.Net != nil {
			g.index[n.Net] = refid.NodeIndex(i)
		}
	}
	for _, n := range g.Nodes {
		for i := range n.Edges {
			idx, ok := g.index[n.Edges[i].FarNet]
			if !ok {
				panic(fmt.Sprintf("netgraph: circuit %s has an edge to an unindexed net", g.Circuit.Name()))
			}
			n.Edges[i].FarIndex = idx
		}
		sortEdges(n.Edges)
	}
}

func sortEdges(edges []Edge) {
	sort.SliceStable(edges, func(i, j int) bool {
		if c := compareSlices(edges[i].Transitions, edges[j].Transitions); c != 0 {
			return c < 0
		}
		return edges[i].FarIndex < edges[j].FarIndex
	})
}
