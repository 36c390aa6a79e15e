package netcompare

import (
	"netcompare/netgraph"
	"netcompare/netlist"
	"netcompare/refid"
)

// graphEvents adapts one circuit pair's pairing.Events (indices into two
// net-graphs) to the public Logger (net objects), and is where the
// reserved dummy node is filtered out of every event: the dummy never
// corresponds to a real net and must never reach a Logger.
type graphEvents struct {
	g1, g2 *netgraph.Graph
	logger Logger

	netMismatches int
}

func (e *graphEvents) MatchNets(i1, i2 refid.NodeIndex) {
	if i1.IsDummy() || i2.IsDummy() {
		return
	}
	e.logger.MatchNets(e.g1.At(i1).Net, e.g2.At(i2).Net)
}

func (e *graphEvents) MatchAmbiguousNets(i1, i2 refid.NodeIndex) {
	if i1.IsDummy() || i2.IsDummy() {
		return
	}
	e.logger.MatchAmbiguousNets(e.g1.At(i1).Net, e.g2.At(i2).Net)
}

func (e *graphEvents) NetMismatch(i1, i2 refid.NodeIndex) {
	var n1, n2 netlist.Net
	if i1.IsSet() && !i1.IsDummy() {
		n1 = e.g1.At(i1).Net
	}
	if i2.IsSet() && !i2.IsDummy() {
		n2 = e.g2.At(i2).Net
	}
	if n1 == nil && n2 == nil {
		return
	}
	e.netMismatches++
	e.logger.NetMismatch(n1, n2)
}
