package pairing

import (
	"netcompare/netgraph"
	"netcompare/refid"
)

// audit is the tentative-mapping audit object: every speculative pairing
// recorded through it after a mark() checkpoint is unrolled, in reverse
// order, by rollbackTo with that checkpoint. It is stack-scoped by
// convention — callers take a mark before a probe and roll back to it
// afterwards rather than let it outlive the exploration it was opened for.
type audit struct {
	g1, g2  *netgraph.Graph
	pairs   []refid.NodeIndex // i1 values paired through this audit, in order
}

func newAudit(g1, g2 *netgraph.Graph) *audit {
	return &audit{g1: g1, g2: g2}
}

// mark returns a checkpoint that rollbackTo can later unwind to.
func (a *audit) mark() int {
	return len(a.pairs)
}

func (a *audit) record(i1 refid.NodeIndex) {
	a.pairs = append(a.pairs, i1)
}

// rollbackTo undoes every pairing recorded since mark, restoring both
// nodes' Other fields to unset.
func (a *audit) rollbackTo(mark int) {
	for k := len(a.pairs) - 1; k >= mark; k-- {
		i1 := a.pairs[k]
		n1 := a.g1.At(i1)
		i2 := n1.Other
		n1.Other = refid.NodeIndexUnset
		if i2.IsSet() {
			a.g2.At(i2).Other = refid.NodeIndexUnset
		}
	}
	a.pairs = a.pairs[:mark]
}
