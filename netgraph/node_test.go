package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCompareNodesDummyFirstAmongEdgeless(t *testing.T) {
	dummy := &Node{}
	named := &Node{Net: &stubNet{name: "VDD"}, pinCount: 1, firstPinName: "p"}
	assert.Equal(t, -1, CompareNodes(dummy, named))
	assert.Equal(t, 1, CompareNodes(named, dummy))
}

func TestCompareNodesEdgelessOrdersByPinCountDescending(t *testing.T) {
	few := &Node{Net: &stubNet{name: "A"}, pinCount: 1}
	many := &Node{Net: &stubNet{name: "B"}, pinCount: 3}
	assert.Equal(t, -1, CompareNodes(many, few))
}

func TestCompareNodesEdgelessTiebreaksOnFirstPinName(t *testing.T) {
	a := &Node{Net: &stubNet{name: "A"}, pinCount: 1, firstPinName: "a"}
	b := &Node{Net: &stubNet{name: "B"}, pinCount: 1, firstPinName: "b"}
	assert.Equal(t, -1, CompareNodes(a, b))
}

func TestCompareNodesByEdgeCountFirst(t *testing.T) {
	noEdges := &Node{Net: &stubNet{name: "A"}}
	oneEdge := &Node{Net: &stubNet{name: "B"}, Edges: []Edge{{}}}
	assert.Equal(t, -1, CompareNodes(noEdges, oneEdge))
}

func TestIsDummy(t *testing.T) {
	assert.True(t, (&Node{}).IsDummy())
	assert.False(t, (&Node{Net: &stubNet{name: "X"}}).IsDummy())
}
