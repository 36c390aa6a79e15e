package netgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"netcompare/refid"
)

func TestCompareOrdersByKindThenCategory(t *testing.T) {
	dev := Transition{Kind: KindDevice, Category: 1}
	sub := Transition{Kind: KindSubCircuit, Category: 1}
	assert.Equal(t, -1, compare(dev, sub))
	assert.Equal(t, 1, compare(sub, dev))

	lo := Transition{Kind: KindDevice, Category: 1}
	hi := Transition{Kind: KindDevice, Category: 2}
	assert.Equal(t, -1, compare(lo, hi))
}

func TestCompareOrdersByIDPair(t *testing.T) {
	a := Transition{Kind: KindDevice, Category: refid.NoCategory, ID1: 0, ID2: 1}
	b := Transition{Kind: KindDevice, Category: refid.NoCategory, ID1: 0, ID2: 2}
	assert.Equal(t, -1, compare(a, b))
	assert.Equal(t, 0, compare(a, a))
}

func TestSortTransitionsOrdersByKindThenID(t *testing.T) {
	ts := []Transition{
		{Kind: KindDevice, ID1: 2},
		{Kind: KindDevice, ID1: 1},
		{Kind: KindSubCircuit, ID1: 0},
	}
	sortTransitions(ts)
	assert.Equal(t, KindDevice, ts[0].Kind)
	assert.Equal(t, 1, ts[0].ID1)
	assert.Equal(t, KindDevice, ts[1].Kind)
	assert.Equal(t, 2, ts[1].ID1)
	assert.Equal(t, KindSubCircuit, ts[2].Kind)
}

func TestCompareSlicesOrdersShorterPrefixFirst(t *testing.T) {
	short := []Transition{{Kind: KindDevice, ID1: 1}}
	long := []Transition{{Kind: KindDevice, ID1: 1}, {Kind: KindDevice, ID1: 2}}
	assert.Equal(t, -1, compareSlices(short, long))
}
