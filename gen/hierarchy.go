package gen

import (
	"fmt"

	"netcompare/netlist"
	"netcompare/netlist/memnet"
)

// Hierarchy builds a netlist of depth+1 circuits: a leaf series chain of
// chainLen devices, then depth levels each instantiating fanout copies of
// the previous level in series through its own pins A and B, wired
// exactly like SeriesChain but with subcircuit instances standing in for
// devices. Circuits are added to the returned netlist bottom-up, as
// netlist.Netlist requires.
func Hierarchy(class *memnet.DeviceClass, depth, fanout, chainLen int, minR, maxR float64) *memnet.Netlist {
	if depth < 1 || fanout < 1 {
		panic("gen: Hierarchy needs depth >= 1 and fanout >= 1")
	}
	nl := memnet.NewNetlist()

	leaf := SeriesChain(class, chainLen, minR, maxR)
	nl.AddCircuit(leaf)

	prev := netlist.Circuit(leaf)
	prevA, prevB := pinIDs(leaf)
	for level := 1; level <= depth; level++ {
		c := memnet.NewCircuit(fmt.Sprintf("level%d", level))
		pa := c.AddPin("A")
		pb := c.AddPin("B")

		nets := make([]*memnet.Net, fanout+1)
		nets[0] = c.AddNet("n0", pa)
		for i := 1; i < fanout; i++ {
			nets[i] = c.AddNet(fmt.Sprintf("n%d", i))
		}
		nets[fanout] = c.AddNet(fmt.Sprintf("n%d", fanout), pb)

		for i := 0; i < fanout; i++ {
			c.AddSubCircuit(prev, map[netlist.PinID]*memnet.Net{
				prevA: nets[i],
				prevB: nets[i+1],
			})
		}

		nl.AddCircuit(c)
		prev = c
		prevA, prevB = pa, pb
	}
	return nl
}

func pinIDs(c *memnet.Circuit) (a, b netlist.PinID) {
	pins := c.Pins()
	return pins[0].ID(), pins[1].ID()
}
