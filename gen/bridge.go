package gen

import (
	"fmt"

	"netcompare/netlist"
	"netcompare/netlist/memnet"
)

// Bridge builds a symmetric ambiguous structure: two pins A and B joined
// by width parallel two-device branches, each through its own private
// middle net. Every branch is structurally identical (same class, same
// resistance on both legs), so nothing but the pairing engine's iterative
// propagation can ever distinguish one branch's middle net from another's
// — exactly the symmetric-ambiguity case the pairing engine's ambiguous-set
// handling exists for.
func Bridge(class *memnet.DeviceClass, width int, r float64) *memnet.Circuit {
	if width < 2 {
		panic("gen: Bridge needs width >= 2")
	}
	c := memnet.NewCircuit(fmt.Sprintf("bridge%d", width))
	pa := c.AddPin("A")
	pb := c.AddPin("B")
	hubA := c.AddNet("hubA", pa)
	hubB := c.AddNet("hubB", pb)

	for i := 0; i < width; i++ {
		mid := c.AddNet(fmt.Sprintf("mid%d", i))
		c.AddDevice(class, map[int]float64{netlist.ParamR: r}, map[netlist.TerminalID]*memnet.Net{
			1: hubA,
			2: mid,
		})
		c.AddDevice(class, map[int]float64{netlist.ParamR: r}, map[netlist.TerminalID]*memnet.Net{
			1: mid,
			2: hubB,
		})
	}
	return c
}
