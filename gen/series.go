package gen

import (
	"fmt"

	"netcompare/netlist"
	"netcompare/netlist/memnet"
)

// SeriesChain builds a circuit with two pins A and B connected by n
// devices of class in series through n-1 internal nets, each device
// carrying a resistance uniformly chosen from [minR, maxR). n must be at
// least 1.
func SeriesChain(class *memnet.DeviceClass, n int, minR, maxR float64) *memnet.Circuit {
	if n < 1 {
		panic("gen: SeriesChain needs n >= 1")
	}
	c := memnet.NewCircuit(fmt.Sprintf("chain%d", n))
	pa := c.AddPin("A")
	pb := c.AddPin("B")

	nets := make([]*memnet.Net, n+1)
	nets[0] = c.AddNet("n0", pa)
	for i := 1; i < n; i++ {
		nets[i] = c.AddNet(fmt.Sprintf("n%d", i))
	}
	nets[n] = c.AddNet(fmt.Sprintf("n%d", n), pb)

	for i := 0; i < n; i++ {
		r := minR + float64(intn(1<<20))/float64(1<<20)*(maxR-minR)
		c.AddDevice(class, map[int]float64{netlist.ParamR: r}, map[netlist.TerminalID]*memnet.Net{
			1: nets[i],
			2: nets[i+1],
		})
	}
	return c
}

// SeriesChainPair builds two structurally identical n-device series
// chains with the same per-device resistances, one with devices appended
// in forward order and one in reverse: a fixture for exercising pairing
// engine invariance to device declaration order, without relying on a
// single circuit being reused on both sides of a comparison.
func SeriesChainPair(class *memnet.DeviceClass, n int, minR, maxR float64) (a, b *memnet.Circuit) {
	if n < 1 {
		panic("gen: SeriesChainPair needs n >= 1")
	}
	rs := make([]float64, n)
	for i := range rs {
		rs[i] = minR + float64(intn(1<<20))/float64(1<<20)*(maxR-minR)
	}

	build := func(order []int) *memnet.Circuit {
		c := memnet.NewCircuit(fmt.Sprintf("chain%d", n))
		pa := c.AddPin("A")
		pb := c.AddPin("B")
		nets := make([]*memnet.Net, n+1)
		nets[0] = c.AddNet("n0", pa)
		for i := 1; i < n; i++ {
			nets[i] = c.AddNet(fmt.Sprintf("n%d", i))
		}
		nets[n] = c.AddNet(fmt.Sprintf("n%d", n), pb)
		for _, i := range order {
			c.AddDevice(class, map[int]float64{netlist.ParamR: rs[i]}, map[netlist.TerminalID]*memnet.Net{
				1: nets[i],
				2: nets[i+1],
			})
		}
		return c
	}

	forward := make([]int, n)
	reverse := make([]int, n)
	for i := 0; i < n; i++ {
		forward[i] = i
		reverse[n-1-i] = i
	}
	return build(forward), build(reverse)
}
