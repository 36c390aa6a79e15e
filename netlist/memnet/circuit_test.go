package memnet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"netcompare/netlist"
)

func TestCircuitSeriesResistors(t *testing.T) {
	res := NewDeviceClass("RES", []netlist.TerminalID{1, 2}, netlist.ParamR)

	c := NewCircuit("S1")
	pa := c.AddPin("A")
	pb := c.AddPin("B")

	netA := c.AddNet("A", pa)
	netM := c.AddNet("M")
	netB := c.AddNet("B", pb)

	r1 := c.AddDevice(res, map[int]float64{netlist.ParamR: 1000}, map[netlist.TerminalID]*Net{1: netA, 2: netM})
	r2 := c.AddDevice(res, map[int]float64{netlist.ParamR: 1000}, map[netlist.TerminalID]*Net{1: netM, 2: netB})

	require.Len(t, c.Pins(), 2)
	require.Len(t, c.Nets(), 3)
	require.Len(t, c.Devices(), 2)

	assert.Equal(t, []netlist.DeviceTerminal{{Device: r1, Terminal: 2}, {Device: r2, Terminal: 1}}, netM.DeviceTerminals())
	assert.Equal(t, netM, r1.NetAt(2))
	assert.Nil(t, r1.NetAt(3))
}

func TestDeviceClassNormalizeSwappableTerminals(t *testing.T) {
	mos := NewDeviceClass("NMOS", []netlist.TerminalID{1, 2, 3}, -1)
	mos.GroupSwappable(1, 2)

	assert.Equal(t, netlist.TerminalID(1), mos.NormalizeTerminalID(1))
	assert.Equal(t, netlist.TerminalID(1), mos.NormalizeTerminalID(2))
	assert.Equal(t, netlist.TerminalID(3), mos.NormalizeTerminalID(3))
}

func TestDeviceClassEqualByParameter(t *testing.T) {
	res := NewDeviceClass("RES", []netlist.TerminalID{1, 2}, netlist.ParamR)
	a := &Device{class: res, params: map[int]float64{netlist.ParamR: 1000}}
	b := &Device{class: res, params: map[int]float64{netlist.ParamR: 1000}}
	c := &Device{class: res, params: map[int]float64{netlist.ParamR: 2000}}

	assert.True(t, res.Equal(a, b))
	assert.False(t, res.Equal(a, c))
	assert.True(t, res.Less(a, c))
}

func TestDeviceClassWithNoCompareParamAlwaysEqual(t *testing.T) {
	mos := NewDeviceClass("NMOS", []netlist.TerminalID{1, 2, 3}, -1)
	a := &Device{class: mos}
	b := &Device{class: mos}
	assert.True(t, mos.Equal(a, b))
	assert.False(t, mos.Less(a, b))
}

func TestSubCircuitWiresNetSubCircuitPins(t *testing.T) {
	callee := NewCircuit("BUF")
	ca := callee.AddPin("IN")
	cb := callee.AddPin("OUT")

	parent := NewCircuit("TOP")
	netIn := parent.AddNet("in")
	netOut := parent.AddNet("out")
	sc := parent.AddSubCircuit(callee, map[netlist.PinID]*Net{ca: netIn, cb: netOut})

	require.Len(t, parent.SubCircuits(), 1)
	assert.Equal(t, callee, sc.Callee())
	assert.Equal(t, netIn, sc.NetAt(ca))
	assert.Equal(t, []netlist.SubCircuitPin{{SubCircuit: sc, Pin: ca}}, netIn.SubCircuitPins())
}

func TestNetlistPreservesAddOrder(t *testing.T) {
	n := NewNetlist()
	buf := NewCircuit("BUF")
	top := NewCircuit("TOP")
	n.AddCircuit(buf)
	n.AddCircuit(top)
	assert.Equal(t, []netlist.Circuit{buf, top}, n.Circuits())
}
