package netgraph

import "netcompare/netlist"

type stubPin struct {
	id   netlist.PinID
	name string
}

func (p stubPin) ID() netlist.PinID { return p.id }
func (p stubPin) Name() string      { return p.name }

type stubClass struct {
	name string
}

func (c *stubClass) Name() string                                              { return c.name }
func (c *stubClass) NormalizeTerminalID(id netlist.TerminalID) netlist.TerminalID { return id }
func (c *stubClass) Less(a, b netlist.Device) bool                             { return false }
func (c *stubClass) Equal(a, b netlist.Device) bool                            { return true }

type stubDevice struct {
	class  netlist.DeviceClass
	nets   map[netlist.TerminalID]netlist.Net
	params map[int]float64
}

func (d *stubDevice) Class() netlist.DeviceClass { return d.class }
func (d *stubDevice) Terminals() []netlist.TerminalID {
	ts := make([]netlist.TerminalID, 0, len(d.nets))
	for t := range d.nets {
		ts = append(ts, t)
	}
	return ts
}
func (d *stubDevice) NetAt(t netlist.TerminalID) netlist.Net { return d.nets[t] }
func (d *stubDevice) ParamValue(id int) (float64, bool) {
	v, ok := d.params[id]
	return v, ok
}

type stubNet struct {
	name string
	pins []netlist.PinID
	dts  []netlist.DeviceTerminal
	scps []netlist.SubCircuitPin
}

func (n *stubNet) Name() string                            { return n.name }
func (n *stubNet) Pins() []netlist.PinID                    { return n.pins }
func (n *stubNet) DeviceTerminals() []netlist.DeviceTerminal { return n.dts }
func (n *stubNet) SubCircuitPins() []netlist.SubCircuitPin   { return n.scps }

type stubCircuit struct {
	name        string
	pins        []netlist.Pin
	nets        []netlist.Net
	devices     []netlist.Device
	subcircuits []netlist.SubCircuit
}

func (c *stubCircuit) Name() string                     { return c.name }
func (c *stubCircuit) Pins() []netlist.Pin               { return c.pins }
func (c *stubCircuit) Nets() []netlist.Net               { return c.nets }
func (c *stubCircuit) Devices() []netlist.Device         { return c.devices }
func (c *stubCircuit) SubCircuits() []netlist.SubCircuit { return c.subcircuits }

type stubSubCircuit struct {
	callee netlist.Circuit
	nets   map[netlist.PinID]netlist.Net
}

func (s *stubSubCircuit) Callee() netlist.Circuit           { return s.callee }
func (s *stubSubCircuit) NetAt(p netlist.PinID) netlist.Net { return s.nets[p] }
