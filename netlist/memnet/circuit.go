package memnet

import "netcompare/netlist"

// Circuit is a concrete netlist.Circuit, built up incrementally: add pins
// and nets first, then wire devices and subcircuit instances onto the nets
// they connect to. Each Add* call mutates the circuit (and, for devices
// and subcircuits, the Net values their terminals/pins reference) in
// place; Circuit is not safe for concurrent building.
type Circuit struct {
	name        string
	pins        []netlist.Pin
	nets        []*Net
	devices     []netlist.Device
	subcircuits []netlist.SubCircuit

	nextPin netlist.PinID
}

// NewCircuit creates an empty circuit named name.
func NewCircuit(name string) *Circuit {
	return &Circuit{name: name}
}

// AddPin appends a new external pin and returns its assigned id.
func (c *Circuit) AddPin(name string) netlist.PinID {
	id := c.nextPin
	c.nextPin++
	c.pins = append(c.pins, Pin{id: id, name: name})
	return id
}

// AddNet creates a net named name, attached to the given pins of this
// circuit. The returned *Net is wired onto as devices and subcircuits are
// added.
func (c *Circuit) AddNet(name string, pins ...netlist.PinID) *Net {
	n := &Net{name: name, pins: append([]netlist.PinID(nil), pins...)}
	c.nets = append(c.nets, n)
	return n
}

// AddDevice creates a device of class, connected per conns (a nil net
// leaves the corresponding terminal unconnected), and registers the
// connection on each referenced net.
func (c *Circuit) AddDevice(class *DeviceClass, params map[int]float64, conns map[netlist.TerminalID]*Net) *Device {
	nets := make(map[netlist.TerminalID]netlist.Net, len(conns))
	for t, n := range conns {
		if n != nil {
			nets[t] = n
		}
	}
	d := &Device{class: class, nets: nets, params: params}
	c.devices = append(c.devices, d)
	for t, n := range conns {
		if n == nil {
			continue
		}
		n.dts = append(n.dts, netlist.DeviceTerminal{Device: d, Terminal: t})
	}
	return d
}

// AddSubCircuit creates an instance of callee, connected per conns (keyed
// by callee's own pin ids), and registers the connection on each
// referenced net.
func (c *Circuit) AddSubCircuit(callee netlist.Circuit, conns map[netlist.PinID]*Net) *SubCircuit {
	nets := make(map[netlist.PinID]netlist.Net, len(conns))
	for p, n := range conns {
		if n != nil {
			nets[p] = n
		}
	}
	sc := &SubCircuit{callee: callee, nets: nets}
	c.subcircuits = append(c.subcircuits, sc)
	for p, n := range conns {
		if n == nil {
			continue
		}
		n.scps = append(n.scps, netlist.SubCircuitPin{SubCircuit: sc, Pin: p})
	}
	return sc
}

func (c *Circuit) Name() string { return c.name }

func (c *Circuit) Pins() []netlist.Pin { return c.pins }

func (c *Circuit) Nets() []netlist.Net {
	out := make([]netlist.Net, len(c.nets))
	for i, n := range c.nets {
		out[i] = n
	}
	return out
}

func (c *Circuit) Devices() []netlist.Device { return c.devices }

func (c *Circuit) SubCircuits() []netlist.SubCircuit { return c.subcircuits }

// SubCircuit is a concrete netlist.SubCircuit.
type SubCircuit struct {
	callee netlist.Circuit
	nets   map[netlist.PinID]netlist.Net
}

func (s *SubCircuit) Callee() netlist.Circuit { return s.callee }

func (s *SubCircuit) NetAt(p netlist.PinID) netlist.Net { return s.nets[p] }
