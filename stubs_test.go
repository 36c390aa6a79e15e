package netcompare

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

func (c *stubClass) Name() string                                                { return c.name }
func (c *stubClass) NormalizeTerminalID(id netlist.TerminalID) netlist.TerminalID { return id }
func (c *stubClass) Less(a, b netlist.Device) bool                               { return false }
func (c *stubClass) Equal(a, b netlist.Device) bool {
	ra, oka := a.ParamValue(netlist.ParamR)
	rb, okb := b.ParamValue(netlist.ParamR)
	if oka != okb {
		return false
	}
	return !oka || ra == rb
}

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

func (n *stubNet) Name() string                               { return n.name }
func (n *stubNet) Pins() []netlist.PinID                       { return n.pins }
func (n *stubNet) DeviceTerminals() []netlist.DeviceTerminal   { return n.dts }
func (n *stubNet) SubCircuitPins() []netlist.SubCircuitPin     { return n.scps }

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

type stubNetlist struct {
	circuits []netlist.Circuit
}

func (n *stubNetlist) Circuits() []netlist.Circuit { return n.circuits }

// recordingLogger counts every mismatch-shaped event and records match_nets
// pairs by net name, enough to assert on without a full fixture-diffing
// harness.
type recordingLogger struct {
	noopLogger
	mismatches  int
	matchedNets [][2]string
}

func (r *recordingLogger) DeviceClassMismatch(a, b netlist.DeviceClass) { r.mismatches++ }
func (r *recordingLogger) CircuitMismatch(a, b netlist.Circuit)         { r.mismatches++ }
func (r *recordingLogger) NetMismatch(a, b netlist.Net)                { r.mismatches++ }
func (r *recordingLogger) PinMismatch(a, b netlist.Pin)                 { r.mismatches++ }
func (r *recordingLogger) DeviceMismatch(a, b netlist.Device)          { r.mismatches++ }
func (r *recordingLogger) SubCircuitMismatch(a, b netlist.SubCircuit)  { r.mismatches++ }

func (r *recordingLogger) MatchNets(a, b netlist.Net) {
	r.matchedNets = append(r.matchedNets, [2]string{a.Name(), b.Name()})
}
func (r *recordingLogger) MatchAmbiguousNets(a, b netlist.Net) {
	r.matchedNets = append(r.matchedNets, [2]string{a.Name(), b.Name()})
}

const (
	termT1 netlist.TerminalID = 1
	termT2 netlist.TerminalID = 2
)

// buildSeriesResistors builds a three-net circuit with pins A, B connected
// by two resistors in series through a middle net, one instance per call so
// callers can vary device order and parameters to exercise order and
// parameter invariance.
func buildSeriesResistors(resistorClass netlist.DeviceClass, rA, rB float64, swapOrder bool) netlist.Circuit {
	netA := &stubNet{name: "A", pins: []netlist.PinID{1}}
	netM := &stubNet{name: "M"}
	netB := &stubNet{name: "B", pins: []netlist.PinID{2}}

	r1 := &stubDevice{class: resistorClass, params: map[int]float64{netlist.ParamR: rA},
		nets: map[netlist.TerminalID]netlist.Net{termT1: netA, termT2: netM}}
	r2 := &stubDevice{class: resistorClass, params: map[int]float64{netlist.ParamR: rB},
		nets: map[netlist.TerminalID]netlist.Net{termT1: netM, termT2: netB}}

	netA.dts = []netlist.DeviceTerminal{{Device: r1, Terminal: termT1}}
	netB.dts = []netlist.DeviceTerminal{{Device: r2, Terminal: termT2}}
	netM.dts = []netlist.DeviceTerminal{{Device: r1, Terminal: termT2}, {Device: r2, Terminal: termT1}}

	devices := []netlist.Device{r1, r2}
	if swapOrder {
		devices = []netlist.Device{r2, r1}
	}

	return &stubCircuit{
		name:    "series",
		pins:    []netlist.Pin{stubPin{id: 1, name: "A"}, stubPin{id: 2, name: "B"}},
		nets:    []netlist.Net{netA, netM, netB},
		devices: devices,
	}
}
