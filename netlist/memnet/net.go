package memnet

import "netcompare/netlist"

// Pin is a concrete netlist.Pin.
type Pin struct {
	id   netlist.PinID
	name string
}

func (p Pin) ID() netlist.PinID { return p.id }
func (p Pin) Name() string      { return p.name }

// Net is a concrete netlist.Net. Its DeviceTerminals and SubCircuitPins
// are populated by Circuit.AddDevice / Circuit.AddSubCircuit as devices
// and subcircuit instances are wired onto it, not at construction time.
type Net struct {
	name string
	pins []netlist.PinID
	dts  []netlist.DeviceTerminal
	scps []netlist.SubCircuitPin
}

func (n *Net) Name() string                             { return n.name }
func (n *Net) Pins() []netlist.PinID                     { return n.pins }
func (n *Net) DeviceTerminals() []netlist.DeviceTerminal { return n.dts }
func (n *Net) SubCircuitPins() []netlist.SubCircuitPin   { return n.scps }
