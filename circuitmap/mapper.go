package circuitmap

import "netcompare/netlist"

// Mapper records the pin-id bijection discovered between one circuit
// ("this", implicit — a Mapper always belongs to exactly one circuit, held
// by a Registry) and its paired counterpart ("other"). Either direction may
// be incomplete while a comparison is in progress.
type Mapper struct {
	other       netlist.Circuit
	thisToOther map[netlist.PinID]netlist.PinID
	otherToThis map[netlist.PinID]netlist.PinID
}

// New creates an empty Mapper with no counterpart set yet.
func New() *Mapper {
	return &Mapper{
		thisToOther: make(map[netlist.PinID]netlist.PinID),
		otherToThis: make(map[netlist.PinID]netlist.PinID),
	}
}

// SetOther records the counterpart circuit this Mapper translates pins
// against.
func (m *Mapper) SetOther(c netlist.Circuit) {
	m.other = c
}

// Other returns the counterpart circuit, or nil if never set.
func (m *Mapper) Other() netlist.Circuit {
	return m.other
}

// Map records that thisPin and otherPin correspond, in both directions.
func (m *Mapper) Map(thisPin, otherPin netlist.PinID) {
	m.thisToOther[thisPin] = otherPin
	m.otherToThis[otherPin] = thisPin
}

// OtherForThis translates a pin of this circuit into the counterpart's pin
// space.
func (m *Mapper) OtherForThis(p netlist.PinID) (netlist.PinID, bool) {
	q, ok := m.thisToOther[p]
	return q, ok
}

// ThisForOther translates a pin of the counterpart circuit into this
// circuit's pin space.
func (m *Mapper) ThisForOther(q netlist.PinID) (netlist.PinID, bool) {
	p, ok := m.otherToThis[q]
	return p, ok
}
