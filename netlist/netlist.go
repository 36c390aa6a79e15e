package netlist

// PinID is a stable identifier for a circuit pin, stable for the lifetime
// of the circuit it belongs to. TerminalID is the analogous identifier for
// a device terminal, defined by the device's class.
type PinID int

// TerminalID identifies one terminal of a device, as defined by its
// DeviceClass.
type TerminalID int

// Well-known parameter ids of the standard device classes, used by the
// device filter. A DeviceClass is free to use any other
// parameter ids for its own purposes; only R and C carry filter meaning.
const (
	ParamR = iota // resistance, for resistor-like classes
	ParamC        // capacitance, for capacitor-like classes
)

// Netlist is the hierarchical collection of circuits the engine compares.
// Circuits must be returned in bottom-up order: every circuit a given
// circuit instantiates as a subcircuit (its callees) appears before it.
type Netlist interface {
	Circuits() []Circuit
}

// Circuit is one level of netlist hierarchy.
type Circuit interface {
	Name() string
	Pins() []Pin
	Nets() []Net
	Devices() []Device
	SubCircuits() []SubCircuit
}

// Pin is an external port of a circuit.
type Pin interface {
	ID() PinID
	// Name returns the pin's name, or "" if it has none.
	Name() string
}

// DeviceTerminal names one terminal of one device attached to a net.
type DeviceTerminal struct {
	Device   Device
	Terminal TerminalID
}

// SubCircuitPin names one pin of one subcircuit instance attached to a net,
// addressed in the callee circuit's pin space.
type SubCircuitPin struct {
	SubCircuit SubCircuit
	Pin        PinID
}

// Net is a connection point inside a circuit. Net values must be usable as
// Go map keys (i.e. backed by a comparable concrete type, typically a
// pointer) since the engine indexes nets by identity.
type Net interface {
	// Name returns a display name for the net, used only for reporting;
	// edgeless nodes are ordered by their first pin's name, never by this.
	Name() string
	// Pins returns the ids of this circuit's own pins attached to the net.
	Pins() []PinID
	DeviceTerminals() []DeviceTerminal
	SubCircuitPins() []SubCircuitPin
}

// Device is a primitive circuit element (resistor, transistor, ...).
// Device values must be usable as Go map keys.
type Device interface {
	Class() DeviceClass
	// Terminals returns the fixed set of terminal ids this device's class
	// defines, regardless of which ones are actually connected.
	Terminals() []TerminalID
	// NetAt returns the net connected to terminal t, or nil if t is
	// unconnected.
	NetAt(t TerminalID) Net
	// ParamValue looks up a class-defined parameter (see ParamR, ParamC).
	ParamValue(id int) (float64, bool)
}

// DeviceClass describes a family of devices sharing terminal layout and
// parameter semantics.
type DeviceClass interface {
	Name() string
	// NormalizeTerminalID quotients topologically equivalent terminals
	// (e.g. source/drain on a symmetric MOS) to one canonical id.
	NormalizeTerminalID(id TerminalID) TerminalID
	// Less and Equal compare two devices of this class by parameter value
	// (e.g. resistance), used to order and classify Transitions and to
	// detect match_devices_with_different_parameters.
	Less(a, b Device) bool
	Equal(a, b Device) bool
}

// SubCircuit is an instance of a callee Circuit within a containing
// circuit. SubCircuit values must be usable as Go map keys.
type SubCircuit interface {
	Callee() Circuit
	// NetAt returns, for a pin id in the callee's pin space, the net of
	// the *containing* circuit connected to that pin.
	NetAt(p PinID) Net
}

// IsFloating reports whether n is a floating net: it has no non-trivial
// topology beyond (at most) the single circuit pin attached to it.
func IsFloating(n Net) bool {
	return len(n.DeviceTerminals()) == 0 && len(n.SubCircuitPins()) == 0 && len(n.Pins()) <= 1
}
