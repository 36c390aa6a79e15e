package netcompare

import "netcompare/netlist"

// Logger receives every match/mismatch event the core emits during one
// Compare call, in deterministic emission order that is stable across
// repeated calls with the same inputs. Any of the two arguments to a
// mismatch-shaped method may be nil,
// meaning "no counterpart on that side"; match-shaped methods receive two
// non-nil arguments, except MatchPins, which is called with one nil side
// for every pin when either circuit of the pair has no pins at all.
type Logger interface {
	BeginNetlist(a, b netlist.Netlist)
	EndNetlist(a, b netlist.Netlist)

	DeviceClassMismatch(a, b netlist.DeviceClass)
	CircuitMismatch(a, b netlist.Circuit)

	BeginCircuit(a, b netlist.Circuit)
	EndCircuit(a, b netlist.Circuit, good bool)
	CircuitSkipped(a, b netlist.Circuit)

	MatchNets(a, b netlist.Net)
	MatchAmbiguousNets(a, b netlist.Net)
	NetMismatch(a, b netlist.Net)

	MatchPins(a, b netlist.Pin)
	PinMismatch(a, b netlist.Pin)

	MatchDevices(a, b netlist.Device)
	MatchDevicesWithDifferentParameters(a, b netlist.Device)
	MatchDevicesWithDifferentDeviceClasses(a, b netlist.Device)
	DeviceMismatch(a, b netlist.Device)

	MatchSubCircuits(a, b netlist.SubCircuit)
	SubCircuitMismatch(a, b netlist.SubCircuit)
}

type noopLogger struct{}

func (noopLogger) BeginNetlist(a, b netlist.Netlist) {}
func (noopLogger) EndNetlist(a, b netlist.Netlist)   {}

func (noopLogger) DeviceClassMismatch(a, b netlist.DeviceClass) {}
func (noopLogger) CircuitMismatch(a, b netlist.Circuit)         {}

func (noopLogger) BeginCircuit(a, b netlist.Circuit)        {}
func (noopLogger) EndCircuit(a, b netlist.Circuit, good bool) {}
func (noopLogger) CircuitSkipped(a, b netlist.Circuit)      {}

func (noopLogger) MatchNets(a, b netlist.Net)          {}
func (noopLogger) MatchAmbiguousNets(a, b netlist.Net) {}
func (noopLogger) NetMismatch(a, b netlist.Net)        {}

func (noopLogger) MatchPins(a, b netlist.Pin)   {}
func (noopLogger) PinMismatch(a, b netlist.Pin) {}

func (noopLogger) MatchDevices(a, b netlist.Device)                              {}
func (noopLogger) MatchDevicesWithDifferentParameters(a, b netlist.Device)       {}
func (noopLogger) MatchDevicesWithDifferentDeviceClasses(a, b netlist.Device)    {}
func (noopLogger) DeviceMismatch(a, b netlist.Device)                            {}

func (noopLogger) MatchSubCircuits(a, b netlist.SubCircuit)    {}
func (noopLogger) SubCircuitMismatch(a, b netlist.SubCircuit) {}
