package bench

import "netcompare/netlist"

// Counts totals the events a CountingLogger observed during one Compare
// call, the counting/metrics decorator package bench uses to turn the
// core's emitted events into aggregate numbers without the core knowing
// anything about benchmarking.
type Counts struct {
	MatchNets               int
	MatchAmbiguousNets      int
	NetMismatch             int
	MatchPins               int
	PinMismatch             int
	MatchDevices            int
	DeviceMismatch          int
	MatchSubCircuits        int
	SubCircuitMismatch      int
	CircuitMismatch         int
	DeviceClassMismatch     int
	CircuitsCompared        int
}

// CountingLogger implements netcompare.Logger, tallying every event into
// Counts and forwarding each call unchanged to an optional inner Logger
// (netlog's default, or nil to count silently).
type CountingLogger struct {
	inner Logger
	c     Counts
}

// Logger is the subset of netcompare.Logger a CountingLogger forwards to;
// declared locally so this package does not need to import netcompare
// just to name the interface it decorates.
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

// NewCountingLogger creates a CountingLogger that forwards every event to
// inner. Pass nil to count without forwarding anywhere.
func NewCountingLogger(inner Logger) *CountingLogger {
	return &CountingLogger{inner: inner}
}

// Counts returns the totals accumulated so far.
func (l *CountingLogger) Counts() Counts { return l.c }

func (l *CountingLogger) BeginNetlist(a, b netlist.Netlist) {
	if l.inner != nil {
		l.inner.BeginNetlist(a, b)
	}
}

func (l *CountingLogger) EndNetlist(a, b netlist.Netlist) {
	if l.inner != nil {
		l.inner.EndNetlist(a, b)
	}
}

func (l *CountingLogger) DeviceClassMismatch(a, b netlist.DeviceClass) {
	l.c.DeviceClassMismatch++
	if l.inner != nil {
		l.inner.DeviceClassMismatch(a, b)
	}
}

func (l *CountingLogger) CircuitMismatch(a, b netlist.Circuit) {
	l.c.CircuitMismatch++
	if l.inner != nil {
		l.inner.CircuitMismatch(a, b)
	}
}

func (l *CountingLogger) BeginCircuit(a, b netlist.Circuit) {
	l.c.CircuitsCompared++
	if l.inner != nil {
		l.inner.BeginCircuit(a, b)
	}
}

func (l *CountingLogger) EndCircuit(a, b netlist.Circuit, good bool) {
	if l.inner != nil {
		l.inner.EndCircuit(a, b, good)
	}
}

func (l *CountingLogger) CircuitSkipped(a, b netlist.Circuit) {
	if l.inner != nil {
		l.inner.CircuitSkipped(a, b)
	}
}

func (l *CountingLogger) MatchNets(a, b netlist.Net) {
	l.c.MatchNets++
	if l.inner != nil {
		l.inner.MatchNets(a, b)
	}
}

func (l *CountingLogger) MatchAmbiguousNets(a, b netlist.Net) {
	l.c.MatchAmbiguousNets++
	if l.inner != nil {
		l.inner.MatchAmbiguousNets(a, b)
	}
}

func (l *CountingLogger) NetMismatch(a, b netlist.Net) {
	l.c.NetMismatch++
	if l.inner != nil {
		l.inner.NetMismatch(a, b)
	}
}

func (l *CountingLogger) MatchPins(a, b netlist.Pin) {
	l.c.MatchPins++
	if l.inner != nil {
		l.inner.MatchPins(a, b)
	}
}

func (l *CountingLogger) PinMismatch(a, b netlist.Pin) {
	l.c.PinMismatch++
	if l.inner != nil {
		l.inner.PinMismatch(a, b)
	}
}

func (l *CountingLogger) MatchDevices(a, b netlist.Device) {
	l.c.MatchDevices++
	if l.inner != nil {
		l.inner.MatchDevices(a, b)
	}
}

func (l *CountingLogger) MatchDevicesWithDifferentParameters(a, b netlist.Device) {
	l.c.MatchDevices++
	if l.inner != nil {
		l.inner.MatchDevicesWithDifferentParameters(a, b)
	}
}

func (l *CountingLogger) MatchDevicesWithDifferentDeviceClasses(a, b netlist.Device) {
	l.c.MatchDevices++
	if l.inner != nil {
		l.inner.MatchDevicesWithDifferentDeviceClasses(a, b)
	}
}

func (l *CountingLogger) DeviceMismatch(a, b netlist.Device) {
	l.c.DeviceMismatch++
	if l.inner != nil {
		l.inner.DeviceMismatch(a, b)
	}
}

func (l *CountingLogger) MatchSubCircuits(a, b netlist.SubCircuit) {
	l.c.MatchSubCircuits++
	if l.inner != nil {
		l.inner.MatchSubCircuits(a, b)
	}
}

func (l *CountingLogger) SubCircuitMismatch(a, b netlist.SubCircuit) {
	l.c.SubCircuitMismatch++
	if l.inner != nil {
		l.inner.SubCircuitMismatch(a, b)
	}
}
