package netlog

import (
	"log"
	"os"

	"netcompare/netlist"
)

// Logger is netcompare's default Logger, printing one line per event to an
// underlying *log.Logger. The zero value is not usable; use New.
type Logger struct {
	l *log.Logger
}

// New creates a Logger writing through l.
func New(l *log.Logger) *Logger {
	return &Logger{l: l}
}

// NewStderr creates a Logger writing to os.Stderr with a short
// "c [netcmp] " prefix.
func NewStderr() *Logger {
	return New(log.New(os.Stderr, "c [netcmp] ", log.LstdFlags))
}

func netName(n netlist.Net) string {
	if n == nil {
		return "<none>"
	}
	return n.Name()
}

func pinName(p netlist.Pin) string {
	if p == nil {
		return "<none>"
	}
	if n := p.Name(); n != "" {
		return n
	}
	return "<unnamed>"
}

func deviceClassName(d netlist.Device) string {
	if d == nil {
		return "<none>"
	}
	return d.Class().Name()
}

func circuitName(c netlist.Circuit) string {
	if c == nil {
		return "<none>"
	}
	return c.Name()
}

func subCircuitCalleeName(sc netlist.SubCircuit) string {
	if sc == nil {
		return "<none>"
	}
	return sc.Callee().Name()
}

func (lg *Logger) BeginNetlist(a, b netlist.Netlist) {
	lg.l.Printf("comparing netlists, %d vs %d circuits\n", len(a.Circuits()), len(b.Circuits()))
}

func (lg *Logger) EndNetlist(a, b netlist.Netlist) {
	lg.l.Printf("done comparing netlists\n")
}

func (lg *Logger) DeviceClassMismatch(a, b netlist.DeviceClass) {
	an, bn := "<none>", "<none>"
	if a != nil {
		an = a.Name()
	}
	if b != nil {
		bn = b.Name()
	}
	lg.l.Printf("device class mismatch: %s vs %s\n", an, bn)
}

func (lg *Logger) CircuitMismatch(a, b netlist.Circuit) {
	lg.l.Printf("circuit mismatch: %s vs %s\n", circuitName(a), circuitName(b))
}

func (lg *Logger) BeginCircuit(a, b netlist.Circuit) {
	lg.l.Printf("%s vs %s: start\n", circuitName(a), circuitName(b))
}

func (lg *Logger) EndCircuit(a, b netlist.Circuit, good bool) {
	lg.l.Printf("%s vs %s: done, good=%v\n", circuitName(a), circuitName(b), good)
}

func (lg *Logger) CircuitSkipped(a, b netlist.Circuit) {
	lg.l.Printf("%s vs %s: skipped, callees not yet verified\n", circuitName(a), circuitName(b))
}

func (lg *Logger) MatchNets(a, b netlist.Net) {
	lg.l.Printf("net match: %s = %s\n", netName(a), netName(b))
}

func (lg *Logger) MatchAmbiguousNets(a, b netlist.Net) {
	lg.l.Printf("ambiguous net match: %s = %s\n", netName(a), netName(b))
}

func (lg *Logger) NetMismatch(a, b netlist.Net) {
	lg.l.Printf("net mismatch: %s vs %s\n", netName(a), netName(b))
}

func (lg *Logger) MatchPins(a, b netlist.Pin) {
	lg.l.Printf("pin match: %s = %s\n", pinName(a), pinName(b))
}

func (lg *Logger) PinMismatch(a, b netlist.Pin) {
	lg.l.Printf("pin mismatch: %s vs %s\n", pinName(a), pinName(b))
}

func (lg *Logger) MatchDevices(a, b netlist.Device) {
	lg.l.Printf("device match: %s = %s\n", deviceClassName(a), deviceClassName(b))
}

func (lg *Logger) MatchDevicesWithDifferentParameters(a, b netlist.Device) {
	lg.l.Printf("device match with different parameters: %s = %s\n", deviceClassName(a), deviceClassName(b))
}

func (lg *Logger) MatchDevicesWithDifferentDeviceClasses(a, b netlist.Device) {
	lg.l.Printf("device match with different classes: %s = %s\n", deviceClassName(a), deviceClassName(b))
}

func (lg *Logger) DeviceMismatch(a, b netlist.Device) {
	lg.l.Printf("device mismatch: %s vs %s\n", deviceClassName(a), deviceClassName(b))
}

func (lg *Logger) MatchSubCircuits(a, b netlist.SubCircuit) {
	lg.l.Printf("subcircuit match: %s = %s\n", subCircuitCalleeName(a), subCircuitCalleeName(b))
}

func (lg *Logger) SubCircuitMismatch(a, b netlist.SubCircuit) {
	lg.l.Printf("subcircuit mismatch: %s vs %s\n", subCircuitCalleeName(a), subCircuitCalleeName(b))
}
