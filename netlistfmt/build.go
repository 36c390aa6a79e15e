package netlistfmt

import (
	"fmt"

	"netcompare/netlist"
	"netcompare/netlist/memnet"
)

// ClassSpec associates a device class with the terminal names the text
// format may reference for it; DeviceClass.Terminals is a plain
// []netlist.TerminalID with no notion of a human-readable name, so that
// association has to live here, one layer above the core data model.
type ClassSpec struct {
	Class     *memnet.DeviceClass
	Terminals map[string]netlist.TerminalID
}

// Build converts a parsed File into a memnet.Netlist, resolving device
// lines against classes by name. Circuits are added to the netlist in the
// order their "circuit" blocks close, so the fixture's own circuit order
// must already be bottom-up (every subckt's callee defined earlier),
// exactly as netlist.Netlist requires.
func Build(f *File, classes map[string]ClassSpec) (*memnet.Netlist, error) {
	nl := memnet.NewNetlist()
	circuitsByName := make(map[string]netlist.Circuit)
	pinsByCircuit := make(map[string]map[string]netlist.PinID)

	var cur *memnet.Circuit
	var curPins map[string]netlist.PinID
	var curNets map[string]*memnet.Net

	for _, stmt := range f.Statements {
		switch {
		case stmt.Circuit != nil:
			if cur != nil {
				return nil, fmt.Errorf("netlistfmt: nested circuit %q inside %q", stmt.Circuit.Name, cur.Name())
			}
			cur = memnet.NewCircuit(stmt.Circuit.Name)
			curPins = make(map[string]netlist.PinID)
			curNets = make(map[string]*memnet.Net)

		case stmt.Pin != nil:
			if cur == nil {
				return nil, fmt.Errorf("netlistfmt: pin %q outside any circuit", stmt.Pin.Name)
			}
			curPins[stmt.Pin.Name] = cur.AddPin(stmt.Pin.Name)

		case stmt.Net != nil:
			if cur == nil {
				return nil, fmt.Errorf("netlistfmt: net %q outside any circuit", stmt.Net.Name)
			}
			pins := make([]netlist.PinID, 0, len(stmt.Net.Pins))
			for _, pn := range stmt.Net.Pins {
				id, ok := curPins[pn]
				if !ok {
					return nil, fmt.Errorf("netlistfmt: net %q references undeclared pin %q", stmt.Net.Name, pn)
				}
				pins = append(pins, id)
			}
			curNets[stmt.Net.Name] = cur.AddNet(stmt.Net.Name, pins...)

		case stmt.Device != nil:
			if cur == nil {
				return nil, fmt.Errorf("netlistfmt: device %q outside any circuit", stmt.Device.Class)
			}
			spec, ok := classes[stmt.Device.Class]
			if !ok {
				return nil, fmt.Errorf("netlistfmt: unknown device class %q", stmt.Device.Class)
			}
			params := make(map[int]float64, len(stmt.Device.Params))
			for _, p := range stmt.Device.Params {
				params[paramID(p.Name)] = p.Value
			}
			conns := make(map[netlist.TerminalID]*memnet.Net, len(stmt.Device.Terminals))
			for _, a := range stmt.Device.Terminals {
				tid, ok := spec.Terminals[a.Name]
				if !ok {
					return nil, fmt.Errorf("netlistfmt: class %q has no terminal %q", stmt.Device.Class, a.Name)
				}
				n, ok := curNets[a.Net]
				if !ok {
					return nil, fmt.Errorf("netlistfmt: device terminal %q references undeclared net %q", a.Name, a.Net)
				}
				conns[tid] = n
			}
			cur.AddDevice(spec.Class, params, conns)

		case stmt.SubCkt != nil:
			if cur == nil {
				return nil, fmt.Errorf("netlistfmt: subckt %q outside any circuit", stmt.SubCkt.Callee)
			}
			callee, ok := circuitsByName[stmt.SubCkt.Callee]
			if !ok {
				return nil, fmt.Errorf("netlistfmt: subckt references undefined circuit %q (must be defined earlier)", stmt.SubCkt.Callee)
			}
			calleePins := pinsByCircuit[stmt.SubCkt.Callee]
			conns := make(map[netlist.PinID]*memnet.Net, len(stmt.SubCkt.Pins))
			for _, a := range stmt.SubCkt.Pins {
				pid, ok := calleePins[a.Name]
				if !ok {
					return nil, fmt.Errorf("netlistfmt: circuit %q has no pin %q", stmt.SubCkt.Callee, a.Name)
				}
				n, ok := curNets[a.Net]
				if !ok {
					return nil, fmt.Errorf("netlistfmt: subckt pin %q references undeclared net %q", a.Name, a.Net)
				}
				conns[pid] = n
			}
			cur.AddSubCircuit(callee, conns)

		case stmt.End != nil:
			if cur == nil {
				return nil, fmt.Errorf("netlistfmt: end with no open circuit")
			}
			nl.AddCircuit(cur)
			circuitsByName[cur.Name()] = cur
			pinsByCircuit[cur.Name()] = curPins
			cur = nil
			curPins = nil
			curNets = nil
		}
	}

	if cur != nil {
		return nil, fmt.Errorf("netlistfmt: circuit %q missing end", cur.Name())
	}
	return nl, nil
}

// paramID maps the fixture's own parameter names to netlist.ParamR/ParamC;
// any other name is passed through as an arbitrary positive id derived
// from the name so device classes with bespoke parameters still round
// trip, just without a symbolic constant.
func paramID(name string) int {
	switch name {
	case "R":
		return netlist.ParamR
	case "C":
		return netlist.ParamC
	default:
		id := 1000
		for _, r := range name {
			id = id*31 + int(r)
		}
		if id < 0 {
			id = -id
		}
		return id
	}
}
