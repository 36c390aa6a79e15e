package memnet

import "netcompare/netlist"

// DeviceClass is a concrete netlist.DeviceClass: a fixed terminal list, an
// optional set of terminal groups that are topologically interchangeable
// (e.g. source/drain on a symmetric MOS), and an optional parameter id
// devices of this class are compared by.
//
// original_source/dbNetlistCompare.cc caches a terminal-id -> normalized-id
// table per device class (its own m_terminal_ids) rather than recomputing
// the grouping on every NormalizeTerminalID call; this keeps the same
// shape: NewDeviceClass creates the table empty and GroupSwappable fills it.
type DeviceClass struct {
	name      string
	terminals []netlist.TerminalID
	normalize map[netlist.TerminalID]netlist.TerminalID

	// compareParam is the ParamValue id devices of this class are ordered
	// and compared by (e.g. ParamR for a resistor class). A negative value
	// means devices of this class carry no comparable parameter: Equal
	// always reports true and Less always reports false, as for a plain
	// MOS class where only topology, never a parameter, can distinguish
	// two devices.
	compareParam int
}

// NewDeviceClass creates a DeviceClass with terminals as its canonical,
// fixed terminal set. compareParam selects the ParamValue id used by Equal
// and Less; pass -1 for classes with no comparable parameter.
func NewDeviceClass(name string, terminals []netlist.TerminalID, compareParam int) *DeviceClass {
	return &DeviceClass{
		name:         name,
		terminals:    terminals,
		normalize:    make(map[netlist.TerminalID]netlist.TerminalID),
		compareParam: compareParam,
	}
}

// GroupSwappable declares every terminal in ids as topologically
// interchangeable: NormalizeTerminalID quotients them all to ids[0].
func (c *DeviceClass) GroupSwappable(ids ...netlist.TerminalID) {
	if len(ids) < 2 {
		return
	}
	for _, id := range ids[1:] {
		c.normalize[id] = ids[0]
	}
}

func (c *DeviceClass) Name() string { return c.name }

// Terminals returns this class's canonical terminal set, used by Device's
// own Terminals method. Not part of netlist.DeviceClass.
func (c *DeviceClass) Terminals() []netlist.TerminalID { return c.terminals }

func (c *DeviceClass) NormalizeTerminalID(id netlist.TerminalID) netlist.TerminalID {
	if n, ok := c.normalize[id]; ok {
		return n
	}
	return id
}

func (c *DeviceClass) Less(a, b netlist.Device) bool {
	if c.compareParam < 0 {
		return false
	}
	va, oka := a.ParamValue(c.compareParam)
	vb, okb := b.ParamValue(c.compareParam)
	if !oka || !okb {
		return oka != okb && okb
	}
	return va < vb
}

func (c *DeviceClass) Equal(a, b netlist.Device) bool {
	if c.compareParam < 0 {
		return true
	}
	va, oka := a.ParamValue(c.compareParam)
	vb, okb := b.ParamValue(c.compareParam)
	if oka != okb {
		return false
	}
	return !oka || va == vb
}

// Device is a concrete netlist.Device: a class, a fixed set of
// terminal-to-net connections (nil for an unconnected terminal), and a
// small parameter table.
type Device struct {
	class  *DeviceClass
	nets   map[netlist.TerminalID]netlist.Net
	params map[int]float64
}

func (d *Device) Class() netlist.DeviceClass { return d.class }

func (d *Device) Terminals() []netlist.TerminalID { return d.class.Terminals() }

func (d *Device) NetAt(t netlist.TerminalID) netlist.Net { return d.nets[t] }

func (d *Device) ParamValue(id int) (float64, bool) {
	v, ok := d.params[id]
	return v, ok
}
