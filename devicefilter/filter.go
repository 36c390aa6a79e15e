package devicefilter

import "netcompare/netlist"

// Unset disables the corresponding threshold. Any negative value is
// treated the same way.
const Unset = -1.0

// Filter admits or rejects devices from net-graph construction based on a
// resistance ceiling and a capacitance floor.
type Filter struct {
	resistorThreshold float64
	capThreshold      float64
}

// New creates a Filter with both thresholds disabled.
func New() *Filter {
	return &Filter{resistorThreshold: Unset, capThreshold: Unset}
}

// ExcludeResistors sets the resistance ceiling: resistors strictly above
// threshold are skipped. A negative threshold disables the rule.
func (f *Filter) ExcludeResistors(threshold float64) {
	f.resistorThreshold = threshold
}

// ExcludeCaps sets the capacitance floor: capacitors strictly below
// threshold are skipped. A negative threshold disables the rule.
func (f *Filter) ExcludeCaps(threshold float64) {
	f.capThreshold = threshold
}

// Copy returns an independent copy, used when Compare takes a working copy
// of the persistent, user-configured Filter.
func (f *Filter) Copy() *Filter {
	out := *f
	return &out
}

// Admits reports whether d should contribute to net-graph construction.
func (f *Filter) Admits(d netlist.Device) bool {
	if f.resistorThreshold >= 0 {
		if r, ok := d.ParamValue(netlist.ParamR); ok && r > f.resistorThreshold {
			return false
		}
	}
	if f.capThreshold >= 0 {
		if c, ok := d.ParamValue(netlist.ParamC); ok && c < f.capThreshold {
			return false
		}
	}
	return true
}
