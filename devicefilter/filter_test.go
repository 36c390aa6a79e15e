package devicefilter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"netcompare/netlist"
)

type stubClass struct{ name string }

func (c *stubClass) Name() string                                       { return c.name }
func (c *stubClass) NormalizeTerminalID(id netlist.TerminalID) netlist.TerminalID { return id }
func (c *stubClass) Less(a, b netlist.Device) bool                       { return false }
func (c *stubClass) Equal(a, b netlist.Device) bool                      { return true }

type stubDevice struct {
	class  netlist.DeviceClass
	params map[int]float64
}

func (d *stubDevice) Class() netlist.DeviceClass          { return d.class }
func (d *stubDevice) Terminals() []netlist.TerminalID     { return nil }
func (d *stubDevice) NetAt(t netlist.TerminalID) netlist.Net { return nil }
func (d *stubDevice) ParamValue(id int) (float64, bool) {
	v, ok := d.params[id]
	return v, ok
}

func resistor(r float64) *stubDevice {
	return &stubDevice{class: &stubClass{"RES"}, params: map[int]float64{netlist.ParamR: r}}
}

func capacitor(c float64) *stubDevice {
	return &stubDevice{class: &stubClass{"CAP"}, params: map[int]float64{netlist.ParamC: c}}
}

func TestFilterDisabledByDefault(t *testing.T) {
	f := New()
	assert.True(t, f.Admits(resistor(1e9)))
	assert.True(t, f.Admits(capacitor(1e-20)))
}

func TestFilterExcludesBigResistors(t *testing.T) {
	f := New()
	f.ExcludeResistors(1000)
	assert.True(t, f.Admits(resistor(999)))
	assert.False(t, f.Admits(resistor(1001)))
}

func TestFilterExcludesSmallCaps(t *testing.T) {
	f := New()
	f.ExcludeCaps(1e-15)
	assert.True(t, f.Admits(capacitor(1e-14)))
	assert.False(t, f.Admits(capacitor(1e-16)))
}

func TestFilterOtherDevicesPass(t *testing.T) {
	f := New()
	f.ExcludeResistors(1000)
	f.ExcludeCaps(1e-15)
	mos := &stubDevice{class: &stubClass{"NMOS"}, params: map[int]float64{}}
	assert.True(t, f.Admits(mos))
}

func TestFilterCopyIsIndependent(t *testing.T) {
	f := New()
	f.ExcludeResistors(1000)
	cp := f.Copy()
	cp.ExcludeResistors(1)
	assert.True(t, f.Admits(resistor(500)))
	assert.False(t, cp.Admits(resistor(500)))
}
