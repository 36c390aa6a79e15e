package category

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"netcompare/netlist"
)

// stubCircuit satisfies netlist.Circuit with no real content; PinMapper
// only needs circuit identity (pointer equality), not its contents.
type stubCircuit struct{ name string }

func (s *stubCircuit) Name() string                    { return s.name }
func (s *stubCircuit) Pins() []netlist.Pin              { return nil }
func (s *stubCircuit) Nets() []netlist.Net              { return nil }
func (s *stubCircuit) Devices() []netlist.Device        { return nil }
func (s *stubCircuit) SubCircuits() []netlist.SubCircuit { return nil }

func TestPinMapperUnionAndNormalize(t *testing.T) {
	m := NewPinMapper()
	c := &stubCircuit{"X"}
	require.NoError(t, m.DeclareEquivalent(c, 3, 1, 2))
	assert.Equal(t, netlist.PinID(1), m.Normalize(c, 1))
	assert.Equal(t, netlist.PinID(1), m.Normalize(c, 2))
	assert.Equal(t, netlist.PinID(1), m.Normalize(c, 3))
}

func TestPinMapperUnrelatedPinNormalizesToItself(t *testing.T) {
	m := NewPinMapper()
	c := &stubCircuit{"X"}
	require.NoError(t, m.DeclareEquivalent(c, 1, 2))
	assert.Equal(t, netlist.PinID(9), m.Normalize(c, 9))
	assert.False(t, m.IsInAnyCluster(c, 9))
	assert.True(t, m.IsInAnyCluster(c, 1))
}

func TestPinMapperPerCircuitIsolation(t *testing.T) {
	m := NewPinMapper()
	a := &stubCircuit{"A"}
	b := &stubCircuit{"B"}
	require.NoError(t, m.DeclareEquivalent(a, 1, 2))
	assert.False(t, m.IsInAnyCluster(b, 1))
}

func TestPinMapperNilCircuitIsConfigError(t *testing.T) {
	m := NewPinMapper()
	err := m.DeclareEquivalent(nil, 1, 2)
	assert.Error(t, err)
}

func TestPinMapperSinglePinIsNoop(t *testing.T) {
	m := NewPinMapper()
	c := &stubCircuit{"X"}
	require.NoError(t, m.DeclareEquivalent(c, 1))
	assert.False(t, m.IsInAnyCluster(c, 1))
}

func TestPinMapperCopyIsIndependent(t *testing.T) {
	m := NewPinMapper()
	c := &stubCircuit{"X"}
	require.NoError(t, m.DeclareEquivalent(c, 1, 2))
	cp := m.Copy()
	require.NoError(t, cp.DeclareEquivalent(c, 2, 3))
	assert.False(t, m.IsInAnyCluster(c, 3))
	assert.True(t, cp.IsInAnyCluster(c, 3))
}
