package circuitmap

import "netcompare/netlist"

// Registry holds one Mapper per circuit on one side of a comparison.
// Net-graph construction looks a subcircuit's callee up here to find out
// whether (and how) that callee has already been paired with a circuit on
// the other netlist.
type Registry struct {
	mappers map[netlist.Circuit]*Mapper
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{mappers: make(map[netlist.Circuit]*Mapper)}
}

// Get returns the Mapper registered for c, if any.
func (r *Registry) Get(c netlist.Circuit) (*Mapper, bool) {
	m, ok := r.mappers[c]
	return m, ok
}

// GetOrCreate returns the Mapper registered for c, creating and
// registering an empty one if none exists yet.
func (r *Registry) GetOrCreate(c netlist.Circuit) *Mapper {
	m, ok := r.mappers[c]
	if !ok {
		m = New()
		r.mappers[c] = m
	}
	return m
}
