// Package memnet is a concrete, in-memory reference implementation of the
// netlist interfaces, built incrementally by repeated Add calls rather
// than constructed from a single literal. It is
// used by tests, by netlistfmt's fixture parser, and by cmd/netcmp; the
// comparison engine itself never imports it, matching netlist's doc
// comment: construction and persistence are explicitly out of scope for
// the core.
package memnet
