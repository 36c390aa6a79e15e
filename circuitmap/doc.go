// Package circuitmap implements CircuitMapper: for one paired circuit, a
// partial bijection between that circuit's pin ids and its counterpart's
// pin ids, recorded in both directions by a single call.
//
// A Registry holds one Mapper per circuit on one side of a comparison
// (e.g. every already-verified circuit of netlist A), which is exactly
// what net-graph construction consults when it crosses into a subcircuit's
// callee.
package circuitmap
