// Package netlist declares the hierarchical netlist model the comparison
// engine consumes.  Netlist construction and persistence are explicitly out
// of scope for this module (see the top-level package doc): callers build
// or load a netlist however they like and pass it to Comparator.Compare as
// values satisfying these interfaces.
//
// A reference, in-memory implementation usable for tests and the netcmp CLI
// lives in netlist/memnet; the engine itself never imports it.
package netlist
