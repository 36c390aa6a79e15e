// Package pairing implements the two-pass backtracking engine that derives
// a node bijection between two net-graphs. It is an implementation detail
// of the top-level comparator, never imported outside this module: the
// net-graph and category packages define the data the engine walks,
// netcompare.Comparator is the only caller.
package pairing
