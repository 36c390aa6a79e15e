// Package netgraph builds and canonically orders the per-circuit graph the
// backtracking pairing engine operates on: one Node per net, edges merged
// by far net, transitions sorted within an edge and edges sorted within a
// node, the whole node slice sorted so that two structurally identical
// circuits produce byte-identical graphs.
//
// A Graph represents a circuit as a flat, canonically sorted node array
// addressed by integer index rather than by pointer, so a Graph never lets
// one Node hold a reference to another: edges are read through a far net
// pointer only until Build's final indexing pass resolves it to a
// refid.NodeIndex into the same Graph's Nodes slice.
package netgraph
