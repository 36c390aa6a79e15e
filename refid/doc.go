// Package refid provides the small opaque integer types used as
// references throughout the comparison engine: category ids, assigned by
// the categorizers to device classes and circuits, and node indices, which
// locate a node within one NetGraph.
//
// Both types are thin wrappers around an int with a reserved null value
// and cheap value semantics, so that graphs and maps can hold them
// directly without boxing or pointer chasing.
package refid
