// Package gen contains generators for netlist fixtures of common shapes:
// series device chains, symmetric ambiguous bridges (to stress the
// pairing engine's ambiguous-net handling), and bottom-up subcircuit
// hierarchies. Package gen also supplies a seedable package-level random
// source for reproducible random fixtures.
package gen
