// Package devicefilter is a small admission test run over every device
// before it contributes to a NetGraph, letting the engine ignore
// parasitic resistors above a threshold and capacitors below a threshold.
package devicefilter
