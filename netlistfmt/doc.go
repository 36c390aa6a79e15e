// Package netlistfmt parses a small, line-oriented textual netlist fixture
// format (.net files) into netlist/memnet circuits, for use by cmd/netcmp
// and by tests that would otherwise need to hand-build memnet circuits
// field by field. The format is not, and is never meant to be, a
// production netlist interchange format: it exists purely to give the
// module a human-writable fixture syntax, grounded the same way
// pkg/bsdl gives OpenTraceLab-OpenTraceJTAG one for boundary-scan
// descriptions — a participle/v2 lexer+grammar pair feeding a small AST,
// then a separate builder pass turning the AST into real domain values.
//
// Grammar, conventionally one statement per line (line breaks are not
// significant: each statement starts with its keyword, and the keywords
// circuit, pin, net, device, param, subckt and end are reserved):
//
//	circuit <name>
//	pin <name>
//	net <name> [<pin> ...]
//	device <class> [param <name> <value>]* <terminal>=<net> ...
//	subckt <callee> <calleePin>=<net> ...
//	end
//
// Device classes are looked up by name in a map the caller supplies to
// Build: class terminal layout and parameter-comparison semantics are a
// Go-level concern (netlist/memnet.DeviceClass), not something this text
// format can express. Circuits must appear in bottom-up order, same as
// netlist.Netlist requires.
package netlistfmt
