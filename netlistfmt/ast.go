package netlistfmt

// File is the root of a parsed .net fixture.
type File struct {
	Statements []*Statement `@@*`
}

// Statement is one line of the fixture format.
type Statement struct {
	Circuit *CircuitStmt `  @@`
	Pin     *PinStmt     `| @@`
	Net     *NetStmt     `| @@`
	Device  *DeviceStmt  `| @@`
	SubCkt  *SubCktStmt  `| @@`
	End     *EndStmt     `| @@`
}

// CircuitStmt opens a new circuit block: "circuit <name>".
type CircuitStmt struct {
	Name string `"circuit" @Ident`
}

// PinStmt declares one external pin of the current circuit: "pin <name>".
type PinStmt struct {
	Name string `"pin" @Ident`
}

// NetStmt declares a net, optionally attached to one or more of the
// current circuit's own pins by name: "net <name> [<pin> ...]".
type NetStmt struct {
	Name string   `"net" @Ident`
	Pins []string `@Ident*`
}

// ParamClause is one "param <name> <value>" pair inside a device line.
type ParamClause struct {
	Name  string  `"param" @Ident`
	Value float64 `@Number`
}

// Assign is one "<name>=<net>" pair, used both for device terminal wiring
// and subcircuit pin wiring.
type Assign struct {
	Name string `@Ident "="`
	Net  string `@Ident`
}

// DeviceStmt instantiates one device of Class, with zero or more
// parameters followed by its terminal-to-net wiring:
// "device <class> [param <name> <value>]* <terminal>=<net> ...".
type DeviceStmt struct {
	Class     string         `"device" @Ident`
	Params    []*ParamClause `@@*`
	Terminals []*Assign      `@@*`
}

// SubCktStmt instantiates callee as a subcircuit of the current circuit:
// "subckt <callee> <calleePin>=<net> ...".
type SubCktStmt struct {
	Callee string    `"subckt" @Ident`
	Pins   []*Assign `@@*`
}

// EndStmt closes the current circuit block: "end".
type EndStmt struct {
	Marker string `@"end"`
}
