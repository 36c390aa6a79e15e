// Package cerr holds the one error kind the public configuration surface
// can return: a programming error raised by passing a nil circuit, device
// class, net or pin to one of the Comparator same_* / equivalent_pins
// declarators. Everything else the engine reports is a structural mismatch
// delivered through the Logger, not an error.
package cerr

// ConfigError reports a misuse of the configuration surface, such as
// declaring a nil circuit or device class as same: a small string-carrying
// type implementing error, not an exception hierarchy.
type ConfigError struct {
	Msg string
}

func (e ConfigError) Error() string {
	return "netcompare: configuration error: " + e.Msg
}
