// Package netlog supplies netcompare's default Logger: a thin wrapper
// over the standard library's log.Logger, printing one terse line per
// event (log.Printf with a short lowercase message, no structured
// fields, %s/%v for the objects involved).
package netlog
