// Package bench measures the pairing engine's complexity-bound behavior
// on scaled fixtures from package gen. There is no separate process to
// invoke and time here: the thing under test is netcompare.Comparator
// itself, measured in-process.
//
// Each Run wraps one Comparator.Compare call with a CountingLogger (to
// turn emitted events into aggregate counts without modifying core code)
// and reads Comparator.Stats() afterward for the pairing engine's
// max_depth/max_n_branch exhaustion counts, then exports both through a
// Metrics collector for scraping.
package bench
