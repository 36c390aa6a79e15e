package pairing

import (
	"context"
	"sort"

	"netcompare/netgraph"
	"netcompare/refid"
)

// DefaultMaxDepth bounds the recursion depth of deriveFromSet before a
// branch is abandoned as a mismatch.
const DefaultMaxDepth = 8

// DefaultMaxNBranch bounds k * cumulative_branch_factor before an
// ambiguous group is abandoned as too large to resolve exhaustively.
const DefaultMaxNBranch = 100

// Mismatch is the "return infinity" sentinel: a branch that cannot be
// reconciled. It is never confused with a real pair count since counts
// are always >= 0.
const Mismatch = -1

// Events is the minimal sink the engine emits into. netcompare.Comparator
// adapts its public Logger to this interface; the engine itself never
// depends on the public logger shape.
type Events interface {
	// MatchNets reports that i1 and i2 were paired and their net-graph
	// content actually agrees.
	MatchNets(i1, i2 refid.NodeIndex)
	// MatchAmbiguousNets reports a pairing chosen from among several
	// structurally interchangeable candidates.
	MatchAmbiguousNets(i1, i2 refid.NodeIndex)
	// NetMismatch reports either a forced pairing whose content disagreed
	// (both indices set) or a node left with no counterpart at all (the
	// unmatched side passed as refid.NodeIndexUnset).
	NetMismatch(i1, i2 refid.NodeIndex)
}

// Engine runs the two-pass backtracking derivation over two net-graphs
// built in matched circuit contexts. A single Engine is used for exactly
// one circuit pair.
type Engine struct {
	g1, g2     *netgraph.Graph
	events     Events
	maxDepth   int
	maxNBranch int

	depthExhaustions  int
	branchExhaustions int
}

// New creates an Engine with the default complexity bounds.
func New(g1, g2 *netgraph.Graph, events Events) *Engine {
	return &Engine{g1: g1, g2: g2, events: events, maxDepth: DefaultMaxDepth, maxNBranch: DefaultMaxNBranch}
}

// SetMaxDepth overrides DefaultMaxDepth.
func (e *Engine) SetMaxDepth(d int) { e.maxDepth = d }

// SetMaxNBranch overrides DefaultMaxNBranch.
func (e *Engine) SetMaxNBranch(n int) { e.maxNBranch = n }

// DepthExhaustions reports how many times deriveFromSet abandoned a branch
// because it exceeded maxDepth, for callers (bench) that want to observe
// how often the complexity bound, rather than a genuine mismatch, decided
// an outcome.
func (e *Engine) DepthExhaustions() int { return e.depthExhaustions }

// BranchExhaustions reports how many times an ambiguous group was
// abandoned because k*branch exceeded maxNBranch.
func (e *Engine) BranchExhaustions() int { return e.branchExhaustions }

// Pair forces i1 and i2 to correspond before Run executes, used by the
// caller to seed the dummy-node identity and any same_nets hints. It is
// the caller's responsibility to ensure
// i1 and i2 are not already paired to something else.
func (e *Engine) Pair(i1, i2 refid.NodeIndex) {
	e.g1.At(i1).Other = i2
	e.g2.At(i2).Other = i1
}

// Run executes pass 1 (with_ambiguous = false) followed by pass 2
// (with_ambiguous = true), each to its own fixed point, then reports every
// node left unpaired on either side. ctx is polled between outer
// fixed-point iterations only; a cancelled context simply stops the
// search early, leaving whatever remains unpaired to be reported as
// mismatches exactly as if the search had exhausted its own bounds.
func (e *Engine) Run(ctx context.Context) {
	e.runPass(ctx, false)
	e.runPass(ctx, true)
	e.reportUnpaired()
}

func (e *Engine) runPass(ctx context.Context, withAmbiguous bool) {
	for {
		if ctx.Err() != nil {
			return
		}
		n := 0
		for i := 0; i < e.g1.Len(); i++ {
			idx := refid.NodeIndex(i)
			if e.g1.At(idx).Other.IsSet() {
				n += e.deriveFromPair(idx, withAmbiguous, 0, 1, false, nil)
			}
		}
		n += e.deriveFromUnpaired(withAmbiguous)
		if n == 0 {
			break
		}
	}
}

func (e *Engine) deriveFromUnpaired(withAmbiguous bool) int {
	var s1, s2 []refid.NodeIndex
	for i := 1; i < e.g1.Len(); i++ {
		idx := refid.NodeIndex(i)
		if !e.g1.At(idx).Other.IsSet() {
			s1 = append(s1, idx)
		}
	}
	for i := 1; i < e.g2.Len(); i++ {
		idx := refid.NodeIndex(i)
		if !e.g2.At(idx).Other.IsSet() {
			s2 = append(s2, idx)
		}
	}
	if len(s1) == 0 || len(s2) == 0 {
		return 0
	}
	r := e.deriveFromSet(s1, s2, withAmbiguous, 0, 1, false, nil)
	if r < 0 {
		return 0
	}
	return r
}

func (e *Engine) reportUnpaired() {
	for i := 1; i < e.g1.Len(); i++ {
		idx := refid.NodeIndex(i)
		if !e.g1.At(idx).Other.IsSet() {
			e.events.NetMismatch(idx, refid.NodeIndexUnset)
		}
	}
	for i := 1; i < e.g2.Len(); i++ {
		idx := refid.NodeIndex(i)
		if !e.g2.At(idx).Other.IsSet() {
			e.events.NetMismatch(refid.NodeIndexUnset, idx)
		}
	}
}

// deriveFromPair walks every maximal run of n1's edges sharing the same
// transition bundle, looks up the identically keyed run on n2, and
// recurses into deriveFromSet over the two far-node sets.
func (e *Engine) deriveFromPair(i1 refid.NodeIndex, withAmbiguous bool, depth, branch int, tentative bool, aud *audit) int {
	n1 := e.g1.At(i1)
	if !n1.Other.IsSet() {
		return 0
	}
	n2 := e.g2.At(n1.Other)

	total := 0
	edges1 := n1.Edges
	for start := 0; start < len(edges1); {
		end := start + 1
		for end < len(edges1) && netgraph.SameTransitions(edges1[start].Transitions, edges1[end].Transitions) {
			end++
		}
		run1 := edges1[start:end]
		if run2, ok := findEdgeRun(n2.Edges, run1[0].Transitions); ok {
			r := e.deriveFromSet(farIndices(run1), farIndices(run2), withAmbiguous, depth+1, branch, tentative, aud)
			if r > 0 {
				total += r
			}
		}
		start = end
	}
	return total
}

func findEdgeRun(edges []netgraph.Edge, transitions []netgraph.Transition) ([]netgraph.Edge, bool) {
	for start := 0; start < len(edges); {
		end := start + 1
		for end < len(edges) && netgraph.SameTransitions(edges[start].Transitions, edges[end].Transitions) {
			end++
		}
		if netgraph.SameTransitions(edges[start].Transitions, transitions) {
			return edges[start:end], true
		}
		start = end
	}
	return nil, false
}

func farIndices(edges []netgraph.Edge) []refid.NodeIndex {
	out := make([]refid.NodeIndex, len(edges))
	for i, ed := range edges {
		out[i] = ed.FarIndex
	}
	return out
}

// deriveFromSet pairs a lone candidate directly, otherwise walks both
// node-ordered sets in lockstep, grouping maximal runs of equal-content
// nodes, pairing singleton groups outright and deferring ambiguous groups
// (size > 1) to resolveAmbiguousGroup, smallest group first. When
// withAmbiguous is false, leftover ambiguous groups are simply excluded
// rather than failing the whole call — unless this call is itself
// tentative (nested inside a probe), in which case any ambiguous leftover
// invalidates the candidate pairing being tested and the call hard-fails.
func (e *Engine) deriveFromSet(s1, s2 []refid.NodeIndex, withAmbiguous bool, depth, branch int, tentative bool, aud *audit) int {
	if depth > e.maxDepth {
		e.depthExhaustions++
		return Mismatch
	}
	if len(s1) == 1 && len(s2) == 1 {
		return e.pairSingleton(s1[0], s2[0], withAmbiguous, depth, branch, tentative, aud, false)
	}

	sorted1 := append([]refid.NodeIndex(nil), s1...)
	sorted2 := append([]refid.NodeIndex(nil), s2...)
	sort.SliceStable(sorted1, func(a, b int) bool {
		return netgraph.CompareNodes(e.g1.At(sorted1[a]), e.g1.At(sorted1[b])) < 0
	})
	sort.SliceStable(sorted2, func(a, b int) bool {
		return netgraph.CompareNodes(e.g2.At(sorted2[a]), e.g2.At(sorted2[b])) < 0
	})

	type group struct{ run1, run2 []refid.NodeIndex }
	var singles, ambiguous []group

	i, j := 0, 0
	for i < len(sorted1) && j < len(sorted2) {
		i2 := i + 1
		for i2 < len(sorted1) && netgraph.CompareNodes(e.g1.At(sorted1[i]), e.g1.At(sorted1[i2])) == 0 {
			i2++
		}
		j2 := j + 1
		for j2 < len(sorted2) && netgraph.CompareNodes(e.g2.At(sorted2[j]), e.g2.At(sorted2[j2])) == 0 {
			j2++
		}
		switch c := netgraph.CompareNodes(e.g1.At(sorted1[i]), e.g2.At(sorted2[j])); {
		case c < 0:
			i = i2
		case c > 0:
			j = j2
		default:
			run1, run2 := sorted1[i:i2], sorted2[j:j2]
			if len(run1) == len(run2) {
				g := group{run1, run2}
				if len(run1) == 1 {
					singles = append(singles, g)
				} else {
					ambiguous = append(ambiguous, g)
				}
			}
			i, j = i2, j2
		}
	}

	total := 0
	for _, g := range singles {
		if r := e.pairSingleton(g.run1[0], g.run2[0], withAmbiguous, depth+1, branch, tentative, aud, false); r > 0 {
			total += r
		}
	}

	if len(ambiguous) == 0 {
		return total
	}
	if !withAmbiguous {
		if tentative {
			return Mismatch
		}
		return total
	}
	sort.SliceStable(ambiguous, func(a, b int) bool { return len(ambiguous[a].run1) < len(ambiguous[b].run1) })
	for _, g := range ambiguous {
		k := len(g.run1)
		if k*branch > e.maxNBranch {
			e.branchExhaustions++
			return Mismatch
		}
		n, ok := e.resolveAmbiguousGroup(g.run1, g.run2, depth+1, branch*k, tentative, aud)
		if !ok {
			return Mismatch
		}
		total += n
	}
	return total
}

// pairSingleton pairs i1 and i2 directly. If either side is already
// paired, the existing pairing must agree or the call reports Mismatch.
// ambiguousTag marks a pairing chosen out of an ambiguous group, which is
// always reported via MatchAmbiguousNets rather than MatchNets.
func (e *Engine) pairSingleton(i1, i2 refid.NodeIndex, withAmbiguous bool, depth, branch int, tentative bool, aud *audit, ambiguousTag bool) int {
	n1, n2 := e.g1.At(i1), e.g2.At(i2)
	if n1.Other.IsSet() {
		if n1.Other == i2 {
			return 0
		}
		return Mismatch
	}
	if n2.Other.IsSet() {
		return Mismatch
	}

	contentAgrees := netgraph.CompareNodes(n1, n2) == 0
	n1.Other, n2.Other = i2, i1
	if aud != nil {
		aud.record(i1)
	}
	if !tentative {
		switch {
		case ambiguousTag:
			e.events.MatchAmbiguousNets(i1, i2)
		case contentAgrees:
			e.events.MatchNets(i1, i2)
		default:
			e.events.NetMismatch(i1, i2)
		}
	}
	sub := e.deriveFromPair(i1, withAmbiguous, depth+1, branch, tentative, aud)
	if sub < 0 {
		sub = 0
	}
	return 1 + sub
}

// resolveAmbiguousGroup assigns each n1 in run1 a still-available n2 in
// run2 that probes clean (deriveFromPair does not return Mismatch),
// probing every remaining candidate rather than stopping at the first —
// each probe runs under a private, always-rolled-back audit regardless of
// the caller's own tentative state — so it can tell a uniquely resolvable
// n1 (exactly one surviving candidate) from a genuinely ambiguous one
// (two or more survive). It then commits every winning assignment for
// real, tagging only the genuinely ambiguous ones.
func (e *Engine) resolveAmbiguousGroup(run1, run2 []refid.NodeIndex, depth, branch int, tentative bool, aud *audit) (int, bool) {
	probe := newAudit(e.g1, e.g2)
	used2 := make(map[refid.NodeIndex]bool, len(run2))

	type candidate struct {
		i1, i2   refid.NodeIndex
		hadRival bool
	}
	var won []candidate
	for _, i1 := range run1 {
		var survivors []refid.NodeIndex
		for _, i2 := range run2 {
			if used2[i2] {
				continue
			}
			mark := probe.mark()
			r := e.pairSingleton(i1, i2, true, depth, branch, true, probe, false)
			probe.rollbackTo(mark)
			if r != Mismatch {
				survivors = append(survivors, i2)
			}
		}
		// Under a tentative probe every member of the group must resolve,
		// or the candidate pairing being validated is invalid outright —
		// a partial win here cannot be salvaged by the caller.
		if len(survivors) == 0 {
			if tentative {
				return 0, false
			}
			continue
		}
		used2[survivors[0]] = true
		won = append(won, candidate{i1, survivors[0], len(survivors) > 1})
	}
	if len(won) == 0 {
		return 0, false
	}

	total := 0
	for _, c := range won {
		if r := e.pairSingleton(c.i1, c.i2, true, depth, branch, tentative, aud, c.hadRival); r > 0 {
			total += r
		}
	}
	return total, true
}
