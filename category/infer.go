package category

import (
	"fmt"
	"sort"
	"strings"

	"netcompare/netlist"
	"netcompare/refid"
)

// InferCircuitPairsByDeviceClassSignature is an opt-in supplemental pass:
// circuits whose device-class category multiset matches exactly are
// declared same even though nothing ever named them synonymous. It never
// overrides an
// existing explicit declaration, only adds new ones for circuits a plain
// by-name categorization would otherwise miss.
func InferCircuitPairsByDeviceClassSignature(circCat *Categorizer[netlist.Circuit], devCat *Categorizer[netlist.DeviceClass], circuits []netlist.Circuit) {
	bySignature := make(map[string][]netlist.Circuit)
	var order []string
	for _, c := range circuits {
		sig := deviceClassSignature(c, devCat)
		if _, ok := bySignature[sig]; !ok {
			order = append(order, sig)
		}
		bySignature[sig] = append(bySignature[sig], c)
	}
	for _, sig := range order {
		group := bySignature[sig]
		for i := 1; i < len(group); i++ {
			circCat.DeclareSame(group[0], group[i])
		}
	}
}

func deviceClassSignature(c netlist.Circuit, devCat *Categorizer[netlist.DeviceClass]) string {
	counts := make(map[refid.CategoryID]int)
	for _, d := range c.Devices() {
		counts[devCat.CategoryFor(d.Class())]++
	}
	ids := make([]refid.CategoryID, 0, len(counts))
	for id := range counts {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	var b strings.Builder
	for _, id := range ids {
		fmt.Fprintf(&b, "%d:%d;", id, counts[id])
	}
	return b.String()
}
