package netcompare

import (
	"sort"

	"netcompare/category"
	"netcompare/netlist"
	"netcompare/refid"
)

// collectDeviceClasses gathers the distinct device classes used anywhere in
// n, in first-sighted order (bottom-up circuit order, then device order
// within each circuit) so the result is deterministic across repeated
// Compare calls.
func collectDeviceClasses(n netlist.Netlist) []netlist.DeviceClass {
	seen := make(map[netlist.DeviceClass]bool)
	var out []netlist.DeviceClass
	for _, c := range n.Circuits() {
		for _, d := range c.Devices() {
			cls := d.Class()
			if cls == nil || seen[cls] {
				continue
			}
			seen[cls] = true
			out = append(out, cls)
		}
	}
	return out
}

// scanDeviceClassMismatches pairs up, within each category, the device
// classes used by A and by B, positionally in discovery order. A category
// used by one side more often than the other surfaces the surplus classes
// as device_class_mismatch events: the category mechanism says these
// classes are interchangeable, so only a genuine surplus — a class with no
// same-category counterpart anywhere on the other side — is a mismatch.
func scanDeviceClassMismatches(aClasses, bClasses []netlist.DeviceClass, devCat *category.Categorizer[netlist.DeviceClass], logger Logger) int {
	byCatA := make(map[refid.CategoryID][]netlist.DeviceClass)
	for _, cls := range aClasses {
		cat := devCat.CategoryFor(cls)
		byCatA[cat] = append(byCatA[cat], cls)
	}
	byCatB := make(map[refid.CategoryID][]netlist.DeviceClass)
	for _, cls := range bClasses {
		cat := devCat.CategoryFor(cls)
		byCatB[cat] = append(byCatB[cat], cls)
	}

	catSeen := make(map[refid.CategoryID]bool)
	var cats []refid.CategoryID
	for cat := range byCatA {
		if !catSeen[cat] {
			catSeen[cat] = true
			cats = append(cats, cat)
		}
	}
	for cat := range byCatB {
		if !catSeen[cat] {
			catSeen[cat] = true
			cats = append(cats, cat)
		}
	}
	sort.Slice(cats, func(i, j int) bool { return cats[i] < cats[j] })

	count := 0
	for _, cat := range cats {
		aList, bList := byCatA[cat], byCatB[cat]
		n := len(aList)
		if len(bList) > n {
			n = len(bList)
		}
		for i := 0; i < n; i++ {
			var ca, cb netlist.DeviceClass
			if i < len(aList) {
				ca = aList[i]
			}
			if i < len(bList) {
				cb = bList[i]
			}
			if ca != nil && cb != nil {
				continue
			}
			logger.DeviceClassMismatch(ca, cb)
			count++
		}
	}
	return count
}
