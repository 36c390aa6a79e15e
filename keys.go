package netcompare

import (
	"sort"
	"strconv"
	"strings"

	"netcompare/refid"
)

// idIndexPair is one (normalized-id, node-index) component of a device or
// subcircuit cross-reference key.
type idIndexPair struct {
	ID    int
	Index refid.NodeIndex
}

// sortedKey canonicalizes pairs by (id, index) and renders them into a
// string usable as a map key; Go has no comparable slice type, and the
// pairs are already tiny integers, so a delimited string is the simplest
// faithful encoding of a small-tuple key.
func sortedKey(pairs []idIndexPair) string {
	sort.Slice(pairs, func(i, j int) bool {
		if pairs[i].ID != pairs[j].ID {
			return pairs[i].ID < pairs[j].ID
		}
		return pairs[i].Index < pairs[j].Index
	})
	var b strings.Builder
	for _, p := range pairs {
		b.WriteString(strconv.Itoa(p.ID))
		b.WriteByte(':')
		b.WriteString(strconv.Itoa(int(p.Index)))
		b.WriteByte(';')
	}
	return b.String()
}
