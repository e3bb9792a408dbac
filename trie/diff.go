package trie

import (
	"fmt"
	"reflect"
	"sort"
)

// DiffType classifies one difference between two Tries.
type DiffType int

const (
	DiffAdded DiffType = iota
	DiffRemoved
	DiffModified
)

// String returns a string representation of the difference type.
func (dt DiffType) String() string {
	switch dt {
	case DiffAdded:
		return "added"
	case DiffRemoved:
		return "removed"
	case DiffModified:
		return "modified"
	default:
		return fmt.Sprintf("unknown(%d)", int(dt))
	}
}

// DiffEntry records a single key whose value differs between two Tries.
type DiffEntry struct {
	Key    string
	Type   DiffType
	Before any // value in the old Trie, nil when added
	After  any // value in the new Trie, nil when removed
}

// String returns a string representation of the difference entry.
func (de DiffEntry) String() string {
	return fmt.Sprintf("%s: %q", de.Type, de.Key)
}

// Diff returns the keys whose values differ between before and after,
// in lexicographic byte order. Subtrees shared by reference between the
// two Tries are skipped without descent, so diffing a Trie against a
// near descendant costs O(changed paths), not O(size). Values are
// compared with reflect.DeepEqual, so re-storing an equal value is not
// reported as a modification.
func Diff(before, after Trie) []DiffEntry {
	var diffs []DiffEntry
	diffNodes(before.root, after.root, nil, &diffs)
	return diffs
}

func diffNodes(a, b node, prefix []byte, diffs *[]DiffEntry) {
	if a == b {
		// Shared subtree: nothing below can differ.
		return
	}

	av, aok := nodeValue(a)
	bv, bok := nodeValue(b)
	switch {
	case aok && !bok:
		*diffs = append(*diffs, DiffEntry{Key: string(prefix), Type: DiffRemoved, Before: av})
	case !aok && bok:
		*diffs = append(*diffs, DiffEntry{Key: string(prefix), Type: DiffAdded, After: bv})
	case aok && bok:
		if !reflect.DeepEqual(av, bv) {
			*diffs = append(*diffs, DiffEntry{Key: string(prefix), Type: DiffModified, Before: av, After: bv})
		}
	}

	for _, label := range unionLabels(a, b) {
		var ac, bc node
		if a != nil {
			if c, ok := a.child(label); ok {
				ac = c
			}
		}
		if b != nil {
			if c, ok := b.child(label); ok {
				bc = c
			}
		}
		diffNodes(ac, bc, append(prefix, label), diffs)
	}
}

// nodeValue returns the value carried by n, if n is terminal.
func nodeValue(n node) (any, bool) {
	if vn, ok := n.(*valueNode); ok {
		return vn.val, true
	}
	return nil, false
}

// unionLabels returns the ascending union of both nodes' child labels.
func unionLabels(a, b node) []byte {
	seen := make(map[byte]struct{})
	if a != nil {
		for label := range a.childMap() {
			seen[label] = struct{}{}
		}
	}
	if b != nil {
		for label := range b.childMap() {
			seen[label] = struct{}{}
		}
	}

	labels := make([]byte, 0, len(seen))
	for label := range seen {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}
