package trie

import (
	"sort"
)

// sortedLabels returns a node's child edge labels in ascending order.
func sortedLabels(n node) []byte {
	kids := n.childMap()
	labels := make([]byte, 0, len(kids))
	for label := range kids {
		labels = append(labels, label)
	}
	sort.Slice(labels, func(i, j int) bool { return labels[i] < labels[j] })
	return labels
}

// ForEach calls fn for every stored key in lexicographic byte order.
// If fn returns false, the walk stops early.
func (t Trie) ForEach(fn func(key string, value any) bool) {
	forEachNode(t.root, nil, fn)
}

// ForEachPrefix is ForEach restricted to keys beginning with prefix.
// An empty prefix visits every key.
func (t Trie) ForEachPrefix(prefix string, fn func(key string, value any) bool) {
	cur := t.root
	if cur == nil {
		return
	}

	for i := 0; i < len(prefix); i++ {
		next, ok := cur.child(prefix[i])
		if !ok {
			return
		}
		cur = next
	}

	forEachNode(cur, []byte(prefix), fn)
}

// forEachNode visits n and its subtree in key order. It returns false
// once fn asks to stop.
func forEachNode(n node, prefix []byte, fn func(string, any) bool) bool {
	if n == nil {
		return true
	}

	if vn, ok := n.(*valueNode); ok {
		if !fn(string(prefix), vn.val) {
			return false
		}
	}

	for _, label := range sortedLabels(n) {
		child, ok := n.child(label)
		if !ok {
			continue
		}
		if !forEachNode(child, append(prefix, label), fn) {
			return false
		}
	}
	return true
}

// Keys returns every stored key in lexicographic byte order.
func (t Trie) Keys() []string {
	var keys []string
	t.ForEach(func(key string, _ any) bool {
		keys = append(keys, key)
		return true
	})
	return keys
}

// Len returns the number of stored keys. It walks the structure, so it
// costs O(size).
func (t Trie) Len() int {
	n := 0
	t.ForEach(func(string, any) bool {
		n++
		return true
	})
	return n
}
