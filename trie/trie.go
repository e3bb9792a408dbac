// Package trie implements a persistent, path-copying trie keyed by
// byte sequences. Every mutation returns a new Trie sharing all
// unmodified subtrees with the original, so any number of goroutines
// may read any previously obtained Trie without locking.
package trie

// Trie is an immutable handle on a trie root. The zero value is the
// empty mapping. Mutating operations return a new Trie and leave the
// receiver, and every Trie returned earlier, unchanged.
type Trie struct {
	root node
}

// New returns an empty Trie. It is equivalent to the zero value.
func New() Trie {
	return Trie{}
}

// Same reports whether two Tries share the identical root and therefore
// represent the same published snapshot. This is reference identity,
// not deep equality: it is how a no-op Remove is detected.
func (t Trie) Same(other Trie) bool {
	return t.root == other.root
}

// Get returns the value stored under key. The second result is false if
// the key is absent.
func (t Trie) Get(key string) (any, bool) {
	cur := t.root
	if cur == nil {
		return nil, false
	}

	for i := 0; i < len(key); i++ {
		next, ok := cur.child(key[i])
		if !ok {
			return nil, false
		}
		cur = next
	}

	if !cur.terminal() {
		return nil, false
	}

	vn, ok := cur.(*valueNode)
	if !ok {
		return nil, false
	}
	return vn.val, true
}

// Has reports whether key is present.
func (t Trie) Has(key string) bool {
	_, ok := t.Get(key)
	return ok
}

// Get returns the value stored under key in t as type T. A stored value
// of a different type behaves exactly like an absent key, so using the
// wrong type parameter is a miss, never a panic.
func Get[T any](t Trie, key string) (T, bool) {
	var zero T

	v, ok := t.Get(key)
	if !ok {
		return zero, false
	}

	typed, ok := v.(T)
	if !ok {
		return zero, false
	}
	return typed, true
}

// Put stores value under key and returns the resulting Trie. Exactly
// the nodes on the path from the root to key are freshly allocated;
// every subtree off that path is shared by reference with the receiver,
// so a Put costs O(len(key)) allocations regardless of trie size.
// Storing under a key that already holds a value replaces the value and
// preserves the node's children.
func (t Trie) Put(key string, value any) Trie {
	var root node
	if t.root != nil {
		root = t.root.clone()
	} else {
		root = newPlainNode()
	}

	// parent trails cur by one step so the final node can be swapped
	// out for a value-bearing one.
	var parent node
	var parentLabel byte

	cur := root
	for i := 0; i < len(key); i++ {
		label := key[i]

		var next node
		if existing, ok := cur.child(label); ok {
			next = existing.clone()
		} else {
			next = newPlainNode()
		}
		cur.setChild(label, next)

		parent, parentLabel = cur, label
		cur = next
	}

	if vn, ok := cur.(*valueNode); ok {
		// Already terminal: replace the value on the clone.
		vn.val = value
		return Trie{root: root}
	}

	// The final clone is plain: swap it for a value node carrying the
	// same children. The clone is ours, so its map can be adopted.
	vn := newValueNode(cur.childMap(), value)
	if parent == nil {
		// Empty key: the value node is the root itself.
		return Trie{root: vn}
	}
	parent.setChild(parentLabel, vn)
	return Trie{root: root}
}

// pathEntry records one step of a cloned path: the cloned parent and
// the edge label leading to the next cloned node.
type pathEntry struct {
	parent node
	label  byte
}

// Remove deletes key and returns the resulting Trie. If the key is
// absent the original Trie is returned unchanged, with the same root
// reference. Otherwise the path to the key is cloned, the target loses
// its terminal status (keeping its children), and childless non-terminal
// nodes are pruned bottom-up until the first ancestor that is terminal
// or still has children. Removing the last key leaves an allocated
// empty root, which behaves identically to a never-populated Trie.
func (t Trie) Remove(key string) Trie {
	if t.root == nil {
		return t
	}

	root := t.root.clone()
	path := make([]pathEntry, 0, len(key))

	cur := root
	for i := 0; i < len(key); i++ {
		label := key[i]

		existing, ok := cur.child(label)
		if !ok {
			return t
		}
		next := existing.clone()
		cur.setChild(label, next)

		path = append(path, pathEntry{parent: cur, label: label})
		cur = next
	}

	vn, ok := cur.(*valueNode)
	if !ok {
		return t
	}

	// Drop the terminal marking: the value node becomes a plain node
	// carrying the same children.
	replacement := &plainNode{kids: vn.kids}
	if len(path) == 0 {
		root = replacement
	} else {
		last := path[len(path)-1]
		last.parent.setChild(last.label, replacement)
	}

	// Prune childless non-terminal nodes from the leaf upward, stopping
	// at the first node still carrying a value or other keys.
	for i := len(path) - 1; i >= 0; i-- {
		entry := path[i]

		child, ok := entry.parent.child(entry.label)
		if !ok {
			continue
		}
		if child.terminal() || child.childCount() > 0 {
			break
		}
		entry.parent.removeChild(entry.label)
	}

	return Trie{root: root}
}
