package trie

// node is implemented by both trie node kinds. A node is mutable only
// between its creation (clone or fresh insert) and the moment the Trie
// holding it is returned to a caller; once reachable from a published
// root it must never change.
type node interface {
	// clone duplicates exactly one level: a fresh node of the same
	// concrete kind with a fresh children map holding the same shared
	// child references.
	clone() node
	terminal() bool
	child(label byte) (node, bool)
	setChild(label byte, child node)
	removeChild(label byte)
	childCount() int
	childMap() map[byte]node
}

// plainNode is a non-terminal node: it exists only to route key bytes
// toward deeper nodes.
type plainNode struct {
	kids map[byte]node
}

func newPlainNode() *plainNode {
	return &plainNode{kids: make(map[byte]node)}
}

// copyChildren duplicates the mapping itself, not the subtrees it
// points to.
func copyChildren(kids map[byte]node) map[byte]node {
	out := make(map[byte]node, len(kids))
	for label, child := range kids {
		out[label] = child
	}
	return out
}

func (n *plainNode) clone() node {
	return &plainNode{kids: copyChildren(n.kids)}
}

func (n *plainNode) terminal() bool {
	return false
}

func (n *plainNode) child(label byte) (node, bool) {
	c, ok := n.kids[label]
	return c, ok
}

func (n *plainNode) setChild(label byte, child node) {
	n.kids[label] = child
}

func (n *plainNode) removeChild(label byte) {
	delete(n.kids, label)
}

func (n *plainNode) childCount() int {
	return len(n.kids)
}

func (n *plainNode) childMap() map[byte]node {
	return n.kids
}

// valueNode is a terminal node carrying the value stored under the key
// that ends here. The stored type is erased; Get recovers it with a
// checked assertion.
type valueNode struct {
	plainNode
	val any
}

func newValueNode(kids map[byte]node, val any) *valueNode {
	if kids == nil {
		kids = make(map[byte]node)
	}
	return &valueNode{plainNode: plainNode{kids: kids}, val: val}
}

func (n *valueNode) clone() node {
	return &valueNode{plainNode: plainNode{kids: copyChildren(n.kids)}, val: n.val}
}

func (n *valueNode) terminal() bool {
	return true
}
