package trie

import (
	"fmt"
)

// InvariantError describes a structural violation found by Invariants.
type InvariantError struct {
	Path        string
	Description string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("invariant violation at %q: %s", e.Path, e.Description)
}

// Invariants walks the whole structure and verifies:
//   - every node has an allocated children map
//   - no child entry is nil
//   - a node's terminal flag matches its concrete kind
//   - no node below the root is both non-terminal and childless
//     (Remove must have pruned it)
//
// Returns an error describing the first violation found, or nil.
func (t Trie) Invariants() error {
	if t.root == nil {
		return nil
	}
	return checkNodeInvariants(t.root, nil, true)
}

// checkNodeInvariants recursively checks a node and its descendants.
func checkNodeInvariants(n node, prefix []byte, isRoot bool) error {
	if n.childMap() == nil {
		return &InvariantError{
			Path:        string(prefix),
			Description: "nil children map",
		}
	}

	_, isValue := n.(*valueNode)
	if isValue != n.terminal() {
		return &InvariantError{
			Path:        string(prefix),
			Description: "terminal flag does not match node kind",
		}
	}

	if !isRoot && !n.terminal() && n.childCount() == 0 {
		return &InvariantError{
			Path:        string(prefix),
			Description: "childless non-terminal node",
		}
	}

	for _, label := range sortedLabels(n) {
		child, ok := n.child(label)
		if !ok || child == nil {
			return &InvariantError{
				Path:        string(prefix),
				Description: fmt.Sprintf("nil child at label %#02x", label),
			}
		}

		if err := checkNodeInvariants(child, append(prefix, label), false); err != nil {
			return err
		}
	}

	return nil
}
