package trie

import (
	"strings"
	"testing"
)

// TestInvariantsValid verifies that well-formed tries pass after every
// kind of mutation.
func TestInvariantsValid(t *testing.T) {
	tr := New()
	if err := tr.Invariants(); err != nil {
		t.Fatalf("empty trie: %v", err)
	}

	steps := []struct {
		name string
		op   func(Trie) Trie
	}{
		{"put cat", func(tr Trie) Trie { return tr.Put("cat", 1) }},
		{"put car", func(tr Trie) Trie { return tr.Put("car", 2) }},
		{"put empty key", func(tr Trie) Trie { return tr.Put("", 0) }},
		{"overwrite cat", func(tr Trie) Trie { return tr.Put("cat", 10) }},
		{"remove car", func(tr Trie) Trie { return tr.Remove("car") }},
		{"remove cat", func(tr Trie) Trie { return tr.Remove("cat") }},
		{"remove empty key", func(tr Trie) Trie { return tr.Remove("") }},
		{"noop remove", func(tr Trie) Trie { return tr.Remove("ghost") }},
	}

	for _, step := range steps {
		tr = step.op(tr)
		if err := tr.Invariants(); err != nil {
			t.Fatalf("after %s: %v", step.name, err)
		}
	}
}

// TestInvariantsDanglingNode verifies that a childless non-terminal
// node below the root is reported.
func TestInvariantsDanglingNode(t *testing.T) {
	root := newPlainNode()
	root.setChild('a', newPlainNode())
	tr := Trie{root: root}

	err := tr.Invariants()
	if err == nil {
		t.Fatal("expected an invariant violation")
	}

	invErr, ok := err.(*InvariantError)
	if !ok {
		t.Fatalf("error type = %T, want *InvariantError", err)
	}
	if invErr.Path != "a" {
		t.Errorf("Path = %q, want %q", invErr.Path, "a")
	}
	if !strings.Contains(invErr.Description, "childless non-terminal") {
		t.Errorf("Description = %q, want childless non-terminal report", invErr.Description)
	}
}

// TestInvariantsEmptyRootAllowed verifies that an allocated empty root
// is legal: it is what removing the last key leaves behind.
func TestInvariantsEmptyRootAllowed(t *testing.T) {
	tr := Trie{root: newPlainNode()}
	if err := tr.Invariants(); err != nil {
		t.Errorf("allocated empty root should be valid, got %v", err)
	}
}

// TestInvariantsNilChild verifies that a nil child entry is reported
// with its path.
func TestInvariantsNilChild(t *testing.T) {
	inner := newPlainNode()
	inner.kids['b'] = nil

	root := newPlainNode()
	root.setChild('a', inner)
	tr := Trie{root: root}

	err := tr.Invariants()
	if err == nil {
		t.Fatal("expected an invariant violation")
	}
	if !strings.Contains(err.Error(), "nil child") {
		t.Errorf("Error = %q, want nil child report", err.Error())
	}
}

// TestInvariantsNilChildrenMap verifies that a node without an
// allocated children map is reported.
func TestInvariantsNilChildrenMap(t *testing.T) {
	tr := Trie{root: &plainNode{}}

	err := tr.Invariants()
	if err == nil {
		t.Fatal("expected an invariant violation")
	}
	if !strings.Contains(err.Error(), "nil children map") {
		t.Errorf("Error = %q, want nil children map report", err.Error())
	}
}

// TestInvariantErrorMessage verifies the error text carries the path.
func TestInvariantErrorMessage(t *testing.T) {
	err := &InvariantError{Path: "ab", Description: "broken"}
	want := `invariant violation at "ab": broken`
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}
