package triestore

import (
	"github.com/verstore/triedb/trie"
)

// ValueGuard pairs a value read from the store with the snapshot it was
// read from. Holding the guard keeps that snapshot's entire root chain
// reachable, so the value stays valid no matter how many versions the
// store commits afterwards. Guards are only produced by Get and GetAt,
// which guarantees the value really lives in the pinned snapshot.
type ValueGuard[T any] struct {
	snapshot trie.Trie
	version  uint64
	value    T
}

// Value returns the guarded value.
func (g ValueGuard[T]) Value() T {
	return g.value
}

// Version returns the version the value was read from.
func (g ValueGuard[T]) Version() uint64 {
	return g.version
}

// Snapshot returns the pinned snapshot. It is immutable and safe to
// read from any goroutine.
func (g ValueGuard[T]) Snapshot() trie.Trie {
	return g.snapshot
}
