// Package triestore exposes a thread-safe, versioned key-value store
// built from immutable tries. Every committed write produces a new
// snapshot; readers work against any committed version without blocking
// writers, and a single writer at a time prepares the next version.
package triestore

import (
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/verstore/triedb/trie"
)

var (
	// ErrVersionNotFound indicates a version number beyond the
	// committed history.
	ErrVersionNotFound = errors.New("version not found")
)

// IsVersionNotFound checks if an error indicates a missing version.
func IsVersionNotFound(err error) bool {
	return errors.Is(err, ErrVersionNotFound)
}

// Store holds the append-only sequence of committed snapshots. Version
// numbers are the snapshot indices: version 0 is the empty snapshot the
// store starts with, and every committed Put or Remove appends exactly
// one more. Versions are never reused or rewritten.
type Store struct {
	// writeMu serializes the write path end to end: at most one writer
	// reads the latest snapshot and appends its successor at a time.
	// Always acquired before mu, never inside it.
	writeMu sync.Mutex

	// mu guards snapshots. Readers hold it shared just long enough to
	// index the slice; writers hold it exclusively only for the append
	// itself, never for the trie construction that precedes it.
	mu        sync.RWMutex
	snapshots []trie.Trie

	cache *lookupCache

	// Operation counters, updated atomically.
	gets        int64
	puts        int64
	removes     int64
	noopRemoves int64
}

// New creates a Store holding one empty snapshot at version 0.
func New(config Config) (*Store, error) {
	cache, err := newLookupCache(config.CacheSize)
	if err != nil {
		return nil, err
	}

	return &Store{
		snapshots: []trie.Trie{trie.New()},
		cache:     cache,
	}, nil
}

// GetVersion returns the highest committed version number. Every write
// that completed before this call is reflected in the result.
func (s *Store) GetVersion() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return uint64(len(s.snapshots) - 1)
}

// Latest returns the newest committed snapshot.
func (s *Store) Latest() trie.Trie {
	snapshot, _ := s.latest()
	return snapshot
}

// SnapshotAt returns the snapshot committed at version. The second
// result is false if the version has not been committed.
func (s *Store) SnapshotAt(version uint64) (trie.Trie, bool) {
	return s.at(version)
}

// Get reads key from the latest version. The value must be of type T;
// a stored value of a different type behaves like an absent key. On
// success the returned guard pins the snapshot the value was read from.
func Get[T any](s *Store, key string) (ValueGuard[T], bool) {
	snapshot, version := s.latest()
	return lookup[T](s, snapshot, version, key)
}

// GetAt reads key from an explicit committed version. A version beyond
// the committed history behaves like an absent key.
func GetAt[T any](s *Store, key string, version uint64) (ValueGuard[T], bool) {
	snapshot, ok := s.at(version)
	if !ok {
		return ValueGuard[T]{}, false
	}
	return lookup[T](s, snapshot, version, key)
}

// Put stores value under key and returns the version it committed. The
// new trie is built outside any lock; only the append to the snapshot
// sequence is exclusive.
func (s *Store) Put(key string, value any) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	atomic.AddInt64(&s.puts, 1)

	current, _ := s.latest()
	next := current.Put(key, value)

	return s.commit(next)
}

// Remove deletes key and returns the resulting version. Removing an
// absent key commits nothing: the version number stays where it was.
func (s *Store) Remove(key string) uint64 {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	atomic.AddInt64(&s.removes, 1)

	current, version := s.latest()
	next := current.Remove(key)
	if next.Same(current) {
		atomic.AddInt64(&s.noopRemoves, 1)
		return version
	}

	return s.commit(next)
}

// Diff lists the keys whose values changed between two committed
// versions, in lexicographic order.
func (s *Store) Diff(from, to uint64) ([]trie.DiffEntry, error) {
	before, ok := s.at(from)
	if !ok {
		return nil, fmt.Errorf("version %d: %w", from, ErrVersionNotFound)
	}
	after, ok := s.at(to)
	if !ok {
		return nil, fmt.Errorf("version %d: %w", to, ErrVersionNotFound)
	}

	return trie.Diff(before, after), nil
}

// StoreStats captures operation counters and cache performance.
type StoreStats struct {
	Gets        int64
	Puts        int64
	Removes     int64
	NoopRemoves int64
	Versions    uint64
	Cache       CacheStats
}

// Stats returns a point-in-time snapshot of the store's counters.
func (s *Store) Stats() StoreStats {
	return StoreStats{
		Gets:        atomic.LoadInt64(&s.gets),
		Puts:        atomic.LoadInt64(&s.puts),
		Removes:     atomic.LoadInt64(&s.removes),
		NoopRemoves: atomic.LoadInt64(&s.noopRemoves),
		Versions:    s.GetVersion() + 1,
		Cache:       s.cache.stats(),
	}
}

// latest returns the newest snapshot and its version.
func (s *Store) latest() (trie.Trie, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	version := uint64(len(s.snapshots) - 1)
	return s.snapshots[version], version
}

// at returns the snapshot for an explicit version.
func (s *Store) at(version uint64) (trie.Trie, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if version >= uint64(len(s.snapshots)) {
		return trie.Trie{}, false
	}
	return s.snapshots[version], true
}

// commit appends a prepared snapshot and returns its version. Caller
// must hold writeMu.
func (s *Store) commit(next trie.Trie) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshots = append(s.snapshots, next)
	return uint64(len(s.snapshots) - 1)
}

// lookup resolves key against one snapshot, consulting the lookup
// cache first. Type mismatches fold into misses.
func lookup[T any](s *Store, snapshot trie.Trie, version uint64, key string) (ValueGuard[T], bool) {
	atomic.AddInt64(&s.gets, 1)

	value, ok := s.cache.get(version, key)
	if !ok {
		value, ok = snapshot.Get(key)
		if !ok {
			return ValueGuard[T]{}, false
		}
		s.cache.add(version, key, value)
	}

	typed, ok := value.(T)
	if !ok {
		return ValueGuard[T]{}, false
	}

	return ValueGuard[T]{snapshot: snapshot, version: version, value: typed}, true
}
