package trie

import (
	"reflect"
	"testing"
)

// TestTrieForEach verifies lexicographic visit order and that the
// callback sees every stored pair exactly once.
func TestTrieForEach(t *testing.T) {
	tr := New().
		Put("b", 2).
		Put("a", 1).
		Put("ab", 12).
		Put("", 0).
		Put("abc", 123)

	var keys []string
	var values []any
	tr.ForEach(func(key string, value any) bool {
		keys = append(keys, key)
		values = append(values, value)
		return true
	})

	wantKeys := []string{"", "a", "ab", "abc", "b"}
	if !reflect.DeepEqual(keys, wantKeys) {
		t.Errorf("ForEach keys = %v, want %v", keys, wantKeys)
	}
	wantValues := []any{0, 1, 12, 123, 2}
	if !reflect.DeepEqual(values, wantValues) {
		t.Errorf("ForEach values = %v, want %v", values, wantValues)
	}
}

// TestTrieForEachEarlyStop verifies that returning false stops the walk.
func TestTrieForEachEarlyStop(t *testing.T) {
	tr := New().Put("a", 1).Put("b", 2).Put("c", 3)

	var visited []string
	tr.ForEach(func(key string, _ any) bool {
		visited = append(visited, key)
		return len(visited) < 2
	})

	if len(visited) != 2 {
		t.Errorf("visited %d keys, want 2", len(visited))
	}
	if visited[0] != "a" || visited[1] != "b" {
		t.Errorf("visited = %v, want [a b]", visited)
	}
}

// TestTrieForEachPrefix verifies prefix-restricted walks.
func TestTrieForEachPrefix(t *testing.T) {
	tr := New().
		Put("car", 1).
		Put("cart", 2).
		Put("cat", 3).
		Put("dog", 4).
		Put("ca", 5)

	collect := func(prefix string) []string {
		var keys []string
		tr.ForEachPrefix(prefix, func(key string, _ any) bool {
			keys = append(keys, key)
			return true
		})
		return keys
	}

	testCases := []struct {
		name   string
		prefix string
		want   []string
	}{
		{"interior prefix", "ca", []string{"ca", "car", "cart", "cat"}},
		{"full key", "cat", []string{"cat"}},
		{"empty prefix visits all", "", []string{"ca", "car", "cart", "cat", "dog"}},
		{"absent prefix", "x", nil},
		{"longer than any key", "carts", nil},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := collect(tc.prefix)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("ForEachPrefix(%q) keys = %v, want %v", tc.prefix, got, tc.want)
			}
		})
	}
}

// TestTrieKeysLen verifies Keys ordering and Len counting across
// mutations.
func TestTrieKeysLen(t *testing.T) {
	tr := New()
	if got := tr.Keys(); got != nil {
		t.Errorf("Keys on empty trie = %v, want nil", got)
	}

	tr = tr.Put("cat", 1).Put("car", 2).Put("dog", 3)
	want := []string{"car", "cat", "dog"}
	if got := tr.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys = %v, want %v", got, want)
	}
	if tr.Len() != 3 {
		t.Errorf("Len = %d, want 3", tr.Len())
	}

	tr = tr.Remove("cat")
	want = []string{"car", "dog"}
	if got := tr.Keys(); !reflect.DeepEqual(got, want) {
		t.Errorf("Keys after remove = %v, want %v", got, want)
	}
	if tr.Len() != 2 {
		t.Errorf("Len after remove = %d, want 2", tr.Len())
	}
}

// TestTrieWalkEmpty verifies that walking an empty trie visits nothing.
func TestTrieWalkEmpty(t *testing.T) {
	called := false
	New().ForEach(func(string, any) bool {
		called = true
		return true
	})
	if called {
		t.Error("ForEach on empty trie should not call fn")
	}

	New().ForEachPrefix("a", func(string, any) bool {
		called = true
		return true
	})
	if called {
		t.Error("ForEachPrefix on empty trie should not call fn")
	}
}
