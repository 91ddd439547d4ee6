package squaremap

import "github.com/NVIDIA/squaremap/sqerr"

// Find returns an iterator at key, or End if key is not present: both
// runs are binary-searched, and a key found in exactly one run yields a
// hit; found in both (tombstoned) or neither yields End.
func (m *Map[K, V]) Find(key K) Iterator[K, V] {
	if m.split == 0 {
		pos, found := m.searchRun(m.seq, key)
		if !found {
			return m.End()
		}
		return Iterator[K, V]{m: m, c0: pos, c1: len(m.seq) - 1}
	}

	leftPos, inLeft := m.searchRun(m.left(), key)
	rightRelPos, inRight := m.searchRun(m.right(), key)
	rightPos := m.split + rightRelPos

	if inLeft == inRight {
		return m.End()
	}
	if inLeft {
		return Iterator[K, V]{m: m, c0: leftPos, c1: rightPos}
	}
	if leftPos != m.split {
		return Iterator[K, V]{m: m, c0: rightPos, c1: leftPos}
	}
	return Iterator[K, V]{m: m, c0: rightPos, c1: len(m.seq) - 1}
}

// Count returns 1 if key is present, 0 otherwise. Keys are unique, so
// this is a cheaper spelling of "Find(key) is valid" for callers who
// don't need the iterator.
func (m *Map[K, V]) Count(key K) int {
	if m.Find(key).Valid() {
		return 1
	}
	return 0
}

// At returns the value stored for key, or a sqerr-wrapped KeyAbsent error
// if key is not present.
func (m *Map[K, V]) At(key K) (V, error) {
	it := m.Find(key)
	if !it.Valid() {
		var zero V
		return zero, sqerr.NewKeyAbsent(key)
	}
	return it.Value(), nil
}

// Index returns a pointer to the value stored for key, inserting a
// default-valued entry first if key is absent: it never fails on an
// absent key, it inserts one. The returned pointer is invalidated by any
// subsequent mutation of m, same as any other reference into the
// backing sequence.
func (m *Map[K, V]) Index(key K) *V {
	it, _ := m.Insert(Entry[K, V]{Key: key})
	return &m.seq[it.c0].Value
}

// SplitPoint returns an iterator at the first right-run logical key, or
// End if the map is flat. The right run's own first entry may itself be
// tombstoned, in which case it is skipped in favor of the next entry
// that's actually live — the rightmost physical entry is never a
// tombstone, so this always finds one in a non-flat map. It exists
// mainly so tests can observe the physical layout without reaching into
// package internals.
func (m *Map[K, V]) SplitPoint() Iterator[K, V] {
	if m.split == 0 || len(m.seq) == 0 {
		return m.End()
	}
	left := m.left()
	for i := m.split; i < len(m.seq); i++ {
		key := m.seq[i].Key
		if _, inLeft := m.searchRun(left, key); !inLeft {
			return m.Find(key)
		}
	}
	return m.End()
}
