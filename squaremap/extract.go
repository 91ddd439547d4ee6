package squaremap

import (
	"cmp"
	"fmt"
	"io"

	"github.com/NVIDIA/squaremap/tracelog"
)

// NewOrdered constructs an empty Map over a key type with a natural
// ordering, using cmp.Compare as the comparator. It is a convenience
// wrapper around New for the common case of an orderable key.
func NewOrdered[K cmp.Ordered, V any]() *Map[K, V] {
	return New[K, V](cmp.Compare[K])
}

// NewFromSorted adopts entries as the flat backing sequence of a new
// Map in O(n), bypassing the O(n*sqrt(n)) cost of n repeated Insert
// calls. entries must already be strictly sorted by cmp and free of
// duplicate keys. When tracelog is enabled this is checked and a
// violation panics immediately rather than corrupting every subsequent
// lookup; with tracing off (the default) the check is skipped, so the
// cost of this constructor stays O(n) in production.
func NewFromSorted[K any, V any](cmp CompareFunc[K], entries []Entry[K, V]) *Map[K, V] {
	if tracelog.Enabled() {
		for i := 1; i < len(entries); i++ {
			if cmp(entries[i-1].Key, entries[i].Key) >= 0 {
				panic(fmt.Sprintf("squaremap: NewFromSorted received unsorted or duplicate keys at index %d", i))
			}
		}
	}
	m := New[K, V](cmp)
	m.seq = entries
	return m
}

// Extract consumes m, returning its backing sequence and leaving m empty
// and flat. Tombstoned keys are NOT filtered out: they remain present as
// duplicate keys in the returned slice, because that is the only
// representation that preserves the full state of the map (including
// which keys were tombstoned) without an auxiliary side channel. See
// DESIGN.md for the reasoning behind this choice.
func (m *Map[K, V]) Extract() []Entry[K, V] {
	out := m.seq
	m.seq = nil
	m.split = 0
	m.erased = 0
	return out
}

// Replace adopts seq as m's backing sequence in flat state, discarding
// m's previous contents. The erased counter is reset to zero; the
// caller is responsible for seq being sorted, free of duplicate keys,
// and consistent with that claim.
func (m *Map[K, V]) Replace(seq []Entry[K, V]) {
	m.seq = seq
	m.split = 0
	m.erased = 0
}

// ReplaceSplit adopts seq as m's backing sequence, with splitIndex as
// the new split index, expressed as an index rather than a
// position-within-sequence since Go slices don't carry their own
// iterators. splitIndex == len(seq) is normalised to 0 (flat). The
// erased counter is reset to zero; an invalid splitIndex (one that
// doesn't leave both runs sorted and correctly ordered relative to one
// another) leaves m in an undefined state.
func (m *Map[K, V]) ReplaceSplit(seq []Entry[K, V], splitIndex int) {
	m.seq = seq
	if splitIndex == len(seq) {
		splitIndex = 0
	}
	m.split = splitIndex
	m.erased = 0
}

// Keys returns every key in K in ascending order, via a full traversal
// of the merging iterator.
func (m *Map[K, V]) Keys() []K {
	out := make([]K, 0, m.Size())
	for it := m.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Key())
	}
	return out
}

// Values returns every value in ascending key order, via a full
// traversal of the merging iterator.
func (m *Map[K, V]) Values() []V {
	out := make([]V, 0, m.Size())
	for it := m.Begin(); it.Valid(); it.Next() {
		out = append(out, it.Value())
	}
	return out
}

// Range visits every (key, value) pair in ascending key order, stopping
// early if visit returns false. It is the callback-shaped egress path
// for callers who want a single pass without holding an Iterator.
func (m *Map[K, V]) Range(visit func(key K, value V) bool) {
	for it := m.Begin(); it.Valid(); it.Next() {
		if !visit(it.Key(), it.Value()) {
			return
		}
	}
}

// Dump writes a human-readable rendering of m's physical layout to w —
// split index, run contents, and tombstone count — for debugging. It has
// no effect on any other operation; it exists purely as a diagnostic
// aid alongside the container's core operations.
func (m *Map[K, V]) Dump(w io.Writer) {
	if m.split == 0 {
		fmt.Fprintf(w, "squaremap: flat, %d entries, %d erased\n", len(m.seq), m.erased)
		for i, e := range m.seq {
			fmt.Fprintf(w, "  [%d] %v -> %v\n", i, e.Key, e.Value)
		}
		return
	}
	fmt.Fprintf(w, "squaremap: split at %d, %d entries, %d erased\n", m.split, len(m.seq), m.erased)
	fmt.Fprintf(w, " left:\n")
	for i, e := range m.left() {
		fmt.Fprintf(w, "  [%d] %v -> %v\n", i, e.Key, e.Value)
	}
	fmt.Fprintf(w, " right:\n")
	for i, e := range m.right() {
		fmt.Fprintf(w, "  [%d] %v -> %v\n", m.split+i, e.Key, e.Value)
	}
}
