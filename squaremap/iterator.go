package squaremap

// Iterator is squaremap's forward iterator. It fuses the map's two
// physical runs into logical key order by tracking a primary cursor c0
// (the current element) and an alternate cursor c1 (the next
// larger-keyed element in whichever run c0 is not currently in),
// skipping tombstones as it advances.
//
// Like every iterator into a Map, an Iterator is invalidated by any
// mutating operation on the Map it was obtained from; see the package
// doc's discussion of iterator invalidation.
type Iterator[K any, V any] struct {
	m      *Map[K, V]
	c0, c1 int
}

// Valid reports whether the iterator references an element, i.e. is not
// the end iterator.
func (it Iterator[K, V]) Valid() bool {
	return it.c0 < len(it.m.seq)
}

// Key returns the key at the iterator's current position. Valid must be
// true.
func (it Iterator[K, V]) Key() K {
	return it.m.seq[it.c0].Key
}

// Value returns the value at the iterator's current position. Valid must
// be true.
func (it Iterator[K, V]) Value() V {
	return it.m.seq[it.c0].Value
}

// Entry returns the (key, value) pair at the iterator's current
// position. Valid must be true.
func (it Iterator[K, V]) Entry() Entry[K, V] {
	return it.m.seq[it.c0]
}

// Equal reports whether it and other reference the same physical
// position: two iterators are equal iff their primary cursors are equal.
func (it Iterator[K, V]) Equal(other Iterator[K, V]) bool {
	return it.c0 == other.c0
}

// Less reports whether it sorts before other, for two iterators of the
// same Map. If either iterator is in end or last-element state, the
// comparison reduces to primary-position comparison; otherwise it is a
// key comparison of the two current entries.
func (it Iterator[K, V]) Less(other Iterator[K, V]) bool {
	if it.c0 == it.c1 || other.c0 == other.c1 || it.c0 >= len(it.m.seq) || other.c0 >= len(it.m.seq) {
		return it.c0 < other.c0
	}
	return it.m.cmp(it.Key(), other.Key()) < 0
}

// Next advances the iterator to the next logical key, skipping any
// tombstone pairs along the way. Calling Next past the end iterator, or
// on an iterator invalidated by an intervening mutation, is undefined
// behaviour.
//
// The primary cursor is advanced one physical step; if that step crosses
// into the run the alternate cursor was tracking, the two cursors swap;
// equal keys after a step denote a tombstone and are skipped by looping.
func (it *Iterator[K, V]) Next() {
	m := it.m
	initialKey := m.seq[it.c0].Key
	for {
		if it.c0 == it.c1 {
			it.c0++
			it.c1 = it.c0
			return
		}
		it.c0++
		if it.c0 == it.c1 {
			return
		}
		c0Key := m.seq[it.c0].Key
		c1Key := m.seq[it.c1].Key
		switch cmp := m.cmp(c0Key, c1Key); {
		case cmp < 0:
			if m.cmp(c0Key, initialKey) < 0 {
				it.c0 = it.c1
			}
			return
		case cmp > 0:
			if m.cmp(c0Key, initialKey) < 0 {
				it.c0 = it.c1
			}
			it.c0, it.c1 = it.c1, it.c0
			return
		default:
			// Equal keys: c0 landed on one copy of a tombstoned key
			// and c1 still holds the other. Both copies are dead, so
			// step c1 forward within its own run too — leaving it in
			// place would make the next crossing swap back onto the
			// very copy being skipped past. If that exhausts c1's
			// run, there is no alternate left to track; fall back to
			// single-run advancement from the current position.
			altBound := len(m.seq)
			if it.c1 < m.split {
				altBound = m.split
			}
			it.c1++
			if it.c1 == altBound {
				it.c1 = it.c0
			}
		}
	}
}

// Begin returns an iterator at the logically smallest key, or End if the
// map is empty.
func (m *Map[K, V]) Begin() Iterator[K, V] {
	if len(m.seq) == 0 {
		return m.End()
	}
	alt := m.split
	switch c := m.cmp(m.seq[alt].Key, m.seq[0].Key); {
	case c < 0:
		return Iterator[K, V]{m: m, c0: alt, c1: 0}
	case c > 0 || alt == 0:
		return Iterator[K, V]{m: m, c0: 0, c1: alt}
	}
	// Both runs start with the same key, so the smallest key is
	// tombstoned. Skip the leading tombstone pairs and start at the
	// smaller of the two remaining run heads.
	l, r := 0, alt
	for l < m.split && m.cmp(m.seq[l].Key, m.seq[r].Key) == 0 {
		l++
		r++
	}
	if l == m.split || m.cmp(m.seq[r].Key, m.seq[l].Key) < 0 {
		return m.Find(m.seq[r].Key)
	}
	return m.Find(m.seq[l].Key)
}

// End returns the sentinel end iterator.
func (m *Map[K, V]) End() Iterator[K, V] {
	n := len(m.seq)
	return Iterator[K, V]{m: m, c0: n, c1: n}
}
