package squaremap

// Insert places value into the map, overwriting the value of an existing
// key or creating a new entry. It returns an iterator at the key's
// position and whether a new entry was created.
//
// Both runs are binary-searched for the key first; a hit in exactly one
// run is a plain overwrite, a hit in both is a tombstone revival, and a
// miss in both picks between the cheap-insert and merge-then-extend
// paths based on how far the insertion point sits from the physical end
// and how thin the right run still is relative to the left.
func (m *Map[K, V]) Insert(value Entry[K, V]) (Iterator[K, V], bool) {
	key := value.Key

	leftPos, inLeft := m.searchRun(m.left(), key)
	rightRelPos, inRight := m.searchRun(m.right(), key)
	rightPos := m.split + rightRelPos

	switch {
	case inLeft && inRight:
		// Tombstone: the key is alive on the left and dead-marked on
		// the right. Revive it: drop the right occurrence, overwrite
		// the left value, and stop counting it as erased.
		m.removeAt(rightPos)
		m.erased--
		m.seq[leftPos].Value = value.Value
		return m.Find(key), false
	case inLeft:
		m.seq[leftPos].Value = value.Value
		return m.Find(key), false
	case inRight:
		m.seq[rightPos].Value = value.Value
		return m.Find(key), false
	}

	// New key, belongs at rightPos in the right run.
	moveDistance := len(m.seq) - rightPos
	rightSize := len(m.right())
	if moveDistance < m.kMinSplit || rightSize*rightSize*4 < m.split {
		m.insertAt(rightPos, value)
		return m.Find(key), true
	}

	// The right run has grown thick enough, relative to the left, that
	// inserting in place would cost more than folding it back in and
	// starting a fresh two-entry right run: the new entry followed by the
	// previous maximum, which stays last.
	m.Merge()
	tail := len(m.seq) - 1
	m.insertAt(tail, value)
	m.split = tail
	return m.Find(key), true
}
