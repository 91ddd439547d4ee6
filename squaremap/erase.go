package squaremap

import "github.com/NVIDIA/squaremap/tracelog"

// Erase removes the entry it references and returns an iterator to its
// former logical successor, or End if it was the last key. it must be
// dereferenceable and must reference an entry in m; violating that
// precondition is undefined behaviour.
//
// Erase picks one of three disjoint cases depending on where it falls:
// flat, or at or after the rightmost left-run entry — both of which
// physically remove the entry — or strictly interior to the left run,
// which instead plants a tombstone in the right run rather than paying
// for a long shift of the left run.
func (m *Map[K, V]) Erase(it Iterator[K, V]) Iterator[K, V] {
	successor := it
	successor.Next()
	hasSuccessor := successor.Valid()
	var nextKey K
	if hasSuccessor {
		nextKey = successor.Key()
	}

	i := it.c0
	switch {
	case m.split == 0:
		// Single run, nothing else to account for.
		m.removeAt(i)
	case i >= m.split-1:
		// Rightmost left-run entry, or any right-run entry.
		m.removeAt(i)
		if i < m.split {
			// The left run lost its last entry; the boundary moves down.
			m.split--
		}
		if m.coalescedAfterErase(i) {
			m.split = 0
		} else if m.cmp(m.seq[len(m.seq)-1].Key, m.seq[m.split-1].Key) < 0 {
			// The right run lost its maximum and the left run now holds
			// a larger key than the physical last entry: fold the runs
			// together so the overall maximum is last again.
			m.Merge()
		}
	default:
		// Strictly interior to the left run. Tombstone it instead of
		// shifting the rest of the left run down.
		key := m.seq[i].Key
		tombPos, _ := m.searchRun(m.right(), key)
		m.insertAt(m.split+tombPos, Entry[K, V]{Key: key})
		m.erased++
		tracelog.Tracef("squaremap", "tombstone created key=%v erased=%d", key, m.erased)
	}

	if !hasSuccessor {
		return m.End()
	}
	return m.Find(nextKey)
}

// coalescedAfterErase reports whether, after physically removing an
// entry at the former physical index pastIdx, the two runs have become
// one sorted sequence and m.split should drop to zero: the left run was
// fully consumed, the right run was fully consumed, or the element now
// sitting at the split boundary already sorts after its new
// predecessor.
func (m *Map[K, V]) coalescedAfterErase(pastIdx int) bool {
	if pastIdx == 0 {
		return true
	}
	if pastIdx == len(m.seq) && m.split == len(m.seq) {
		return true
	}
	if pastIdx == m.split && pastIdx < len(m.seq) &&
		m.cmp(m.seq[pastIdx-1].Key, m.seq[pastIdx].Key) < 0 {
		return true
	}
	return false
}
