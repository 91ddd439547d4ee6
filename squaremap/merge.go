package squaremap

import "github.com/NVIDIA/squaremap/tracelog"

// Merge forces the map into flat state. If the map is already flat, Merge
// is a no-op. Otherwise it stably merges the right run into the left run,
// then — if the merge exposed any tombstones — compacts them away with the
// duplicate-pair remover and resets the erased counter.
//
// Merge invalidates all iterators.
func (m *Map[K, V]) Merge() {
	if m.split == 0 {
		return
	}
	tracelog.Tracef("squaremap", "merge triggered at split=%d len=%d erased=%d", m.split, len(m.seq), m.erased)
	m.stableMergeWithBinarySearch(0, m.split, len(m.seq))
	m.split = 0
	if m.erased == 0 {
		return
	}
	newEnd := m.removeDuplicatePairs(m.seq)
	m.seq = m.seq[:newEnd]
	m.erased = 0
}

// stableMergeWithBinarySearch merges the two adjacent sorted runs
// [first,middle) and [middle,last) of m.seq in place, stably, using a
// binary (upper-bound) search to locate each right-run element's
// destination in the unprocessed left-run prefix.
//
// The right run is copied into a scratch buffer, then repeatedly the
// buffer's largest remaining element is spliced in just before the
// current merge tail, narrowing the left-run search window each time.
// Optimised for |right| << |left|: O(|right|*log|left|) comparisons,
// O(|left|+|right|) moves, O(|right|) extra memory.
func (m *Map[K, V]) stableMergeWithBinarySearch(first, middle, last int) {
	bufLen := last - middle
	if bufLen == 0 {
		return
	}
	buffer := make([]Entry[K, V], bufLen)
	copy(buffer, m.seq[middle:last])
	tracelog.Tracef("squaremap", "merge auxiliary buffer allocated len=%d", bufLen)

	for i := bufLen - 1; i >= 0; i-- {
		v := buffer[i]
		// Upper-bound search: the first position after which v may be
		// inserted while keeping left-run duplicates of v's key ahead
		// of it. This is what makes the merge stable.
		pos := first + m.upperBound(m.seq[first:middle], v.Key)
		segLen := middle - pos
		destStart := last - segLen
		copy(m.seq[destStart:last], m.seq[pos:middle])
		middle = pos
		last = destStart - 1
		m.seq[last] = v
	}
}
