package squaremap

// removeDuplicatePairs compacts the sorted, flat run run (which must be
// m.seq in its entirety at call time) by deleting every element that
// participates in a run of two-or-more equal-key neighbours. It returns
// the new logical end: survivors occupy run[:end], and run[end:] is left
// in a valid but unspecified state for the caller to truncate.
//
// It runs a fast prefix scan for the common case of few or no
// tombstones, followed by a compaction phase that alternates "skip a
// maximal run of equivalents" with "slide the next unique run down to
// the write cursor".
func (m *Map[K, V]) removeDuplicatePairs(run []Entry[K, V]) int {
	n := len(run)
	if n == 0 {
		return n
	}

	first := 0
	for first+1 != n && m.cmp(run[first].Key, run[first+1].Key) < 0 {
		first++
	}
	if first+1 == n {
		return n
	}

	write := first
	for first+1 != n {
		// Skip the maximal run of consecutive equivalents starting at
		// first (there are at least two: first and first+1).
		first++
		for first+1 != n && m.cmp(run[first].Key, run[first+1].Key) == 0 {
			first++
		}
		first++
		if first == n {
			break
		}
		// Slide the following run of unique elements down to write.
		for first+1 != n && m.cmp(run[first].Key, run[first+1].Key) < 0 {
			run[write] = run[first]
			write++
			first++
		}
	}
	if first != n {
		run[write] = run[first]
		write++
	}
	return write
}
