package squaremap

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/NVIDIA/squaremap/internal/opstats"
)

// instrumentedCompare wraps cmpInt with an opstats.Counter, giving the
// complexity tests below a key comparator whose call count is the
// comparison tally they check against a logarithmic bound.
// Comparison-counting instrumentation is deliberately kept out of the
// container itself and lives entirely in the test, wired through
// opstats.
func instrumentedCompare(counter *opstats.Counter) CompareFunc[int] {
	return func(a, b int) int {
		counter.Increment()
		return a - b
	}
}

// TestComplexityInsertionIsNearLogarithmicPerElement checks that, for n
// insertions of random keys, total comparisons scale like n*log2(n), not
// like n^2 (the cost of a plain sorted-vector map with no split run) or
// worse. The bound is generous on purpose — this is a statistical
// property, not an exact one, and the test is written to be confident of
// passing rather than to pin down a tight constant.
func TestComplexityInsertionIsNearLogarithmicPerElement(t *testing.T) {
	const n = 20000
	counter := &opstats.Counter{}
	sm := New[int, int](instrumentedCompare(counter))

	rng := rand.New(rand.NewSource(42))
	for i := 0; i < n; i++ {
		sm.Insert(Entry[int, int]{Key: rng.Intn(4 * n), Value: i})
	}

	total := counter.TotalGet()
	bound := uint64(40 * float64(n) * math.Log2(float64(n)))
	assert.Less(t, total, bound,
		"insertion comparisons %d exceed generous n*log2(n) bound %d", total, bound)
}

// TestComplexityLookupIsLogarithmic checks that, for n random successful
// lookups on an n-element map, total comparisons scale like n*log2(n).
func TestComplexityLookupIsLogarithmic(t *testing.T) {
	const n = 20000
	build := &opstats.Counter{}
	sm := New[int, int](instrumentedCompare(build))

	keys := make([]int, n)
	for i := range keys {
		keys[i] = i * 2 // strictly increasing, distinct keys
		sm.Insert(Entry[int, int]{Key: keys[i], Value: i})
	}

	sm.Merge() // ensure the extracted sequence is flat and fully sorted

	lookups := &opstats.Counter{}
	sm2 := New[int, int](instrumentedCompare(lookups))
	sm2.Replace(sm.Extract())

	rng := rand.New(rand.NewSource(43))
	for i := 0; i < n; i++ {
		k := keys[rng.Intn(n)]
		it := sm2.Find(k)
		if !it.Valid() {
			t.Fatalf("lookup for known key %d failed", k)
		}
	}

	total := lookups.TotalGet()
	bound := uint64(40 * float64(n) * math.Log2(float64(n)))
	assert.Less(t, total, bound,
		"lookup comparisons %d exceed generous n*log2(n) bound %d", total, bound)
}
