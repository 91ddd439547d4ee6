package squaremap

import (
	"math/rand"
	"testing"

	"github.com/google/btree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// btreeIntItem adapts an int key to google/btree's pre-generics Item
// interface.
type btreeIntItem int

func (a btreeIntItem) Less(than btree.Item) bool {
	return a < than.(btreeIntItem)
}

// TestOracleAgreesWithBTree differential-tests Map against an
// independent, previously-validated ordered container (google/btree)
// through a long randomised sequence of insert/erase/lookup/merge
// operations, checking agreement on size at every step, on membership at
// every lookup step, and on full iteration order every 31 steps and at
// the end.
func TestOracleAgreesWithBTree(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	sm := New[int, int](cmpInt)
	sm.SetKMinSplit(DebugKMinSplit)
	oracle := btree.New(8)

	const keySpace = 150
	for step := 0; step < 4000; step++ {
		key := btreeIntItem(rng.Intn(keySpace))

		switch rng.Intn(5) {
		case 0, 1:
			sm.Insert(Entry[int, int]{Key: int(key), Value: int(key) * 7})
			oracle.ReplaceOrInsert(key)
		case 2:
			if it := sm.Find(int(key)); it.Valid() {
				sm.Erase(it)
			}
			oracle.Delete(key)
		case 3:
			sm.Merge()
		case 4:
			smHas := sm.Find(int(key)).Valid()
			oracleHas := oracle.Get(key) != nil
			assert.Equal(t, oracleHas, smHas, "step %d: membership mismatch for key %d", step, int(key))
		}

		require.Equal(t, oracle.Len(), sm.Size(), "step %d: size mismatch", step)

		if step%31 == 0 {
			// Compare full traversal order against the oracle at regular
			// intervals, not only once at the end: a live tombstone in
			// split state can otherwise escape detection if the final
			// state happens to land flat or tombstone-free by chance.
			smKeys := []int{}
			for it := sm.Begin(); it.Valid(); it.Next() {
				smKeys = append(smKeys, it.Key())
			}
			oracleKeys := []int{}
			oracle.Ascend(func(i btree.Item) bool {
				oracleKeys = append(oracleKeys, int(i.(btreeIntItem)))
				return true
			})
			require.Equal(t, oracleKeys, smKeys, "step %d: traversal order disagrees with the btree oracle", step)
			require.Equal(t, oracleKeys, sm.Keys(), "step %d: Keys() disagrees with the btree oracle", step)
		}
	}

	var smKeys []int
	for it := sm.Begin(); it.Valid(); it.Next() {
		smKeys = append(smKeys, it.Key())
	}

	var oracleKeys []int
	oracle.Ascend(func(i btree.Item) bool {
		oracleKeys = append(oracleKeys, int(i.(btreeIntItem)))
		return true
	})

	assert.Equal(t, oracleKeys, smKeys, "final traversal order disagrees with the btree oracle")
}
