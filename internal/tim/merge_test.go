package tim

import (
	"testing"

	"github.com/tvanslyke/timsort-go/internal/testing/require"
)

func newTestEngine[T any]() *engine[T] {
	return &engine[T]{minGallop: initialMinGallop, trivial: bulkCopyable[T]()}
}

func TestGallopUpperBound(t *testing.T) {
	s := []int{1, 1, 2, 2, 2, 5, 9}
	require.Equal(t, 5, gallopUpperBound(s, 2, lessInt))
	require.Equal(t, 0, gallopUpperBound(s, 0, lessInt))
	require.Equal(t, len(s), gallopUpperBound(s, 100, lessInt))
}

func TestGallopLowerBound(t *testing.T) {
	s := []int{1, 1, 2, 2, 2, 5, 9}
	require.Equal(t, 2, gallopLowerBound(s, 2, lessInt))
	require.Equal(t, 0, gallopLowerBound(s, -1, lessInt))
	require.Equal(t, len(s), gallopLowerBound(s, 100, lessInt))
}

func TestGallopCountTailGreater(t *testing.T) {
	s := []int{1, 2, 3, 5, 5, 9, 9}
	require.Equal(t, 2, gallopCountTailGreater(s, 5, lessInt))  // trailing 9,9
	require.Equal(t, 0, gallopCountTailGreater(s, 100, lessInt))
	require.Equal(t, len(s), gallopCountTailGreater(s, -1, lessInt))
}

func TestGallopCountTailAtLeast(t *testing.T) {
	s := []int{1, 2, 3, 5, 5, 9, 9}
	require.Equal(t, 4, gallopCountTailAtLeast(s, 5, lessInt)) // trailing 5,5,9,9
	require.Equal(t, 0, gallopCountTailAtLeast(s, 100, lessInt))
	require.Equal(t, len(s), gallopCountTailAtLeast(s, -1, lessInt))
}

func mergeOnce(t *testing.T, left, right []int) []int {
	t.Helper()
	s := append(append([]int{}, left...), right...)
	e := newTestEngine[int]()
	e.merge(s, 0, len(left), len(s), lessInt)
	return s
}

func TestMergeForwardPath(t *testing.T) {
	// right is the larger trimmed run, so this takes mergeForward.
	got := mergeOnce(t, []int{1, 3, 11}, []int{2, 4, 6, 8, 10, 12})
	require.Equal(t, []int{1, 2, 3, 4, 6, 8, 10, 11, 12}, got)
}

func TestMergeBackwardPath(t *testing.T) {
	// left is the larger trimmed run, so this takes mergeBackward.
	got := mergeOnce(t, []int{1, 3, 5, 7, 9, 11}, []int{2, 4, 6})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 9, 11}, got)
}

func TestMergeAlreadyDisjoint(t *testing.T) {
	got := mergeOnce(t, []int{1, 2, 3}, []int{4, 5, 6})
	require.Equal(t, []int{1, 2, 3, 4, 5, 6}, got)
}

func TestMergeStability(t *testing.T) {
	type kv struct{ key, seq int }
	cmp := func(a, b kv) bool { return a.key < b.key }
	left := []kv{{1, 0}, {1, 1}, {3, 2}}
	right := []kv{{1, 3}, {2, 4}, {3, 5}}
	s := append(append([]kv{}, left...), right...)
	e := newTestEngine[kv]()
	e.merge(s, 0, len(left), len(s), cmp)

	require.True(t, IsSorted(s, cmp))
	var onesInSeqOrder []int
	for _, v := range s {
		if v.key == 1 {
			onesInSeqOrder = append(onesInSeqOrder, v.seq)
		}
	}
	require.Equal(t, []int{0, 1, 3}, onesInSeqOrder)
}

func TestMergeTriggersGallopMode(t *testing.T) {
	// left is one ascending run straddling a gap right sits entirely
	// inside; after trimming, what's left to interleave is two blocks
	// that are each entirely less than / greater than the other, which
	// forces a run of consecutive same-side wins well past the
	// min_gallop threshold (7) and into the galloping path.
	left := make([]int, 0, 60)
	for i := 0; i < 30; i++ {
		left = append(left, i)
	}
	for i := 0; i < 30; i++ {
		left = append(left, 2000+i)
	}
	right := make([]int, 30)
	for i := range right {
		right[i] = 1000 + i
	}

	got := mergeOnce(t, left, right)
	require.True(t, IsSorted(got, lessInt))
	require.Equal(t, len(left)+len(right), len(got))
}
