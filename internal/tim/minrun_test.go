package tim

import (
	"testing"

	"github.com/tvanslyke/timsort-go/internal/testing/require"
)

func TestMaxMinrun(t *testing.T) {
	require.Equal(t, 64, maxMinrun[uint8]())
	require.Equal(t, 64, maxMinrun[int32]())
	require.Equal(t, 32, maxMinrun[[8]int64]())
	require.Equal(t, 16, maxMinrun[[16]int64]())
}

func TestMinrun(t *testing.T) {
	tests := []struct {
		n, m, want int
	}{
		{0, 64, 0},
		{10, 64, 10},
		{63, 64, 63},
		{64, 64, 32},
		{100, 64, 50},
		{1000, 64, 63},
		{2000, 64, 63},
	}
	for _, tt := range tests {
		got := minrun(tt.n, tt.m)
		require.Equal(t, tt.want, got, "minrun(%d, %d)", tt.n, tt.m)
		if tt.n >= tt.m {
			require.True(t, got >= tt.m/2 && got <= tt.m)
		}
	}
}

func TestMinrunPowerOfTwoBalance(t *testing.T) {
	// For large n, ceil(n/minrun) should be a power of two or just under
	// one, which is the entire point of the bit trick.
	for n := 64; n < 100000; n += 997 {
		mr := minrun(n, 64)
		if mr == 0 {
			continue
		}
		runs := (n + mr - 1) / mr
		pow := 1
		for pow < runs {
			pow *= 2
		}
		require.True(t, pow-runs <= pow/32, "runs not near a power of two for n=%d: minrun=%d runs=%d", n, mr, runs)
	}
}

func TestFinishInsertionSortStable(t *testing.T) {
	type kv struct {
		key, seq int
	}
	s := []kv{{1, 0}, {3, 1}, {0, 2}, {1, 3}, {2, 4}, {1, 5}}
	cmp := func(a, b kv) bool { return a.key < b.key }
	finishInsertionSort(s, 0, 1, len(s), cmp)

	for i := 1; i < len(s); i++ {
		require.True(t, !cmp(s[i], s[i-1]), "not sorted at %d", i)
	}
	var ones []int
	for _, e := range s {
		if e.key == 1 {
			ones = append(ones, e.seq)
		}
	}
	require.Equal(t, []int{0, 3, 5}, ones, "equal keys should keep input order")
}

func TestFinishInsertionSortBeyondLinearThreshold(t *testing.T) {
	// Force the binary-insertion path: maxMinrun[int]()/4 == 16, so use
	// more than 16 already-sorted elements before the unsorted tail.
	n := 40
	s := make([]int, n)
	for i := range s {
		s[i] = i
	}
	s[n-1] = -1 // single out-of-place element at the very end
	cmp := func(a, b int) bool { return a < b }
	finishInsertionSort(s, 0, n-1, n, cmp)
	require.True(t, IsSorted(s, cmp))
	require.Equal(t, -1, s[0])
}
