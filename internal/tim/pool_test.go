package tim

import (
	"testing"

	"github.com/tvanslyke/timsort-go/internal/testing/require"
)

type poolTestElem struct{ v int }

func TestPoolDonateAndAcquireRoundTrip(t *testing.T) {
	donatePooled([]poolTestElem{{1}, {2}, {3}})
	got := acquirePooled[poolTestElem](2)
	require.True(t, got != nil)
	require.Equal(t, 2, len(got))
}

func TestPoolAcquireMissWhenTooSmall(t *testing.T) {
	donatePooled([]poolTestElem{{1}})
	got := acquirePooled[poolTestElem](1000)
	require.True(t, got == nil)
}

func TestPoolDonateKeepsLargerBuffer(t *testing.T) {
	type elem struct{ v int }
	big := make([]elem, 100)
	small := make([]elem, 2)
	donatePooled(big)
	donatePooled(small) // should not replace the larger cached buffer
	got := acquirePooled[elem](100)
	require.True(t, got != nil)
}
