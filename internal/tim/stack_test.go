package tim

import (
	"testing"

	"github.com/tvanslyke/timsort-go/internal/testing/require"
)

func TestRunStackPushAndAt(t *testing.T) {
	var s runStack
	s.push(0, 10)
	s.push(10, 5)
	s.push(15, 20)
	require.Equal(t, 3, s.len())
	require.Equal(t, run{15, 20}, s.at(0))
	require.Equal(t, run{10, 5}, s.at(1))
	require.Equal(t, run{0, 10}, s.at(2))
}

func TestRunStackCollapseBC(t *testing.T) {
	var s runStack
	s.push(0, 10)
	s.push(10, 5)
	s.push(15, 20)
	s.collapseBC(run{10, 25})
	require.Equal(t, 2, s.len())
	require.Equal(t, run{10, 25}, s.at(0))
	require.Equal(t, run{0, 10}, s.at(1))
}

func TestRunStackCollapseAB(t *testing.T) {
	var s runStack
	s.push(0, 10)
	s.push(10, 5)
	s.push(15, 20)
	s.collapseAB(run{0, 15})
	require.Equal(t, 2, s.len())
	require.Equal(t, run{15, 20}, s.at(0))
	require.Equal(t, run{0, 15}, s.at(1))
}

func TestMaxStackDepthIsPositiveAndBoundedByArray(t *testing.T) {
	require.True(t, maxStackDepth > 0)
	require.True(t, maxStackDepth < 96)
}
