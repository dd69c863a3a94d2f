package tim

import (
	"testing"

	"github.com/tvanslyke/timsort-go/internal/testing/require"
)

type trivialStruct struct {
	a int
	b [4]byte
}

type withPointer struct {
	a int
	p *int
}

type withString struct {
	s string
}

type withSlice struct {
	s []int
}

func TestBulkCopyable(t *testing.T) {
	require.True(t, bulkCopyable[int]())
	require.True(t, bulkCopyable[trivialStruct]())
	require.True(t, bulkCopyable[[8]int]())
	require.False(t, bulkCopyable[withPointer]())
	require.False(t, bulkCopyable[withString]())
	require.False(t, bulkCopyable[withSlice]())
	require.False(t, bulkCopyable[any]())
	require.False(t, bulkCopyable[func()]())
}
