// Package timsort implements a generic, stable, in-place sort over
// random-access slices: a Go port of the adaptive merge sort popularized
// by CPython and the JDK, including the stack-invariant bugfix CPython
// shipped after the original algorithm was found to violate its own
// balance guarantee on certain inputs.
//
// The sort is a drop-in, faster-on-partially-ordered-data alternative to
// sort.Stable / slices.SortStableFunc: it detects and reuses existing
// ascending or descending runs, merges adjacent runs with a galloping
// strategy that adapts to how one-sided each merge turns out to be, and
// falls back to plain binary insertion sort for small inputs.
package timsort

import "github.com/tvanslyke/timsort-go/internal/tim"

// Ordered is any type supporting the standard < operator.
type Ordered interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64 | ~string
}

// Sort sorts s in ascending order using the < operator. The sort is
// stable: equal elements keep their relative order.
func Sort[T Ordered](s []T) {
	tim.Sort(s, func(a, b T) bool { return a < b })
}

// SortFunc sorts s in place using cmp as the "strictly less than"
// predicate. cmp must implement a strict weak ordering; passing one that
// doesn't produces unspecified (but not unsafe) output. The sort is
// stable.
func SortFunc[T any](s []T, cmp func(a, b T) bool) {
	tim.Sort(s, cmp)
}

// IsSorted reports whether s is sorted in ascending order according to
// the < operator.
func IsSorted[T Ordered](s []T) bool {
	return tim.IsSorted(s, func(a, b T) bool { return a < b })
}

// IsSortedFunc reports whether s is sorted according to cmp.
func IsSortedFunc[T any](s []T, cmp func(a, b T) bool) bool {
	return tim.IsSorted(s, cmp)
}
