// Package require implements the small subset of assertion helpers the
// internal/tim test suite needs, in the same fail-fast, reflect.DeepEqual
// style as the teacher's own internal/testing/require package (only its
// _test.go files were available to copy from, so this is a
// reconstruction of that API's surface from its call sites rather than a
// verbatim port).
package require

import (
	"fmt"
	"reflect"
	"testing"
)

// Equal fails the test immediately if expected and actual aren't equal
// per reflect.DeepEqual.
func Equal(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if !reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected %#v, got %#v%s", expected, actual, formatExtra(msgAndArgs))
	}
}

// NotEqual fails the test immediately if expected and actual are equal
// per reflect.DeepEqual.
func NotEqual(t *testing.T, expected, actual any, msgAndArgs ...any) {
	t.Helper()
	if reflect.DeepEqual(expected, actual) {
		t.Fatalf("expected values to differ, both were %#v%s", actual, formatExtra(msgAndArgs))
	}
}

// True fails the test immediately if v is false.
func True(t *testing.T, v bool, msgAndArgs ...any) {
	t.Helper()
	if !v {
		t.Fatalf("expected true%s", formatExtra(msgAndArgs))
	}
}

// False fails the test immediately if v is true.
func False(t *testing.T, v bool, msgAndArgs ...any) {
	t.Helper()
	if v {
		t.Fatalf("expected false%s", formatExtra(msgAndArgs))
	}
}

// Len fails the test immediately if v's length isn't expected.
func Len(t *testing.T, v any, expected int, msgAndArgs ...any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	if rv.Len() != expected {
		t.Fatalf("expected length %d, got %d%s", expected, rv.Len(), formatExtra(msgAndArgs))
	}
}

// NoError fails the test immediately if err is non-nil.
func NoError(t *testing.T, err error, msgAndArgs ...any) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v%s", err, formatExtra(msgAndArgs))
	}
}

// Zero fails the test immediately if v isn't the zero value of its type.
func Zero(t *testing.T, v any, msgAndArgs ...any) {
	t.Helper()
	rv := reflect.ValueOf(v)
	if !rv.IsZero() {
		t.Fatalf("expected zero value, got %#v%s", v, formatExtra(msgAndArgs))
	}
}

func formatExtra(msgAndArgs []any) string {
	if len(msgAndArgs) == 0 {
		return ""
	}
	format, ok := msgAndArgs[0].(string)
	if !ok {
		return ""
	}
	return ": " + fmt.Sprintf(format, msgAndArgs[1:]...)
}
