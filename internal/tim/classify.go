package tim

import "reflect"

// bulkCopyable reports whether values of type T may be relocated with a
// plain memmove-style bulk copy instead of one move per element: true
// when T (recursively, through arrays and structs) holds no pointers,
// interfaces, slices, maps, channels, funcs or strings.
//
// Go's own runtime already lowers the builtin copy() to memmove
// regardless of this, inserting write barriers when T contains
// pointers, so relocate itself needs no separate bulk-copy path. What
// this decision buys us is knowing whether a vacated scratch tail still
// holds live references the garbage collector needs to see cleared
// (clearTail in relocate.go) or whether, for a pointer-free T, that pass
// is a no-op worth skipping.
func bulkCopyable[T any]() bool {
	var zero T
	return typeIsTriviallyCopyable(reflect.TypeOf(&zero).Elem())
}

func typeIsTriviallyCopyable(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Slice, reflect.Map,
		reflect.Chan, reflect.Func, reflect.String, reflect.UnsafePointer:
		return false
	case reflect.Array:
		return typeIsTriviallyCopyable(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !typeIsTriviallyCopyable(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// bool and all numeric kinds.
		return true
	}
}
