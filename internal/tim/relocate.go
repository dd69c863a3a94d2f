package tim

// relocate moves len(src) elements from src into dst (which must be at
// least as long); like memmove, it is correct when src and dst overlap
// in either direction. It is spec C2's move/copy primitive:
// Go's builtin copy already lowers to a bulk memmove regardless of
// whether T holds pointers, inserting write barriers exactly where
// required, so there is nothing for us to special-case here — the
// classifier's real payoff shows up in clearTail below. Both
// mergeForward and mergeBackward keep scratch in the run's original
// element order (see merge.go), so no reversed variant is needed: the
// "reverse handle" half of C2 is absorbed by mergeBackward walking its
// indices back to front rather than by a separate reversed-copy path.
func relocate[T any](dst, src []T) int {
	return copy(dst, src)
}

// clearTail zeroes s so that any pointers it holds are released to the
// garbage collector. A merge copies one run into the engine's scratch
// buffer, and once the merge is done that scratch still holds duplicate
// references to values that are now logically owned by s; for a
// pointer-free T this is a no-op (there is nothing to release), mirroring
// spec C2's "for trivial V, a no-op" destruction contract.
func clearTail[T any](s []T, trivial bool) {
	if trivial || len(s) == 0 {
		return
	}
	var zero T
	for i := range s {
		s[i] = zero
	}
}
