package tim

// gallopWin is GALLOP_WIN from spec 4.6: a gallop cycle that moves fewer
// than this many elements counts as a loss and pushes min_gallop back up.
const gallopWin = 7

// initialMinGallop is min_gallop's starting value.
const initialMinGallop = 7

// gallopUpperBound returns the smallest index b in [0, len(s)] such that
// cmp(pivot, s[b]) holds (equivalently: s[0:b] are all <= pivot). It
// probes exponentially from the front of s before binary-searching the
// bracket, so it costs O(log b) rather than O(log len(s)) when the
// answer lies near the front.
func gallopUpperBound[T any](s []T, pivot T, cmp func(a, b T) bool) int {
	n := len(s)
	if n == 0 || cmp(pivot, s[0]) {
		return 0
	}
	bound := 1
	for bound < n && !cmp(pivot, s[bound]) {
		bound *= 2
	}
	lo, hi := bound/2, bound
	if hi > n {
		hi = n
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(pivot, s[mid]) {
			hi = mid
		} else {
			lo = mid + 1
		}
	}
	return lo
}

// gallopLowerBound returns the smallest index b in [0, len(s)] such that
// !cmp(s[b], pivot) holds (equivalently: s[0:b] are all strictly less
// than pivot). Same probing shape as gallopUpperBound.
func gallopLowerBound[T any](s []T, pivot T, cmp func(a, b T) bool) int {
	n := len(s)
	if n == 0 || !cmp(s[0], pivot) {
		return 0
	}
	bound := 1
	for bound < n && cmp(s[bound], pivot) {
		bound *= 2
	}
	lo, hi := bound/2, bound
	if hi > n {
		hi = n
	}
	for lo < hi {
		mid := lo + (hi-lo)/2
		if cmp(s[mid], pivot) {
			lo = mid + 1
		} else {
			hi = mid
		}
	}
	return lo
}

// gallopCountTailGreater returns how many trailing elements of s are
// strictly greater than pivot, probing exponentially from the end of s
// — the mirror of gallopUpperBound, used when a merge runs backward and
// the boundary of interest sits near the tail instead of the head.
func gallopCountTailGreater[T any](s []T, pivot T, cmp func(a, b T) bool) int {
	n := len(s)
	if n == 0 || !cmp(pivot, s[n-1]) {
		return 0
	}
	count := 1
	for count < n && cmp(pivot, s[n-1-count]) {
		count *= 2
	}
	if count > n {
		count = n
	}
	lo, hi := count/2, count
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if cmp(pivot, s[n-1-mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// gallopCountTailAtLeast returns how many trailing elements of s are
// greater than or equal to pivot, probed from the end — the mirror of
// gallopLowerBound.
func gallopCountTailAtLeast[T any](s []T, pivot T, cmp func(a, b T) bool) int {
	n := len(s)
	if n == 0 || cmp(s[n-1], pivot) {
		return 0
	}
	count := 1
	for count < n && !cmp(s[n-1-count], pivot) {
		count *= 2
	}
	if count > n {
		count = n
	}
	lo, hi := count/2, count
	for lo+1 < hi {
		mid := lo + (hi-lo)/2
		if !cmp(s[n-1-mid], pivot) {
			lo = mid
		} else {
			hi = mid
		}
	}
	return hi
}

// merge combines the two adjacent sorted runs s[lo:mid) and s[mid:hi)
// in place, implementing spec C6 end to end: trim, pick a direction and
// scratch side, then interleave with adaptive galloping.
func (e *engine[T]) merge(s []T, lo, mid, hi int, cmp func(a, b T) bool) {
	// Step 1: trim. Elements already in final position on either edge
	// don't need to move at all.
	left, right := s[lo:mid], s[mid:hi]
	skip := gallopUpperBound(left, right[0], cmp)
	lo += skip
	left = left[skip:]
	if len(left) == 0 {
		return
	}
	keep := gallopLowerBound(right, left[len(left)-1], cmp)
	right = right[:keep]
	if len(right) == 0 {
		return
	}
	mid = lo + len(left)
	hi = mid + len(right)

	// Step 2/3: copy the smaller side into scratch, merge the rest in
	// whichever direction keeps the copy small.
	if len(right) > len(left) {
		e.mergeForward(s, lo, mid, hi, cmp)
	} else {
		e.mergeBackward(s, lo, mid, hi, cmp)
	}
}

// acquireScratch returns a slice of length n for scratch use, reusing
// the engine's own retained buffer (which may in turn have started life
// as a donated buffer from the process-wide cache in pool.go) whenever
// it's already large enough.
func (e *engine[T]) acquireScratch(n int) []T {
	if cap(e.scratch) < n {
		if pooled := acquirePooled[T](n); pooled != nil {
			e.scratch = pooled
		} else {
			e.scratch = make([]T, n)
		}
	}
	return e.scratch[:n]
}

// mergeForward copies the left run into scratch and merges left-to-
// right, writing through s starting at lo. Used when the right run is
// the larger of the two trimmed runs.
func (e *engine[T]) mergeForward(s []T, lo, mid, hi int, cmp func(a, b T) bool) {
	leftLen := mid - lo
	rightLen := hi - mid
	scratch := e.acquireScratch(leftLen)
	relocate(scratch, s[lo:mid])

	i, j, k := 0, 0, lo
	minGallop := e.minGallop
	for i < leftLen && j < rightLen {
		leftRun, rightRun := 0, 0
		for i < leftLen && j < rightLen {
			if cmp(s[mid+j], scratch[i]) {
				s[k] = s[mid+j]
				k++
				j++
				rightRun++
				leftRun = 0
			} else {
				s[k] = scratch[i]
				k++
				i++
				leftRun++
				rightRun = 0
			}
			if leftRun >= minGallop || rightRun >= minGallop {
				break
			}
		}
		if i >= leftLen || j >= rightLen {
			break
		}
		for i < leftLen && j < rightLen {
			la := gallopUpperBound(scratch[i:leftLen], s[mid+j], cmp)
			if la > 0 {
				k += relocate(s[k:k+la], scratch[i:i+la])
				i += la
			}
			if i >= leftLen || j >= rightLen {
				break
			}
			ra := gallopLowerBound(s[mid+j:hi], scratch[i], cmp)
			if ra > 0 {
				k += relocate(s[k:k+ra], s[mid+j:mid+j+ra])
				j += ra
			}
			if la < gallopWin && ra < gallopWin {
				minGallop++
				break
			}
			minGallop--
			if minGallop < 1 {
				minGallop = 1
			}
		}
	}
	if i < leftLen {
		relocate(s[k:hi], scratch[i:leftLen])
	}
	// If instead j < rightLen, the remainder is already in place: it
	// occupies s[mid+j:hi], which is exactly s[k:hi] at this point.
	clearTail(scratch[:leftLen], e.trivial)
	e.minGallop = minGallop
}

// mergeBackward copies the right run into scratch and merges right-to-
// left, writing through s ending at hi. Used when the left run is the
// larger of the two trimmed runs. Ties prefer the right-run element so
// that, read left to right, equal elements from the left run still
// precede equal elements from the right run — the same stability
// contract as mergeForward, applied from the other end.
func (e *engine[T]) mergeBackward(s []T, lo, mid, hi int, cmp func(a, b T) bool) {
	rightLen := hi - mid
	scratch := e.acquireScratch(rightLen)
	relocate(scratch, s[mid:hi])

	i, j, k := mid-1, rightLen-1, hi-1
	minGallop := e.minGallop
	for i >= lo && j >= 0 {
		leftRun, rightRun := 0, 0
		for i >= lo && j >= 0 {
			if cmp(scratch[j], s[i]) {
				s[k] = s[i]
				k--
				i--
				leftRun++
				rightRun = 0
			} else {
				s[k] = scratch[j]
				k--
				j--
				rightRun++
				leftRun = 0
			}
			if leftRun >= minGallop || rightRun >= minGallop {
				break
			}
		}
		if i < lo || j < 0 {
			break
		}
		for i >= lo && j >= 0 {
			la := gallopCountTailGreater(s[lo:i+1], scratch[j], cmp)
			if la > 0 {
				relocate(s[k-la+1:k+1], s[i-la+1:i+1])
				k -= la
				i -= la
			}
			if i < lo || j < 0 {
				break
			}
			ra := gallopCountTailAtLeast(scratch[:j+1], s[i], cmp)
			if ra > 0 {
				relocate(s[k-ra+1:k+1], scratch[j-ra+1:j+1])
				k -= ra
				j -= ra
			}
			if la < gallopWin && ra < gallopWin {
				minGallop++
				break
			}
			minGallop--
			if minGallop < 1 {
				minGallop = 1
			}
		}
	}
	if j >= 0 {
		relocate(s[lo:k+1], scratch[:j+1])
	}
	// If instead i >= lo, the remainder is already in place at s[lo:k+1].
	clearTail(scratch[:rightLen], e.trivial)
	e.minGallop = minGallop
}
