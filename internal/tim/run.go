package tim

// nextRun scans forward from pos, identifying a natural run: a strictly
// descending prefix (reversed in place to become ascending) or a
// non-descending prefix, and returns the end of that run. Using a
// strict cmp to detect the descending case, rather than <=, means
// reversal keeps equal-key elements in their original relative order.
func nextRun[T any](s []T, pos, end int, cmp func(a, b T) bool) int {
	if end-pos < 2 {
		return end
	}
	i := pos + 2
	if cmp(s[pos+1], s[pos]) {
		// Strictly descending: walk while s[i] < s[i-1].
		for i < end && cmp(s[i], s[i-1]) {
			i++
		}
		reverseRange(s[pos:i])
	} else {
		// Non-descending: walk while not (s[i] < s[i-1]).
		for i < end && !cmp(s[i], s[i-1]) {
			i++
		}
	}
	return i
}

func reverseRange[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
