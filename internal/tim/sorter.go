package tim

// engine carries all per-invocation state for one Sort call: the
// pending-run stack, the reusable scratch buffer, and the adaptive
// min_gallop threshold. It is created fresh on the stack of Sort (or
// heap-allocated by the compiler only if escape analysis forces it) and
// never shared across concurrent calls, satisfying spec §5's
// thread-safety model.
type engine[T any] struct {
	stack     runStack
	scratch   []T
	minGallop int
	trivial   bool
}

// Sort sorts s in place using cmp as the strict "less than" predicate,
// implementing the full driver in spec C7: detect/extend runs, maintain
// the three-invariant run stack, merge to restore it, and finally
// collapse to a single run.
func Sort[T any](s []T, cmp func(a, b T) bool) {
	n := len(s)
	if n < 2 {
		return
	}

	e := &engine[T]{
		minGallop: initialMinGallop,
		trivial:   bulkCopyable[T](),
	}
	defer func() {
		if cap(e.scratch) > 0 {
			donatePooled(e.scratch)
		}
	}()

	m := minrun(n, maxMinrun[T]())

	pos := emitRun(s, 0, n, m, cmp, e)
	if pos == n {
		return
	}
	pos = emitRun(s, pos, n, m, cmp, e)
	for pos < n {
		e.resolveInvariants(s, cmp)
		pos = emitRun(s, pos, n, m, cmp, e)
	}
	for e.stack.len() >= 2 {
		e.mergeTopTwo(s, cmp)
	}
}

// emitRun detects the next natural run starting at pos, extends it to
// at least minrun elements by insertion sort if the input allows, pushes
// it onto the stack, and returns the new scan position.
func emitRun[T any](s []T, pos, end, minrun int, cmp func(a, b T) bool, e *engine[T]) int {
	runEnd := nextRun(s, pos, end, cmp)
	target := pos + minrun
	if target > end {
		target = end
	}
	if runEnd < target {
		finishInsertionSort(s, pos, runEnd, target, cmp)
		runEnd = target
	}
	e.stack.push(pos, runEnd-pos)
	return runEnd
}

// resolveInvariants merges runs until the three-run stack invariants
// (I1, I1', I2 in spec §3) hold, or fewer than two runs remain.
func (e *engine[T]) resolveInvariants(s []T, cmp func(a, b T) bool) {
	for {
		n := e.stack.len()
		if n < 2 {
			return
		}
		if n >= 4 {
			w, x, y := e.stack.at(3), e.stack.at(2), e.stack.at(1)
			if w.length <= x.length+y.length {
				a, c := e.stack.at(2), e.stack.at(0)
				if a.length < c.length {
					e.mergeAB(s, cmp)
				} else {
					e.mergeBC(s, cmp)
				}
				continue
			}
		}
		if n >= 3 {
			a, b, c := e.stack.at(2), e.stack.at(1), e.stack.at(0)
			if a.length <= b.length+c.length {
				if a.length < c.length {
					e.mergeAB(s, cmp)
				} else {
					e.mergeBC(s, cmp)
				}
				continue
			}
		}
		b, c := e.stack.at(1), e.stack.at(0)
		if b.length <= c.length {
			e.mergeBC(s, cmp)
			continue
		}
		return
	}
}

// mergeBC merges the top two runs (B and C).
func (e *engine[T]) mergeBC(s []T, cmp func(a, b T) bool) {
	b, c := e.stack.at(1), e.stack.at(0)
	e.merge(s, b.base, c.base, c.base+c.length, cmp)
	e.stack.collapseBC(run{base: b.base, length: b.length + c.length})
}

// mergeAB merges the two runs below the top (A and B), leaving C alone.
func (e *engine[T]) mergeAB(s []T, cmp func(a, b T) bool) {
	a, b := e.stack.at(2), e.stack.at(1)
	e.merge(s, a.base, b.base, b.base+b.length, cmp)
	e.stack.collapseAB(run{base: a.base, length: a.length + b.length})
}

// mergeTopTwo merges whatever two runs are on top, used by the final
// collapse once all input has been consumed.
func (e *engine[T]) mergeTopTwo(s []T, cmp func(a, b T) bool) {
	e.mergeBC(s, cmp)
}

// IsSorted reports whether s is already sorted according to cmp.
func IsSorted[T any](s []T, cmp func(a, b T) bool) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i], s[i-1]) {
			return false
		}
	}
	return true
}
