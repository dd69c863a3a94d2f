package tim

import (
	"math"
	"math/bits"
)

// maxStackDepth bounds the number of pending runs an engine can ever
// hold. The merge invariants (resolve_invariants in sorter.go) force
// adjacent run lengths to grow at least as fast as the Fibonacci
// sequence, so the number of runs that can be pending at once before one
// must be merged is bounded by how many Fibonacci numbers fit in a
// machine word — spec C5's "B ~= word_bits / log2(phi) + 2".
var maxStackDepth = computeMaxStackDepth()

func computeMaxStackDepth() int {
	const invLog2Phi = 1.4404200904125966 // 1 / log2(golden ratio)
	return int(math.Ceil(float64(bits.UintSize)*invLog2Phi)) + 2
}

// run records one pending run as [base, base+length).
type run struct {
	base   int
	length int
}

// runStack is the fixed-capacity LIFO of pending run boundaries, the
// counterpart of spec C5's offset stack. Go has no sound way to overlay
// this with the generic scratch buffer the way the C++ original overlays
// raw bytes (T may hold pointers the GC must be able to find; aliasing
// an int array and a []T array through unsafe would make those pointers
// invisible to the collector), so the co-location spec C5 describes is
// modeled structurally instead: both live as sibling fields of the same
// engine value, which is itself stack-allocated by the Go compiler for
// any sort call it can prove doesn't escape. See DESIGN.md.
type runStack struct {
	runs  [96]run // sized comfortably above any real maxStackDepth
	depth int
}

func (s *runStack) push(base, length int) {
	if s.depth >= maxStackDepth {
		// Can't happen for any real input: resolveInvariants keeps the
		// stack depth bounded by maxStackDepth before every push. A hit
		// here means the invariant was violated upstream.
		panic("tim: run stack exceeded its provable depth bound")
	}
	s.runs[s.depth] = run{base: base, length: length}
	s.depth++
}

// at returns the run i levels below the top: at(0) is the newest run
// (spec's C), at(1) is B, at(2) is A, at(3) is W.
func (s *runStack) at(i int) run {
	return s.runs[s.depth-1-i]
}

func (s *runStack) len() int { return s.depth }

// collapseBC replaces B and C (the top two runs) with their merge,
// implementing the driver's merge_BC.
func (s *runStack) collapseBC(merged run) {
	s.runs[s.depth-2] = merged
	s.depth--
}

// collapseAB replaces A and B (the two runs below the top) with their
// merge, leaving C on top untouched, implementing the driver's merge_AB.
func (s *runStack) collapseAB(merged run) {
	s.runs[s.depth-3] = merged
	s.runs[s.depth-2] = s.runs[s.depth-1]
	s.depth--
}
