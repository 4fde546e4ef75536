package graph

import (
	"github.com/klauspost/cpuid/v2"

	"github.com/arx-os/tripcore/internal/triple"
)

// laneWidth is the number of triples processed per batched-matcher
// iteration: an AVX2 YMM register holds eight packed 32-bit lanes.
const laneWidth = 8

// simdCapable reflects whether this process's CPU exposes the vector
// ISA a real intrinsics backend would target. The matcher only
// consults it to decide whether the batched path is worth attempting;
// the batched path itself is portable Go, not hand-written intrinsics,
// so a negative result just means we go straight to scalar rather than
// spend cycles on 8-wide batching that wouldn't be vectorized by the
// compiler anyway.
var simdCapable = cpuid.CPU.Supports(cpuid.AVX2)

// FindPattern fills out with up to max triple-array indices matching
// pattern, in ascending order, and returns the count written. Any of
// pattern's fields may be triple.Wildcard. It never fails; a pattern
// with no matches yields zero results. The scalar and batched paths
// are result-identical (P6); which one runs depends on g.simd and
// hardware support, with a scalar tail always finishing the job.
func (g *Graph) FindPattern(pattern triple.Pattern, out []uint32, max int) int {
	if max <= 0 || len(out) == 0 {
		return 0
	}
	if max > len(out) {
		max = len(out)
	}

	triples := g.triples
	n := len(triples)
	count := 0

	i := 0
	if g.simd && simdCapable {
		for ; i+laneWidth <= n && count < max; i += laneWidth {
			count += g.batchedMatch(triples[i:i+laneWidth], pattern, i, out[count:max])
		}
	}
	for ; i < n && count < max; i++ {
		if pattern.Matches(triples[i]) {
			out[count] = uint32(i)
			count++
		}
	}
	return count
}

// batchedMatch evaluates one laneWidth-wide block. It gathers the
// three component vectors, broadcasts the pattern, computes per-lane
// (wildcard OR equality) for each component, ANDs the three lane
// masks together, and emits absolute indices in ascending (low-bit-
// first) order — the same order a real SIMD mask-extraction loop
// would produce. Bounds are already guaranteed by the caller (exactly
// laneWidth triples).
func (g *Graph) batchedMatch(block []triple.Triple, pattern triple.Pattern, base int, out []uint32) int {
	g.simdOps.Add(1)

	var mask uint8
	for lane := 0; lane < laneWidth; lane++ {
		t := block[lane]
		sOK := pattern.Subject == triple.Wildcard || pattern.Subject == t.Subject
		pOK := pattern.Predicate == triple.Wildcard || pattern.Predicate == t.Predicate
		oOK := pattern.Object == triple.Wildcard || pattern.Object == t.Object
		if sOK && pOK && oOK {
			mask |= 1 << uint(lane)
		}
	}

	count := 0
	for lane := 0; lane < laneWidth && count < len(out); lane++ {
		if mask&(1<<uint(lane)) != 0 {
			out[count] = uint32(base + lane)
			count++
		}
	}
	return count
}
