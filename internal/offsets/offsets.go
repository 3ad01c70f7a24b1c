// Package offsets builds the planner's offset table: the permutation that
// maps leaf-engine execution order back to input sample positions for a
// complex transform of a given power-of-two size.
//
// The construction is a direct port of okfft_elab_even/okfft_elab_odd/
// okfft_init_offsets (okfft.cpp). Those write into one flat array where
// each leaf entry occupies two adjacent slots: offs[j] is the (doubled)
// input offset, offs[j+1] is the output offset, and j is always even.
// elabOdd recursively halves/quarters a conjugate-pair subproblem down to
// leaf-sized (<=16) groups and writes those slot pairs; elabEven seeds the
// four boundary leaf entries directly and then drives elabOdd for every
// doubling up to N. Build then normalizes negative input offsets modulo
// N, stable-sorts the (in, out) pairs by input offset, and keeps only the
// doubled output-offset component, exactly as okfft_init_offsets does
// with qsort keyed on the pair's first field.
//
// internal/kernel consumes the length of this table directly: every
// terminal branch split-radix recursion bottoms out at (size<=16, sizes
// of 8 or 16 occupying one or two LeafSize-wide slots respectively) must
// sum to exactly len(Build(n)) slots, or the leaf/stage tree kernel.Build
// constructs disagrees with the planner's own size accounting and plan
// creation panics rather than silently running a mis-shaped transform.
// Indices' eight anchors feed the stage engine's output-scatter offsets
// (see kernel's scatterOffsets) the same way — four of the eight anchors
// (n/2, n/4, 3n/4, and 0) are the quarter-boundaries every stage combine
// scatters into, the other four differ from those by exactly one full
// period n and are not separately meaningful in a buffer that is not
// wraparound-replicated, which this portable implementation's working
// buffers are not.
package offsets

import "sort"

// LeafSize is the smallest subtransform the leaf engine handles directly;
// an offset table has N/LeafSize entries.
const LeafSize = 8

// Build returns the N/LeafSize-entry offset table for a complex transform
// of size n. n must be a power of two >= 4*LeafSize.
func Build(n int) []int {
	if n < 4*LeafSize || n&(n-1) != 0 {
		panic("offsets: n must be a power of two >= 4*LeafSize")
	}
	count := n / LeafSize
	flat := make([]int, 2*count) // flat[2i]=in offset*2, flat[2i+1]=out offset

	elabEven(flat, n)

	for i := 0; i < 2*count; i += 2 {
		if flat[i] < 0 {
			flat[i] += n
		}
	}

	idx := make([]int, count)
	for i := range idx {
		idx[i] = i
	}
	sort.SliceStable(idx, func(a, b int) bool {
		return flat[2*idx[a]] < flat[2*idx[b]]
	})

	out := make([]int, count)
	for i, j := range idx {
		out[i] = 2 * flat[2*j+1]
	}
	return out
}

// elabEven seeds the four boundary leaf entries and walks every doubling
// of n down to the point elabOdd can take over.
func elabEven(offs []int, n int) {
	offs[0] = 0
	offs[1] = 0
	offs[2] = n / 8
	offs[3] = 8
	offs[4] = n / 16
	offs[5] = 16
	offs[6] = -(n / 16)
	offs[7] = 24

	stride := 1
	for m := n; m > 32; m, stride = m/2, stride*2 {
		elabOdd(offs, m/4, stride, m/2, stride*4)
		elabOdd(offs, m/4, -stride, 3*(m/4), stride*4)
	}
}

// elabOdd recurses a size-n conjugate-pair subproblem (stride apart in the
// input, writing out_offs/4-indexed slot pairs in offs) down to its
// size-<=16 leaf base case.
func elabOdd(offs []int, n, inOffs, outOffs, stride int) {
	if n <= 16 {
		j := outOffs / 4
		offs[j+0] = inOffs * 2
		offs[j+1] = outOffs
		if n == 16 {
			offs[j+2] = (inOffs + stride) * 2
			offs[j+3] = outOffs + 8
		}
		return
	}
	elabOdd(offs, n/2, inOffs, outOffs, stride*2)
	elabOdd(offs, n/4, inOffs+stride, outOffs+n/2, stride*4)
	elabOdd(offs, n/4, inOffs-stride, outOffs+3*(n/4), stride*4)
}

// Indices returns the eight fixed offset anchors (p->is[0..7] in the
// original). internal/kernel reads is[2], is[4] and is[7] (n/2, n/4,
// 3n/4) as the stage engine's output-scatter offsets.
func Indices(n int) [8]int {
	n2, n4 := n/2, n/4
	return [8]int{0, n, n2, n2 * 3, n4, n4 * 5, n4 * 7, n4 * 3}
}
