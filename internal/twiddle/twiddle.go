// Package twiddle builds the root-of-unity data the planner attaches to
// a Plan: a flat, per-k lookup table (Generate/At, the okfft_generate_
// twiddle_table recurrence) and, on top of it, the stage-packed layout
// (Pack) the stage engine actually walks during Execute — every stage's
// (w1, w3) pairs concatenated in ascending stage-size order, with Is[i]
// giving the start offset of stage i's run within WS, so "ws +
// ws_is[k]*2" lands on the first twiddle record for a size-(32<<k)
// stage. A real AVX/SSE build additionally interleaves WS into 32-byte
// (four real, four imaginary) or 16-byte (two real, two imaginary)
// records; Pack keeps the portable complex64 pair-per-k layout instead,
// since the lane-width-specific interleave isn't independently checkable
// without a build.
//
// The per-k generator follows okfft_generate_twiddle_table (okfft.cpp):
// rather than calling sin/cos per entry, it walks a half-secant
// recurrence seeded from log2(size)+1 "octave" angles and derives every
// other table entry from one of those octaves by doubling-formula
// addition. The original C seeds the octaves from two hardcoded hex
// constant pools purely so every supported compiler produces
// bit-identical output; that bit-reproducibility is not a goal here; so
// the octaves below are seeded directly with math.Sincos, and the
// recurrence itself is carried exactly because it is the shared
// arithmetic structure between plans of every size rather than nine ad
// hoc tables.
package twiddle

import "math"

// Entry is a single root of unity, stored as (cos, -sin) so Table[k]
// equals exp(-i*pi*k/size) directly.
type Entry struct {
	Re, Im float64
}

// Table holds size+1 entries of exp(-i*pi*k/size) for k = 0..size: the
// lower half computed by the recurrence and the upper half mirrored from
// it while generating. At folds an arbitrary k back into that range.
type Table struct {
	size    int
	entries []Entry
}

// Generate builds the table of exp(-i*pi*k/size) for k = 0..size. size
// must be a power of two and at least 2.
func Generate(size int) *Table {
	if size < 2 || size&(size-1) != 0 {
		panic("twiddle: size must be a power of two >= 2")
	}
	log2 := ilog2(size)

	// w[i] holds the current running value for octave i; h[i] is the
	// fixed half-secant multiplier 1/(2*cos(theta_i)) used to advance it.
	// theta_i = pi/size * 2^i, matching the angle the original table row
	// 33-i (high rows = small angles) encodes.
	w := make([]complexPair, log2+1)
	h := make([]float64, log2+1)
	for i := 0; i <= log2; i++ {
		theta := math.Pi / float64(size) * float64(int64(1)<<uint(i))
		s, c := math.Sincos(theta)
		w[i] = complexPair{c, s}
		h[i] = 1.0 / (2.0 * c)
	}

	entries := make([]Entry, size+1)
	entries[0] = Entry{1, -0}
	half := size / 2
	entries[half] = Entry{0, -1}
	entries[size] = Entry{-1, -0}

	for k := 1; k < half; k++ {
		l := ctz(uint64(k))
		wl := w[l]
		entries[k] = Entry{wl.re, -wl.im}
		entries[size-k] = Entry{-wl.re, -wl.im}

		shift := uint(l + 2)
		off := l + 2 + ctz(^uint64(k)>>shift)
		next := w[l+1]
		base := w[off]
		w[l] = complexPair{h[l] * (next.re + base.re), h[l] * (next.im + base.im)}
	}

	return &Table{size: size, entries: entries}
}

type complexPair struct{ re, im float64 }

// At returns exp(-i*pi*k/size) for any k, folding k into the canonical
// half-table by the standard cosine/sine symmetries.
func (t *Table) At(k int) Entry {
	n := 2 * t.size
	k = ((k % n) + n) % n
	switch {
	case k <= t.size:
		return t.entries[k]
	default:
		e := t.entries[n-k]
		return Entry{e.Re, -e.Im}
	}
}

// Size reports the size this table was generated for.
func (t *Table) Size() int { return t.size }

// StagePacked is the stage engine's twiddle layout: WS holds every
// stage's (w1, w3) pairs back to back for k = 0..size/4-1, ordered by
// ascending stage size; Is[i] is the index into WS where stage i
// (transform size 32<<i) begins.
type StagePacked struct {
	WS []complex64
	Is []int
}

// Pack builds the stage-packed layout for a transform of size n from a
// Table generated for size n/2 (so table.At(j) == exp(-2*pi*i*j/n), the
// n-th roots of unity the top-level combine needs). Every stage works at
// some size s in {32, 64, ..., n}; its k-th pair is (exp(-2*pi*i*k/s),
// exp(-2*pi*i*3k/s)), drawn from table at the scaled index k*(n/s) —
// the same scale-by-n/s trick the recursive engine used to read one
// top-level table at every recursion depth, just flattened once instead
// of rescaled on every Execute call.
func Pack(table *Table, n int) *StagePacked {
	var ws []complex64
	var is []int
	for size := 32; size <= n; size *= 2 {
		is = append(is, len(ws))
		n4 := size / 4
		mult := n / size
		for k := 0; k < n4; k++ {
			e1 := table.At(k * mult)
			e3 := table.At(3 * k * mult)
			ws = append(ws, complex64(complex(e1.Re, e1.Im)), complex64(complex(e3.Re, e3.Im)))
		}
	}
	return &StagePacked{WS: ws, Is: is}
}

func ilog2(n int) int {
	l := 0
	for n > 1 {
		n >>= 1
		l++
	}
	return l
}

func ctz(x uint64) int {
	if x == 0 {
		return 64
	}
	n := 0
	for x&1 == 0 {
		x >>= 1
		n++
	}
	return n
}
