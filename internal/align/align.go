// Package align provides the storage-layer lane reinterpretation a
// vectorized kernel needs: viewing a []float32 scratch buffer as
// contiguous 128-bit (SSE) or 256-bit (AVX) lanes without copying. This
// generalizes the pointer-cast idiom madelynnblue-go-dsp/fft/radix2_simd.go
// uses inline (e.g. (*[2]float64)(unsafe.Pointer(&r[idx]))) into a
// reusable helper so internal/kernel's SIMD path and any future vectorized
// stage can share one place that knows how wide a lane is and how to
// check a slice is aligned to take one.
package align

import "unsafe"

// LaneFloats returns how many float32 lanes a vector register of the
// given byte width holds (4 for SSE/128-bit, 8 for AVX/256-bit).
func LaneFloats(byteWidth int) int {
	return byteWidth / 4
}

// Float32Offset reports the byte address of x[0] modulo align, so a
// caller can check whether x is suitably aligned for an aligned vector
// load/store of the given byte width before attempting one. Go's
// allocator does not guarantee any particular alignment for a []float32
// beyond 4 bytes, so vectorized code that requires a specific alignment
// must check this and fall back to an unaligned or scalar path otherwise.
func Float32Offset(x []float32, align int) int {
	if len(x) == 0 {
		return 0
	}
	return int(uintptr(unsafe.Pointer(&x[0])) % uintptr(align))
}

// AsFloat32Lane4 reinterprets x[i:i+4] as a fixed-size array pointer
// suitable for archsimd's Load/Store calls, without copying. The caller
// is responsible for ensuring i+4 <= len(x); this mirrors the
// teacher's direct (*[N]floatNN)(unsafe.Pointer(&slice[i])) pattern,
// with one function per lane count (4 here, 8 in AsFloat32Lane8).
func AsFloat32Lane4(x []float32, i int) *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(&x[i]))
}

// AsFloat32Lane8 is AsFloat32Lane4's 256-bit (AVX) counterpart, for a
// lane spanning 8 float32 values (4 complex64 pairs).
func AsFloat32Lane8(x []float32, i int) *[8]float32 {
	return (*[8]float32)(unsafe.Pointer(&x[i]))
}

// AsComplex64Pair reinterprets the two adjacent complex64 values
// x[i], x[i+1] as a [4]float32{re0, im0, re1, im1} lane, the exact shape
// internal/kernel's SIMD combine step loads and stores through a single
// 128-bit vector register. The caller must ensure i+1 < len(x).
func AsComplex64Pair(x []complex64, i int) *[4]float32 {
	return (*[4]float32)(unsafe.Pointer(&x[i]))
}
