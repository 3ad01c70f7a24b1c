//go:build goexperiment.simd

package kernel

import (
	"simd/archsimd"

	"github.com/okfft/splitfft/internal/align"
)

func init() {
	if archsimd.X86.AVX2() {
		simdCombine = combineSIMD
	}
}

// combineSIMD is combine's vectorized twin: it processes two adjacent k
// values per iteration through a single Float32x4 register — two
// adjacent complex64 values pack exactly into one 128-bit lane, the same
// load/compute/store-via-unsafe-pointer-cast shape the teacher's
// processBlocksSIMD uses for complex128/Float64x2. Only the add/sub
// butterfly halves are vectorized; the per-k twiddle multiply stays
// scalar, since it differs for every k and batching it correctly needs
// an interleaved-lane complex multiply this port does not attempt to
// hand-verify without a build.
func combineSIMD(e, o1, o3 []complex64, sign float64, half, q1, q3 int, w []complex64) []complex64 {
	n4 := len(o1)
	out := make([]complex64, 2*half)
	i := complex64(complex(0, 1))

	k := 0
	for ; k+2 <= n4; k += 2 {
		var sumArr, diffArr [4]float32
		for j := 0; j < 2; j++ {
			kk := k + j
			w1, w3 := w[2*kk], w[2*kk+1]
			if sign > 0 {
				w1 = complex64(complex(real(w1), -imag(w1)))
				w3 = complex64(complex(real(w3), -imag(w3)))
			}
			u := w1 * o1[kk]
			v := w3 * o3[kk]
			sum := u + v
			diff := i * (u - v)

			sumArr[2*j], sumArr[2*j+1] = real(sum), imag(sum)
			diffArr[2*j], diffArr[2*j+1] = real(diff), imag(diff)
		}

		ekVec := archsimd.LoadFloat32x4(align.AsComplex64Pair(e, k))
		sumVec := archsimd.LoadFloat32x4(&sumArr)
		ekVec.Add(sumVec).Store(align.AsComplex64Pair(out, k))
		ekVec.Sub(sumVec).Store(align.AsComplex64Pair(out, k+half))

		enVec := archsimd.LoadFloat32x4(align.AsComplex64Pair(e, k+n4))
		diffVec := archsimd.LoadFloat32x4(&diffArr)
		if sign < 0 {
			enVec.Sub(diffVec).Store(align.AsComplex64Pair(out, k+q1))
			enVec.Add(diffVec).Store(align.AsComplex64Pair(out, k+q3))
		} else {
			enVec.Add(diffVec).Store(align.AsComplex64Pair(out, k+q1))
			enVec.Sub(diffVec).Store(align.AsComplex64Pair(out, k+q3))
		}
	}

	for ; k < n4; k++ {
		w1, w3 := w[2*k], w[2*k+1]
		if sign > 0 {
			w1 = complex64(complex(real(w1), -imag(w1)))
			w3 = complex64(complex(real(w3), -imag(w3)))
		}
		u := w1 * o1[k]
		v := w3 * o3[k]
		sum := u + v
		diff := i * (u - v)

		out[k] = e[k] + sum
		out[k+half] = e[k] - sum
		if sign < 0 {
			out[k+q1] = e[k+n4] - diff
			out[k+q3] = e[k+n4] + diff
		} else {
			out[k+q1] = e[k+n4] + diff
			out[k+q3] = e[k+n4] - diff
		}
	}
	return out
}
