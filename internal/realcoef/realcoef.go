// Package realcoef builds the A/B coefficient pairs okfft_init_real_coeffs
// (okfft.cpp) attaches to a real-transform plan: per-bin combine weights
// that turn a half-length complex spectrum into a real-signal spectrum
// (forward) or back (inverse). The coefficients are the standard
// real-FFT packing weights A[k] = 0.5*(1 - i*W^k), B[k] = 0.5*(1 + i*W^k)
// with W = exp(-2*pi*i/N); okfft.cpp derives the same values through its
// half-secant twiddle recurrence (internal/twiddle carries that
// recurrence for the Twiddle Table proper). The original's
// okfft_sse_fwd_real/inv_real hot loops that actually apply these
// coefficients were filtered from the retrieval pack by its per-file size
// cap, so real.go applies them directly rather than porting an unseen
// SIMD shuffle pattern.
package realcoef

import "math"

// Build returns A and B, each of length N/2+1, for a real transform of
// size N (N must be a power of two >= 8).
func Build(n int) (a, b []complex128) {
	half := n / 2
	a = make([]complex128, half+1)
	b = make([]complex128, half+1)
	for k := 0; k <= half; k++ {
		theta := -2 * math.Pi * float64(k) / float64(n)
		s, c := math.Sincos(theta)
		w := complex(c, s)
		a[k] = 0.5 * (1 - complex(0, 1)*w)
		b[k] = 0.5 * (1 + complex(0, 1)*w)
	}
	return a, b
}
